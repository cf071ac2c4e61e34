package memory

import (
	"context"
	"fmt"
	"time"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

type courseScope struct {
	s      *Store
	course domain.Course
	staged map[string]domain.Booking
	order  []string
}

func (c *courseScope) Course() *domain.Course {
	course := c.course
	return &course
}

func (c *courseScope) Member(ctx context.Context, memberID string) (*domain.Member, error) {
	return c.s.Members().GetByID(ctx, memberID)
}

func (c *courseScope) HasValidCard(ctx context.Context, memberID string, day time.Time) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	return c.s.validCard(memberID, day), nil
}

func (c *courseScope) HasActiveBooking(ctx context.Context, memberID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	for _, b := range c.view() {
		if b.MemberID == memberID && b.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (c *courseScope) CountActive(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	for _, b := range c.view() {
		if b.Status.IsActive() {
			n++
		}
	}
	return n, nil
}

func (c *courseScope) GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if b, ok := c.staged[bookingID]; ok {
		return &b, nil
	}

	c.s.mu.RLock()
	row, ok := c.s.bookings[bookingID]
	var b domain.Booking
	if ok {
		b = row.booking
	}
	c.s.mu.RUnlock()

	if !ok || b.CourseID != c.course.ID {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (c *courseScope) InsertBooking(ctx context.Context, b *domain.Booking) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !b.Status.IsValid() {
		return fmt.Errorf("%w: booking status %q", domain.ErrValidation, b.Status)
	}
	if b.Status.IsActive() {
		for _, other := range c.view() {
			if other.MemberID == b.MemberID && other.Status.IsActive() {
				return domain.ErrDuplicateBooking
			}
		}
	}

	c.stage(*b)
	return nil
}

func (c *courseScope) UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus, at time.Time) error {
	if !to.IsValid() {
		return fmt.Errorf("%w: booking status %q", domain.ErrValidation, to)
	}

	b, err := c.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}
	if b.Status != from {
		return fmt.Errorf("%w: booking %s is no longer %s", domain.ErrInvalidTransition, bookingID, from)
	}

	b.Status = to
	b.UpdatedAt = at
	c.stage(*b)
	return nil
}

func (c *courseScope) stage(b domain.Booking) {
	if _, ok := c.staged[b.ID]; !ok {
		c.order = append(c.order, b.ID)
	}
	c.staged[b.ID] = b
}

// view merges the committed bookings of the course with the staged ones.
func (c *courseScope) view() []domain.Booking {
	rows := c.s.courseBookings(c.course.ID)

	res := make([]domain.Booking, 0, len(rows)+len(c.staged))
	for _, row := range rows {
		if b, ok := c.staged[row.booking.ID]; ok {
			res = append(res, b)
			continue
		}
		res = append(res, row.booking)
	}
	for _, id := range c.order {
		if _, committed := c.s.lookup(id); !committed {
			res = append(res, c.staged[id])
		}
	}
	return res
}
