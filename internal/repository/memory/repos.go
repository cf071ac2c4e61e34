package memory

import (
	"context"
	"sort"
	"time"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

func (s *Store) lookup(bookingID string) (domain.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row, ok := s.bookings[bookingID]
	if !ok {
		return domain.Booking{}, false
	}
	return row.booking, true
}

type CourseRepo struct {
	s *Store
}

func (r *CourseRepo) Create(ctx context.Context, c *domain.Course) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.courses[c.ID] = *c
	return nil
}

func (r *CourseRepo) GetByID(ctx context.Context, id string) (*domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.courses[id]
	if !ok {
		return nil, domain.ErrCourseNotFound
	}
	return &c, nil
}

func (r *CourseRepo) List(ctx context.Context) ([]*domain.Course, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	res := make([]*domain.Course, 0, len(r.s.courses))
	for _, c := range r.s.courses {
		res = append(res, &c)
	}
	r.s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		return res[i].StartsAt.After(res[j].StartsAt)
	})
	return res, nil
}

func (r *CourseRepo) GetDetails(ctx context.Context, courseID string) (*domain.CourseDetails, error) {
	c, err := r.GetByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	active := 0
	for _, row := range r.s.courseBookings(courseID) {
		if row.booking.Status.IsActive() {
			active++
		}
	}

	slots := c.MaxCapacity - active
	if slots < 0 {
		slots = 0
	}
	return &domain.CourseDetails{Course: *c, AvailableSlots: slots}, nil
}

// SetCapacity changes the capacity of an existing course, as an admin edit would.
func (r *CourseRepo) SetCapacity(ctx context.Context, courseID string, maxCapacity int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.courses[courseID]
	if !ok {
		return domain.ErrCourseNotFound
	}
	c.MaxCapacity = maxCapacity
	c.UpdatedAt = time.Now().UTC()
	r.s.courses[courseID] = c
	return nil
}

type MemberRepo struct {
	s *Store
}

func (r *MemberRepo) Create(ctx context.Context, m *domain.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.members[m.ID] = *m
	return nil
}

func (r *MemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	m, ok := r.s.members[id]
	if !ok {
		return nil, domain.ErrMemberNotFound
	}
	return &m, nil
}

func (r *MemberRepo) List(ctx context.Context) ([]*domain.Member, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	res := make([]*domain.Member, 0, len(r.s.members))
	for _, m := range r.s.members {
		res = append(res, &m)
	}
	r.s.mu.RUnlock()

	sort.Slice(res, func(i, j int) bool {
		return res[i].FullName < res[j].FullName
	})
	return res, nil
}

func (r *MemberRepo) UpdateStatus(ctx context.Context, id string, status domain.MemberStatus) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.members[id]
	if !ok {
		return domain.ErrMemberNotFound
	}
	m.Status = status
	r.s.members[id] = m
	return nil
}

func (r *MemberRepo) CreateCard(ctx context.Context, card *domain.MembershipCard) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.cards[card.MemberID] = append(r.s.cards[card.MemberID], *card)
	return nil
}

func (r *MemberRepo) ListCards(ctx context.Context, memberID string) ([]*domain.MembershipCard, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	cards := r.s.cards[memberID]
	res := make([]*domain.MembershipCard, len(cards))
	for i := range cards {
		c := cards[i]
		res[i] = &c
	}
	sort.Slice(res, func(i, j int) bool {
		return res[i].EndDate.After(res[j].EndDate)
	})
	return res, nil
}

type BookingRepo struct {
	s *Store
}

func (r *BookingRepo) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b, ok := r.s.lookup(id)
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepo) CountActive(ctx context.Context, courseID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	n := 0
	for _, row := range r.s.courseBookings(courseID) {
		if row.booking.Status.IsActive() {
			n++
		}
	}
	return n, nil
}

func (r *BookingRepo) ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.s.selectBookings(func(b *domain.Booking) bool {
		return b.MemberID == memberID
	}), nil
}

func (r *BookingRepo) ListByCourse(ctx context.Context, courseID string) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.s.selectBookings(func(b *domain.Booking) bool {
		return b.CourseID == courseID
	}), nil
}

func (r *BookingRepo) ListPending(ctx context.Context) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.s.selectBookings(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusPending
	}), nil
}

func (r *BookingRepo) ListStalePending(ctx context.Context, now time.Time) ([]*domain.Booking, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.s.mu.RLock()
	started := make(map[string]bool, len(r.s.courses))
	for id, c := range r.s.courses {
		started[id] = c.Started(now)
	}
	r.s.mu.RUnlock()

	return r.s.selectBookings(func(b *domain.Booking) bool {
		return b.Status == domain.BookingStatusPending && started[b.CourseID]
	}), nil
}
