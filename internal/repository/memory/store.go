// Package memory is an in-process implementation of the service ports. Course scopes
// are serialized by a per-course lock and their writes are applied on commit.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/lock"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
)

type bookingRow struct {
	booking domain.Booking
	seq     int64
}

type Store struct {
	mu       sync.RWMutex
	members  map[string]domain.Member
	cards    map[string][]domain.MembershipCard
	courses  map[string]domain.Course
	bookings map[string]*bookingRow
	seq      int64

	courseLocks *lock.Keyed
}

func NewStore() *Store {
	return &Store{
		members:     make(map[string]domain.Member),
		cards:       make(map[string][]domain.MembershipCard),
		courses:     make(map[string]domain.Course),
		bookings:    make(map[string]*bookingRow),
		courseLocks: lock.NewKeyed(),
	}
}

// Courses, Members and Bookings expose the store through the repository ports.
func (s *Store) Courses() *CourseRepo   { return &CourseRepo{s: s} }
func (s *Store) Members() *MemberRepo   { return &MemberRepo{s: s} }
func (s *Store) Bookings() *BookingRepo { return &BookingRepo{s: s} }

// WithinCourse implements ports.TxManager.
func (s *Store) WithinCourse(
	ctx context.Context,
	courseID string,
	fn func(ctx context.Context, scope ports.CourseScope) error,
) error {
	unlock, err := s.courseLocks.Lock(ctx, courseID)
	if err != nil {
		return err
	}
	defer unlock()

	s.mu.RLock()
	course, ok := s.courses[courseID]
	s.mu.RUnlock()
	if !ok {
		return domain.ErrCourseNotFound
	}

	scope := &courseScope{
		s:      s,
		course: course,
		staged: make(map[string]domain.Booking),
	}
	if err = fn(ctx, scope); err != nil {
		return err
	}
	if err = ctx.Err(); err != nil {
		return err
	}

	s.commit(scope)
	return nil
}

func (s *Store) commit(scope *courseScope) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range scope.order {
		b := scope.staged[id]
		if row, ok := s.bookings[id]; ok {
			row.booking = b
			continue
		}
		s.seq++
		s.bookings[id] = &bookingRow{booking: b, seq: s.seq}
	}
}

// courseBookings returns copies of every committed booking of the course.
func (s *Store) courseBookings(courseID string) []*bookingRow {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var res []*bookingRow
	for _, row := range s.bookings {
		if row.booking.CourseID == courseID {
			cp := *row
			res = append(res, &cp)
		}
	}
	return res
}

func (s *Store) selectBookings(match func(b *domain.Booking) bool) []*domain.Booking {
	s.mu.RLock()
	rows := make([]*bookingRow, 0, len(s.bookings))
	for _, row := range s.bookings {
		if match(&row.booking) {
			cp := *row
			rows = append(rows, &cp)
		}
	}
	s.mu.RUnlock()

	sortNewestFirst(rows)

	res := make([]*domain.Booking, len(rows))
	for i, row := range rows {
		b := row.booking
		res[i] = &b
	}
	return res
}

func sortNewestFirst(rows []*bookingRow) {
	sort.Slice(rows, func(i, j int) bool {
		if !rows[i].booking.CreatedAt.Equal(rows[j].booking.CreatedAt) {
			return rows[i].booking.CreatedAt.After(rows[j].booking.CreatedAt)
		}
		return rows[i].seq > rows[j].seq
	})
}

func (s *Store) validCard(memberID string, day time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := range s.cards[memberID] {
		if s.cards[memberID][i].ValidOn(day) {
			return true
		}
	}
	return false
}
