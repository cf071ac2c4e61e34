package ports

import (
	"context"
	"time"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

// BookingRepo serves read projections outside of any course scope.
// Results may be stale under concurrent writes.
type BookingRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	CountActive(ctx context.Context, courseID string) (int, error)
	ListByMember(ctx context.Context, memberID string) ([]*domain.Booking, error)
	ListByCourse(ctx context.Context, courseID string) ([]*domain.Booking, error)
	ListPending(ctx context.Context) ([]*domain.Booking, error)
	ListStalePending(ctx context.Context, now time.Time) ([]*domain.Booking, error)
}

// CourseScope is a unit of work bound to a single course. While it is open no other
// scope for the same course can run. Writes become visible only after the scope commits.
type CourseScope interface {
	Course() *domain.Course
	Member(ctx context.Context, memberID string) (*domain.Member, error)
	HasValidCard(ctx context.Context, memberID string, day time.Time) (bool, error)
	HasActiveBooking(ctx context.Context, memberID string) (bool, error)
	CountActive(ctx context.Context) (int, error)
	GetBooking(ctx context.Context, bookingID string) (*domain.Booking, error)
	InsertBooking(ctx context.Context, b *domain.Booking) error
	UpdateStatus(ctx context.Context, bookingID string, from, to domain.BookingStatus, at time.Time) error
}

// TxManager opens course scopes. fn returning an error aborts the scope and nothing is persisted.
type TxManager interface {
	WithinCourse(ctx context.Context, courseID string, fn func(ctx context.Context, scope CourseScope) error) error
}
