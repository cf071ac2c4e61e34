package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
)

// BookingStateMachine persists the lifecycle of single bookings. Every method must run
// inside the course scope the booking belongs to.
type BookingStateMachine struct {
	now func() time.Time
}

func NewBookingStateMachine(now func() time.Time) *BookingStateMachine {
	return &BookingStateMachine{now: now}
}

// Create inserts a pending booking. Eligibility and capacity are checked by the caller
// in the same scope.
func (m *BookingStateMachine) Create(ctx context.Context, scope ports.CourseScope, memberID string) (*domain.Booking, error) {
	now := m.now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		MemberID:  memberID,
		CourseID:  scope.Course().ID,
		Status:    domain.BookingStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := scope.InsertBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("insert booking: %w", err)
	}

	return booking, nil
}

// Confirm moves a pending booking to confirmed after checking that the course,
// not counting this booking, still has a free seat.
func (m *BookingStateMachine) Confirm(ctx context.Context, scope ports.CourseScope, bookingID string) (*domain.Booking, error) {
	booking, err := m.load(ctx, scope, bookingID, domain.BookingStatusConfirmed)
	if err != nil {
		return nil, err
	}

	active, err := scope.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("count active bookings: %w", err)
	}
	// the booking being confirmed is itself active
	if active-1 >= scope.Course().MaxCapacity {
		return nil, domain.ErrCourseFull
	}

	return m.apply(ctx, scope, booking, domain.BookingStatusConfirmed)
}

// Cancel frees the seat held by a pending or confirmed booking.
func (m *BookingStateMachine) Cancel(ctx context.Context, scope ports.CourseScope, bookingID string) (*domain.Booking, error) {
	booking, err := m.load(ctx, scope, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	return m.apply(ctx, scope, booking, domain.BookingStatusCancelled)
}

// CancelPending cancels a booking only while it is still pending. A booking confirmed
// in the meantime is reported as ErrInvalidTransition and left untouched.
func (m *BookingStateMachine) CancelPending(ctx context.Context, scope ports.CourseScope, bookingID string) (*domain.Booking, error) {
	booking, err := m.load(ctx, scope, bookingID, domain.BookingStatusCancelled)
	if err != nil {
		return nil, err
	}
	if booking.Status != domain.BookingStatusPending {
		return nil, fmt.Errorf("%w: %s booking is no longer pending", domain.ErrInvalidTransition, booking.Status)
	}
	return m.apply(ctx, scope, booking, domain.BookingStatusCancelled)
}

func (m *BookingStateMachine) MarkAttended(ctx context.Context, scope ports.CourseScope, bookingID string) (*domain.Booking, error) {
	booking, err := m.load(ctx, scope, bookingID, domain.BookingStatusAttended)
	if err != nil {
		return nil, err
	}
	return m.apply(ctx, scope, booking, domain.BookingStatusAttended)
}

func (m *BookingStateMachine) load(
	ctx context.Context,
	scope ports.CourseScope,
	bookingID string,
	target domain.BookingStatus,
) (*domain.Booking, error) {
	booking, err := scope.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if err = booking.CheckTransition(target); err != nil {
		return nil, err
	}
	return booking, nil
}

func (m *BookingStateMachine) apply(
	ctx context.Context,
	scope ports.CourseScope,
	booking *domain.Booking,
	target domain.BookingStatus,
) (*domain.Booking, error) {
	now := m.now().UTC()
	if err := scope.UpdateStatus(ctx, booking.ID, booking.Status, target, now); err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	updated := *booking
	updated.Status = target
	updated.UpdatedAt = now
	return &updated, nil
}
