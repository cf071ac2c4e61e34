package domain

import (
	"fmt"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusAttended  BookingStatus = "attended"
)

// ActiveStatuses are the statuses that hold a seat in a course.
var ActiveStatuses = []BookingStatus{BookingStatusPending, BookingStatusConfirmed}

var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusConfirmed, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusAttended, BookingStatusCancelled},
	BookingStatusCancelled: {},
	BookingStatusAttended:  {},
}

func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("%w: unknown booking status %q", ErrValidation, s)
	}
	return status, nil
}

func (s BookingStatus) IsValid() bool {
	_, ok := bookingTransitions[s]
	return ok
}

func (s BookingStatus) IsActive() bool {
	return s == BookingStatusPending || s == BookingStatusConfirmed
}

func (s BookingStatus) IsTerminal() bool {
	next, ok := bookingTransitions[s]
	return !ok || len(next) == 0
}

func (s BookingStatus) CanTransitionTo(target BookingStatus) bool {
	for _, next := range bookingTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

func (s BookingStatus) String() string {
	return string(s)
}

type Booking struct {
	ID        string        `json:"id"`
	MemberID  string        `json:"member_id"`
	CourseID  string        `json:"course_id"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// CheckTransition reports why the booking cannot move to target, or nil if it can.
func (b *Booking) CheckTransition(target BookingStatus) error {
	if b.Status.CanTransitionTo(target) {
		return nil
	}

	switch {
	case target == BookingStatusCancelled && b.Status == BookingStatusCancelled:
		return ErrAlreadyCancelled
	default:
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, b.Status, target)
	}
}

func (b *Booking) OwnedBy(memberID string) bool {
	return b.MemberID == memberID
}
