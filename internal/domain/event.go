package domain

import "time"

type BookingEventType string

const (
	BookingEventCreated   BookingEventType = "booking.created"
	BookingEventConfirmed BookingEventType = "booking.confirmed"
	BookingEventCancelled BookingEventType = "booking.cancelled"
	BookingEventAttended  BookingEventType = "booking.attended"
)

// BookingEvent is emitted after a booking transition has been committed.
type BookingEvent struct {
	Type       BookingEventType `json:"type"`
	BookingID  string           `json:"booking_id"`
	MemberID   string           `json:"member_id"`
	CourseID   string           `json:"course_id"`
	Status     BookingStatus    `json:"status"`
	OccurredAt time.Time        `json:"occurred_at"`
}

func NewBookingEvent(t BookingEventType, b *Booking) BookingEvent {
	return BookingEvent{
		Type:       t,
		BookingID:  b.ID,
		MemberID:   b.MemberID,
		CourseID:   b.CourseID,
		Status:     b.Status,
		OccurredAt: b.UpdatedAt,
	}
}
