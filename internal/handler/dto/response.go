package dto

import (
	"time"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

const dateLayout = "2006-01-02"

type CourseResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	InstructorID string `json:"instructor_id"`
	StartsAt     string `json:"starts_at"`
	MaxCapacity  int    `json:"max_capacity"`
	CreatedAt    string `json:"created_at"`
}

type CourseDetailsResponse struct {
	Course         CourseResponse    `json:"course"`
	AvailableSlots int               `json:"available_slots"`
	Bookings       []BookingResponse `json:"bookings"`
}

type AvailabilityResponse struct {
	CourseID       string `json:"course_id"`
	AvailableSlots int    `json:"available_slots"`
}

type BookingResponse struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	MemberID  string `json:"member_id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

type MemberResponse struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	Status         string `json:"status"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
	CreatedAt      string `json:"created_at"`
}

type CardResponse struct {
	ID        string `json:"id"`
	MemberID  string `json:"member_id"`
	Status    string `json:"status"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func ToCourseResponse(c *domain.Course) CourseResponse {
	return CourseResponse{
		ID:           c.ID,
		Title:        c.Title,
		InstructorID: c.InstructorID,
		StartsAt:     c.StartsAt.Format(time.RFC3339),
		MaxCapacity:  c.MaxCapacity,
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
	}
}

func ToCourseDetailsResponse(d *domain.CourseDetails) CourseDetailsResponse {
	bookings := make([]BookingResponse, 0, len(d.Bookings))
	for _, b := range d.Bookings {
		bookings = append(bookings, ToBookingResponse(&b))
	}

	return CourseDetailsResponse{
		Course:         ToCourseResponse(&d.Course),
		AvailableSlots: d.AvailableSlots,
		Bookings:       bookings,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		CourseID:  b.CourseID,
		MemberID:  b.MemberID,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
		UpdatedAt: b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponses(bookings []*domain.Booking) []BookingResponse {
	resp := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, ToBookingResponse(b))
	}
	return resp
}

func ToMemberResponse(m *domain.Member) MemberResponse {
	return MemberResponse{
		ID:             m.ID,
		FullName:       m.FullName,
		Status:         string(m.Status),
		TelegramChatID: m.TelegramChatID,
		CreatedAt:      m.CreatedAt.Format(time.RFC3339),
	}
}

func ToCardResponse(c *domain.MembershipCard) CardResponse {
	return CardResponse{
		ID:        c.ID,
		MemberID:  c.MemberID,
		Status:    string(c.Status),
		StartDate: c.StartDate.Format(dateLayout),
		EndDate:   c.EndDate.Format(dateLayout),
	}
}
