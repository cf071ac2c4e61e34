package domain

import "time"

type Course struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	InstructorID string    `json:"instructor_id"`
	StartsAt     time.Time `json:"starts_at"`
	MaxCapacity  int       `json:"max_capacity"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Course) Started(now time.Time) bool {
	return !now.Before(c.StartsAt)
}

type CourseDetails struct {
	Course         Course    `json:"course"`
	AvailableSlots int       `json:"available_slots"`
	Bookings       []Booking `json:"bookings"`
}

type CreateCourseInput struct {
	Title        string
	InstructorID string
	StartsAt     time.Time
	MaxCapacity  int
}
