package service

import (
	"context"
	"fmt"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
)

// CapacityTracker computes free seats from the current course capacity and the
// number of active bookings. Nothing is cached between calls.
type CapacityTracker struct {
	courseRepo  ports.CourseRepo
	bookingRepo ports.BookingRepo
}

func NewCapacityTracker(courseRepo ports.CourseRepo, bookingRepo ports.BookingRepo) *CapacityTracker {
	return &CapacityTracker{
		courseRepo:  courseRepo,
		bookingRepo: bookingRepo,
	}
}

// AvailableSlots returns domain.ErrCourseNotFound for unknown courses, so a missing
// course is never reported as a full one.
func (t *CapacityTracker) AvailableSlots(ctx context.Context, courseID string) (int, error) {
	course, err := t.courseRepo.GetByID(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("get course: %w", err)
	}

	active, err := t.bookingRepo.CountActive(ctx, courseID)
	if err != nil {
		return 0, fmt.Errorf("count active bookings: %w", err)
	}

	return freeSlots(course.MaxCapacity, active), nil
}

func (t *CapacityTracker) HasRoom(ctx context.Context, courseID string) (bool, error) {
	slots, err := t.AvailableSlots(ctx, courseID)
	if err != nil {
		return false, err
	}
	return slots > 0, nil
}

type capacityReader interface {
	Course() *domain.Course
	CountActive(ctx context.Context) (int, error)
}

// availableIn is the scoped variant used during admission, where the count is read
// under the course lock.
func availableIn(ctx context.Context, r capacityReader) (int, error) {
	active, err := r.CountActive(ctx)
	if err != nil {
		return 0, fmt.Errorf("count active bookings: %w", err)
	}
	return freeSlots(r.Course().MaxCapacity, active), nil
}

// freeSlots never goes below zero, even when capacity was lowered under existing bookings.
func freeSlots(maxCapacity, active int) int {
	if active >= maxCapacity {
		return 0
	}
	return maxCapacity - active
}
