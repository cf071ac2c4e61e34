package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports"
)

type CourseService struct {
	repo        ports.CourseRepo
	bookingRepo ports.BookingRepo
	now         func() time.Time
}

func NewCourseService(repo ports.CourseRepo, bookingRepo ports.BookingRepo) *CourseService {
	return &CourseService{
		repo:        repo,
		bookingRepo: bookingRepo,
		now:         time.Now,
	}
}

func (s *CourseService) CreateCourse(ctx context.Context, input domain.CreateCourseInput) (*domain.Course, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.InstructorID == "" {
		return nil, fmt.Errorf("%w: instructor_id is required", domain.ErrValidation)
	}
	if input.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max_capacity must be positive", domain.ErrValidation)
	}
	if input.StartsAt.Before(s.now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	now := s.now().UTC()
	course := &domain.Course{
		ID:           uuid.New().String(),
		Title:        input.Title,
		InstructorID: input.InstructorID,
		StartsAt:     input.StartsAt.UTC(),
		MaxCapacity:  input.MaxCapacity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("create course: %w", err)
	}

	return course, nil
}

// GetDetails returns the course with its free seats and the bookings currently holding one.
func (s *CourseService) GetDetails(ctx context.Context, id string) (*domain.CourseDetails, error) {
	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingRepo.ListByCourse(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	details.Bookings = make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.Status.IsActive() {
			details.Bookings = append(details.Bookings, *b)
		}
	}

	return details, nil
}

func (s *CourseService) List(ctx context.Context) ([]*domain.Course, error) {
	return s.repo.List(ctx)
}
