package ports

import (
	"context"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

type CourseRepo interface {
	Create(ctx context.Context, c *domain.Course) error
	GetByID(ctx context.Context, id string) (*domain.Course, error)
	List(ctx context.Context) ([]*domain.Course, error)
	GetDetails(ctx context.Context, courseID string) (*domain.CourseDetails, error)
}
