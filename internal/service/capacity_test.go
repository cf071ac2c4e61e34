package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports/mocks"
)

func TestFreeSlots(t *testing.T) {
	assert.Equal(t, 3, freeSlots(3, 0))
	assert.Equal(t, 1, freeSlots(3, 2))
	assert.Equal(t, 0, freeSlots(3, 3))
	assert.Equal(t, 0, freeSlots(1, 4))
}

func TestCapacityTracker_AvailableSlots(t *testing.T) {
	courseRepo := mocks.NewMockCourseRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)

	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(&domain.Course{ID: "c1", MaxCapacity: 10}, nil)
	bookingRepo.EXPECT().CountActive(mock.Anything, "c1").Return(4, nil)

	tracker := NewCapacityTracker(courseRepo, bookingRepo)

	slots, err := tracker.AvailableSlots(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 6, slots)

	ok, err := tracker.HasRoom(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCapacityTracker_CourseNotFound(t *testing.T) {
	courseRepo := mocks.NewMockCourseRepo(t)
	courseRepo.EXPECT().GetByID(mock.Anything, "c1").Return(nil, domain.ErrCourseNotFound)

	tracker := NewCapacityTracker(courseRepo, mocks.NewMockBookingRepo(t))

	ok, err := tracker.HasRoom(context.Background(), "c1")

	assert.False(t, ok)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}
