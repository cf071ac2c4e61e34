package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports/mocks"
)

func TestCourseService_CreateCourse_Success(t *testing.T) {
	courseRepo := mocks.NewMockCourseRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewCourseService(courseRepo, bookingRepo)

	courseRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	startsAt := time.Now().Add(24 * time.Hour)
	input := domain.CreateCourseInput{
		Title:        "Morning yoga",
		InstructorID: "coach-1",
		StartsAt:     startsAt,
		MaxCapacity:  12,
	}

	course, err := svc.CreateCourse(context.Background(), input)

	require.NoError(t, err)
	assert.NotEmpty(t, course.ID)
	assert.Equal(t, "Morning yoga", course.Title)
	assert.Equal(t, "coach-1", course.InstructorID)
	assert.Equal(t, 12, course.MaxCapacity)
	assert.True(t, startsAt.Equal(course.StartsAt))
	assert.Equal(t, time.UTC, course.StartsAt.Location())
}

func TestCourseService_CreateCourse_Validation(t *testing.T) {
	future := time.Now().Add(time.Hour)

	tests := []struct {
		name  string
		input domain.CreateCourseInput
	}{
		{
			name:  "empty title",
			input: domain.CreateCourseInput{InstructorID: "coach", StartsAt: future, MaxCapacity: 5},
		},
		{
			name:  "no instructor",
			input: domain.CreateCourseInput{Title: "Spin", StartsAt: future, MaxCapacity: 5},
		},
		{
			name:  "zero capacity",
			input: domain.CreateCourseInput{Title: "Spin", InstructorID: "coach", StartsAt: future},
		},
		{
			name: "negative capacity",
			input: domain.CreateCourseInput{
				Title: "Spin", InstructorID: "coach", StartsAt: future, MaxCapacity: -1,
			},
		},
		{
			name: "past start",
			input: domain.CreateCourseInput{
				Title: "Spin", InstructorID: "coach", StartsAt: time.Now().Add(-time.Hour), MaxCapacity: 5,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewCourseService(mocks.NewMockCourseRepo(t), mocks.NewMockBookingRepo(t))

			_, err := svc.CreateCourse(context.Background(), tt.input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCourseService_CreateCourse_RepoError(t *testing.T) {
	courseRepo := mocks.NewMockCourseRepo(t)
	svc := NewCourseService(courseRepo, mocks.NewMockBookingRepo(t))

	repoErr := errors.New("db error")
	courseRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.CreateCourse(context.Background(), domain.CreateCourseInput{
		Title:        "Boxing",
		InstructorID: "coach",
		StartsAt:     time.Now().Add(time.Hour),
		MaxCapacity:  8,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestCourseService_GetDetails_Success(t *testing.T) {
	courseRepo := mocks.NewMockCourseRepo(t)
	bookingRepo := mocks.NewMockBookingRepo(t)
	svc := NewCourseService(courseRepo, bookingRepo)

	courseID := "course-123"
	details := &domain.CourseDetails{
		Course:         domain.Course{ID: courseID, Title: "Pilates", MaxCapacity: 10},
		AvailableSlots: 8,
	}
	bookings := []*domain.Booking{
		{ID: "b1", CourseID: courseID, MemberID: "m1", Status: domain.BookingStatusPending},
		{ID: "b2", CourseID: courseID, MemberID: "m2", Status: domain.BookingStatusConfirmed},
		{ID: "b3", CourseID: courseID, MemberID: "m3", Status: domain.BookingStatusCancelled},
		{ID: "b4", CourseID: courseID, MemberID: "m4", Status: domain.BookingStatusAttended},
	}

	courseRepo.EXPECT().GetDetails(mock.Anything, courseID).Return(details, nil)
	bookingRepo.EXPECT().ListByCourse(mock.Anything, courseID).Return(bookings, nil)

	result, err := svc.GetDetails(context.Background(), courseID)

	require.NoError(t, err)
	assert.Equal(t, courseID, result.Course.ID)
	assert.Equal(t, 8, result.AvailableSlots)
	require.Len(t, result.Bookings, 2)
	assert.Equal(t, "b1", result.Bookings[0].ID)
	assert.Equal(t, "b2", result.Bookings[1].ID)
}

func TestCourseService_GetDetails_NotFound(t *testing.T) {
	courseRepo := mocks.NewMockCourseRepo(t)
	svc := NewCourseService(courseRepo, mocks.NewMockBookingRepo(t))

	courseRepo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrCourseNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCourseNotFound)
}

func TestCourseService_List(t *testing.T) {
	courseRepo := mocks.NewMockCourseRepo(t)
	svc := NewCourseService(courseRepo, mocks.NewMockBookingRepo(t))

	courses := []*domain.Course{
		{ID: "c1", Title: "Yoga"},
		{ID: "c2", Title: "Spin"},
	}
	courseRepo.EXPECT().List(mock.Anything).Return(courses, nil)

	result, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)
}
