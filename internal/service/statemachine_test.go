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

func TestBookingStateMachine_Create(t *testing.T) {
	scope := mocks.NewMockCourseScope(t)
	scope.EXPECT().Course().Return(&domain.Course{ID: "c1", MaxCapacity: 2})
	scope.EXPECT().InsertBooking(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.CourseID == "c1" && b.MemberID == "m1" && b.Status == domain.BookingStatusPending
	})).Return(nil)

	b, err := NewBookingStateMachine(fixedClock).Create(context.Background(), scope, "m1")

	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, testNow, b.CreatedAt)
	assert.Equal(t, testNow, b.UpdatedAt)
}

func TestBookingStateMachine_Create_Duplicate(t *testing.T) {
	scope := mocks.NewMockCourseScope(t)
	scope.EXPECT().Course().Return(&domain.Course{ID: "c1"})
	scope.EXPECT().InsertBooking(mock.Anything, mock.Anything).Return(domain.ErrDuplicateBooking)

	_, err := NewBookingStateMachine(fixedClock).Create(context.Background(), scope, "m1")

	assert.ErrorIs(t, err, domain.ErrDuplicateBooking)
}

func TestBookingStateMachine_Confirm(t *testing.T) {
	pending := &domain.Booking{ID: "b1", CourseID: "c1", Status: domain.BookingStatusPending}

	tests := []struct {
		name     string
		capacity int
		active   int
		wantErr  error
	}{
		{name: "room left", capacity: 3, active: 2},
		{name: "last seat is its own", capacity: 3, active: 3},
		{name: "capacity lowered", capacity: 2, active: 3, wantErr: domain.ErrCourseFull},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := mocks.NewMockCourseScope(t)
			scope.EXPECT().GetBooking(mock.Anything, "b1").Return(pending, nil)
			scope.EXPECT().CountActive(mock.Anything).Return(tt.active, nil)
			scope.EXPECT().Course().Return(&domain.Course{ID: "c1", MaxCapacity: tt.capacity})
			if tt.wantErr == nil {
				scope.EXPECT().UpdateStatus(mock.Anything, "b1",
					domain.BookingStatusPending, domain.BookingStatusConfirmed, testNow).Return(nil)
			}

			b, err := NewBookingStateMachine(fixedClock).Confirm(context.Background(), scope, "b1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatusConfirmed, b.Status)
			assert.Equal(t, domain.BookingStatusPending, pending.Status)
		})
	}
}

func TestBookingStateMachine_IllegalTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		run     func(m *BookingStateMachine, s *mocks.MockCourseScope) error
		wantErr error
	}{
		{
			name: "attend pending",
			from: domain.BookingStatusPending,
			run: func(m *BookingStateMachine, s *mocks.MockCourseScope) error {
				_, err := m.MarkAttended(context.Background(), s, "b1")
				return err
			},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name: "confirm cancelled",
			from: domain.BookingStatusCancelled,
			run: func(m *BookingStateMachine, s *mocks.MockCourseScope) error {
				_, err := m.Confirm(context.Background(), s, "b1")
				return err
			},
			wantErr: domain.ErrInvalidTransition,
		},
		{
			name: "cancel cancelled",
			from: domain.BookingStatusCancelled,
			run: func(m *BookingStateMachine, s *mocks.MockCourseScope) error {
				_, err := m.Cancel(context.Background(), s, "b1")
				return err
			},
			wantErr: domain.ErrAlreadyCancelled,
		},
		{
			name: "cancel attended",
			from: domain.BookingStatusAttended,
			run: func(m *BookingStateMachine, s *mocks.MockCourseScope) error {
				_, err := m.Cancel(context.Background(), s, "b1")
				return err
			},
			wantErr: domain.ErrInvalidTransition,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := mocks.NewMockCourseScope(t)
			scope.EXPECT().GetBooking(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", Status: tt.from}, nil)

			err := tt.run(NewBookingStateMachine(fixedClock), scope)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestBookingStateMachine_Cancel_LostRace(t *testing.T) {
	scope := mocks.NewMockCourseScope(t)
	scope.EXPECT().GetBooking(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", Status: domain.BookingStatusConfirmed}, nil)
	scope.EXPECT().UpdateStatus(mock.Anything, "b1",
		domain.BookingStatusConfirmed, domain.BookingStatusCancelled, testNow).Return(domain.ErrInvalidTransition)

	_, err := NewBookingStateMachine(fixedClock).Cancel(context.Background(), scope, "b1")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestBookingStateMachine_CancelPending(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		wantErr error
	}{
		{name: "pending", from: domain.BookingStatusPending},
		{name: "confirmed meanwhile", from: domain.BookingStatusConfirmed, wantErr: domain.ErrInvalidTransition},
		{name: "cancelled meanwhile", from: domain.BookingStatusCancelled, wantErr: domain.ErrAlreadyCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := mocks.NewMockCourseScope(t)
			scope.EXPECT().GetBooking(mock.Anything, "b1").
				Return(&domain.Booking{ID: "b1", Status: tt.from}, nil)
			if tt.wantErr == nil {
				scope.EXPECT().UpdateStatus(mock.Anything, "b1",
					domain.BookingStatusPending, domain.BookingStatusCancelled, testNow).Return(nil)
			}

			b, err := NewBookingStateMachine(fixedClock).CancelPending(context.Background(), scope, "b1")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, domain.BookingStatusCancelled, b.Status)
		})
	}
}
