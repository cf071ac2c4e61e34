package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/service/ports/mocks"
)

func TestEligibilityChecker_CanBook(t *testing.T) {
	today := domain.DateOf(testNow)
	active := &domain.Member{ID: "m1", Status: domain.MemberStatusActive}

	tests := []struct {
		name    string
		setup   func(s *mocks.MockCourseScope)
		wantErr error
	}{
		{
			name: "eligible",
			setup: func(s *mocks.MockCourseScope) {
				s.EXPECT().Member(mock.Anything, "m1").Return(active, nil)
				s.EXPECT().HasValidCard(mock.Anything, "m1", today).Return(true, nil)
				s.EXPECT().HasActiveBooking(mock.Anything, "m1").Return(false, nil)
			},
		},
		{
			name: "unknown member",
			setup: func(s *mocks.MockCourseScope) {
				s.EXPECT().Member(mock.Anything, "m1").Return(nil, domain.ErrMemberNotFound)
			},
			wantErr: domain.ErrMemberNotFound,
		},
		{
			name: "frozen member skips card lookup",
			setup: func(s *mocks.MockCourseScope) {
				s.EXPECT().Member(mock.Anything, "m1").
					Return(&domain.Member{ID: "m1", Status: domain.MemberStatusFrozen}, nil)
			},
			wantErr: domain.ErrMembershipInvalid,
		},
		{
			name: "no valid card",
			setup: func(s *mocks.MockCourseScope) {
				s.EXPECT().Member(mock.Anything, "m1").Return(active, nil)
				s.EXPECT().HasValidCard(mock.Anything, "m1", today).Return(false, nil)
			},
			wantErr: domain.ErrMembershipInvalid,
		},
		{
			name: "already booked",
			setup: func(s *mocks.MockCourseScope) {
				s.EXPECT().Member(mock.Anything, "m1").Return(active, nil)
				s.EXPECT().HasValidCard(mock.Anything, "m1", today).Return(true, nil)
				s.EXPECT().HasActiveBooking(mock.Anything, "m1").Return(true, nil)
			},
			wantErr: domain.ErrDuplicateBooking,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scope := mocks.NewMockCourseScope(t)
			tt.setup(scope)

			err := NewEligibilityChecker(fixedClock).CanBook(context.Background(), scope, "m1")

			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestEligibilityChecker_CanBook_StoreError(t *testing.T) {
	scope := mocks.NewMockCourseScope(t)
	dbErr := errors.New("read timeout")
	scope.EXPECT().Member(mock.Anything, "m1").
		Return(&domain.Member{ID: "m1", Status: domain.MemberStatusActive}, nil)
	scope.EXPECT().HasValidCard(mock.Anything, "m1", mock.Anything).Return(false, dbErr)

	err := NewEligibilityChecker(fixedClock).CanBook(context.Background(), scope, "m1")

	assert.ErrorIs(t, err, dbErr)
	assert.False(t, domain.IsBusinessFailure(err))
}
