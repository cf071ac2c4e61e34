package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/scheduler/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestScheduler_Tick_CancelsStale(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, time.Minute, newTestLogger(t))

	cancelled := []*domain.Booking{
		{ID: "b1", CourseID: "c1", MemberID: "m1", Status: domain.BookingStatusCancelled},
	}
	canceller.EXPECT().CancelStale(mock.Anything).Return(cancelled, nil).Once()

	s.tick(context.Background())
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, time.Minute, newTestLogger(t))

	canceller.EXPECT().CancelStale(mock.Anything).Return(nil, errors.New("db error")).Once()

	s.tick(context.Background())
}

func TestScheduler_Start_Ticks(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, 20*time.Millisecond, newTestLogger(t))

	ticked := make(chan struct{}, 1)
	canceller.EXPECT().CancelStale(mock.Anything).
		RunAndReturn(func(context.Context) ([]*domain.Booking, error) {
			select {
			case ticked <- struct{}{}:
			default:
			}
			return nil, nil
		})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-ticked:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not tick")
	}

	cancel()
	<-done

	assert.GreaterOrEqual(t, len(canceller.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	canceller := mocks.NewMockStaleCanceller(t)
	s := New(canceller, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}
