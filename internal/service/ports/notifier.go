package ports

import (
	"context"

	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, member *domain.Member, course *domain.Course)
	NotifyBookingConfirmed(ctx context.Context, member *domain.Member, course *domain.Course)
	NotifyBookingCancelled(ctx context.Context, member *domain.Member, course *domain.Course)
	NotifyAttendanceMarked(ctx context.Context, member *domain.Member, course *domain.Course)
}

type EventPublisher interface {
	Publish(ctx context.Context, event domain.BookingEvent) error
}
