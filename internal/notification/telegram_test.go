package notification

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestCourseMessage(t *testing.T) {
	course := &domain.Course{
		Title:    "Yoga",
		StartsAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	text := courseMessage("*Header*", course, "footer")

	assert.Contains(t, text, "*Header*")
	assert.Contains(t, text, "Yoga")
	assert.Contains(t, text, "14.03.2026 09:30")
	assert.Contains(t, text, "\nfooter")
}

func TestCourseMessage_NoFooter(t *testing.T) {
	course := &domain.Course{Title: "Spin", StartsAt: time.Date(2026, 1, 2, 18, 0, 0, 0, time.UTC)}

	text := courseMessage("*Header*", course, "")

	assert.NotContains(t, text, "\n\n\n")
	assert.Contains(t, text, "02.01.2026 18:00")
}

func TestTelegramNotifier_DisabledWithoutToken(t *testing.T) {
	n, err := NewTelegramNotifier("", newTestLogger(t))
	require.NoError(t, err)

	chatID := int64(42)
	member := &domain.Member{ID: "m1", TelegramChatID: &chatID}
	course := &domain.Course{ID: "c1", Title: "Yoga", StartsAt: time.Now()}

	assert.NotPanics(t, func() {
		n.NotifyBookingCreated(context.Background(), member, course)
		n.NotifyBookingConfirmed(context.Background(), member, course)
		n.NotifyBookingCancelled(context.Background(), member, course)
		n.NotifyAttendanceMarked(context.Background(), member, course)
	})
}
