package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

const timeLayout = "02.01.2006 15:04"

type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	logger logger.Logger
}

func NewTelegramNotifier(token string, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, member *domain.Member, course *domain.Course) {
	n.send(ctx, member.TelegramChatID, courseMessage(
		"*Место забронировано!*",
		course,
		"Бронь ожидает подтверждения администратором.",
	))
}

func (n *TelegramNotifier) NotifyBookingConfirmed(ctx context.Context, member *domain.Member, course *domain.Course) {
	n.send(ctx, member.TelegramChatID, courseMessage("*Бронирование подтверждено!*", course, ""))
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, member *domain.Member, course *domain.Course) {
	n.send(ctx, member.TelegramChatID, courseMessage(
		"*Бронирование отменено*",
		course,
		"Место освобождено.",
	))
}

func (n *TelegramNotifier) NotifyAttendanceMarked(ctx context.Context, member *domain.Member, course *domain.Course) {
	n.send(ctx, member.TelegramChatID, courseMessage("*Посещение отмечено*", course, "Спасибо за тренировку!"))
}

func courseMessage(header string, course *domain.Course, footer string) string {
	text := fmt.Sprintf(
		"%s\n\n"+"Занятие: %s\n"+"Начало (время указано в UTC): %s",
		header, course.Title, course.StartsAt.UTC().Format(timeLayout),
	)
	if footer != "" {
		text += "\n" + footer
	}
	return text
}

func (n *TelegramNotifier) send(ctx context.Context, chatID *int64, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if chatID == nil {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", *chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(*chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", *chatID),
			logger.String("error", err.Error()),
		)
	}
}
