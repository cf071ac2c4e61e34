package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/the-CCClouds/gym-system-new-sub001/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
	deadline bool
}

type fakeChannel struct {
	sent   []published
	err    error
	closed bool
}

func (f *fakeChannel) PublishWithContext(ctx context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	_, hasDeadline := ctx.Deadline()
	f.sent = append(f.sent, published{exchange: exchange, key: key, msg: msg, deadline: hasDeadline})
	return nil
}

func (f *fakeChannel) Close() error {
	f.closed = true
	return nil
}

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	return log
}

func TestRabbitPublisher_Publish(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch, exchange: "gym.bookings", timeout: time.Second, logger: newTestLogger(t)}

	at := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	event := domain.BookingEvent{
		Type:       domain.BookingEventConfirmed,
		BookingID:  "b1",
		MemberID:   "m1",
		CourseID:   "c1",
		Status:     domain.BookingStatusConfirmed,
		OccurredAt: at,
	}

	require.NoError(t, p.Publish(context.Background(), event))
	require.Len(t, ch.sent, 1)

	sent := ch.sent[0]
	assert.Equal(t, "gym.bookings", sent.exchange)
	assert.Equal(t, "booking.confirmed", sent.key)
	assert.Equal(t, "application/json", sent.msg.ContentType)
	assert.Equal(t, uint8(amqp.Persistent), sent.msg.DeliveryMode)
	assert.Equal(t, "b1:confirmed", sent.msg.MessageId)
	assert.True(t, sent.deadline)

	var decoded domain.BookingEvent
	require.NoError(t, json.Unmarshal(sent.msg.Body, &decoded))
	assert.Equal(t, event.BookingID, decoded.BookingID)
	assert.Equal(t, event.Type, decoded.Type)
	assert.True(t, at.Equal(decoded.OccurredAt))
}

func TestRabbitPublisher_PublishError(t *testing.T) {
	brokerErr := errors.New("channel closed")
	p := &RabbitPublisher{ch: &fakeChannel{err: brokerErr}, exchange: "x", logger: newTestLogger(t)}

	err := p.Publish(context.Background(), domain.BookingEvent{Type: domain.BookingEventCreated})

	require.Error(t, err)
	assert.ErrorIs(t, err, brokerErr)
}

func TestRabbitPublisher_Close(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitPublisher{ch: ch}

	require.NoError(t, p.Close())
	assert.True(t, ch.closed)
}

func TestNopPublisher(t *testing.T) {
	var p NopPublisher
	assert.NoError(t, p.Publish(context.Background(), domain.BookingEvent{}))
	assert.NoError(t, p.Close())
}
