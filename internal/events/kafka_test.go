package events

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	err      error
	messages []kafka.Message
	closed   bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if f.err != nil {
		return f.err
	}
	f.messages = append(f.messages, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func testOrder() entities.Order {
	return entities.Order{
		ID:        "o1",
		UserID:    "u1",
		UserEmail: "u1@example.com",
		Lines: []entities.OrderLine{
			{Quantity: 2, Product: entities.OrderProduct{ID: "p1", Title: "Book", Price: decimal.RequireFromString("10")}},
			{Quantity: 3, Product: entities.OrderProduct{ID: "p2", Title: "Pen", Price: decimal.RequireFromString("5.5")}},
		},
	}
}

func TestKafkaPublisher_PublishOrderPlaced(t *testing.T) {
	w := &fakeWriter{}
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	require.NoError(t, p.PublishOrderPlaced(context.Background(), testOrder()))
	require.Len(t, w.messages, 1)

	msg := w.messages[0]
	assert.Equal(t, "o1", string(msg.Key))

	var event OrderPlaced
	require.NoError(t, json.Unmarshal(msg.Value, &event))
	assert.Equal(t, EventOrderPlaced, event.Event)
	assert.Equal(t, "36.50", event.Total)
	assert.Equal(t, "5.50", event.Lines[1].Price)

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestKafkaPublisher_BreakerOpens(t *testing.T) {
	brokerErr := errors.New("broker down")
	w := &fakeWriter{err: brokerErr}
	p := newKafkaPublisher(slog.New(slog.NewTextHandler(io.Discard, nil)), w)

	for range 5 {
		assert.ErrorIs(t, p.PublishOrderPlaced(context.Background(), testOrder()), brokerErr)
	}

	err := p.PublishOrderPlaced(context.Background(), testOrder())
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
}
