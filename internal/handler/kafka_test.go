package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/events"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// fakeReader отдает сообщения по очереди, затем io.EOF.
type fakeReader struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed []kafka.Message
	commitErr error
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if err := ctx.Err(); err != nil {
		return kafka.Message{}, err
	}
	if len(r.messages) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.messages[0]
	r.messages = r.messages[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return r.commitErr
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	messages []kafka.Message
	err      error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func orderPlacedMessage(t *testing.T, orderID string) kafka.Message {
	t.Helper()
	value, err := json.Marshal(events.NewOrderPlaced(entities.Order{
		ID:     orderID,
		UserID: "u1",
		Lines: []entities.OrderLine{
			{Quantity: 1, Product: entities.OrderProduct{ID: "p1", Title: "Coffee", Price: decimal.RequireFromString("7.5")}},
		},
		CreatedAt: time.Now(),
	}))
	require.NoError(t, err)
	return kafka.Message{Topic: "orders.placed", Key: []byte(orderID), Value: value}
}

func TestKafkaHandler_Consume(t *testing.T) {
	const (
		okID     = "b6f3c1de-3a61-4a4e-9a53-5ad0c0e8f3a1"
		failedID = "0c0e8f3a-3a61-4a4e-9a53-5ad0b6f3c1de"
	)

	reader := &fakeReader{messages: []kafka.Message{
		orderPlacedMessage(t, okID),
		{Topic: "orders.placed", Value: []byte("{broken")},
		orderPlacedMessage(t, "not-a-uuid"),
		orderPlacedMessage(t, failedID),
	}}
	dlq := &fakeWriter{}
	archiver := mocks.NewMockInvoiceArchiver(t)
	archiver.EXPECT().ArchiveInvoice(mock.Anything, okID).Return(nil).Once()
	archiver.EXPECT().ArchiveInvoice(mock.Anything, failedID).Return(errors.New("disk full")).Once()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newKafkaHandler(logger, reader, dlq, archiver)

	h.Consume(context.Background())

	assert.Len(t, reader.committed, 4)
	require.Len(t, dlq.messages, 3)
	for _, m := range dlq.messages {
		assert.Equal(t, "orders.placed-dlq", m.Topic)
	}
}

func TestKafkaHandler_NotCommittedWhenDLQFails(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{{Topic: "orders.placed", Value: []byte("{broken")}}}
	dlq := &fakeWriter{err: errors.New("kafka down")}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newKafkaHandler(logger, reader, dlq, mocks.NewMockInvoiceArchiver(t))

	h.Consume(context.Background())

	assert.Empty(t, reader.committed)
}

func TestKafkaHandler_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	reader := &fakeReader{messages: []kafka.Message{orderPlacedMessage(t, "b6f3c1de-3a61-4a4e-9a53-5ad0c0e8f3a1")}}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := newKafkaHandler(logger, reader, &fakeWriter{}, mocks.NewMockInvoiceArchiver(t))

	done := make(chan struct{})
	go func() {
		h.Consume(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("consumer did not stop")
	}
	assert.Empty(t, reader.committed)
}
