package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/events"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type InvoiceArchiver interface {
	ArchiveInvoice(ctx context.Context, orderID string) error
}

type messageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler читает события order.placed и заранее кладет счет заказа в архив.
type kafkaHandler struct {
	dlq      messageWriter
	reader   messageReader
	logger   *slog.Logger
	validate *validator.Validate
	archiver InvoiceArchiver
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, archiver InvoiceArchiver) *kafkaHandler {
	return newKafkaHandler(
		logger,
		kafka.NewReader(kafka.ReaderConfig{
			Brokers: cfg.Brokers,
			GroupID: cfg.GroupID,
			Topic:   cfg.OrdersTopic,
			MaxWait: cfg.ReaderMaxWait,
		}),
		&kafka.Writer{
			Addr:         kafka.TCP(cfg.Brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: cfg.BatchTimeout,
		},
		archiver,
	)
}

func newKafkaHandler(logger *slog.Logger, reader messageReader, dlq messageWriter, archiver InvoiceArchiver) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: validator.New(),
		archiver: archiver,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		start := time.Now()
		// В архивации уже есть retry на чтение заказа
		if err := h.handleOrderPlaced(ctx, m); err != nil {
			eventsFailed.Inc()
			h.logger.Error("failed to handle message", slog.Any("error", err), slog.String("key", string(m.Key)))

			// В библиотеке уже есть retry
			if err := h.WriteToDLQ(ctx, m); err != nil {
				h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
				continue
			}
			eventsDLQ.Inc()
		} else {
			eventsProcessed.Inc()
		}
		eventProcessingDuration.Observe(time.Since(start).Seconds())

		if err := h.reader.CommitMessages(ctx, m); err != nil {
			commitErrors.Inc()
			h.logger.Error("failed to commit message", slog.Any("error", err))
		}
	}
}

func (h *kafkaHandler) handleOrderPlaced(ctx context.Context, m kafka.Message) error {
	var event events.OrderPlaced
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("failed to unmarshal event: %w", err)
	}

	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid event data: %w", err)
	}

	return h.archiver.ArchiveInvoice(ctx, event.OrderID)
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	m.Topic = fmt.Sprintf("%s-dlq", m.Topic)
	return h.dlq.WriteMessages(ctx, m)
}

func (h *kafkaHandler) Close() error {
	if err := h.reader.Close(); err != nil {
		return err
	}
	return h.dlq.Close()
}
