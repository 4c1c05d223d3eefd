package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/config"
	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	"github.com/segmentio/kafka-go"
	"github.com/sony/gobreaker/v2"
)

const EventOrderPlaced = "order.placed"

// OrderPlaced событие о сохраненном заказе. Публикуется после коммита транзакции.
type OrderPlaced struct {
	Event     string      `json:"event" validate:"eq=order.placed"`
	OrderID   string      `json:"order_id" validate:"required,uuid"`
	UserID    string      `json:"user_id" validate:"required"`
	UserEmail string      `json:"user_email"`
	Total     string      `json:"total"`
	Lines     []OrderLine `json:"lines"`
	CreatedAt time.Time   `json:"created_at"`
}

type OrderLine struct {
	ProductID string `json:"product_id"`
	Title     string `json:"title"`
	Price     string `json:"price"`
	Quantity  int    `json:"quantity"`
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type kafkaPublisher struct {
	logger  *slog.Logger
	writer  messageWriter
	breaker *gobreaker.CircuitBreaker[struct{}]
}

func NewKafkaPublisher(logger *slog.Logger, cfg config.Kafka) *kafkaPublisher {
	return newKafkaPublisher(logger, &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.OrdersTopic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           cfg.BatchTimeout,
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	})
}

func newKafkaPublisher(logger *slog.Logger, writer messageWriter) *kafkaPublisher {
	logger = logger.With(slog.String("publisher", "kafka"))
	return &kafkaPublisher{
		logger: logger,
		writer: writer,
		breaker: gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
			Name:        "kafka-orders",
			MaxRequests: 1,
			Timeout:     30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= 5
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker state changed",
					slog.String("breaker", name),
					slog.String("from", from.String()),
					slog.String("to", to.String()),
				)
			},
		}),
	}
}

// PublishOrderPlaced отправляет событие о новом заказе. Ключ сообщения - id заказа.
// При открытом предохранителе возвращает gobreaker.ErrOpenState без обращения к брокеру.
func (p *kafkaPublisher) PublishOrderPlaced(ctx context.Context, order entities.Order) error {
	value, err := json.Marshal(NewOrderPlaced(order))
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(order.ID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event", Value: []byte(EventOrderPlaced)},
		},
	}

	_, err = p.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, p.writer.WriteMessages(ctx, msg)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return fmt.Errorf("kafka unavailable: %w", err)
	}
	if err != nil {
		return fmt.Errorf("failed to write event: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func NewOrderPlaced(order entities.Order) OrderPlaced {
	lines := make([]OrderLine, 0, len(order.Lines))
	for _, l := range order.Lines {
		lines = append(lines, OrderLine{
			ProductID: l.Product.ID,
			Title:     l.Product.Title,
			Price:     l.Product.Price.StringFixed(2),
			Quantity:  l.Quantity,
		})
	}
	return OrderPlaced{
		Event:     EventOrderPlaced,
		OrderID:   order.ID,
		UserID:    order.UserID,
		UserEmail: order.UserEmail,
		Total:     order.Total().StringFixed(2),
		Lines:     lines,
		CreatedAt: order.CreatedAt,
	}
}
