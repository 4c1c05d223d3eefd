package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/invoice"

	"github.com/shopspring/decimal"
)

type OrderReader interface {
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
}

type InvoiceArchive interface {
	Create(ctx context.Context, orderID string) (invoice.Sink, error)
}

type InvoiceRenderer interface {
	Render(order entities.Order, file, response invoice.Sink) (decimal.Decimal, error)
}

type invoiceService struct {
	logger   *slog.Logger
	orders   OrderReader
	archive  InvoiceArchive
	renderer InvoiceRenderer
}

func NewInvoiceService(logger *slog.Logger, orders OrderReader, archive InvoiceArchive, renderer InvoiceRenderer) *invoiceService {
	return &invoiceService{
		logger:   logger.With(slog.String("service", "invoice")),
		orders:   orders,
		archive:  archive,
		renderer: renderer,
	}
}

// WriteInvoice проверяет доступ к заказу и пишет его счет в архив и в response.
// Если доступ запрещен или заказ не найден, ни один приемник не открывается и
// в response ничего не пишется. Ошибка архива не мешает отдать документ клиенту.
func (s *invoiceService) WriteInvoice(ctx context.Context, user entities.User, orderID string, response invoice.Sink) (decimal.Decimal, error) {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return decimal.Zero, err
	}
	if err := Authorize(order, user.ID); err != nil {
		s.logger.Warn("invoice access denied", "order_id", orderID, "user_id", user.ID)
		return decimal.Zero, err
	}

	file, err := s.archive.Create(ctx, order.ID)
	if err != nil {
		s.logger.Error("failed to open invoice archive", "order_id", order.ID, slog.Any("error", err))
		file = invoice.FailedSink(err)
	}

	total, err := s.renderer.Render(order, file, response)
	if err != nil {
		var renderErr *invoice.RenderError
		if errors.As(err, &renderErr) {
			s.logger.Error("invoice sink failed", "order_id", order.ID, "sink", renderErr.Sink, slog.Any("error", err))
		} else {
			s.logger.Error("failed to render invoice", "order_id", order.ID, slog.Any("error", err))
		}
		return total, err
	}

	s.logger.Debug("invoice written", "order_id", order.ID, "total", total.StringFixed(2))
	return total, nil
}

// ArchiveInvoice сохраняет счет заказа только в архив. Используется при обработке
// события о новом заказе, поэтому проверка владельца не нужна.
func (s *invoiceService) ArchiveInvoice(ctx context.Context, orderID string) error {
	order, err := s.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	file, err := s.archive.Create(ctx, order.ID)
	if err != nil {
		return fmt.Errorf("failed to open invoice archive: %w", err)
	}

	if _, err := s.renderer.Render(order, file, invoice.Discard()); err != nil {
		return err
	}

	s.logger.Debug("invoice archived", "order_id", order.ID)
	return nil
}
