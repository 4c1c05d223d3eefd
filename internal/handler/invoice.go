package handler

import (
	"errors"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/invoice"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
)

// GetInvoice отдает PDF счет заказа, одновременно сохраняя его в архив.
// @Summary      Счет по заказу
// @Description  Генерирует PDF потоково; документ пишется в архив и в ответ одновременно
// @Tags         orders
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        order_id  path  string  true  "Идентификатор заказа"
// @Success      200  {file}    file
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      403  {object}  utils.ErrorResponse "Заказ другого пользователя"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id}/invoice [get]
func (h *OrderHandler) GetInvoice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.validate.Var(orderID, "required,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	start := time.Now()
	sink := newResponseSink(w, invoice.FileName(orderID))
	total, err := h.invoices.WriteInvoice(ctx, user, orderID, sink)
	invoiceDuration.Observe(time.Since(start).Seconds())

	for _, re := range invoice.SinkErrors(err) {
		invoiceSinkFailures.WithLabelValues(string(re.Sink)).Inc()
	}
	invoicesTotal.WithLabelValues(invoiceResult(err, sink.started)).Inc()

	switch {
	case err == nil:
		h.logger.DebugContext(ctx, "invoice sent", "order_id", orderID, "total", total.StringFixed(2))
	case sink.started:
		// Заголовки уже отправлены, статус изменить нельзя.
		h.logger.ErrorContext(ctx, "invoice delivered with errors", "order_id", orderID, slog.Any("error", err))
	default:
		writeServiceError(ctx, h.logger, w, err, "failed to write invoice")
	}
}

func invoiceResult(err error, started bool) string {
	switch {
	case err == nil:
		return "ok"
	case started:
		return "sink_error"
	case errors.Is(err, entities.ErrUnauthorized):
		return "denied"
	case errors.Is(err, entities.ErrOrderNotFound):
		return "not_found"
	default:
		return "error"
	}
}

// responseSink отправляет заголовки PDF при первой записи, чтобы до нее
// можно было ответить ошибкой в JSON.
type responseSink struct {
	w        http.ResponseWriter
	filename string
	started  bool
}

func newResponseSink(w http.ResponseWriter, filename string) *responseSink {
	return &responseSink{w: w, filename: filename}
}

func (s *responseSink) Write(p []byte) (int, error) {
	if !s.started {
		s.started = true
		h := s.w.Header()
		h.Set("Content-Type", "application/pdf")
		h.Set("Content-Disposition", mime.FormatMediaType("inline", map[string]string{"filename": s.filename}))
		h.Set("Cache-Control", "private, no-store")
		s.w.WriteHeader(http.StatusOK)
	}
	return s.w.Write(p)
}

func (s *responseSink) Close() error {
	if !s.started {
		return nil
	}
	err := http.NewResponseController(s.w).Flush()
	if errors.Is(err, http.ErrNotSupported) {
		return nil
	}
	return err
}
