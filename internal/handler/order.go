package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/invoice"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	Checkout(ctx context.Context, user entities.User) (service.CheckoutResult, error)
	ListOrders(ctx context.Context, userID string) ([]entities.Order, error)
	GetUserOrder(ctx context.Context, user entities.User, orderID string) (entities.Order, error)
}

type InvoiceWriter interface {
	WriteInvoice(ctx context.Context, user entities.User, orderID string, response invoice.Sink) (decimal.Decimal, error)
}

type OrderHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     func(http.Handler) http.Handler
	orders   OrderService
	invoices InvoiceWriter
}

func NewOrderHandler(logger *slog.Logger, orders OrderService, invoices InvoiceWriter, auth func(http.Handler) http.Handler) *OrderHandler {
	return &OrderHandler{
		logger:   logger.With(slog.String("handler", "order")),
		validate: validator.New(),
		auth:     auth,
		orders:   orders,
		invoices: invoices,
	}
}

func (h *OrderHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/orders", h.Checkout)
		r.Get("/orders", h.ListOrders)
		r.Get("/orders/{order_id}", h.GetOrder)
		r.Get("/orders/{order_id}/invoice", h.GetInvoice)
	})
}

const cartNotClearedWarning = "order placed, but the cart could not be cleared"

// Checkout оформляет заказ из корзины.
// @Summary      Оформить заказ
// @Description  Сохраняет снимок корзины как заказ и очищает корзину
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      201  {object}  CheckoutResponse
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Товар из корзины не найден"
// @Failure      409  {object}  utils.ErrorResponse "Корзина пуста"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [post]
func (h *OrderHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	res, err := h.orders.Checkout(ctx, user)
	checkoutsTotal.WithLabelValues(checkoutResult(err)).Inc()
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to place order")
		return
	}

	resp := CheckoutResponse{Order: OrderEntityToJSON(res.Order)}
	if !res.CartCleared {
		cartClearFailures.Inc()
		resp.Warning = cartNotClearedWarning
	}

	utils.WriteJSON(w, resp, http.StatusCreated)
}

func checkoutResult(err error) string {
	var perr *entities.PersistenceError
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, entities.ErrEmptyCart):
		return "empty_cart"
	case errors.Is(err, entities.ErrProductNotFound):
		return "product_not_found"
	case errors.As(err, &perr):
		return "persistence_error"
	default:
		return "error"
	}
}

// ListOrders возвращает заказы текущего пользователя, новые первыми.
// @Summary      История заказов
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   Order
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	orders, err := h.orders.ListOrders(ctx, user.ID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list orders")
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetOrder возвращает заказ текущего пользователя.
// @Summary      Получить заказ
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        order_id  path      string  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      403  {object}  utils.ErrorResponse "Заказ другого пользователя"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /orders/{order_id} [get]
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
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

	order, err := h.orders.GetUserOrder(ctx, user, orderID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get order")
		return
	}

	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}
