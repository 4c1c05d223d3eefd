package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type CartService interface {
	AddItem(ctx context.Context, userID, productID string, quantity int) error
	RemoveItem(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
	Items(ctx context.Context, userID string) ([]entities.CartItem, error)
}

type CartHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	auth     func(http.Handler) http.Handler
	svc      CartService
}

func NewCartHandler(logger *slog.Logger, svc CartService, auth func(http.Handler) http.Handler) *CartHandler {
	return &CartHandler{
		logger:   logger.With(slog.String("handler", "cart")),
		validate: validator.New(),
		auth:     auth,
		svc:      svc,
	}
}

func (h *CartHandler) Init(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/cart", h.GetCart)
		r.Delete("/cart", h.ClearCart)
		r.Post("/cart/items", h.AddItem)
		r.Delete("/cart/items/{product_id}", h.RemoveItem)
	})
}

// GetCart возвращает корзину текущего пользователя.
// @Summary      Корзина
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Cart
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [get]
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	items, err := h.svc.Items(ctx, user.ID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get cart")
		return
	}

	utils.WriteJSON(w, CartEntityToJSON(items), http.StatusOK)
}

// AddItem добавляет товар в корзину или увеличивает его количество.
// @Summary      Добавить товар в корзину
// @Tags         cart
// @Accept       json
// @Security     BearerAuth
// @Param        request  body  AddCartItemRequest  true  "Товар и количество"
// @Success      204
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items [post]
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	var req AddCartItemRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := h.svc.AddItem(ctx, user.ID, req.ProductID, quantity); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to add item to cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveItem удаляет товар из корзины.
// @Summary      Удалить товар из корзины
// @Tags         cart
// @Security     BearerAuth
// @Param        product_id  path  string  true  "Идентификатор товара"
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart/items/{product_id} [delete]
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.RemoveItem(ctx, user.ID, chi.URLParam(r, "product_id")); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to remove item from cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearCart очищает корзину.
// @Summary      Очистить корзину
// @Tags         cart
// @Security     BearerAuth
// @Success      204
// @Failure      401  {object}  utils.ErrorResponse "Не авторизован"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /cart [delete]
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	user, ok := currentUser(w, r)
	if !ok {
		return
	}

	if err := h.svc.Clear(ctx, user.ID); err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to clear cart")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
