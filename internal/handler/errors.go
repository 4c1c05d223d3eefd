package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
)

// writeServiceError переводит ошибку сервиса в HTTP ответ. Неожиданные ошибки
// логируются, клиент получает только общее сообщение.
func writeServiceError(ctx context.Context, logger *slog.Logger, w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrUnauthorized):
		utils.WriteError(w, "access denied", http.StatusForbidden)
	case errors.Is(err, entities.ErrInvalidQuantity):
		utils.WriteError(w, "quantity must be positive", http.StatusBadRequest)
	case errors.Is(err, entities.ErrEmptyCart):
		utils.WriteError(w, "cart is empty", http.StatusConflict)
	default:
		logger.ErrorContext(ctx, msg, slog.Any("error", err))
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

// currentUser возвращает пользователя, установленного middleware.Auth.
func currentUser(w http.ResponseWriter, r *http.Request) (entities.User, bool) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
	}
	return user, ok
}
