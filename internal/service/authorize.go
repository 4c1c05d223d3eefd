package service

import "github.com/SergeyBogomolovv/shop-service/internal/entities"

// Authorize разрешает доступ к заказу только его владельцу.
func Authorize(order entities.Order, userID string) error {
	if userID == "" || !order.OwnedBy(userID) {
		return entities.ErrUnauthorized
	}
	return nil
}
