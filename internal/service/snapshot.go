package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
)

// Snapshot строит заказ из корзины, копируя название и цену каждого товара по значению.
// Последующие изменения каталога на заказ не влияют.
func Snapshot(ctx context.Context, catalog ProductCatalog, cart entities.Cart, user entities.User, orderID string, now time.Time) (entities.Order, error) {
	if cart.IsEmpty() {
		return entities.Order{}, entities.ErrEmptyCart
	}

	lines := make([]entities.OrderLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		product, err := catalog.GetProductByID(ctx, item.ProductID)
		if err != nil {
			return entities.Order{}, fmt.Errorf("snapshot product %s: %w", item.ProductID, err)
		}
		lines = append(lines, entities.OrderLine{
			Quantity: item.Quantity,
			Product: entities.OrderProduct{
				ID:    product.ID,
				Title: product.Title,
				Price: product.Price.Copy(),
			},
		})
	}

	return entities.Order{
		ID:        orderID,
		UserID:    user.ID,
		UserEmail: user.Email,
		Lines:     lines,
		CreatedAt: now.UTC(),
	}, nil
}
