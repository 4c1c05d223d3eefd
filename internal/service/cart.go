package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/keymutex"
)

type CartStore interface {
	GetCart(ctx context.Context, userID string) (entities.Cart, error)
	SaveCart(ctx context.Context, cart entities.Cart) error
}

type cartService struct {
	logger  *slog.Logger
	carts   CartStore
	catalog ProductCatalog
	locks   *keymutex.KeyMutex
}

// NewCartService создает сервис корзины. locks должен быть общим с сервисом заказов,
// чтобы изменение корзины не пересекалось с оформлением заказа того же пользователя.
func NewCartService(logger *slog.Logger, carts CartStore, catalog ProductCatalog, locks *keymutex.KeyMutex) *cartService {
	return &cartService{
		logger:  logger.With(slog.String("service", "cart")),
		carts:   carts,
		catalog: catalog,
		locks:   locks,
	}
}

func (s *cartService) AddItem(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return entities.ErrInvalidQuantity
	}

	if _, err := s.catalog.GetProductByID(ctx, productID); err != nil {
		return err
	}

	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get cart: %w", err)
	}
	if err := cart.Add(productID, quantity); err != nil {
		return err
	}
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	s.logger.Debug("item added to cart", "user_id", userID, "product_id", productID, "quantity", quantity)
	return nil
}

func (s *cartService) RemoveItem(ctx context.Context, userID, productID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to get cart: %w", err)
	}
	cart.Remove(productID)
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

func (s *cartService) Clear(ctx context.Context, userID string) error {
	unlock := s.locks.Lock(userID)
	defer unlock()

	if err := s.carts.SaveCart(ctx, entities.Cart{UserID: userID, Items: []entities.CartLine{}}); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// Items возвращает строки корзины с актуальными данными товаров.
// Строки с удаленными из каталога товарами пропускаются.
func (s *cartService) Items(ctx context.Context, userID string) ([]entities.CartItem, error) {
	cart, err := s.carts.GetCart(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cart: %w", err)
	}

	items := make([]entities.CartItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		product, err := s.catalog.GetProductByID(ctx, line.ProductID)
		if errors.Is(err, entities.ErrProductNotFound) {
			s.logger.Debug("cart references missing product", "user_id", userID, "product_id", line.ProductID)
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, entities.CartItem{Product: product, Quantity: line.Quantity})
	}
	return items, nil
}
