package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/keymutex"
	"github.com/SergeyBogomolovv/shop-service/pkg/trm"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

type OrderRepo interface {
	SaveOrder(ctx context.Context, o entities.Order) error
	SaveOrderLines(ctx context.Context, orderID string, lines []entities.OrderLine) error
	GetOrderByID(ctx context.Context, orderID string) (entities.Order, error)
	ListOrdersByUser(ctx context.Context, userID string) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
}

type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte)
	Delete(key string)
}

type EventPublisher interface {
	PublishOrderPlaced(ctx context.Context, order entities.Order) error
}

// CheckoutResult результат оформления. CartCleared=false означает, что заказ сохранен,
// но корзину очистить не удалось.
type CheckoutResult struct {
	Order       entities.Order
	CartCleared bool
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	repo      OrderRepo
	catalog   ProductCatalog
	carts     CartStore
	locks     *keymutex.KeyMutex
	cache     Cache
	publisher EventPublisher
	group     singleflight.Group

	now   func() time.Time
	newID func() string
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	repo OrderRepo,
	catalog ProductCatalog,
	carts CartStore,
	locks *keymutex.KeyMutex,
	cache Cache,
	publisher EventPublisher,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		repo:      repo,
		catalog:   catalog,
		carts:     carts,
		locks:     locks,
		cache:     cache,
		publisher: publisher,
		now:       time.Now,
		newID:     uuid.NewString,
	}
}

// Checkout оформляет заказ из корзины пользователя. Корзина очищается только после
// успешного сохранения заказа; при ошибке сохранения корзина не меняется.
func (s *orderService) Checkout(ctx context.Context, user entities.User) (CheckoutResult, error) {
	unlock := s.locks.Lock(user.ID)
	defer unlock()

	cart, err := s.carts.GetCart(ctx, user.ID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("failed to get cart: %w", err)
	}
	if cart.IsEmpty() {
		return CheckoutResult{}, entities.ErrEmptyCart
	}

	order, err := Snapshot(ctx, s.catalog, cart, user, s.newID(), s.now())
	if err != nil {
		return CheckoutResult{}, err
	}

	if err := s.saveOrder(ctx, order); err != nil {
		return CheckoutResult{}, &entities.PersistenceError{Op: "save order", Err: err}
	}
	s.logger.Info("order placed", "order_id", order.ID, "user_id", user.ID, "lines", len(order.Lines))

	// Заказ уже сохранен: отмена запроса не должна оставить полную корзину.
	ctx = context.WithoutCancel(ctx)

	res := CheckoutResult{Order: order, CartCleared: true}
	cart.Clear()
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		s.logger.Warn("order placed but cart was not cleared", "order_id", order.ID, "user_id", user.ID, slog.Any("error", err))
		res.CartCleared = false
	}

	s.cacheOrder(order)

	if err := s.publisher.PublishOrderPlaced(ctx, order); err != nil {
		s.logger.Warn("failed to publish order event", "order_id", order.ID, slog.Any("error", err))
	}

	return res, nil
}

func (s *orderService) saveOrder(ctx context.Context, order entities.Order) error {
	fn := func() error {
		return s.txManager.Do(ctx, func(ctx context.Context) error {
			if err := s.repo.SaveOrder(ctx, order); err != nil {
				return fmt.Errorf("failed to save order: %w", err)
			}
			if err := s.repo.SaveOrderLines(ctx, order.ID, order.Lines); err != nil {
				return fmt.Errorf("failed to save order lines: %w", err)
			}

			s.logger.Debug("order saved", "order_id", order.ID)
			return nil
		})
	}
	return utils.Retry(retryConfig, fn)
}

// GetOrderByID возвращает заказ из кэша или хранилища. Заказы неизменяемы,
// поэтому кэш не инвалидируется. Параллельные промахи по одному id объединяются.
func (s *orderService) GetOrderByID(ctx context.Context, orderID string) (entities.Order, error) {
	if data, ok := s.cache.Get(orderID); ok {
		var order entities.Order
		if err := order.Unmarshal(data); err == nil {
			return order, nil
		}
		// Битая запись вытесняется, заказ перечитывается из хранилища.
		s.logger.Error("failed to unmarshal cached order", "order_id", orderID)
		s.cache.Delete(orderID)
	}

	// Результат общий для всех ожидающих, поэтому отмена первого запроса его не прерывает.
	sharedCtx := context.WithoutCancel(ctx)
	v, err, _ := s.group.Do(orderID, func() (any, error) {
		var order entities.Order
		fn := func() error {
			var err error
			order, err = s.repo.GetOrderByID(sharedCtx, orderID)
			return err
		}
		if err := utils.Retry(retryConfig, fn, entities.ErrOrderNotFound); err != nil {
			return entities.Order{}, err
		}
		s.cacheOrder(order)
		return order, nil
	})
	if err != nil {
		return entities.Order{}, err
	}
	return v.(entities.Order), nil
}

// GetUserOrder возвращает заказ, если он принадлежит пользователю.
func (s *orderService) GetUserOrder(ctx context.Context, user entities.User, orderID string) (entities.Order, error) {
	order, err := s.GetOrderByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if err := Authorize(order, user.ID); err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, userID string) ([]entities.Order, error) {
	var orders []entities.Order
	fn := func() error {
		var err error
		orders, err = s.repo.ListOrdersByUser(ctx, userID)
		return err
	}
	if err := utils.Retry(retryConfig, fn); err != nil {
		return nil, err
	}
	return orders, nil
}

// WarmUpCache загружает в кэш count последних заказов.
func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	orders, err := s.repo.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, order := range orders {
		s.cacheOrder(order)
	}
	s.logger.Info("order cache warmed up", "count", len(orders))
	return nil
}

func (s *orderService) cacheOrder(order entities.Order) {
	data, err := order.Marshal()
	if err != nil {
		s.logger.Error("failed to marshal order", "order_id", order.ID, slog.Any("error", err))
		return
	}
	s.cache.Set(order.ID, data)
}
