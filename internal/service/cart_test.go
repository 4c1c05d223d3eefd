package service_test

import (
	"context"
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/SergeyBogomolovv/shop-service/pkg/keymutex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddItem(t *testing.T) {
	type MockBehavior func(carts *mocks.MockCartStore, catalog *mocks.MockProductCatalog)

	redisErr := errors.New("redis down")

	testCases := []struct {
		name         string
		productID    string
		quantity     int
		mockBehavior MockBehavior
		wantErr      error
	}{
		{
			name:      "new line",
			productID: "p1",
			quantity:  2,
			mockBehavior: func(carts *mocks.MockCartStore, catalog *mocks.MockProductCatalog) {
				catalog.EXPECT().GetProductByID(mock.Anything, "p1").Return(product("p1", "Coffee", "7.50"), nil).Once()
				carts.EXPECT().GetCart(mock.Anything, "u1").Return(entities.Cart{UserID: "u1"}, nil).Once()
				carts.EXPECT().SaveCart(mock.Anything, entities.Cart{
					UserID: "u1",
					Items:  []entities.CartLine{{ProductID: "p1", Quantity: 2}},
				}).Return(nil).Once()
			},
		},
		{
			name:      "merges existing line",
			productID: "p1",
			quantity:  1,
			mockBehavior: func(carts *mocks.MockCartStore, catalog *mocks.MockProductCatalog) {
				catalog.EXPECT().GetProductByID(mock.Anything, "p1").Return(product("p1", "Coffee", "7.50"), nil).Once()
				carts.EXPECT().GetCart(mock.Anything, "u1").Return(entities.Cart{
					UserID: "u1",
					Items:  []entities.CartLine{{ProductID: "p0", Quantity: 1}, {ProductID: "p1", Quantity: 2}},
				}, nil).Once()
				carts.EXPECT().SaveCart(mock.Anything, entities.Cart{
					UserID: "u1",
					Items:  []entities.CartLine{{ProductID: "p0", Quantity: 1}, {ProductID: "p1", Quantity: 3}},
				}).Return(nil).Once()
			},
		},
		{
			name:         "zero quantity",
			productID:    "p1",
			quantity:     0,
			mockBehavior: func(_ *mocks.MockCartStore, _ *mocks.MockProductCatalog) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:         "negative quantity",
			productID:    "p1",
			quantity:     -3,
			mockBehavior: func(_ *mocks.MockCartStore, _ *mocks.MockProductCatalog) {},
			wantErr:      entities.ErrInvalidQuantity,
		},
		{
			name:      "unknown product",
			productID: "nope",
			quantity:  1,
			mockBehavior: func(_ *mocks.MockCartStore, catalog *mocks.MockProductCatalog) {
				catalog.EXPECT().GetProductByID(mock.Anything, "nope").Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:      "save fails",
			productID: "p1",
			quantity:  1,
			mockBehavior: func(carts *mocks.MockCartStore, catalog *mocks.MockProductCatalog) {
				catalog.EXPECT().GetProductByID(mock.Anything, "p1").Return(product("p1", "Coffee", "7.50"), nil).Once()
				carts.EXPECT().GetCart(mock.Anything, "u1").Return(entities.Cart{UserID: "u1"}, nil).Once()
				carts.EXPECT().SaveCart(mock.Anything, mock.Anything).Return(redisErr).Once()
			},
			wantErr: redisErr,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			carts := mocks.NewMockCartStore(t)
			catalog := mocks.NewMockProductCatalog(t)
			tc.mockBehavior(carts, catalog)

			svc := service.NewCartService(newTestLogger(), carts, catalog, keymutex.New())

			err := svc.AddItem(context.Background(), "u1", tc.productID, tc.quantity)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCartService_RemoveAndClear(t *testing.T) {
	carts := mocks.NewMockCartStore(t)
	catalog := mocks.NewMockProductCatalog(t)

	carts.EXPECT().GetCart(mock.Anything, "u1").Return(entities.Cart{
		UserID: "u1",
		Items:  []entities.CartLine{{ProductID: "p1", Quantity: 1}, {ProductID: "p2", Quantity: 4}},
	}, nil).Once()
	carts.EXPECT().SaveCart(mock.Anything, entities.Cart{
		UserID: "u1",
		Items:  []entities.CartLine{{ProductID: "p2", Quantity: 4}},
	}).Return(nil).Once()
	carts.EXPECT().SaveCart(mock.Anything, mock.MatchedBy(func(c entities.Cart) bool {
		return c.UserID == "u1" && c.IsEmpty()
	})).Return(nil).Once()

	svc := service.NewCartService(newTestLogger(), carts, catalog, keymutex.New())

	require.NoError(t, svc.RemoveItem(context.Background(), "u1", "p1"))
	require.NoError(t, svc.Clear(context.Background(), "u1"))
}

func TestCartService_ItemsSkipsMissingProducts(t *testing.T) {
	carts := mocks.NewMockCartStore(t)
	catalog := newMemCatalog(product("p1", "Coffee", "7.50"))

	carts.EXPECT().GetCart(mock.Anything, "u1").Return(entities.Cart{
		UserID: "u1",
		Items:  []entities.CartLine{{ProductID: "gone", Quantity: 1}, {ProductID: "p1", Quantity: 2}},
	}, nil).Once()

	svc := service.NewCartService(newTestLogger(), carts, catalog, keymutex.New())

	items, err := svc.Items(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Coffee", items[0].Product.Title)
	assert.Equal(t, 2, items[0].Quantity)
}

// memCartStore хранилище корзин без сериализации read-modify-write.
type memCartStore struct {
	mu    sync.Mutex
	carts map[string]entities.Cart
}

func (s *memCartStore) GetCart(_ context.Context, userID string) (entities.Cart, error) {
	s.mu.Lock()
	cart, ok := s.carts[userID]
	s.mu.Unlock()
	runtime.Gosched()
	if !ok {
		return entities.Cart{UserID: userID}, nil
	}
	cart.Items = append([]entities.CartLine(nil), cart.Items...)
	return cart, nil
}

func (s *memCartStore) SaveCart(_ context.Context, cart entities.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.UserID] = cart
	return nil
}

func TestCartService_ConcurrentAddsAreSerialized(t *testing.T) {
	store := &memCartStore{carts: make(map[string]entities.Cart)}
	catalog := newMemCatalog(product("p1", "Coffee", "7.50"))
	svc := service.NewCartService(newTestLogger(), store, catalog, keymutex.New())

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Go(func() {
			assert.NoError(t, svc.AddItem(context.Background(), "u1", "p1", 1))
		})
	}
	wg.Wait()

	cart, err := store.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, n, cart.Items[0].Quantity)
}
