package handler_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/handler"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/handler/mocks"
	"github.com/SergeyBogomolovv/shop-service/internal/middleware"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var placedOrder = entities.Order{
	ID:        "b6f3c1de-3a61-4a4e-9a53-5ad0c0e8f3a1",
	UserID:    "u1",
	UserEmail: "alice@example.com",
	Lines: []entities.OrderLine{
		{Quantity: 3, Product: entities.OrderProduct{ID: "p1", Title: "Coffee", Price: decimal.RequireFromString("7.5")}},
		{Quantity: 1, Product: entities.OrderProduct{ID: "p2", Title: "Tea", Price: decimal.RequireFromString("14")}},
	},
	CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
}

func newOrderHandler(orders handler.OrderService, invoices handler.InvoiceWriter) *handler.OrderHandler {
	return handler.NewOrderHandler(newTestLogger(), orders, invoices, middleware.Auth(testSecret))
}

func TestOrderHandler_Checkout(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
		wantWarning  bool
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Checkout(mock.Anything, alice).
					Return(service.CheckoutResult{Order: placedOrder, CartCleared: true}, nil).Once()
			},
			wantStatus: http.StatusCreated,
			wantBody:   `"total":"36.50"`,
		},
		{
			name: "cart not cleared",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Checkout(mock.Anything, alice).
					Return(service.CheckoutResult{Order: placedOrder, CartCleared: false}, nil).Once()
			},
			wantStatus:  http.StatusCreated,
			wantBody:    `"warning"`,
			wantWarning: true,
		},
		{
			name: "empty cart",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Checkout(mock.Anything, alice).
					Return(service.CheckoutResult{}, entities.ErrEmptyCart).Once()
			},
			wantStatus: http.StatusConflict,
			wantBody:   `"cart is empty"`,
		},
		{
			name: "persistence error",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().Checkout(mock.Anything, alice).
					Return(service.CheckoutResult{}, &entities.PersistenceError{Op: "save order", Err: errors.New("db error")}).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `"internal server error"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(t, newOrderHandler(svc, mocks.NewMockInvoiceWriter(t)), http.MethodPost, "/orders", "", &alice)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)

			if tc.wantStatus == http.StatusCreated {
				var resp handler.CheckoutResponse
				require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, placedOrder.ID, resp.ID)
				require.Len(t, resp.Lines, 2)
				assert.Equal(t, "22.50", resp.Lines[0].Subtotal)
				assert.Equal(t, tc.wantWarning, resp.Warning != "")
			}
		})
	}
}

func TestOrderHandler_GetOrder(t *testing.T) {
	testCases := []struct {
		name         string
		mockBehavior func(svc *mocks.MockOrderService)
		wantStatus   int
		wantBody     string
	}{
		{
			name: "success",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetUserOrder(mock.Anything, alice, placedOrder.ID).Return(placedOrder, nil).Once()
			},
			wantStatus: http.StatusOK,
			wantBody:   `"id":"` + placedOrder.ID + `"`,
		},
		{
			name: "foreign order",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetUserOrder(mock.Anything, alice, placedOrder.ID).Return(entities.Order{}, entities.ErrUnauthorized).Once()
			},
			wantStatus: http.StatusForbidden,
			wantBody:   `"access denied"`,
		},
		{
			name: "not found",
			mockBehavior: func(svc *mocks.MockOrderService) {
				svc.EXPECT().GetUserOrder(mock.Anything, alice, placedOrder.ID).Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `"order not found"`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockOrderService(t)
			tc.mockBehavior(svc)

			rr := serve(t, newOrderHandler(svc, mocks.NewMockInvoiceWriter(t)), http.MethodGet, "/orders/"+placedOrder.ID, "", &alice)

			assert.Equal(t, tc.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tc.wantBody)
		})
	}
}

func TestOrderHandler_ListOrders(t *testing.T) {
	svc := mocks.NewMockOrderService(t)
	svc.EXPECT().ListOrders(mock.Anything, "u1").Return([]entities.Order{placedOrder}, nil).Once()

	rr := serve(t, newOrderHandler(svc, mocks.NewMockInvoiceWriter(t)), http.MethodGet, "/orders", "", &alice)
	require.Equal(t, http.StatusOK, rr.Code)

	var got []handler.Order
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "36.50", got[0].Total)
}

func TestOrderHandler_RequiresToken(t *testing.T) {
	h := newOrderHandler(mocks.NewMockOrderService(t), mocks.NewMockInvoiceWriter(t))

	for _, path := range []string{"/orders", "/orders/o1", "/orders/o1/invoice"} {
		rr := serve(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rr.Code, path)
	}
}
