package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/internal/invoice"
	"github.com/SergeyBogomolovv/shop-service/internal/service"
	mocks "github.com/SergeyBogomolovv/shop-service/internal/service/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var invoiceOrder = entities.Order{
	ID:     "o1",
	UserID: "u1",
	Lines: []entities.OrderLine{
		{Quantity: 3, Product: entities.OrderProduct{ID: "p1", Title: "Coffee", Price: decimal.RequireFromString("7.50")}},
		{Quantity: 1, Product: entities.OrderProduct{ID: "p2", Title: "Tea", Price: decimal.RequireFromString("14.00")}},
	},
	CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
}

func TestInvoiceService_WriteInvoice(t *testing.T) {
	orders := mocks.NewMockOrderReader(t)
	archive := mocks.NewMockInvoiceArchive(t)
	file := &bufferSink{}
	response := &bufferSink{}

	orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(invoiceOrder, nil).Once()
	archive.EXPECT().Create(mock.Anything, "o1").Return(file, nil).Once()

	svc := service.NewInvoiceService(newTestLogger(), orders, archive, invoice.NewRenderer())

	total, err := svc.WriteInvoice(context.Background(), buyer, "o1", response)
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("36.50").Equal(total))
	assert.True(t, bytes.HasPrefix(response.Bytes(), []byte("%PDF-")))
	assert.Equal(t, file.Bytes(), response.Bytes())
	assert.Equal(t, 1, file.closed)
	assert.Equal(t, 1, response.closed)
}

func TestInvoiceService_DeniedOpensNoSink(t *testing.T) {
	testCases := []struct {
		name    string
		order   entities.Order
		err     error
		wantErr error
	}{
		{
			name:    "foreign order",
			order:   entities.Order{ID: "o1", UserID: "someone-else"},
			wantErr: entities.ErrUnauthorized,
		},
		{
			name:    "missing order",
			err:     entities.ErrOrderNotFound,
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			orders := mocks.NewMockOrderReader(t)
			archive := mocks.NewMockInvoiceArchive(t)
			response := &bufferSink{}

			orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(tc.order, tc.err).Once()

			svc := service.NewInvoiceService(newTestLogger(), orders, archive, invoice.NewRenderer())

			_, err := svc.WriteInvoice(context.Background(), buyer, "o1", response)
			assert.ErrorIs(t, err, tc.wantErr)

			archive.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			assert.Zero(t, response.Len())
			assert.Zero(t, response.closed)
		})
	}
}

func TestInvoiceService_ArchiveUnavailable(t *testing.T) {
	orders := mocks.NewMockOrderReader(t)
	archive := mocks.NewMockInvoiceArchive(t)
	response := &bufferSink{}
	diskErr := errors.New("disk full")

	orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(invoiceOrder, nil).Once()
	archive.EXPECT().Create(mock.Anything, "o1").Return(nil, diskErr).Once()

	svc := service.NewInvoiceService(newTestLogger(), orders, archive, invoice.NewRenderer())

	total, err := svc.WriteInvoice(context.Background(), buyer, "o1", response)

	var renderErr *invoice.RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, invoice.SinkFile, renderErr.Sink)
	assert.ErrorIs(t, err, diskErr)

	assert.True(t, decimal.RequireFromString("36.50").Equal(total))
	assert.True(t, bytes.HasPrefix(response.Bytes(), []byte("%PDF-")))
	assert.Contains(t, response.String(), "%%EOF")
	assert.Equal(t, 1, response.closed)
}

func TestInvoiceService_ArchiveInvoice(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		orders := mocks.NewMockOrderReader(t)
		archive := mocks.NewMockInvoiceArchive(t)
		file := &bufferSink{}

		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(invoiceOrder, nil).Once()
		archive.EXPECT().Create(mock.Anything, "o1").Return(file, nil).Once()

		svc := service.NewInvoiceService(newTestLogger(), orders, archive, invoice.NewRenderer())

		require.NoError(t, svc.ArchiveInvoice(context.Background(), "o1"))
		assert.True(t, bytes.HasPrefix(file.Bytes(), []byte("%PDF-")))
		assert.Equal(t, 1, file.closed)
	})

	t.Run("archive unavailable", func(t *testing.T) {
		orders := mocks.NewMockOrderReader(t)
		archive := mocks.NewMockInvoiceArchive(t)
		diskErr := errors.New("disk full")

		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(invoiceOrder, nil).Once()
		archive.EXPECT().Create(mock.Anything, "o1").Return(nil, diskErr).Once()

		svc := service.NewInvoiceService(newTestLogger(), orders, archive, invoice.NewRenderer())

		assert.ErrorIs(t, svc.ArchiveInvoice(context.Background(), "o1"), diskErr)
	})

	t.Run("order not found", func(t *testing.T) {
		orders := mocks.NewMockOrderReader(t)
		archive := mocks.NewMockInvoiceArchive(t)

		orders.EXPECT().GetOrderByID(mock.Anything, "o1").Return(entities.Order{}, entities.ErrOrderNotFound).Once()

		svc := service.NewInvoiceService(newTestLogger(), orders, archive, invoice.NewRenderer())

		assert.ErrorIs(t, svc.ArchiveInvoice(context.Background(), "o1"), entities.ErrOrderNotFound)
	})
}
