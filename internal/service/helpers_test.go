package service_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func product(id, title, price string) entities.Product {
	return entities.Product{ID: id, Title: title, Price: decimal.RequireFromString(price)}
}

// memCatalog каталог в памяти, товары можно менять во время теста.
type memCatalog struct {
	mu       sync.Mutex
	products map[string]entities.Product
}

func newMemCatalog(products ...entities.Product) *memCatalog {
	c := &memCatalog{products: make(map[string]entities.Product)}
	for _, p := range products {
		c.products[p.ID] = p
	}
	return c
}

func (c *memCatalog) GetProductByID(_ context.Context, productID string) (entities.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	p, ok := c.products[productID]
	if !ok {
		return entities.Product{}, entities.ErrProductNotFound
	}
	return p, nil
}

func (c *memCatalog) update(p entities.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

type bufferSink struct {
	bytes.Buffer
	closed int
}

func (s *bufferSink) Close() error {
	s.closed++
	return nil
}
