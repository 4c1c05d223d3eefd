package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

var productColumns = []string{"id", "title", "price", "description", "image_url"}

func (r *postgresRepo) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	q := r.qb.Select(productColumns...).
		From("products").
		Where(sq.Eq{"id": productID})

	var product Product
	err := r.get(ctx, &product, q)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to get product: %w", err)
	}
	return ProductToEntity(product), nil
}

func (r *postgresRepo) ListProducts(ctx context.Context) ([]entities.Product, error) {
	q := r.qb.Select(productColumns...).
		From("products").
		OrderBy("created_at DESC", "id")

	var products []Product
	if err := r.selectAll(ctx, &products, q); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}
