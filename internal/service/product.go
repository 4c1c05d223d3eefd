package service

import (
	"context"
	"log/slog"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
)

type ProductCatalog interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
}

type ProductRepo interface {
	ProductCatalog
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type productService struct {
	logger *slog.Logger
	repo   ProductRepo
}

func NewProductService(logger *slog.Logger, repo ProductRepo) *productService {
	return &productService{
		logger: logger.With(slog.String("service", "product")),
		repo:   repo,
	}
}

func (s *productService) GetProductByID(ctx context.Context, productID string) (entities.Product, error) {
	var product entities.Product
	fn := func() error {
		var err error
		product, err = s.repo.GetProductByID(ctx, productID)
		return err
	}
	if err := utils.Retry(retryConfig, fn, entities.ErrProductNotFound); err != nil {
		return entities.Product{}, err
	}
	return product, nil
}

func (s *productService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	var products []entities.Product
	fn := func() error {
		var err error
		products, err = s.repo.ListProducts(ctx)
		return err
	}
	if err := utils.Retry(retryConfig, fn); err != nil {
		return nil, err
	}
	return products, nil
}
