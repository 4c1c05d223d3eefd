package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/SergeyBogomolovv/shop-service/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type ProductService interface {
	GetProductByID(ctx context.Context, productID string) (entities.Product, error)
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type ProductHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      ProductService
}

func NewProductHandler(logger *slog.Logger, svc ProductService) *ProductHandler {
	return &ProductHandler{
		logger:   logger.With(slog.String("handler", "product")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *ProductHandler) Init(r chi.Router) {
	r.Get("/products", h.ListProducts)
	r.Get("/products/{product_id}", h.GetProductByID)
}

// ListProducts возвращает каталог товаров.
// @Summary      Список товаров
// @Tags         products
// @Produce      json
// @Success      200  {array}   Product
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products [get]
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.svc.ListProducts(ctx)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to list products")
		return
	}

	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetProductByID возвращает товар по ID.
// @Summary      Получить товар
// @Tags         products
// @Produce      json
// @Param        product_id  path      string  true  "Идентификатор товара"
// @Success      200  {object}  Product
// @Failure      400  {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404  {object}  utils.ErrorResponse "Товар не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /products/{product_id} [get]
func (h *ProductHandler) GetProductByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	productID := chi.URLParam(r, "product_id")

	if err := h.validate.Var(productID, "required,max=64"); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	product, err := h.svc.GetProductByID(ctx, productID)
	if err != nil {
		writeServiceError(ctx, h.logger, w, err, "failed to get product")
		return
	}

	utils.WriteJSON(w, ProductEntityToJSON(product), http.StatusOK)
}
