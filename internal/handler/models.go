package handler

import (
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

// Product товар каталога
type Product struct {
	ID          string `json:"id" example:"coffee-250"`
	Title       string `json:"title" example:"Coffee beans 250g"`
	Price       string `json:"price" example:"7.50"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

// CartItem строка корзины
type CartItem struct {
	ProductID string `json:"product_id" example:"coffee-250"`
	Title     string `json:"title" example:"Coffee beans 250g"`
	Price     string `json:"price" example:"7.50"`
	Quantity  int    `json:"quantity" example:"2"`
	Subtotal  string `json:"subtotal" example:"15.00"`
}

// Cart содержимое корзины
type Cart struct {
	Items []CartItem `json:"items"`
	Total string     `json:"total" example:"15.00"`
}

// AddCartItemRequest добавление товара в корзину, quantity по умолчанию 1
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required" example:"coffee-250"`
	Quantity  *int   `json:"quantity,omitempty" validate:"omitempty,gt=0" example:"1"`
}

// OrderLine позиция заказа с ценой на момент оформления
type OrderLine struct {
	ProductID string `json:"product_id" example:"coffee-250"`
	Title     string `json:"title" example:"Coffee beans 250g"`
	Price     string `json:"price" example:"7.50"`
	Quantity  int    `json:"quantity" example:"2"`
	Subtotal  string `json:"subtotal" example:"15.00"`
}

// Order оформленный заказ
type Order struct {
	ID        string      `json:"id" example:"b6f3c1de-3a61-4a4e-9a53-5ad0c0e8f3a1"`
	Lines     []OrderLine `json:"lines"`
	Total     string      `json:"total" example:"15.00"`
	CreatedAt time.Time   `json:"created_at"`
}

// CheckoutResponse заказ и предупреждение, если корзину не удалось очистить
type CheckoutResponse struct {
	Order
	Warning string `json:"warning,omitempty"`
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       money(p.Price),
		Description: p.Description,
		ImageURL:    p.ImageURL,
	}
}

func CartEntityToJSON(items []entities.CartItem) Cart {
	res := Cart{Items: make([]CartItem, 0, len(items))}
	total := decimal.Zero
	for _, it := range items {
		subtotal := it.Product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(subtotal)
		res.Items = append(res.Items, CartItem{
			ProductID: it.Product.ID,
			Title:     it.Product.Title,
			Price:     money(it.Product.Price),
			Quantity:  it.Quantity,
			Subtotal:  money(subtotal),
		})
	}
	res.Total = money(total)
	return res
}

func OrderEntityToJSON(o entities.Order) Order {
	lines := make([]OrderLine, 0, len(o.Lines))
	for _, l := range o.Lines {
		lines = append(lines, OrderLine{
			ProductID: l.Product.ID,
			Title:     l.Product.Title,
			Price:     money(l.Product.Price),
			Quantity:  l.Quantity,
			Subtotal:  money(l.Subtotal()),
		})
	}

	return Order{
		ID:        o.ID,
		Lines:     lines,
		Total:     money(o.Total()),
		CreatedAt: o.CreatedAt,
	}
}
