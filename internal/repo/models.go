package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/shop-service/internal/entities"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          string          `db:"id"`
	Title       string          `db:"title"`
	Price       decimal.Decimal `db:"price"`
	Description sql.NullString  `db:"description"`
	ImageURL    sql.NullString  `db:"image_url"`
}

type Order struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	UserEmail string    `db:"user_email"`
	CreatedAt time.Time `db:"created_at"`
}

type OrderLine struct {
	OrderID      string          `db:"order_id"`
	Position     int             `db:"line_no"`
	ProductID    string          `db:"product_id"`
	ProductTitle string          `db:"product_title"`
	ProductPrice decimal.Decimal `db:"product_price"`
	Quantity     int             `db:"quantity"`
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: nullStringToString(p.Description),
		ImageURL:    nullStringToString(p.ImageURL),
	}
}

func OrderLineToEntity(l OrderLine) entities.OrderLine {
	return entities.OrderLine{
		Quantity: l.Quantity,
		Product: entities.OrderProduct{
			ID:    l.ProductID,
			Title: l.ProductTitle,
			Price: l.ProductPrice,
		},
	}
}

// OrderToEntity ожидает строки, отсортированные по line_no.
func OrderToEntity(o Order, lines []OrderLine) entities.Order {
	order := entities.Order{
		ID:        o.ID,
		UserID:    o.UserID,
		UserEmail: o.UserEmail,
		CreatedAt: o.CreatedAt,
		Lines:     make([]entities.OrderLine, 0, len(lines)),
	}
	for _, l := range lines {
		order.Lines = append(order.Lines, OrderLineToEntity(l))
	}
	return order
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}
