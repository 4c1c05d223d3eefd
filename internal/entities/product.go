package entities

import "github.com/shopspring/decimal"

type Product struct {
	ID          string
	Title       string
	Price       decimal.Decimal
	Description string
	ImageURL    string
}
