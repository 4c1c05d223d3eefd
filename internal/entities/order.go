package entities

import (
	"bytes"
	"encoding/gob"
	"time"

	"github.com/shopspring/decimal"
)

// OrderProduct копия полей товара на момент оформления заказа.
type OrderProduct struct {
	ID    string
	Title string
	Price decimal.Decimal
}

type OrderLine struct {
	Quantity int
	Product  OrderProduct
}

// Order неизменяем после создания: методов обновления нет, только чтение.
type Order struct {
	ID        string
	UserID    string
	UserEmail string
	Lines     []OrderLine
	CreatedAt time.Time
}

func (l OrderLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

func (o Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range o.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (o Order) OwnedBy(userID string) bool {
	return o.UserID == userID
}

func (o *Order) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(o); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (o *Order) Unmarshal(data []byte) error {
	buf := bytes.NewBuffer(data)
	dec := gob.NewDecoder(buf)
	if err := dec.Decode(o); err != nil {
		return ErrInvalidOrder
	}
	return nil
}
