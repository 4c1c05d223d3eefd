package entities

import (
	"math"
	"slices"
)

type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart хранит не более одной строки на товар, порядок строк - порядок добавления.
type Cart struct {
	UserID string
	Items  []CartLine
}

// CartItem строка корзины с данными товара для отображения
type CartItem struct {
	Product  Product
	Quantity int
}

// Add увеличивает количество товара или добавляет строку. Количество, не влезающее в int, отклоняется.
func (c *Cart) Add(productID string, delta int) error {
	if delta <= 0 {
		return ErrInvalidQuantity
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			if c.Items[i].Quantity > math.MaxInt-delta {
				return ErrInvalidQuantity
			}
			c.Items[i].Quantity += delta
			return nil
		}
	}
	c.Items = append(c.Items, CartLine{ProductID: productID, Quantity: delta})
	return nil
}

func (c *Cart) Remove(productID string) {
	c.Items = slices.DeleteFunc(c.Items, func(l CartLine) bool {
		return l.ProductID == productID
	})
}

func (c *Cart) Clear() {
	c.Items = []CartLine{}
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
