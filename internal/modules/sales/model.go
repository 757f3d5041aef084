package sales

import (
	"fmt"
	"strings"
)

// EditDirection selects which way EditOrderQuantity moves quantity between a
// cart line and available stock.
type EditDirection string

const (
	DirectionReduce EditDirection = "REDUCE"
	DirectionAdd    EditDirection = "ADD"
)

// ParseDirection converts a request value into an EditDirection.
func ParseDirection(s string) (EditDirection, error) {
	switch EditDirection(strings.ToUpper(s)) {
	case DirectionReduce:
		return DirectionReduce, nil
	case DirectionAdd:
		return DirectionAdd, nil
	default:
		return "", fmt.Errorf("%w: %q (allowed: REDUCE, ADD)", ErrInvalidDirection, s)
	}
}

// OrderLine is one reserved entry in the cart. Name and Price are snapshots
// of the product taken at reservation time, so later catalog edits do not
// change what the customer is quoted.
type OrderLine struct {
	OrderNo   int     `json:"order_no"`
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Qty       int     `json:"qty"`
	Price     float64 `json:"price"`
}

// LineTotal returns the cost of the line at its snapshot price.
func (l *OrderLine) LineTotal() float64 {
	return float64(l.Qty) * l.Price
}

// AddToCartRequest is the payload for reserving stock into the cart.
type AddToCartRequest struct {
	ProductID int `json:"product_id"`
	Qty       int `json:"qty"`
}

// EditOrderRequest is the payload for changing a cart line's quantity.
type EditOrderRequest struct {
	Delta     int    `json:"delta"`
	Direction string `json:"direction"`
}
