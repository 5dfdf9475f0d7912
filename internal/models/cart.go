package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one product's accumulated quantity in the cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns price * quantity for the line.
func (l CartLine) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(l.Product.Price).Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// WishlistEntry is a product saved for later.
type WishlistEntry struct {
	Product Product   `json:"product"`
	AddedAt time.Time `json:"added_at"`
}
