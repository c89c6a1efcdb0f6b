package entity

import (
	"github.com/shopspring/decimal"
)

// CartItem is one line of the working cart: an item snapshot plus a
// quantity. The snapshot is a copy of the catalog item taken when it was
// first added, so later catalog changes never affect an open cart.
// Quantity is always positive; a line whose quantity drops to zero is
// removed from the cart.
type CartItem struct {
	Item     Item `json:"item"`
	Quantity int  `json:"quantity"`
}

// LineTotal returns price multiplied by quantity for this line.
func (ci CartItem) LineTotal() decimal.Decimal {
	return ci.Item.Price.Mul(decimal.NewFromInt(int64(ci.Quantity)))
}
