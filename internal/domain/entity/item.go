package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Item represents a sellable catalog item.
//
// Description and Stock are optional: an empty description and a zero stock
// count are stored as absent (nil), so "no description" and "empty
// description" are indistinguishable, as are "untracked stock" and "zero
// stock". Stock is a display-only on-hand count and is never decremented by
// a sale.
type Item struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Description *string         `json:"description,omitempty"`
	Stock       *int            `json:"stock,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
}
