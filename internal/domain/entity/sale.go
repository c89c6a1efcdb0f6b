package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// Sale is a completed, immutable transaction. Monetary fields are fixed at
// checkout time and satisfy Total = Subtotal - Discount + Tax; they are not
// re-derived afterwards. Discount is stored as an absolute amount, not a
// percentage. Sales are only ever appended to the ledger, never edited or
// deleted.
type Sale struct {
	ID            uuid.UUID          `json:"id"`
	Items         []CartItem         `json:"items"`
	Subtotal      decimal.Decimal    `json:"subtotal"`
	Discount      decimal.Decimal    `json:"discount"`
	Tax           decimal.Decimal    `json:"tax"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod enum.PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time          `json:"created_at"`
	ReceiptNumber string             `json:"receipt_number"`
}
