package entity

import (
	"github.com/shopspring/decimal"
)

// ReceiptHeader holds the store identity printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptLine represents a single line item on a receipt.
type ReceiptLine struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt is a value object representing a printable receipt. It is not
// persisted — it is projected from a sale and the store profile at view or
// print time. Discount is zero when no discount was applied; the formatter
// omits the discount line in that case.
type Receipt struct {
	Header        ReceiptHeader   `json:"header"`
	ReceiptNumber string          `json:"receipt_number"`
	Date          string          `json:"date"`
	Time          string          `json:"time"`
	Cashier       string          `json:"cashier,omitempty"`
	PaymentMethod string          `json:"payment_method"`
	Lines         []ReceiptLine   `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	Discount      decimal.Decimal `json:"discount"`
	Tax           decimal.Decimal `json:"tax"`
	Total         decimal.Decimal `json:"total"`
	Footer        []string        `json:"footer"`
}
