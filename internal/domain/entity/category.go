package entity

import (
	"time"

	"github.com/google/uuid"
)

// Category represents a product category in the catalog.
// Color is a presentation hint for the UI swatch; it is not validated
// against any palette.
type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
