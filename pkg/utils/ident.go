package utils

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// NewID generates a new random unique identifier.
func NewID() uuid.UUID {
	return uuid.New()
}

// ParseID parses a string into a UUID.
func ParseID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// GenerateReceiptNumber returns the human-facing receipt number for a sale
// completed at t: "R" followed by the last six digits of t in milliseconds
// since the epoch. The truncation means two sales within the same
// 1000-second window of the millisecond clock can collide; acceptable for a
// single-operator store, and sales remain uniquely identified by their ID.
func GenerateReceiptNumber(t time.Time) string {
	ms := strconv.FormatInt(t.UnixMilli(), 10)
	if len(ms) < 6 {
		return "R" + ms
	}
	return "R" + ms[len(ms)-6:]
}
