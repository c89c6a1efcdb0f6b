package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
)

// SaleRepository defines the interface for the append-only sales ledger.
// Sales are written once at checkout and never updated or deleted.
type SaleRepository interface {
	Append(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	// List returns a copy of the ledger in insertion order; callers may
	// filter and sort the copy freely without affecting the ledger.
	List(ctx context.Context) ([]entity.Sale, error)
}
