package repository

import (
	"context"

	"github.com/sangkips/blisspos/internal/domain/entity"
)

// StoreProfileRepository defines the interface for the store identity
// record. There is exactly one profile; it is read on every receipt and
// rarely written.
type StoreProfileRepository interface {
	Get(ctx context.Context) (*entity.StoreProfile, error)
	Update(ctx context.Context, profile *entity.StoreProfile) error
}
