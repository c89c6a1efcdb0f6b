package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
)

// ItemRepository defines the interface for catalog item persistence.
// Items support only create and delete; there is no update operation.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
	List(ctx context.Context) ([]entity.Item, error)
	ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Item, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// DeleteByCategory removes every item referencing the category and
	// returns how many were removed. Used by the cascading category delete.
	DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int, error)
}
