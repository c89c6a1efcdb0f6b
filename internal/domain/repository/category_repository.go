package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
)

// CategoryRepository defines the interface for category persistence.
// Categories support only create and delete; there is no update operation.
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)
	List(ctx context.Context) ([]entity.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
