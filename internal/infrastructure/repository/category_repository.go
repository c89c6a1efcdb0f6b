package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
	domainRepo "github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/internal/infrastructure/storage"
)

const categoriesKey = "categories"

type categoryRepository struct {
	store *storage.Store

	mu         sync.RWMutex
	categories []entity.Category
}

// NewCategoryRepository creates a file-backed category repository. The
// collection is loaded once at startup; a missing or corrupt document
// degrades to an empty collection.
func NewCategoryRepository(store *storage.Store) (domainRepo.CategoryRepository, error) {
	r := &categoryRepository{store: store, categories: []entity.Category{}}
	if err := store.Load(categoriesKey, &r.categories); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.categories = append(r.categories, *category)
	return r.store.Save(categoriesKey, r.categories)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.categories {
		if r.categories[i].ID == id {
			category := r.categories[i]
			return &category, nil
		}
	}
	return nil, nil
}

func (r *categoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.categories[:0]
	for _, c := range r.categories {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	r.categories = kept
	return r.store.Save(categoriesKey, r.categories)
}
