package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
	domainRepo "github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/internal/infrastructure/storage"
)

const itemsKey = "items"

type itemRepository struct {
	store *storage.Store

	mu    sync.RWMutex
	items []entity.Item
}

// NewItemRepository creates a file-backed item repository. The collection is
// loaded once at startup; a missing or corrupt document degrades to an empty
// collection.
func NewItemRepository(store *storage.Store) (domainRepo.ItemRepository, error) {
	r := &itemRepository{store: store, items: []entity.Item{}}
	if err := store.Load(itemsKey, &r.items); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, *item)
	return r.store.Save(itemsKey, r.items)
}

func (r *itemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.items {
		if r.items[i].ID == id {
			item := r.items[i]
			return &item, nil
		}
	}
	return nil, nil
}

func (r *itemRepository) List(ctx context.Context) ([]entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *itemRepository) ListByCategory(ctx context.Context, categoryID uuid.UUID) ([]entity.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []entity.Item
	for _, item := range r.items {
		if item.CategoryID == categoryID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *itemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	for _, item := range r.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	r.items = kept
	return r.store.Save(itemsKey, r.items)
}

func (r *itemRepository) DeleteByCategory(ctx context.Context, categoryID uuid.UUID) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.items[:0]
	removed := 0
	for _, item := range r.items {
		if item.CategoryID == categoryID {
			removed++
			continue
		}
		kept = append(kept, item)
	}
	r.items = kept
	if removed == 0 {
		return 0, nil
	}
	return removed, r.store.Save(itemsKey, r.items)
}
