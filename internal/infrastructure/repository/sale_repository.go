package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/sangkips/blisspos/internal/domain/entity"
	domainRepo "github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/internal/infrastructure/storage"
)

const salesKey = "sales"

type saleRepository struct {
	store *storage.Store

	mu    sync.RWMutex
	sales []entity.Sale
}

// NewSaleRepository creates a file-backed, append-only sale repository. The
// ledger is loaded once at startup; a missing or corrupt document degrades
// to an empty ledger.
func NewSaleRepository(store *storage.Store) (domainRepo.SaleRepository, error) {
	r := &saleRepository{store: store, sales: []entity.Sale{}}
	if err := store.Load(salesKey, &r.sales); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *saleRepository) Append(ctx context.Context, sale *entity.Sale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales = append(r.sales, *sale)
	return r.store.Save(salesKey, r.sales)
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.sales {
		if r.sales[i].ID == id {
			sale := r.sales[i]
			return &sale, nil
		}
	}
	return nil, nil
}

func (r *saleRepository) List(ctx context.Context) ([]entity.Sale, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]entity.Sale, len(r.sales))
	copy(out, r.sales)
	return out, nil
}
