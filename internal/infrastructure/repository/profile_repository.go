package repository

import (
	"context"
	"sync"

	"github.com/sangkips/blisspos/internal/domain/entity"
	domainRepo "github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/internal/infrastructure/storage"
)

const storeConfigKey = "store-config"

type storeProfileRepository struct {
	store *storage.Store

	mu      sync.RWMutex
	profile entity.StoreProfile
}

// NewStoreProfileRepository creates a file-backed store profile repository.
// If no profile document exists yet, the seed profile is persisted so the
// store identity survives restarts.
func NewStoreProfileRepository(store *storage.Store, seed entity.StoreProfile) (domainRepo.StoreProfileRepository, error) {
	r := &storeProfileRepository{store: store, profile: seed}

	loaded := entity.StoreProfile{}
	if err := store.Load(storeConfigKey, &loaded); err != nil {
		return nil, err
	}
	if loaded.Name != "" {
		r.profile = loaded
		return r, nil
	}
	if err := store.Save(storeConfigKey, r.profile); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *storeProfileRepository) Get(ctx context.Context) (*entity.StoreProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	profile := r.profile
	return &profile, nil
}

func (r *storeProfileRepository) Update(ctx context.Context, profile *entity.StoreProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.profile = *profile
	return r.store.Save(storeConfigKey, r.profile)
}
