package service

import (
	"context"
	"strings"

	"github.com/sangkips/blisspos/internal/domain/entity"
	"github.com/sangkips/blisspos/internal/domain/repository"
	"github.com/sangkips/blisspos/pkg/apperror"
)

// SettingsService manages the store profile stamped onto receipts.
type SettingsService struct {
	profileRepo repository.StoreProfileRepository
}

// NewSettingsService creates a new settings service.
func NewSettingsService(profileRepo repository.StoreProfileRepository) *SettingsService {
	return &SettingsService{profileRepo: profileRepo}
}

// GetProfile returns the current store profile.
func (s *SettingsService) GetProfile(ctx context.Context) (*entity.StoreProfile, error) {
	return s.profileRepo.Get(ctx)
}

// UpdateProfileInput represents the update profile input.
type UpdateProfileInput struct {
	Name    string
	Address string
	Phone   string
	Cashier string
}

// UpdateProfile replaces the store profile.
func (s *SettingsService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.StoreProfile, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "name", Message: "Store name is required"},
		})
	}

	profile := &entity.StoreProfile{
		Name:    name,
		Address: strings.TrimSpace(input.Address),
		Phone:   strings.TrimSpace(input.Phone),
		Cashier: strings.TrimSpace(input.Cashier),
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}
