package service

import (
	"net/http"
	"testing"

	"github.com/sangkips/blisspos/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateProfile(t *testing.T) {
	f := newFixture(t)
	settings := NewSettingsService(f.profileRepo)

	updated, err := settings.UpdateProfile(f.ctx, &UpdateProfileInput{
		Name:    "  Corner Cafe  ",
		Address: "12 Main Road",
		Phone:   "+92 3000000000",
		Cashier: "Sara",
	})
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", updated.Name)

	profile, err := settings.GetProfile(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corner Cafe", profile.Name)
	assert.Equal(t, "12 Main Road", profile.Address)
	assert.Equal(t, "Sara", profile.Cashier)
}

func TestUpdateProfileRequiresName(t *testing.T) {
	f := newFixture(t)
	settings := NewSettingsService(f.profileRepo)

	_, err := settings.UpdateProfile(f.ctx, &UpdateProfileInput{Name: "  "})
	require.Error(t, err)
	assert.Equal(t, http.StatusUnprocessableEntity, apperror.GetAppError(err).Code)

	// The stored profile is untouched
	profile, err := settings.GetProfile(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, "Cafe Bliss", profile.Name)
}
