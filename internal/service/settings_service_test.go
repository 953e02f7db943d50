package service

import (
	"context"
	"testing"

	"github.com/brunecafe/cafe-service/internal/auth"
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsGet_InitializesDefaults(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{})

	settings, err := svc.Get(context.Background())

	require.NoError(t, err)
	assert.Equal(t, models.SettingsID, settings.ID)
	assert.True(t, settings.IsOpen)
	assert.Equal(t, models.DefaultAdminEmail, settings.AdminEmail)
}

func TestSettingsGet_Idempotent(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{})

	first, err := svc.Get(context.Background())
	require.NoError(t, err)
	second, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSettingsUpdate_RequiresAuth(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{})

	_, err := svc.Update(context.Background(), auth.Anonymous, SettingsPatch{})
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSettingsUpdate_PartialMerge(t *testing.T) {
	svc := NewSettingsService(&mockSettingsRepo{})
	sess := auth.SessionContext{UserID: 1, Token: "t"}

	closed := false
	settings, err := svc.Update(context.Background(), sess, SettingsPatch{IsOpen: &closed})
	require.NoError(t, err)
	assert.False(t, settings.IsOpen)
	assert.Equal(t, models.DefaultAdminEmail, settings.AdminEmail, "untouched field must survive")

	email := "owner@brunecafe.com"
	settings, err = svc.Update(context.Background(), sess, SettingsPatch{AdminEmail: &email})
	require.NoError(t, err)
	assert.Equal(t, email, settings.AdminEmail)
	assert.False(t, settings.IsOpen, "earlier patch must survive")
}
