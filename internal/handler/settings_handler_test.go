package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/brunecafe/cafe-service/internal/auth"
	"github.com/brunecafe/cafe-service/internal/middleware"
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/brunecafe/cafe-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockSettingsService struct {
	getFn    func(ctx context.Context) (*models.Settings, error)
	updateFn func(ctx context.Context, sess auth.SessionContext, patch service.SettingsPatch) (*models.Settings, error)
}

func (m *mockSettingsService) Get(ctx context.Context) (*models.Settings, error) {
	return m.getFn(ctx)
}
func (m *mockSettingsService) Update(ctx context.Context, sess auth.SessionContext, patch service.SettingsPatch) (*models.Settings, error) {
	return m.updateFn(ctx, sess, patch)
}

func TestGetSettings_Handler(t *testing.T) {
	svc := &mockSettingsService{
		getFn: func(ctx context.Context) (*models.Settings, error) {
			return &models.Settings{ID: models.SettingsID, IsOpen: true, AdminEmail: models.DefaultAdminEmail}, nil
		},
	}

	c, rec := newContext(t, http.MethodGet, "/api/settings", "")

	h := NewSettingsHandler(svc)
	require.NoError(t, h.GetSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.Settings
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.IsOpen)
	assert.Equal(t, models.DefaultAdminEmail, resp.AdminEmail)
}

func TestUpdateSettings_Handler_PartialPatch(t *testing.T) {
	var gotPatch service.SettingsPatch
	svc := &mockSettingsService{
		updateFn: func(ctx context.Context, sess auth.SessionContext, patch service.SettingsPatch) (*models.Settings, error) {
			gotPatch = patch
			return &models.Settings{ID: models.SettingsID, IsOpen: false, AdminEmail: models.DefaultAdminEmail}, nil
		},
	}

	c, rec := newContext(t, http.MethodPatch, "/api/settings", `{"is_open":false}`)
	c.Set(middleware.SessionContextKey, auth.SessionContext{UserID: 1, Token: "t"})

	h := NewSettingsHandler(svc)
	require.NoError(t, h.UpdateSettings(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, gotPatch.IsOpen)
	assert.False(t, *gotPatch.IsOpen)
	assert.Nil(t, gotPatch.AdminEmail, "absent fields must stay untouched")
}

func TestUpdateSettings_Handler_Unauthorized(t *testing.T) {
	svc := &mockSettingsService{
		updateFn: func(ctx context.Context, sess auth.SessionContext, patch service.SettingsPatch) (*models.Settings, error) {
			return nil, service.ErrUnauthorized
		},
	}

	c, rec := newContext(t, http.MethodPatch, "/api/settings", `{"is_open":false}`)

	h := NewSettingsHandler(svc)
	err := h.UpdateSettings(c)
	require.Error(t, err)
	middleware.ErrorHandler(err, c)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
