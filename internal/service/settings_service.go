package service

import (
	"context"
	"fmt"

	"github.com/brunecafe/cafe-service/internal/auth"
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/brunecafe/cafe-service/internal/repository"
)

// SettingsPatch is a partial update: nil fields are left untouched.
type SettingsPatch struct {
	IsOpen     *bool
	AdminEmail *string
}

type SettingsService interface {
	Get(ctx context.Context) (*models.Settings, error)
	Update(ctx context.Context, sess auth.SessionContext, patch SettingsPatch) (*models.Settings, error)
}

type settingsService struct {
	settings repository.SettingsRepository
}

func NewSettingsService(settings repository.SettingsRepository) SettingsService {
	return &settingsService{settings: settings}
}

// Get returns the single settings row, creating the defaults on first call.
func (s *settingsService) Get(ctx context.Context) (*models.Settings, error) {
	if err := s.settings.InsertDefaultIfAbsent(ctx); err != nil {
		return nil, fmt.Errorf("init settings: %w", err)
	}
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, sess auth.SessionContext, patch SettingsPatch) (*models.Settings, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthorized
	}

	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	if patch.IsOpen != nil {
		settings.IsOpen = *patch.IsOpen
	}
	if patch.AdminEmail != nil {
		settings.AdminEmail = *patch.AdminEmail
	}

	if err := s.settings.Update(ctx, settings); err != nil {
		return nil, fmt.Errorf("update settings: %w", err)
	}
	return settings, nil
}
