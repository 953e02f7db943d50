package repository

import (
	"context"

	"github.com/brunecafe/cafe-service/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository interface {
	Get(ctx context.Context) (*models.Settings, error)
	InsertDefaultIfAbsent(ctx context.Context) error
	Update(ctx context.Context, settings *models.Settings) error
}

type settingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) Get(ctx context.Context) (*models.Settings, error) {
	var settings models.Settings
	if err := r.db.WithContext(ctx).First(&settings, models.SettingsID).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

// InsertDefaultIfAbsent writes the default row under the fixed id. The
// ON CONFLICT guard makes concurrent first-reads safe: losers of the race
// simply insert nothing.
func (r *settingsRepository) InsertDefaultIfAbsent(ctx context.Context) error {
	defaults := models.Settings{
		ID:         models.SettingsID,
		IsOpen:     true,
		AdminEmail: models.DefaultAdminEmail,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&defaults).Error
}

func (r *settingsRepository) Update(ctx context.Context, settings *models.Settings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
