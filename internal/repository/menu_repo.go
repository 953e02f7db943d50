package repository

import (
	"context"

	"github.com/brunecafe/cafe-service/internal/models"
	"gorm.io/gorm"
)

type MenuRepository interface {
	FindAll(ctx context.Context) ([]models.MenuItem, error)
	Count(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, items []models.MenuItem) error
}

type menuRepository struct {
	db *gorm.DB
}

func NewMenuRepository(db *gorm.DB) MenuRepository {
	return &menuRepository{db: db}
}

func (r *menuRepository) FindAll(ctx context.Context) ([]models.MenuItem, error) {
	var items []models.MenuItem
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *menuRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.MenuItem{}).Count(&count).Error
	return count, err
}

func (r *menuRepository) CreateBatch(ctx context.Context, items []models.MenuItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}
