package database

import (
	"github.com/brunecafe/cafe-service/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Booking{},
		&models.Settings{},
		&models.MenuItem{},
		&models.Session{},
	); err != nil {
		log.Fatal().Err(err).Msg("failed to auto-migrate")
	}

	return db
}
