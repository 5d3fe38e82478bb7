package config

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/blaisecz/comfort-census/internal/domain"
)

func NewDatabase(cfg *Config) (*gorm.DB, error) {
	logLevel := logger.Silent
	if cfg.LogLevel == "debug" {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, err
	}

	log.Info().Msg("database connection established")
	return db, nil
}

// Migrate creates or updates the check-in and metrics tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.CheckIn{}, &domain.DailyMetrics{})
}
