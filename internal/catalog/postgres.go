package catalog

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"music_recsys/internal/config"
	"music_recsys/internal/models"
)

// LoadPostgres reads the songs table from Postgres. The connection only
// serves the one-time load; the engine never writes back. Expects a songs
// table with a serial id column so load order is stable.
func LoadPostgres(cfg *config.Config) ([]models.Song, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var songs []models.Song
	if err := db.Order("id ASC").Find(&songs).Error; err != nil {
		return nil, fmt.Errorf("loading songs: %w", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
	return songs, nil
}
