package db

import (
	"video-compressor/internal/domain/entities"

	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Video{},
	)
}
