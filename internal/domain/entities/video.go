package entities

import (
	"time"

	"github.com/google/uuid"
)

type Video struct {
	VideoID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OriginalName       string    `gorm:"type:varchar(255);not null"`
	OriginalLocation   string    `gorm:"type:varchar(500)"`
	CompressedLocation string    `gorm:"type:varchar(500);not null"` // persist edilen kayıtta asla boş olamaz
	Status             string    `gorm:"type:varchar(50)"`
	Height             int64
	Width              int64
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
