package repositories

import "video-compressor/internal/domain/entities"

type VideoRepository interface {
	// Create kaydı tek seferde, atomik olarak yazar ve atanan id'yi döner
	Create(video *entities.Video) (string, error)
	FindByID(id string) (*entities.Video, error)
}
