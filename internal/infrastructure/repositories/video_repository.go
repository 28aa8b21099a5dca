package repositories

import (
	"time"

	"video-compressor/internal/domain/entities"
	domain "video-compressor/internal/domain/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) domain.VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) Create(video *entities.Video) (string, error) {
	if video.VideoID == uuid.Nil {
		video.VideoID = uuid.New()
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now

	if err := r.db.Create(video).Error; err != nil {
		return "", err
	}
	return video.VideoID.String(), nil
}

func (r *videoRepository) FindByID(id string) (*entities.Video, error) {
	var entity entities.Video
	if err := r.db.First(&entity, "video_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}
