package usecases

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"video-compressor/internal/domain/dto"
	"video-compressor/internal/domain/repositories"
	"video-compressor/pkg/errors"
	"video-compressor/pkg/file"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

type DownloadService interface {
	GetDownloadLinks(ctx context.Context, videoID string) (*dto.DownloadLinksResponse, error)
}

type downloadService struct {
	videos  repositories.VideoRepository
	storage repositories.ArtifactStorage
	rdb     *redis.Client
	ttl     time.Duration
}

func NewDownloadService(
	videos repositories.VideoRepository,
	storage repositories.ArtifactStorage,
	rdb *redis.Client,
	ttl time.Duration,
) DownloadService {
	return &downloadService{
		videos:  videos,
		storage: storage,
		rdb:     rdb,
		ttl:     ttl,
	}
}

// GetDownloadLinks kayıttaki iki remote key için imzalı URL üretir.
// URL çifti redis'te presign süresinden kısa bir TTL ile cache'lenir,
// cache hatası isteği düşürmez.
func (s *downloadService) GetDownloadLinks(ctx context.Context, videoID string) (*dto.DownloadLinksResponse, error) {
	cacheKey := "download_links:" + videoID

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp dto.DownloadLinksResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return &resp, nil
			}
		}
	}

	record, err := s.videos.FindByID(videoID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrNotFound(err)
		}
		return nil, errors.ErrPersistence(err)
	}

	original, err := s.storage.PresignedURL(ctx, record.OriginalName, s.ttl)
	if err != nil {
		return nil, errors.ErrStorage(err)
	}
	compressed, err := s.storage.PresignedURL(ctx, file.CompressedKey(record.OriginalName), s.ttl)
	if err != nil {
		return nil, errors.ErrStorage(err)
	}

	resp := &dto.DownloadLinksResponse{
		Original:   original,
		Compressed: compressed,
	}

	if s.rdb != nil {
		cacheTTL := s.ttl - 5*time.Minute
		if cacheTTL > 0 {
			if serialized, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, cacheKey, serialized, cacheTTL).Err(); err != nil {
					log.Printf("WARN: download link cache yazılamadı: %v", err)
				}
			}
		}
	}

	return resp, nil
}
