package repositories

import (
	"sync"
	"time"

	"video-compressor/internal/domain/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InMemoryVideoRepository testlerde ve lokal geliştirmede Postgres yerine kullanılır
type InMemoryVideoRepository struct {
	mu   sync.RWMutex
	data map[string]*entities.Video
}

func NewInMemoryVideoRepository() *InMemoryVideoRepository {
	return &InMemoryVideoRepository{
		data: make(map[string]*entities.Video),
	}
}

func (r *InMemoryVideoRepository) Create(video *entities.Video) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if video.VideoID == uuid.Nil {
		video.VideoID = uuid.New()
	}
	now := time.Now()
	video.CreatedAt = now
	video.UpdatedAt = now

	copied := *video
	r.data[video.VideoID.String()] = &copied
	return video.VideoID.String(), nil
}

func (r *InMemoryVideoRepository) FindByID(id string) (*entities.Video, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	video, exists := r.data[id]
	if !exists {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *video
	return &copied, nil
}

func (r *InMemoryVideoRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
