package repositories

import (
	"testing"

	"video-compressor/internal/domain/entities"
	consts "video-compressor/pkg/constants"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestInMemoryCreateAndFind(t *testing.T) {
	repo := NewInMemoryVideoRepository()

	id, err := repo.Create(&entities.Video{
		OriginalName:       "clip.mp4",
		CompressedLocation: "https://bucket/compressed-clip.mp4",
		Status:             consts.StatusCompleted,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	found, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.Equal(t, "clip.mp4", found.OriginalName)
	assert.Equal(t, consts.StatusCompleted, found.Status)
	assert.False(t, found.CreatedAt.IsZero())
	assert.Equal(t, 1, repo.Count())
}

func TestInMemoryFindMissing(t *testing.T) {
	repo := NewInMemoryVideoRepository()

	_, err := repo.FindByID("yok")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestInMemoryReturnsCopy(t *testing.T) {
	repo := NewInMemoryVideoRepository()

	id, err := repo.Create(&entities.Video{
		OriginalName:       "clip.mp4",
		CompressedLocation: "https://bucket/compressed-clip.mp4",
	})
	require.NoError(t, err)

	found, err := repo.FindByID(id)
	require.NoError(t, err)
	found.Status = "kurcalanmis"

	again, err := repo.FindByID(id)
	require.NoError(t, err)
	assert.NotEqual(t, "kurcalanmis", again.Status)
}
