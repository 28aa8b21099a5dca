package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorageRoundTrip(t *testing.T) {
	base := t.TempDir()
	ls := NewLocalStorage(base)
	ctx := context.Background()

	location, err := ls.Upload(ctx, strings.NewReader("video-bytes"), "clip.mp4")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(location))

	content, err := os.ReadFile(filepath.Join(base, "clip.mp4"))
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(content))

	url, err := ls.PresignedURL(ctx, "clip.mp4", time.Hour)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "file://"))

	require.NoError(t, ls.Delete(ctx, "clip.mp4"))
	assert.NoFileExists(t, filepath.Join(base, "clip.mp4"))
}

func TestLocalStorageNestedKey(t *testing.T) {
	base := t.TempDir()
	ls := NewLocalStorage(base)

	_, err := ls.Upload(context.Background(), strings.NewReader("x"), "videos/clip.mp4")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(base, "videos", "clip.mp4"))
}
