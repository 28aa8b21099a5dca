package usecases

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanupOldTempFiles(t *testing.T) {
	tempDir := t.TempDir()

	oldFile := filepath.Join(tempDir, "1000-eski.mp4")
	newFile := filepath.Join(tempDir, "2000-yeni.mp4")
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0644))
	require.NoError(t, os.WriteFile(newFile, []byte("x"), 0644))

	stale := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, stale, stale))

	svc := NewCleanupService(tempDir)
	require.NoError(t, svc.CleanupOldTempFiles(24*time.Hour))

	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
}

func TestCleanupMissingDir(t *testing.T) {
	svc := NewCleanupService(filepath.Join(t.TempDir(), "yok"))
	assert.Error(t, svc.CleanupOldTempFiles(time.Hour))
}
