package usecases

import (
	"log"
	"os"
	"path/filepath"
	"time"
)

// CleanupService job bazlı deferred temizliğin kaçırdıklarını süpürür
// (örn. process crash sonrası kalan temp dosyalar)
type CleanupService interface {
	CleanupOldTempFiles(maxAge time.Duration) error
}

type cleanupService struct {
	tempDir string
}

func NewCleanupService(tempDir string) CleanupService {
	return &cleanupService{tempDir: tempDir}
}

func (s *cleanupService) CleanupOldTempFiles(maxAge time.Duration) error {
	entries, err := os.ReadDir(s.tempDir)
	if err != nil {
		return err
	}

	cutoff := time.Now().Add(-maxAge)
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			fullPath := filepath.Join(s.tempDir, entry.Name())
			if err := os.Remove(fullPath); err != nil {
				log.Printf("WARN: eski temp dosya silinemedi %s: %v", fullPath, err)
				continue
			}
			log.Printf("INFO: eski temp dosya silindi: %s", fullPath)
		}
	}
	return nil
}
