package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
)

// LocalStorage S3 yerine lokal diske yazan geliştirme ortamı implementasyonu
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) *LocalStorage {
	return &LocalStorage{BasePath: basePath}
}

func (l *LocalStorage) Upload(ctx context.Context, body io.Reader, key string) (string, error) {
	fullPath := filepath.Join(l.BasePath, key)

	if err := os.MkdirAll(filepath.Dir(fullPath), os.ModePerm); err != nil {
		return "", fmt.Errorf("klasör oluşturulamadı: %w", err)
	}

	outFile, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("dosya oluşturulamadı: %w", err)
	}
	defer outFile.Close()

	if _, err := io.Copy(outFile, body); err != nil {
		return "", fmt.Errorf("dosya yazılamadı: %w", err)
	}

	abs, err := filepath.Abs(fullPath)
	if err != nil {
		return fullPath, nil
	}
	return abs, nil
}

// PresignedURL lokal diskte süre sınırı uygulamaz, file:// URL döner
func (l *LocalStorage) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	abs, err := filepath.Abs(filepath.Join(l.BasePath, key))
	if err != nil {
		return "", err
	}
	return "file://" + abs, nil
}

func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(l.BasePath, key))
}
