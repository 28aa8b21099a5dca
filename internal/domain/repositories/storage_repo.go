package repositories

import (
	"context"
	"io"
	"time"
)

//* Orchestrator üç collaborator'a da interface üzerinden bağlanıyor, her biri ayrı mock'lanabilir

type ArtifactStorage interface {
	// Upload remote lokasyonu döner (örn. https://bucket.s3.region.amazonaws.com/key)
	Upload(ctx context.Context, body io.Reader, key string) (string, error)
	// PresignedURL key'in varlığını kontrol etmez; olmayan obje için üretilen
	// URL ancak fetch sırasında hata verir
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}
