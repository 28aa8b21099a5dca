package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("TRANSCODE_CODEC", "")
	t.Setenv("TRANSCODE_SCALE_FACTOR", "")
	t.Setenv("PRESIGN_TTL_SECONDS", "")
	t.Setenv("MAX_CONCURRENT_ENCODES", "")

	cfg := LoadConfig()

	assert.Equal(t, "libx265", cfg.Pipeline.Codec)
	assert.Equal(t, 0.8, cfg.Pipeline.ScaleFactor)
	assert.Equal(t, time.Hour, cfg.Pipeline.PresignTTL)
	assert.Equal(t, int64(2), cfg.Pipeline.MaxConcurrentEncodes)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("TRANSCODE_CODEC", "libx264")
	t.Setenv("TRANSCODE_SCALE_FACTOR", "0.5")
	t.Setenv("PRESIGN_TTL_SECONDS", "600")
	t.Setenv("S3_BUCKET_NAME", "my-bucket")
	t.Setenv("LOCAL_STORAGE_DIR", "/var/lib/artifacts")

	cfg := LoadConfig()

	assert.Equal(t, "libx264", cfg.Pipeline.Codec)
	assert.Equal(t, 0.5, cfg.Pipeline.ScaleFactor)
	assert.Equal(t, 10*time.Minute, cfg.Pipeline.PresignTTL)
	assert.Equal(t, "my-bucket", cfg.S3.Bucket)
	assert.Equal(t, "/var/lib/artifacts", cfg.Upload.LocalStorageDir)
}

func TestLoadConfigBadNumberFallsBack(t *testing.T) {
	t.Setenv("TRANSCODE_SCALE_FACTOR", "seksen")

	cfg := LoadConfig()
	assert.Equal(t, 0.8, cfg.Pipeline.ScaleFactor)
}
