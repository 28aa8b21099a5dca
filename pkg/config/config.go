package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Upload   UploadConfig
	S3       S3Config
	Pipeline PipelineConfig
	Database DatabaseConfig
	Redis    RedisConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type UploadConfig struct {
	TempDir         string
	LocalStorageDir string // STORAGE_DRIVER=local için artifact klasörü
	MaxFileSize     int64  // bytes
}

type S3Config struct {
	Bucket string
	Region string
}

type PipelineConfig struct {
	Codec                string
	ScaleFactor          float64       // 0-1 arası, çıktının genişlik oranı
	PresignTTL           time.Duration // imzalı URL geçerlilik süresi
	MaxConcurrentEncodes int64         // aynı anda çalışan ffmpeg sayısı
	JobTimeout           time.Duration // tüm pipeline için üst sınır
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

type RedisConfig struct {
	Host string
	Port string
}

func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "5000"),
			Host: getEnv("SERVER_HOST", "localhost"),
		},
		Upload: UploadConfig{
			TempDir:         getEnv("UPLOAD_TEMP_DIR", "uploads"),
			LocalStorageDir: getEnv("LOCAL_STORAGE_DIR", "artifacts"),
			MaxFileSize:     getEnvAsInt64("UPLOAD_MAX_FILE_SIZE", 2*1024*1024*1024), // 2GB
		},
		S3: S3Config{
			Bucket: getEnv("S3_BUCKET_NAME", ""),
			Region: getEnv("AWS_REGION", "eu-north-1"),
		},
		Pipeline: PipelineConfig{
			Codec:                getEnv("TRANSCODE_CODEC", "libx265"),
			ScaleFactor:          getEnvAsFloat64("TRANSCODE_SCALE_FACTOR", 0.8),
			PresignTTL:           time.Duration(getEnvAsInt64("PRESIGN_TTL_SECONDS", 3600)) * time.Second,
			MaxConcurrentEncodes: getEnvAsInt64("MAX_CONCURRENT_ENCODES", 2),
			JobTimeout:           time.Duration(getEnvAsInt64("PIPELINE_TIMEOUT_SECONDS", 1800)) * time.Second,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "video_compressor"),
		},
		Redis: RedisConfig{
			Host: getEnv("REDIS_HOST", "localhost"),
			Port: getEnv("REDIS_PORT", "6379"),
		},
	}
}

// EnsureDirs upload temp klasörünü oluşturur
func (c *Config) EnsureDirs() error {
	return os.MkdirAll(c.Upload.TempDir, 0755)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat64(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}
