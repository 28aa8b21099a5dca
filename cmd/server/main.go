package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "video-compressor/docs"
	_ "video-compressor/migrations"

	"video-compressor/internal/delivery/http/routers"
	"video-compressor/internal/domain/repositories"
	"video-compressor/internal/infrastructure/db"
	"video-compressor/internal/infrastructure/processor"
	infra_repo "video-compressor/internal/infrastructure/repositories"
	"video-compressor/internal/infrastructure/storage"
	"video-compressor/internal/usecases"
	"video-compressor/pkg/config"
	consts "video-compressor/pkg/constants"

	"github.com/go-redis/redis/v8"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/swagger"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/robfig/cron/v3"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
	cfg := config.LoadConfig()

	database, err := db.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("DB bağlantısı başarısız: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%s", cfg.Redis.Host, cfg.Redis.Port),
	})

	if os.Getenv("RUN_AUTO_MIGRATION") == "true" {
		sqlDB, err := database.DB()
		if err != nil {
			log.Fatalf("sql.DB alınamadı: %v", err)
		}
		goose.SetBaseFS(nil)
		if err := goose.Up(sqlDB, "."); err != nil {
			log.Fatalf("failed to apply migrations: %v", err)
		}
	} else if err := db.AutoMigrate(database); err != nil {
		log.Fatalf("AutoMigrate başarısız: %v", err)
	}

	if err := cfg.EnsureDirs(); err != nil {
		log.Fatalf("Temp klasörü oluşturulamadı: %v", err)
	}

	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.Upload.MaxFileSize),
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Storage: default S3, lokal geliştirme için STORAGE_DRIVER=local
	var artifactStorage repositories.ArtifactStorage
	if os.Getenv("STORAGE_DRIVER") == "local" {
		artifactStorage = storage.NewLocalStorage(cfg.Upload.LocalStorageDir)
	} else {
		artifactStorage, err = storage.NewS3Storage(cfg.S3.Bucket, cfg.S3.Region)
		if err != nil {
			log.Fatalf("S3 storage kurulamadı: %v", err)
		}
	}

	// Repositories & Services
	videoRepo := infra_repo.NewVideoRepository(database)
	transcoder := processor.NewFFmpegTranscoder()
	pipelineService := usecases.NewPipelineService(videoRepo, artifactStorage, transcoder, cfg.Pipeline)
	downloadService := usecases.NewDownloadService(videoRepo, artifactStorage, rdb, cfg.Pipeline.PresignTTL)

	// Routes
	routers.SetupVideoRoutes(app, cfg, pipelineService, downloadService)

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": consts.StatusOK})
	})

	// Crash sonrası artakalan temp dosyalar için periyodik süpürme
	cleanupUC := usecases.NewCleanupService(cfg.Upload.TempDir)
	c := cron.New(cron.WithSeconds())
	c.AddFunc("0 */5 * * * *", func() {
		if err := cleanupUC.CleanupOldTempFiles(24 * time.Hour); err != nil {
			log.Printf("Error cleaning up old temp files: %v", err)
		}
	})
	c.Start()

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)

	// Graceful shutdown
	go func() {
		if err := app.Listen(addr); err != nil {
			log.Fatalf("Server başlatılamadı: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Print("Shutdown sinyali alındı, server kapatılıyor...")

	c.Stop()

	ctxShut, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctxShut); err != nil {
		log.Fatalf("Server düzgün kapatılamadı: %v", err)
	}
	log.Println("Server düzgün bir şekilde kapatıldı")
}
