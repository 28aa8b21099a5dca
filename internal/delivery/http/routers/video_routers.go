package routers

import (
	"video-compressor/internal/delivery/http/handlers"
	"video-compressor/internal/usecases"
	"video-compressor/pkg/config"

	"github.com/gofiber/fiber/v2"
)

func SetupVideoRoutes(
	app *fiber.App,
	cfg *config.Config,
	pipeline usecases.PipelineService,
	download usecases.DownloadService,
) {
	uploadHandler := handlers.NewUploadHandler(pipeline, cfg)
	videoHandler := handlers.NewVideoHandler(download)

	// Routes:
	api := app.Group("/api/v1")
	api.Post("/videos/upload", uploadHandler.UploadVideo)
	api.Get("/videos/:id/download", videoHandler.DownloadLinks)
}
