package handlers

import (
	"log"
	"path/filepath"

	"video-compressor/internal/domain/dto"
	"video-compressor/internal/usecases"
	"video-compressor/pkg/config"
	"video-compressor/pkg/errors"
	"video-compressor/pkg/file"

	"github.com/gofiber/fiber/v2"
)

type UploadHandler struct {
	pipeline usecases.PipelineService
	cfg      *config.Config
}

func NewUploadHandler(pipeline usecases.PipelineService, cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		pipeline: pipeline,
		cfg:      cfg,
	}
}

// UploadVideo
//
// @Summary      Upload and Compress Video
// @Description  Uploads a video, stores the original, produces and stores a compressed variant and persists the metadata record
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        video  formData  file  true  "Video file"
// @Success      201    {object}  dto.UploadResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Failure      500    {object}  dto.ErrorResponse
// @Router       /videos/upload [post]
func (h *UploadHandler) UploadVideo(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("video")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation_error",
			Message: "Dosya bulunamadı",
		})
	}

	if !file.IsVideoFile(fileHeader.Filename) {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation_error",
			Message: "Desteklenmeyen dosya tipi",
		})
	}

	// multer'ın disk storage'ı gibi: nanosaniye prefix'li temp dosya
	tempPath := filepath.Join(h.cfg.Upload.TempDir, file.TempFilename(fileHeader.Filename))
	if err := c.SaveFile(fileHeader, tempPath); err != nil {
		return errors.HandleError(c, errors.ErrTmpFile(err))
	}
	log.Printf("DEBUG: upload alındı: filename=%s, temp=%s", fileHeader.Filename, tempPath)

	response, err := h.pipeline.Process(c.UserContext(), tempPath, fileHeader.Filename)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}
