package handlers

import (
	"video-compressor/internal/domain/dto"
	"video-compressor/internal/usecases"
	"video-compressor/pkg/errors"

	"github.com/gofiber/fiber/v2"
)

type VideoHandler struct {
	download usecases.DownloadService
}

func NewVideoHandler(download usecases.DownloadService) *VideoHandler {
	return &VideoHandler{download: download}
}

// DownloadLinks
//
// @Summary      Get Download Links
// @Description  Returns time-limited pre-signed URLs for the original and compressed variants of a video
// @Tags         Videos
// @Produce      json
// @Param        id   path      string true "Video ID"
// @Success      200  {object}  dto.DownloadLinksResponse
// @Failure      404  {object}  dto.ErrorResponse "Video not found"
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /videos/{id}/download [get]
func (h *VideoHandler) DownloadLinks(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error:   "validation_error",
			Message: "Eksik parametre",
		})
	}

	links, err := h.download.GetDownloadLinks(c.UserContext(), id)
	if err != nil {
		return errors.HandleError(c, err)
	}

	return c.JSON(links)
}
