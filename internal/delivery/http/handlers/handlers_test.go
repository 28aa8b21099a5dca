package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"video-compressor/internal/delivery/http/routers"
	"video-compressor/internal/domain/dto"
	"video-compressor/pkg/config"
	pkgerrors "video-compressor/pkg/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePipeline struct {
	resp    *dto.UploadResponse
	err     error
	gotPath string
	gotName string
}

func (f *fakePipeline) Process(ctx context.Context, localInputPath, declaredFileName string) (*dto.UploadResponse, error) {
	f.gotPath = localInputPath
	f.gotName = declaredFileName
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type fakeDownload struct {
	resp *dto.DownloadLinksResponse
	err  error
}

func (f *fakeDownload) GetDownloadLinks(ctx context.Context, videoID string) (*dto.DownloadLinksResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func newTestApp(t *testing.T, pipeline *fakePipeline, download *fakeDownload) *fiber.App {
	t.Helper()
	cfg := config.LoadConfig()
	cfg.Upload.TempDir = t.TempDir()

	app := fiber.New()
	routers.SetupVideoRoutes(app, cfg, pipeline, download)
	return app
}

func multipartVideoBody(t *testing.T, fieldName, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return &body, writer.FormDataContentType()
}

func TestUploadVideoSuccess(t *testing.T) {
	pipeline := &fakePipeline{
		resp: &dto.UploadResponse{
			Message:       "Orijinal ve sıkıştırılmış videolar başarıyla yüklendi",
			VideoID:       "abc-123",
			OriginalURL:   "https://bucket/clip.mp4",
			CompressedURL: "https://bucket/compressed-clip.mp4",
		},
	}
	app := newTestApp(t, pipeline, &fakeDownload{})

	body, contentType := multipartVideoBody(t, "video", "clip.mp4", "video-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var result dto.UploadResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "abc-123", result.VideoID)

	// handler declared name'i aynen geçirir, temp dosyayı prefix'li yazar
	assert.Equal(t, "clip.mp4", pipeline.gotName)
	assert.NotEqual(t, "clip.mp4", pipeline.gotPath)
	content, err := os.ReadFile(pipeline.gotPath)
	require.NoError(t, err)
	assert.Equal(t, "video-bytes", string(content))
}

func TestUploadVideoMissingFile(t *testing.T) {
	app := newTestApp(t, &fakePipeline{}, &fakeDownload{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/upload", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadVideoUnsupportedType(t *testing.T) {
	app := newTestApp(t, &fakePipeline{}, &fakeDownload{})

	body, contentType := multipartVideoBody(t, "video", "belge.pdf", "pdf-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadVideoPipelineError(t *testing.T) {
	pipeline := &fakePipeline{err: pkgerrors.ErrTranscode(io.ErrUnexpectedEOF)}
	app := newTestApp(t, pipeline, &fakeDownload{})

	body, contentType := multipartVideoBody(t, "video", "clip.mp4", "video-bytes")
	req := httptest.NewRequest(http.MethodPost, "/api/v1/videos/upload", body)
	req.Header.Set("Content-Type", contentType)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	var result dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "transcode_error", result.Error)
}

func TestDownloadLinks(t *testing.T) {
	download := &fakeDownload{
		resp: &dto.DownloadLinksResponse{
			Original:   "https://signed/clip.mp4",
			Compressed: "https://signed/compressed-clip.mp4",
		},
	}
	app := newTestApp(t, &fakePipeline{}, download)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/abc-123/download", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var result dto.DownloadLinksResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "https://signed/clip.mp4", result.Original)
	assert.Equal(t, "https://signed/compressed-clip.mp4", result.Compressed)
}

func TestDownloadLinksNotFound(t *testing.T) {
	download := &fakeDownload{err: pkgerrors.ErrNotFound(nil)}
	app := newTestApp(t, &fakePipeline{}, download)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/videos/bilinmeyen/download", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	var result dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	assert.Equal(t, "not_found", result.Error)
}
