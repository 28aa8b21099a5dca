package usecases

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"video-compressor/internal/domain/dto"
	"video-compressor/internal/domain/entities"
	"video-compressor/internal/domain/repositories"
	"video-compressor/pkg/config"
	consts "video-compressor/pkg/constants"
	"video-compressor/pkg/errors"
	"video-compressor/pkg/file"
	"video-compressor/pkg/helper"

	"golang.org/x/sync/semaphore"
)

type PipelineStage int

const (
	StageNotStarted PipelineStage = iota
	StageOriginalStored
	StageTranscoded
	StageDerivativeStored
	StageMetadataPersisted
	StageCleanedUp
)

// PipelineJob tek bir upload isteğinin geçici durumu; response döndükten sonra atılır
type PipelineJob struct {
	InputPath     string
	OutputPath    string
	OriginalKey   string
	CompressedKey string
	Stage         PipelineStage
}

type PipelineService interface {
	Process(ctx context.Context, localInputPath, declaredFileName string) (*dto.UploadResponse, error)
}

type pipelineService struct {
	videos     repositories.VideoRepository
	storage    repositories.ArtifactStorage
	transcoder repositories.Transcoder
	encodeSem  *semaphore.Weighted // transcode CPU-bound, sınırsız paralelliğe izin yok
	cfg        config.PipelineConfig
}

func NewPipelineService(
	videos repositories.VideoRepository,
	storage repositories.ArtifactStorage,
	transcoder repositories.Transcoder,
	cfg config.PipelineConfig,
) PipelineService {
	workers := cfg.MaxConcurrentEncodes
	if workers <= 0 {
		workers = 1
	}
	return &pipelineService{
		videos:     videos,
		storage:    storage,
		transcoder: transcoder,
		encodeSem:  semaphore.NewWeighted(workers),
		cfg:        cfg,
	}
}

// Process beş aşamayı sırayla çalıştırır: orijinali yükle → sıkıştır →
// varyantı yükle → metadata'yı yaz → temizlik. Aşamalar birbirine bağımlı,
// job içinde paralellik yok. Herhangi bir aşama hata verirse kalanlar atlanır,
// temizlik yine de çalışır.
func (s *pipelineService) Process(ctx context.Context, localInputPath, declaredFileName string) (*dto.UploadResponse, error) {
	job := &PipelineJob{
		InputPath:     localInputPath,
		OutputPath:    filepath.Join(filepath.Dir(localInputPath), file.CompressedKey(filepath.Base(localInputPath))),
		OriginalKey:   declaredFileName,
		CompressedKey: file.CompressedKey(declaredFileName),
	}

	// Stage 5 — temizlik her çıkış yolunda çalışır, validation dahil;
	// hatası sonucu asla değiştirmez
	defer s.cleanup(job)

	if declaredFileName == "" {
		return nil, errors.ErrValidation(fmt.Errorf("dosya adı boş olamaz"))
	}

	if s.cfg.JobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.JobTimeout)
		defer cancel()
	}

	// Stage 1 — orijinali yükle
	in, err := os.Open(job.InputPath)
	if err != nil {
		return nil, errors.ErrFileCantOpen(err)
	}
	originalLocation, err := s.storage.Upload(ctx, in, job.OriginalKey)
	in.Close()
	if err != nil {
		return nil, errors.ErrStorage(err)
	}
	job.Stage = StageOriginalStored
	log.Printf("INFO: orijinal video yüklendi: %s", originalLocation)

	// Stage 2 — sıkıştır
	if err := s.encodeSem.Acquire(ctx, 1); err != nil {
		return nil, errors.ErrTranscode(err)
	}
	err = s.transcoder.Compress(ctx, job.InputPath, job.OutputPath, s.cfg.Codec, s.cfg.ScaleFactor)
	s.encodeSem.Release(1)
	if err != nil {
		return nil, errors.ErrTranscode(err)
	}
	job.Stage = StageTranscoded
	log.Printf("INFO: sıkıştırma tamamlandı: %s", job.OutputPath)

	// Stage 3 — sıkıştırılmış varyantı yükle
	out, err := os.Open(job.OutputPath)
	if err != nil {
		return nil, errors.ErrTmpFile(err)
	}
	compressedLocation, err := s.storage.Upload(ctx, out, job.CompressedKey)
	out.Close()
	if err != nil {
		return nil, errors.ErrStorage(err)
	}
	job.Stage = StageDerivativeStored
	log.Printf("INFO: sıkıştırılmış video yüklendi: %s", compressedLocation)

	// Stage 4 — metadata'yı tek seferde, completed olarak yaz
	record := &entities.Video{
		OriginalName:       declaredFileName,
		OriginalLocation:   originalLocation,
		CompressedLocation: compressedLocation,
		Status:             consts.StatusCompleted,
	}
	if w, h, dimErr := helper.GetVideoDimensions(job.OutputPath); dimErr == nil {
		record.Width = w
		record.Height = h
	}
	videoID, err := s.videos.Create(record)
	if err != nil {
		// iki remote artifact yazıldı ama onları referans eden kayıt yok;
		// telafi silmesi yapılmıyor, operatör log üzerinden ayıklayabilsin
		log.Printf("ERROR: metadata yazılamadı, remote artifact'lar sahipsiz: %s, %s", job.OriginalKey, job.CompressedKey)
		return nil, errors.ErrPersistence(err)
	}
	job.Stage = StageMetadataPersisted

	return &dto.UploadResponse{
		Message:       "Orijinal ve sıkıştırılmış videolar başarıyla yüklendi",
		VideoID:       videoID,
		OriginalURL:   originalLocation,
		CompressedURL: compressedLocation,
	}, nil
}

func (s *pipelineService) cleanup(job *PipelineJob) {
	ok := true
	for _, p := range []string{job.InputPath, job.OutputPath} {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
			log.Printf("WARN: geçici dosya silinemedi %s: %v", p, err)
			ok = false
		}
	}
	if ok {
		job.Stage = StageCleanedUp
	}
}
