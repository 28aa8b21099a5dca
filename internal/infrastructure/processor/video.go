package processor

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"
	"strings"
)

type FFmpegTranscoder struct {
	BinaryPath string
}

func NewFFmpegTranscoder() *FFmpegTranscoder {
	return &FFmpegTranscoder{BinaryPath: "ffmpeg"}
}

// BuildCompressArgs ffmpeg argümanlarını üretir. Genişlik ölçeklenirken çift
// sayıya yuvarlanır, tek sayıyı çoğu encoder reddediyor.
func BuildCompressArgs(inputPath, outputPath, codec string, scaleFactor float64) []string {
	scale := fmt.Sprintf("scale=trunc(iw*%g/2)*2:-2", scaleFactor)
	return []string{
		"-i", inputPath,
		"-c:v", codec,
		"-vf", scale,
		"-y",
		outputPath,
	}
}

func (t *FFmpegTranscoder) Compress(ctx context.Context, inputPath, outputPath, codec string, scaleFactor float64) error {
	args := BuildCompressArgs(inputPath, outputPath, codec, scaleFactor)
	log.Printf("DEBUG: %s %s", t.BinaryPath, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, t.BinaryPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("ffmpeg hatası: %w: %s", err, strings.TrimSpace(stderr.String()))
	}
	return nil
}
