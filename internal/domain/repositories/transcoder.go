package repositories

import "context"

type Transcoder interface {
	// Compress inputPath'teki videoyu verilen codec ve ölçek ile outputPath'e yazar.
	// Hata durumunda engine'in stderr çıktısı hataya eklenir.
	Compress(ctx context.Context, inputPath, outputPath, codec string, scaleFactor float64) error
}
