package errors

import "fmt"

type PipelineError struct {
	Code    string
	Message string
	Err     error
}

func (e *PipelineError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

var (
	ErrStorage = func(err error) *PipelineError {
		return &PipelineError{Code: "storage_error", Message: "Uzak depolama hatası", Err: err}
	}
	ErrTranscode = func(err error) *PipelineError {
		return &PipelineError{Code: "transcode_error", Message: "Video sıkıştırılamadı", Err: err}
	}
	ErrPersistence = func(err error) *PipelineError {
		return &PipelineError{Code: "persistence_error", Message: "Kayıt veritabanına yazılamadı", Err: err}
	}
	ErrNotFound = func(err error) *PipelineError {
		return &PipelineError{Code: "not_found", Message: "Video bulunamadı", Err: err}
	}
	ErrValidation = func(err error) *PipelineError {
		return &PipelineError{Code: "validation_error", Message: "Geçersiz istek", Err: err}
	}
	ErrFileCantOpen = func(err error) *PipelineError {
		return &PipelineError{Code: "file_cant_open", Message: "Dosya açılamadı", Err: err}
	}
	ErrTmpFile = func(err error) *PipelineError {
		return &PipelineError{Code: "tmp_file_error", Message: "Geçici dosya hatası", Err: err}
	}
)
