package dto

import "time"

type VideoDTO struct {
	VideoID            string    `json:"video_id"`
	OriginalName       string    `json:"original_name"`
	OriginalLocation   string    `json:"original_location"`
	CompressedLocation string    `json:"compressed_location"`
	Status             string    `json:"status"`
	Height             int64     `json:"height,omitempty"`
	Width              int64     `json:"width,omitempty"`
	CreatedAt          time.Time `json:"created_at"`
}

type UploadResponse struct {
	Message       string `json:"message"`
	VideoID       string `json:"video_id"`
	OriginalURL   string `json:"original_url"`
	CompressedURL string `json:"compressed_url"`
}

type DownloadLinksResponse struct {
	Original   string `json:"original"`
	Compressed string `json:"compressed"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
