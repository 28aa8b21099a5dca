package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

type uploadResponse struct {
	Message       string `json:"message"`
	VideoID       string `json:"video_id"`
	OriginalURL   string `json:"original_url"`
	CompressedURL string `json:"compressed_url"`
}

type downloadLinksResponse struct {
	Original   string `json:"original"`
	Compressed string `json:"compressed"`
}

func uploadVideo(client *http.Client, server, filePath string) (*uploadResponse, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("dosya açılamadı: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("video", filepath.Base(filePath))
	if err != nil {
		return nil, err
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, err
	}
	if err := writer.Close(); err != nil {
		return nil, err
	}

	resp, err := client.Post(server+"/videos/upload", writer.FormDataContentType(), &body)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upload başarısız (%d): %s", resp.StatusCode, string(respBody))
	}

	var result uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func fetchDownloadLinks(client *http.Client, server, videoID string) (*downloadLinksResponse, error) {
	resp, err := client.Get(fmt.Sprintf("%s/videos/%s/download", server, videoID))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("link alınamadı (%d): %s", resp.StatusCode, string(respBody))
	}

	var result downloadLinksResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	return &result, nil
}

func main() {
	server := flag.String("server", "http://localhost:5000/api/v1", "Server base URL")
	filePath := flag.String("file", "", "Yüklenecek videonun yolu")
	flag.Parse()

	if *filePath == "" {
		log.Fatal("kullanım: client -file video.mp4 [-server http://...]")
	}

	client := &http.Client{Timeout: 30 * time.Minute} // büyük dosya + transcode süresi

	start := time.Now()
	uploaded, err := uploadVideo(client, *server, *filePath)
	if err != nil {
		log.Fatalf("Upload hatası: %v", err)
	}

	fmt.Printf("Upload tamamlandı (%s)\n", time.Since(start).Round(time.Second))
	fmt.Println("Video ID:     ", uploaded.VideoID)
	fmt.Println("Original:     ", uploaded.OriginalURL)
	fmt.Println("Compressed:   ", uploaded.CompressedURL)

	links, err := fetchDownloadLinks(client, *server, uploaded.VideoID)
	if err != nil {
		log.Fatalf("Download link hatası: %v", err)
	}

	fmt.Println("Signed original:  ", links.Original)
	fmt.Println("Signed compressed:", links.Compressed)
}
