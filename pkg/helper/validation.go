package helper

import (
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

func GetMimeTypeFromExtension(filename string) string {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4":
		return "video/mp4"
	case ".avi":
		return "video/avi"
	case ".mkv":
		return "video/mkv"
	case ".mov":
		return "video/quicktime"
	case ".webm":
		return "video/webm"
	default:
		return "application/octet-stream"
	}
}

func GetVideoDimensions(filePath string) (int64, int64, error) {
	cmd := exec.Command("ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height",
		"-of", "csv=p=0",
		filePath,
	)
	out, err := cmd.Output()
	if err != nil {
		return 0, 0, err
	}
	parts := strings.Split(strings.TrimSpace(string(out)), ",")
	if len(parts) < 2 {
		return 0, 0, nil
	}
	w, _ := strconv.ParseInt(parts[0], 10, 64)
	h, _ := strconv.ParseInt(parts[1], 10, 64)
	return w, h, nil
}
