package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetMimeTypeFromExtension(t *testing.T) {
	assert.Equal(t, "video/mp4", GetMimeTypeFromExtension("clip.mp4"))
	assert.Equal(t, "video/mp4", GetMimeTypeFromExtension("CLIP.MP4"))
	assert.Equal(t, "video/mkv", GetMimeTypeFromExtension("a/b/clip.mkv"))
	assert.Equal(t, "video/quicktime", GetMimeTypeFromExtension("clip.mov"))
	assert.Equal(t, "video/webm", GetMimeTypeFromExtension("clip.webm"))

	// compressed- prefix'li remote key'ler de uzantıdan çözülmeli
	assert.Equal(t, "video/mp4", GetMimeTypeFromExtension("compressed-clip.mp4"))

	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension("uzantisiz"))
	assert.Equal(t, "application/octet-stream", GetMimeTypeFromExtension("belge.pdf"))
}
