package file

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompressedKey(t *testing.T) {
	assert.Equal(t, "compressed-clip.mp4", CompressedKey("clip.mp4"))
}

func TestTempFilename(t *testing.T) {
	name := TempFilename("clip.mp4")
	assert.True(t, strings.HasSuffix(name, "-clip.mp4"))
	assert.NotEqual(t, "clip.mp4", name)

	// path bileşenleri kırpılmalı
	assert.True(t, strings.HasSuffix(TempFilename("../../etc/passwd.mp4"), "-passwd.mp4"))
}

func TestIsVideoFile(t *testing.T) {
	assert.True(t, IsVideoFile("clip.mp4"))
	assert.True(t, IsVideoFile("CLIP.MKV"))
	assert.True(t, IsVideoFile("a/b/clip.webm"))
	assert.False(t, IsVideoFile("resim.png"))
	assert.False(t, IsVideoFile("belge.pdf"))
	assert.False(t, IsVideoFile("uzantisiz"))
}
