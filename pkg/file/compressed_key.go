package file

import (
	"fmt"
	"path/filepath"
	"time"
)

const compressedPrefix = "compressed-"

// CompressedKey sıkıştırılmış varyantın remote key'ini üretir
func CompressedKey(filename string) string {
	return compressedPrefix + filename
}

// TempFilename aynı isimli eşzamanlı yüklemeler lokalde çakışmasın diye
// nanosaniye prefix'i ekler (remote key değişmez)
func TempFilename(filename string) string {
	return fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(filename))
}
