package services

import (
	"bytes"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
)

// memFile adapts an in-memory buffer to multipart.File.
type memFile struct{ *bytes.Reader }

func (memFile) Close() error { return nil }

func uploadOf(name string, size int) (multipart.File, *multipart.FileHeader) {
	return memFile{bytes.NewReader(make([]byte, size))},
		&multipart.FileHeader{Filename: name, Size: int64(size)}
}

func TestSaveProductImageRejectsUnsupportedType(t *testing.T) {
	svc := NewUploadService()

	for _, name := range []string{"menu.pdf", "virus.exe", "noext"} {
		file, header := uploadOf(name, 128)
		_, err := svc.SaveProductImage(file, header)
		assert.ErrorIs(t, err, ErrUnsupportedImage, name)
	}
}

// An over-cap upload must be rejected whole, never truncated into a corrupt
// stored object.
func TestSaveProductImageRejectsOversize(t *testing.T) {
	svc := NewUploadService()

	file, header := uploadOf("menu.jpg", MaxImageBytes+1)
	_, err := svc.SaveProductImage(file, header)
	assert.ErrorIs(t, err, ErrImageTooLarge)
}
