package services

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/warungku/warung/pkg/storage"
)

// MaxImageBytes caps product image uploads.
const MaxImageBytes = 5 << 20

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = fmt.Errorf("image exceeds %d bytes", MaxImageBytes)
)

var imageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
}

// UploadService stores product images on the configured disk (local or S3)
// under a random name and hands back the public URL.
type UploadService struct{}

func NewUploadService() *UploadService {
	return &UploadService{}
}

// SaveProductImage stores the uploaded file and returns its URL. Files over
// MaxImageBytes are rejected whole, never truncated into a corrupt object.
func (s *UploadService) SaveProductImage(file multipart.File, header *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !imageExts[ext] {
		return "", ErrUnsupportedImage
	}

	// Read one byte past the cap: if it arrives, the file is too big.
	data, err := io.ReadAll(io.LimitReader(file, MaxImageBytes+1))
	if err != nil {
		return "", err
	}
	if len(data) > MaxImageBytes {
		return "", ErrImageTooLarge
	}

	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	path := fmt.Sprintf("products/%s%s", hex.EncodeToString(b), ext)

	if err := storage.Put(path, data); err != nil {
		return "", err
	}
	return storage.URL(path), nil
}
