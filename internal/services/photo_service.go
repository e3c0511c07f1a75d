package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"maxdata/internal/models"
	"maxdata/utils"
)

var (
	ErrUnsupportedImage = errors.New("unsupported image type")
	ErrImageTooLarge    = errors.New("image is too large")
	ErrEmptyPhoto       = errors.New("photo url is empty")
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type PhotoService struct {
	Storage  utils.PhotoStorage
	MaxBytes int64
}

func NewPhotoService(storage utils.PhotoStorage, maxBytes int64) *PhotoService {
	return &PhotoService{Storage: storage, MaxBytes: maxBytes}
}

// Upload stores one image under a random name and returns its URL. The
// content type is sniffed from the bytes; a declared .jpeg name is kept only
// for JPEG data.
func (s *PhotoService) Upload(ctx context.Context, data []byte, filename string) (string, error) {
	if s.MaxBytes > 0 && int64(len(data)) > s.MaxBytes {
		return "", fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(data))
	}
	contentType := http.DetectContentType(data)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedImage, contentType)
	}
	if declared := strings.ToLower(filepath.Ext(filename)); contentType == "image/jpeg" && declared == ".jpeg" {
		ext = declared
	}
	return s.Storage.Save(ctx, data, uuid.NewString()+ext, contentType)
}

// Attach appends uploaded URLs to an unsaved photo list.
func (s *PhotoService) Attach(photos []string, urls ...string) []string {
	return models.AddPhotos(photos, urls...)
}

func (s *PhotoService) Replace(photos []string, index int, url string) ([]string, error) {
	if strings.TrimSpace(url) == "" {
		return nil, ErrEmptyPhoto
	}
	return models.ReplacePhoto(photos, index, url)
}
