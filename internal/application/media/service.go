package media

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pizzeria/backend/internal/domain/shared"
)

// ObjectStorage abstracts the S3-compatible backend holding catalog
// and content images
type ObjectStorage interface {
	Upload(ctx context.Context, storageKey string, data []byte, contentType string) error
	Delete(ctx context.Context, storageKey string) error
	Exists(ctx context.Context, storageKey string) (bool, error)
	PublicURL(storageKey string) string
}

// ErrUnsupportedImageType is returned for uploads that are not images
var ErrUnsupportedImageType = shared.NewDomainError("UNSUPPORTED_IMAGE_TYPE", "Only JPEG, PNG and WebP images are accepted")

// ErrImageTooLarge is returned when an upload exceeds the size limit
var ErrImageTooLarge = shared.NewDomainError("IMAGE_TOO_LARGE", "Image exceeds the 5MB limit")

// maxImageSize is the upload size limit (5MB)
const maxImageSize = 5 * 1024 * 1024

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// UploadResult describes a stored image
type UploadResult struct {
	StorageKey string `json:"storage_key"`
	URL        string `json:"url"`
}

// UploadService stores back-office image uploads (product photos,
// banners, avatars) under dated keys
type UploadService struct {
	storage ObjectStorage
	logger  *zap.Logger
}

// NewUploadService creates a new UploadService
func NewUploadService(storage ObjectStorage, logger *zap.Logger) *UploadService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UploadService{storage: storage, logger: logger}
}

// UploadImage validates and stores an image, returning its key and
// public URL. The original filename only contributes its extension
// as a fallback when the content type is unknown.
func (s *UploadService) UploadImage(ctx context.Context, filename, contentType string, data []byte) (*UploadResult, error) {
	if len(data) == 0 {
		return nil, shared.NewDomainError("EMPTY_UPLOAD", "Uploaded file is empty")
	}
	if len(data) > maxImageSize {
		return nil, ErrImageTooLarge
	}

	ext, ok := imageExtensions[strings.ToLower(contentType)]
	if !ok {
		ext = strings.ToLower(path.Ext(filename))
		if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".webp" {
			return nil, ErrUnsupportedImageType
		}
	}

	now := time.Now()
	key := fmt.Sprintf("uploads/%04d/%02d/%s%s", now.Year(), now.Month(), uuid.New().String(), ext)

	if err := s.storage.Upload(ctx, key, data, contentType); err != nil {
		s.logger.Error("image upload failed", zap.String("key", key), zap.Error(err))
		return nil, err
	}

	s.logger.Info("image uploaded", zap.String("key", key), zap.Int("size", len(data)))
	return &UploadResult{
		StorageKey: key,
		URL:        s.storage.PublicURL(key),
	}, nil
}

// DeleteImage removes a stored image
func (s *UploadService) DeleteImage(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return shared.NewDomainError("INVALID_STORAGE_KEY", "Storage key is required")
	}
	return s.storage.Delete(ctx, storageKey)
}
