package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/clubhub/pkg/storage"
)

var (
	ErrStorageDisabled = errors.New("object storage is not configured")
	ErrFileTooLarge    = errors.New("file exceeds the upload size limit")
	ErrEmptyFile       = errors.New("file is empty")
)

const presignExpiry = 7 * 24 * time.Hour

type UploadResult struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type UploadService struct {
	Store    storage.ObjectStore
	MaxBytes int64
}

func NewUploadService(store storage.ObjectStore, maxBytes int64) *UploadService {
	return &UploadService{Store: store, MaxBytes: maxBytes}
}

// Upload stores r under uploads/<user>/<uuid><ext> and returns a presigned URL.
func (s *UploadService) Upload(ctx context.Context, userID uuid.UUID, filename, contentType string, size int64, r io.Reader) (UploadResult, error) {
	if s.Store == nil {
		return UploadResult{}, ErrStorageDisabled
	}
	if size <= 0 {
		return UploadResult{}, ErrEmptyFile
	}
	if s.MaxBytes > 0 && size > s.MaxBytes {
		return UploadResult{}, ErrFileTooLarge
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := fmt.Sprintf("uploads/%s/%s%s", userID, uuid.New(), strings.ToLower(path.Ext(filename)))
	if err := s.Store.Put(ctx, key, contentType, r, size); err != nil {
		return UploadResult{}, fmt.Errorf("store upload: %w", err)
	}
	url, err := s.Store.PresignedURL(ctx, key, presignExpiry)
	if err != nil {
		return UploadResult{}, fmt.Errorf("presign upload: %w", err)
	}
	return UploadResult{Key: key, URL: url}, nil
}
