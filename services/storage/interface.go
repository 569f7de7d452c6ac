package storage

import (
	"context"

	"github.com/cloudinary/cloudinary-go/v2"

	"inkhaus/models"
)

// StorageService defines the interface for reference-file storage operations.
type StorageService interface {
	// UploadStagedFiles uploads the staged files in order and returns one
	// result per stored file. An error means the batch failed as a whole.
	UploadStagedFiles(ctx context.Context, files []models.StagedFile) ([]models.UploadedFile, error)
	// DeleteFiles removes files by their storage keys, best effort. It
	// returns how many deletions succeeded along with the last error seen.
	DeleteFiles(ctx context.Context, keys []string) (int, error)
}

// CloudinaryStorageService implements StorageService using Cloudinary.
type CloudinaryStorageService struct {
	cld    *cloudinary.Cloudinary
	folder string

	// Per-file seams; nil means the Cloudinary client is called directly.
	uploadOne  func(ctx context.Context, path string) (key, url string, err error)
	destroyOne func(ctx context.Context, key string) error
}
