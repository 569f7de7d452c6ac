package storage

import (
	"context"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"inkhaus/config"
	"inkhaus/models"
	"inkhaus/utils"

	"go.uber.org/zap"
)

// NewStorageService creates a Cloudinary-backed StorageService from the
// loaded application configuration.
func NewStorageService() (StorageService, error) {
	cfg := config.AppConfig
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, fmt.Errorf("cloudinary credentials not set in configuration")
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return &CloudinaryStorageService{cld: cld, folder: cfg.CloudinaryFolder}, nil
}

func (s *CloudinaryStorageService) uploadFile(ctx context.Context, path string) (string, string, error) {
	if s.uploadOne != nil {
		return s.uploadOne(ctx, path)
	}
	result, err := s.cld.Upload.Upload(ctx, path, uploader.UploadParams{Folder: s.folder})
	if err != nil {
		return "", "", err
	}
	return result.PublicID, result.SecureURL, nil
}

func (s *CloudinaryStorageService) destroyFile(ctx context.Context, key string) error {
	if s.destroyOne != nil {
		return s.destroyOne(ctx, key)
	}
	_, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: key})
	return err
}

// UploadStagedFiles uploads each staged file into the configured folder.
// The first failed upload fails the whole batch, and the files stored
// before the failure are destroyed again so a half-finished batch never
// leaves orphaned storage behind.
func (s *CloudinaryStorageService) UploadStagedFiles(ctx context.Context, files []models.StagedFile) ([]models.UploadedFile, error) {
	uploaded := make([]models.UploadedFile, 0, len(files))
	for _, f := range files {
		key, fileURL, err := s.uploadFile(ctx, f.TempPath)
		if err != nil {
			s.reclaim(ctx, uploaded)
			return nil, fmt.Errorf("storage: failed to upload %q: %w", f.Name, err)
		}
		if key == "" {
			s.reclaim(ctx, uploaded)
			return nil, fmt.Errorf("storage: no public ID returned for %q", f.Name)
		}
		uploaded = append(uploaded, models.UploadedFile{
			Key:  key,
			Name: f.Name,
			Size: f.Size,
			URL:  fileURL,
		})
	}
	return uploaded, nil
}

// reclaim destroys the files a failed batch already stored, best effort.
func (s *CloudinaryStorageService) reclaim(ctx context.Context, uploaded []models.UploadedFile) {
	if len(uploaded) == 0 {
		return
	}
	keys := make([]string, 0, len(uploaded))
	for _, u := range uploaded {
		keys = append(keys, u.Key)
	}
	if _, err := s.DeleteFiles(ctx, keys); err != nil {
		utils.GetLogger().Warn("storage: failed to reclaim partial batch",
			zap.Strings("keys", keys), zap.Error(err))
	}
}

// DeleteFiles destroys files by public ID. Individual failures do not stop
// the loop; the caller decides whether the last error matters.
func (s *CloudinaryStorageService) DeleteFiles(ctx context.Context, keys []string) (int, error) {
	logger := utils.GetLogger()
	deleted := 0
	var lastErr error
	for _, key := range keys {
		if key == "" {
			continue
		}
		if err := s.destroyFile(ctx, key); err != nil {
			logger.Warn("storage: failed to delete file", zap.String("key", key), zap.Error(err))
			lastErr = err
			continue
		}
		deleted++
	}
	return deleted, lastErr
}
