package storage

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"inkhaus/models"
)

func stagedBatch(n int) []models.StagedFile {
	out := make([]models.StagedFile, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, models.StagedFile{
			Name:     fmt.Sprintf("ref-%d.jpg", i),
			Size:     int64(i * 1024),
			TempPath: fmt.Sprintf("/tmp/ref-%d.jpg", i),
		})
	}
	return out
}

func TestUploadStagedFilesHappyPath(t *testing.T) {
	calls := 0
	svc := &CloudinaryStorageService{
		uploadOne: func(ctx context.Context, path string) (string, string, error) {
			calls++
			return fmt.Sprintf("k%d", calls), fmt.Sprintf("https://cdn.example/%d.jpg", calls), nil
		},
	}

	uploaded, err := svc.UploadStagedFiles(context.Background(), stagedBatch(3))
	require.NoError(t, err)

	require.Len(t, uploaded, 3)
	assert.Equal(t, "k1", uploaded[0].Key)
	assert.Equal(t, "https://cdn.example/1.jpg", uploaded[0].URL)
	assert.Equal(t, "ref-1.jpg", uploaded[0].Name)
	assert.Equal(t, int64(1024), uploaded[0].Size)
}

func TestUploadStagedFilesMidBatchFailureReclaimsStoredFiles(t *testing.T) {
	calls := 0
	var destroyed []string
	svc := &CloudinaryStorageService{
		uploadOne: func(ctx context.Context, path string) (string, string, error) {
			calls++
			if calls == 3 {
				return "", "", errors.New("quota exceeded")
			}
			return fmt.Sprintf("k%d", calls), fmt.Sprintf("https://cdn.example/%d.jpg", calls), nil
		},
		destroyOne: func(ctx context.Context, key string) error {
			destroyed = append(destroyed, key)
			return nil
		},
	}

	uploaded, err := svc.UploadStagedFiles(context.Background(), stagedBatch(4))

	require.Error(t, err)
	assert.Nil(t, uploaded)
	assert.Contains(t, err.Error(), "ref-3.jpg")
	// The two files stored before the failure are destroyed again.
	assert.Equal(t, []string{"k1", "k2"}, destroyed)
}

func TestUploadStagedFilesMissingKeyFailsAndReclaims(t *testing.T) {
	calls := 0
	var destroyed []string
	svc := &CloudinaryStorageService{
		uploadOne: func(ctx context.Context, path string) (string, string, error) {
			calls++
			if calls == 2 {
				return "", "https://cdn.example/orphan.jpg", nil
			}
			return fmt.Sprintf("k%d", calls), fmt.Sprintf("https://cdn.example/%d.jpg", calls), nil
		},
		destroyOne: func(ctx context.Context, key string) error {
			destroyed = append(destroyed, key)
			return nil
		},
	}

	_, err := svc.UploadStagedFiles(context.Background(), stagedBatch(2))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no public ID")
	assert.Equal(t, []string{"k1"}, destroyed)
}

func TestUploadStagedFilesFirstFileFailureHasNothingToReclaim(t *testing.T) {
	var destroyed []string
	svc := &CloudinaryStorageService{
		uploadOne: func(ctx context.Context, path string) (string, string, error) {
			return "", "", errors.New("cloud down")
		},
		destroyOne: func(ctx context.Context, key string) error {
			destroyed = append(destroyed, key)
			return nil
		},
	}

	_, err := svc.UploadStagedFiles(context.Background(), stagedBatch(2))
	require.Error(t, err)
	assert.Empty(t, destroyed)
}

func TestUploadStagedFilesReclaimFailureStillReturnsBatchError(t *testing.T) {
	calls := 0
	svc := &CloudinaryStorageService{
		uploadOne: func(ctx context.Context, path string) (string, string, error) {
			calls++
			if calls == 2 {
				return "", "", errors.New("quota exceeded")
			}
			return "k1", "https://cdn.example/1.jpg", nil
		},
		destroyOne: func(ctx context.Context, key string) error {
			return errors.New("delete refused")
		},
	}

	_, err := svc.UploadStagedFiles(context.Background(), stagedBatch(2))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestDeleteFilesBestEffort(t *testing.T) {
	var destroyed []string
	svc := &CloudinaryStorageService{
		destroyOne: func(ctx context.Context, key string) error {
			destroyed = append(destroyed, key)
			if key == "bad" {
				return errors.New("delete refused")
			}
			return nil
		},
	}

	deleted, err := svc.DeleteFiles(context.Background(), []string{"k1", "", "bad", "k2"})

	// Empty keys are skipped, failures don't stop the loop.
	assert.Equal(t, 2, deleted)
	require.Error(t, err)
	assert.Equal(t, []string{"k1", "bad", "k2"}, destroyed)
}
