package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"inkhaus/services/storage"
	"inkhaus/utils"
)

// StorageHandler handles the upload cleanup relay endpoint.
type StorageHandler struct {
	StorageSvc storage.StorageService
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{StorageSvc: svc}
}

// CleanupHandler deletes uploaded files by key. It backs the best-effort
// rollback path, so its own failures are reported but carry no user-facing
// consequence beyond the response body.
func (h *StorageHandler) CleanupHandler(c *gin.Context) {
	var input struct {
		Keys []string `json:"keys"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "No keys provided."})
		return
	}

	keys := make([]string, 0, len(input.Keys))
	for _, k := range input.Keys {
		if k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "No keys provided."})
		return
	}

	deleted, err := h.StorageSvc.DeleteFiles(c.Request.Context(), keys)
	if err != nil {
		utils.GetLogger().Warn("upload cleanup failed", zap.Int("deleted", deleted), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "Cleanup failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "deleted": deleted})
}
