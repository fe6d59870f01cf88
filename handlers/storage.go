package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"cleansync/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// StorageHandler exposes carpet photo upload endpoints.
type StorageHandler struct {
	Svc    storage.StorageService
	Logger *zap.Logger
}

func NewStorageHandler(svc storage.StorageService, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Svc: svc, Logger: logger}
}

// UploadPhotoHandler stores a carpet photo and returns its permanent
// identifier plus a public URL.
func (h *StorageHandler) UploadPhotoHandler(c *gin.Context) {
	fileHeader, err := c.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing photo upload"})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.New().String()+filepath.Ext(fileHeader.Filename))
	if err := c.SaveUploadedFile(fileHeader, tmpPath); err != nil {
		h.Logger.Error("failed to buffer photo upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process photo"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Svc.UploadPhoto(c.Request.Context(), tmpPath)
	if err != nil {
		h.Logger.Error("failed to upload photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store photo"})
		return
	}

	url, err := h.Svc.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		h.Logger.Warn("failed to resolve photo URL", zap.String("publicID", publicID), zap.Error(err))
	}

	c.JSON(http.StatusOK, gin.H{"photoRef": publicID, "url": url})
}
