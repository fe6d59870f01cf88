package handlers

import (
	"io"
	"net/http"

	"cleansync/services/booking"
	"cleansync/services/vision"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// VisionHandler exposes the carpet photo analysis endpoint.
type VisionHandler struct {
	Classifier vision.CarpetClassifier
	BookingSvc booking.SessionService
	Logger     *zap.Logger
}

func NewVisionHandler(classifier vision.CarpetClassifier, bookingSvc booking.SessionService, logger *zap.Logger) *VisionHandler {
	return &VisionHandler{Classifier: classifier, BookingSvc: bookingSvc, Logger: logger}
}

// AnalyzeHandler classifies an uploaded carpet photo. When a sessionID form
// field is present the verdict (and optional photoRef) is attached to the
// draft, adopting accepted dimensions as a suggestion.
func (h *VisionHandler) AnalyzeHandler(c *gin.Context) {
	file, _, err := c.Request.FormFile("photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing photo upload"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read photo upload"})
		return
	}

	analysis := h.Classifier.Analyze(c.Request.Context(), data)

	sessionID := c.PostForm("sessionID")
	if sessionID == "" {
		c.JSON(http.StatusOK, gin.H{"analysis": analysis})
		return
	}

	userID := c.GetString("userID")
	photoRef := c.PostForm("photoRef")
	draft, err := h.BookingSvc.AttachPhoto(c.Request.Context(), sessionID, userID, photoRef, &analysis)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"analysis": analysis, "draft": draft})
}
