package handlers

import (
	"net/http"

	"cleansync/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NotificationHandler exposes the notification center endpoints.
type NotificationHandler struct {
	Svc    notification.NotificationService
	Logger *zap.Logger
}

func NewNotificationHandler(svc notification.NotificationService, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{Svc: svc, Logger: logger}
}

// ListHandler returns the caller's notifications, newest first.
func (h *NotificationHandler) ListHandler(c *gin.Context) {
	userID := c.GetString("userID")

	notifications, err := h.Svc.List(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list notifications", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list notifications"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"notifications": notifications})
}

// SetReadHandler toggles the read flag of one notification.
func (h *NotificationHandler) SetReadHandler(c *gin.Context) {
	userID := c.GetString("userID")
	notificationID := c.Param("id")

	var input struct {
		Read *bool `json:"read"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	read := true
	if input.Read != nil {
		read = *input.Read
	}

	if err := h.Svc.SetRead(c.Request.Context(), userID, notificationID, read); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteHandler removes one notification.
func (h *NotificationHandler) DeleteHandler(c *gin.Context) {
	userID := c.GetString("userID")
	notificationID := c.Param("id")

	if err := h.Svc.Delete(c.Request.Context(), userID, notificationID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "notification not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
