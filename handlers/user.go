package handlers

import (
	"net/http"

	"cleansync/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes account endpoints.
type UserHandler struct {
	Svc    user.UserService
	Logger *zap.Logger
}

func NewUserHandler(svc user.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

func userErrStatus(err error) int {
	if user.IsUserError(err) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// RegisterHandler creates a new account.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var input struct {
		FullName string `json:"fullName" binding:"required"`
		Email    string `json:"email" binding:"required"`
		Phone    string `json:"phone"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.Register(c.Request.Context(), input.FullName, input.Email, input.Phone, input.Password)
	if err != nil {
		c.JSON(userErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// AuthenticateHandler signs a user in.
func (h *UserHandler) AuthenticateHandler(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	result, err := h.Svc.Authenticate(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetByIDHandler returns the account profile. Callers can only read their own.
func (h *UserHandler) GetByIDHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if c.Param("id") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot access another account"})
		return
	}

	u, err := h.Svc.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "account not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateHandler updates the mutable profile fields.
func (h *UserHandler) UpdateHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if c.Param("id") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot modify another account"})
		return
	}

	var input struct {
		FullName string `json:"fullName"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	u, err := h.Svc.UpdateProfile(c.Request.Context(), userID, input.FullName, input.Phone, input.Address)
	if err != nil {
		c.JSON(userErrStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": u})
}

// UpdateFCMTokenHandler registers the device push token.
func (h *UserHandler) UpdateFCMTokenHandler(c *gin.Context) {
	userID := c.GetString("userID")

	var input struct {
		FCMToken string `json:"fcmToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Svc.UpdateFCMToken(c.Request.Context(), userID, input.FCMToken); err != nil {
		h.Logger.Error("failed to update FCM token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update push token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}

// DeleteHandler removes the account.
func (h *UserHandler) DeleteHandler(c *gin.Context) {
	userID := c.GetString("userID")
	if c.Param("id") != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot delete another account"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID); err != nil {
		h.Logger.Error("failed to delete account", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete account"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
