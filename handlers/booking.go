package handlers

import (
	"net/http"

	"cleansync/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes draft session and booking lifecycle endpoints.
type BookingHandler struct {
	Svc    booking.SessionService
	Logger *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Svc: svc, Logger: logger}
}

// errStatus maps service errors to HTTP statuses: business-rule rejections
// are client errors, everything else is a generic server failure.
func errStatus(err error) int {
	if booking.IsBookingError(err) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// InitiateSession opens a new draft session.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	userID := c.GetString("userID")

	draft, err := h.Svc.InitiateSession(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to initiate booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// GetSession returns the current draft snapshot.
func (h *BookingHandler) GetSession(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")

	draft, err := h.Svc.GetSession(c.Request.Context(), sessionID, userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// SetDimensions replaces the draft's carpet dimensions.
func (h *BookingHandler) SetDimensions(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")

	var input struct {
		Length string `json:"length"`
		Width  string `json:"width"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.SetDimensions(c.Request.Context(), sessionID, userID, input.Length, input.Width)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// ApplyCoupon redeems a coupon code against the draft.
func (h *BookingHandler) ApplyCoupon(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")

	var input struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, message, err := h.Svc.ApplyCoupon(c.Request.Context(), sessionID, userID, input.Code)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft, "message": message})
}

// UpdateSchedule advances the draft's date/time selection.
func (h *BookingHandler) UpdateSchedule(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")

	var input booking.ScheduleUpdate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	draft, err := h.Svc.UpdateSchedule(c.Request.Context(), sessionID, userID, input)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"draft": draft})
}

// CancelSession discards the draft.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	userID := c.GetString("userID")
	sessionID := c.Param("sessionID")

	if err := h.Svc.CancelSession(c.Request.Context(), sessionID, userID); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

// ConfirmBooking finalizes the draft into a persisted booking.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	userID := c.GetString("userID")

	var input struct {
		SessionID string                 `json:"sessionID" binding:"required"`
		Contact   booking.ContactDetails `json:"contact" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	confirmed, err := h.Svc.ConfirmBooking(c.Request.Context(), input.SessionID, userID, input.Contact)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": confirmed})
}

// ListBookings returns the caller's bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	userID := c.GetString("userID")

	bookings, err := h.Svc.ListBookings(c.Request.Context(), userID)
	if err != nil {
		h.Logger.Error("failed to list bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list bookings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Reschedule patches the scheduled instant of a booking.
func (h *BookingHandler) Reschedule(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	var input struct {
		ScheduledAt string `json:"scheduledAt" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Svc.Reschedule(c.Request.Context(), bookingID, userID, input.ScheduledAt)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// UpdateProgressStage moves a booking through the fulfilment stages.
func (h *BookingHandler) UpdateProgressStage(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	var input struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Svc.UpdateProgressStage(c.Request.Context(), bookingID, userID, input.Stage)
	if err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": updated})
}

// CancelBooking removes a booking.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userID := c.GetString("userID")
	bookingID := c.Param("id")

	if err := h.Svc.CancelBooking(c.Request.Context(), bookingID, userID); err != nil {
		c.JSON(errStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}
