package handlers

import (
	"net/http"
	"strconv"

	"cleansync/services/geocode"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GeocodeHandler exposes the address autocomplete endpoint.
type GeocodeHandler struct {
	Svc    geocode.Service
	Logger *zap.Logger
}

func NewGeocodeHandler(svc geocode.Service, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{Svc: svc, Logger: logger}
}

// AutocompleteHandler suggests formatted addresses for a free-text query.
func (h *GeocodeHandler) AutocompleteHandler(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing required query parameter: q"})
		return
	}
	country := c.Query("country")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "5"))

	suggestions, err := h.Svc.Autocomplete(c.Request.Context(), query, country, limit)
	if err != nil {
		h.Logger.Warn("address autocomplete failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Please try again later"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}
