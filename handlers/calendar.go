package handlers

import (
	"net/http"

	"onair/services/calendar"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CalendarHandler serves the calendar connection endpoints.
type CalendarHandler struct {
	Svc *calendar.Service
}

// NewCalendarHandler creates a CalendarHandler.
func NewCalendarHandler(svc *calendar.Service) *CalendarHandler {
	return &CalendarHandler{Svc: svc}
}

// DisconnectHandler handles POST /api/calendar/disconnect. The UID comes
// from the verified bearer token set by FirebaseAuthMiddleware.
func (h *CalendarHandler) DisconnectHandler(c *gin.Context) {
	logger := getLogger(c)

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	if err := h.Svc.Disconnect(c.Request.Context(), uid.(string)); err != nil {
		logger.Error("Failed to disconnect calendar", zap.String("uid", uid.(string)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to disconnect calendar"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
