package handlers

import (
	"context"
	"errors"
	"net/http"

	slotRepo "onair/database/repository/slot"
	"onair/models"
	"onair/services/broadcast"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BroadcastHandler serves the slot availability and lifecycle endpoints.
type BroadcastHandler struct {
	Svc              broadcast.BroadcastService
	DefaultStationID string
}

// NewBroadcastHandler creates a BroadcastHandler.
func NewBroadcastHandler(svc broadcast.BroadcastService, defaultStationID string) *BroadcastHandler {
	return &BroadcastHandler{Svc: svc, DefaultStationID: defaultStationID}
}

func (h *BroadcastHandler) stationID(c *gin.Context) string {
	if id := c.Query("stationId"); id != "" {
		return id
	}
	return h.DefaultStationID
}

// AvailableSlotsHandler handles GET /api/broadcast/available-slots.
func (h *BroadcastHandler) AvailableSlotsHandler(c *gin.Context) {
	logger := getLogger(c)

	stationID := h.stationID(c)
	if stationID == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "No station configured"})
		return
	}

	blocked, err := h.Svc.GetBlockedSlots(c.Request.Context(), stationID)
	if err != nil {
		logger.Error("Failed to fetch available slots", zap.String("stationID", stationID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch available slots"})
		return
	}
	if blocked == nil {
		blocked = []models.BlockedInterval{}
	}

	c.JSON(http.StatusOK, gin.H{"blockedSlots": blocked})
}

type slotLifecycleRequest struct {
	SlotID string `json:"slotId" binding:"required"`
}

// PauseSlotHandler handles POST /api/broadcast/pause-slot. Built to be hit
// by a fire-and-forget beacon on page unload: duplicate and out-of-order
// deliveries succeed without a transition.
func (h *BroadcastHandler) PauseSlotHandler(c *gin.Context) {
	h.lifecycle(c, h.Svc.PauseSlot)
}

// ResumeSlotHandler handles POST /api/broadcast/resume-slot.
func (h *BroadcastHandler) ResumeSlotHandler(c *gin.Context) {
	h.lifecycle(c, h.Svc.ResumeSlot)
}

func (h *BroadcastHandler) lifecycle(c *gin.Context, op func(ctx context.Context, slotID string) error) {
	logger := getLogger(c)

	var req slotLifecycleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing slot ID"})
		return
	}

	if err := op(c.Request.Context(), req.SlotID); err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Slot not found"})
			return
		}
		logger.Error("Slot lifecycle update failed", zap.String("slotID", req.SlotID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update slot"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ScheduleSlotHandler handles POST /api/broadcast/schedule-slot.
func (h *BroadcastHandler) ScheduleSlotHandler(c *gin.Context) {
	logger := getLogger(c)

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var req broadcast.ScheduleSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid schedule request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}
	if req.StationID == "" {
		req.StationID = h.DefaultStationID
	}
	req.DJID = uid.(string)

	slot, err := h.Svc.ScheduleSlot(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSlotWindowInverted), errors.Is(err, models.ErrSlotWindowPast):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		case errors.Is(err, broadcast.ErrSlotOverlap):
			c.JSON(http.StatusConflict, gin.H{"error": "Requested window overlaps an existing slot"})
		default:
			logger.Error("Failed to schedule slot", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to schedule slot"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"slot": slot})
}

// HistoryHandler handles GET /api/broadcast/history.
func (h *BroadcastHandler) HistoryHandler(c *gin.Context) {
	logger := getLogger(c)

	records, err := h.Svc.History(c.Request.Context(), h.stationID(c), 100)
	if err != nil {
		logger.Error("Failed to fetch broadcast history", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch broadcast history"})
		return
	}
	if records == nil {
		records = []models.BroadcastRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}
