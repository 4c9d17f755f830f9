package handlers

import (
	"errors"
	"net/http"

	"onair/services/livekit"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LiveKitHandler mints room access tokens for broadcasters and listeners.
type LiveKitHandler struct {
	Minter *livekit.TokenMinter
	URL    string
}

// NewLiveKitHandler creates a LiveKitHandler.
func NewLiveKitHandler(minter *livekit.TokenMinter, url string) *LiveKitHandler {
	return &LiveKitHandler{Minter: minter, URL: url}
}

// TokenHandler handles GET /api/livekit/token.
func (h *LiveKitHandler) TokenHandler(c *gin.Context) {
	logger := getLogger(c)

	room := c.Query("room")
	username := c.Query("username")
	if room == "" || username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing room or username"})
		return
	}

	token, err := h.Minter.Mint(room, username)
	if err != nil {
		if errors.Is(err, livekit.ErrNotConfigured) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "LiveKit not configured"})
			return
		}
		logger.Error("Failed to mint LiveKit token", zap.String("room", room), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mint token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"url":      h.URL,
		"room":     room,
		"username": username,
	})
}
