package handlers

import (
	"net/http"

	"onair/services/storage"
	"onair/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves DJ profile endpoints.
type UserHandler struct {
	Svc     user.UserService
	Storage storage.StorageService
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc user.UserService, storageSvc storage.StorageService) *UserHandler {
	return &UserHandler{Svc: svc, Storage: storageSvc}
}

// LookupByEmailHandler handles GET /api/users/lookup-by-email. A missing
// profile is a benign null, not an error.
func (h *UserHandler) LookupByEmailHandler(c *gin.Context) {
	logger := getLogger(c)

	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing email"})
		return
	}

	profile, err := h.Svc.LookupByEmail(c.Request.Context(), email)
	if err != nil {
		logger.Error("Failed to look up user by email", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusOK, nil)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatarHandler handles POST /api/users/avatar. Requires a verified
// bearer token; the image lands on Cloudinary keyed by the caller's UID.
func (h *UserHandler) UploadAvatarHandler(c *gin.Context) {
	logger := getLogger(c)

	uid, exists := c.Get("uid")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	if h.Storage == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Avatar storage not configured"})
		return
	}

	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing avatar file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read avatar file"})
		return
	}
	defer file.Close()

	url, err := h.Storage.UploadAvatar(c.Request.Context(), file, uid.(string))
	if err != nil {
		logger.Error("Failed to upload avatar", zap.String("uid", uid.(string)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload avatar"})
		return
	}

	if err := h.Svc.SetAvatar(c.Request.Context(), uid.(string), url); err != nil {
		logger.Error("Failed to store avatar URL", zap.String("uid", uid.(string)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"avatarUrl": url})
}
