package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"onair/services/livekit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupLiveKitRouter(minter *livekit.TokenMinter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewLiveKitHandler(minter, "wss://onair.livekit.cloud")

	r := gin.New()
	r.GET("/api/livekit/token", h.TokenHandler)
	return r
}

func TestLiveKitToken(t *testing.T) {
	r := setupLiveKitRouter(&livekit.TokenMinter{APIKey: "key", APISecret: "secret"})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/livekit/token?room=main&username=selector", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"token"`)
	assert.Contains(t, rec.Body.String(), `"url":"wss://onair.livekit.cloud"`)
	assert.Contains(t, rec.Body.String(), `"room":"main"`)
}

func TestLiveKitToken_MissingParams(t *testing.T) {
	r := setupLiveKitRouter(&livekit.TokenMinter{APIKey: "key", APISecret: "secret"})

	for _, path := range []string{
		"/api/livekit/token",
		"/api/livekit/token?room=main",
		"/api/livekit/token?username=selector",
	} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
	}
}

func TestLiveKitToken_NotConfigured(t *testing.T) {
	r := setupLiveKitRouter(&livekit.TokenMinter{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/livekit/token?room=main&username=selector", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "LiveKit not configured")
}
