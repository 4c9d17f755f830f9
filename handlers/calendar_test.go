package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalendarDisconnect_RequiresAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewCalendarHandler(nil)

	r := gin.New()
	r.POST("/api/calendar/disconnect", h.DisconnectHandler)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/calendar/disconnect", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
