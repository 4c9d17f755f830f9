package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	token *auth.Token
	err   error
	seen  string
}

func (f *fakeVerifier) VerifyIDToken(_ context.Context, idToken string) (*auth.Token, error) {
	f.seen = idToken
	return f.token, f.err
}

func setupAuthRouter(v TokenVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", FirebaseAuthMiddleware(v), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uid":   c.GetString("uid"),
			"email": c.GetString("email"),
		})
	})
	return r
}

func TestFirebaseAuthMiddleware(t *testing.T) {
	v := &fakeVerifier{token: &auth.Token{
		UID:    "dj1",
		Claims: map[string]any{"email": "dj@onair.fm"},
	}}
	r := setupAuthRouter(v)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "good-token", v.seen)
	assert.Contains(t, rec.Body.String(), `"uid":"dj1"`)
	assert.Contains(t, rec.Body.String(), `"email":"dj@onair.fm"`)
}

func TestFirebaseAuthMiddleware_MissingHeader(t *testing.T) {
	r := setupAuthRouter(&fakeVerifier{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/protected", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFirebaseAuthMiddleware_MalformedHeader(t *testing.T) {
	r := setupAuthRouter(&fakeVerifier{})

	for _, header := range []string{"good-token", "Basic abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, header)
	}
}

func TestFirebaseAuthMiddleware_InvalidToken(t *testing.T) {
	r := setupAuthRouter(&fakeVerifier{err: errors.New("token expired")})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}
