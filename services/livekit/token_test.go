package livekit

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMint(t *testing.T) {
	m := &TokenMinter{APIKey: "api-key", APISecret: "api-secret"}

	signed, err := m.Mint("main-room", "selector")
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (any, error) {
		return []byte("api-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	assert.Equal(t, "api-key", claims["iss"])
	assert.Equal(t, "selector", claims["sub"])

	video, ok := claims["video"].(map[string]any)
	require.True(t, ok, "token must carry a video grant")
	assert.Equal(t, "main-room", video["room"])
	assert.Equal(t, true, video["roomJoin"])
	assert.Equal(t, true, video["canPublish"])
	assert.Equal(t, true, video["canSubscribe"])

	exp, err := claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(TokenTTL), exp.Time, 5*time.Second)
}

func TestMint_NotConfigured(t *testing.T) {
	for _, m := range []*TokenMinter{
		{},
		{APIKey: "api-key"},
		{APISecret: "api-secret"},
	} {
		_, err := m.Mint("room", "user")
		assert.ErrorIs(t, err, ErrNotConfigured)
	}
}

func TestMint_WrongSecretRejected(t *testing.T) {
	m := &TokenMinter{APIKey: "api-key", APISecret: "api-secret"}

	signed, err := m.Mint("room", "user")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(tok *jwt.Token) (any, error) {
		return []byte("other-secret"), nil
	})
	assert.Error(t, err)
}
