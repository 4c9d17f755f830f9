package livekit

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL bounds how long a minted room token stays valid.
const TokenTTL = 10 * time.Minute

// ErrNotConfigured indicates the LiveKit API key or secret is missing.
var ErrNotConfigured = errors.New("livekit api key/secret not configured")

// TokenMinter mints LiveKit room access tokens. LiveKit access tokens are
// plain HS256 JWTs carrying a "video" grant, so no SDK is needed here.
type TokenMinter struct {
	APIKey    string
	APISecret string
}

// Mint returns a signed access token granting join/publish/subscribe on the
// named room for the given participant identity.
func (m *TokenMinter) Mint(room, identity string) (string, error) {
	if m.APIKey == "" || m.APISecret == "" {
		return "", ErrNotConfigured
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"iss": m.APIKey,
		"sub": identity,
		"nbf": now.Unix(),
		"exp": now.Add(TokenTTL).Unix(),
		"video": map[string]any{
			"room":         room,
			"roomJoin":     true,
			"canPublish":   true,
			"canSubscribe": true,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(m.APISecret))
}
