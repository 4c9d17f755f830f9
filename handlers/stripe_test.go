package handlers

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"onair/config"
	"onair/models"
	"onair/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type fakeBillingUserRepo struct {
	flags map[string]bool
}

func (f *fakeBillingUserRepo) GetByEmail(_ context.Context, email string) (*models.DJProfile, error) {
	return nil, nil
}

func (f *fakeBillingUserRepo) GetByID(_ context.Context, uid string) (*models.DJProfile, error) {
	return nil, nil
}

func (f *fakeBillingUserRepo) SetSubscriptionActive(_ context.Context, email string, active bool) error {
	if f.flags == nil {
		f.flags = map[string]bool{}
	}
	f.flags[email] = active
	return nil
}

func (f *fakeBillingUserRepo) UpdateAvatarURL(_ context.Context, uid, avatarURL string) error {
	return nil
}

func setupStripeRouter(repo *fakeBillingUserRepo, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewStripeHandler(&billing.Service{Users: repo}, secret)

	r := gin.New()
	r.GET("/api/stripe/webhook-test", h.WebhookTestHandler)
	r.POST("/api/stripe/webhook", h.WebhookHandler)
	return r
}

// signPayload builds a Stripe-Signature header the way Stripe does: the HMAC
// covers "<timestamp>.<payload>".
func signPayload(payload []byte, secret string, at time.Time) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", at.Unix(), payload)
	return fmt.Sprintf("t=%d,v1=%s", at.Unix(), hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeWebhookTest(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()
	config.AppConfig.StripeKey = "sk_test_abc"
	config.AppConfig.Env = "test"

	r := setupStripeRouter(&fakeBillingUserRepo{}, "whsec_abc")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stripe/webhook-test", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"secretKeyConfigured":true,"webhookSecretConfigured":true,"env":"test"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "sk_test_abc")
	assert.NotContains(t, rec.Body.String(), "whsec_abc")
}

func TestStripeWebhookTest_Unconfigured(t *testing.T) {
	prev := config.AppConfig
	defer func() { config.AppConfig = prev }()
	config.AppConfig.StripeKey = ""

	r := setupStripeRouter(&fakeBillingUserRepo{}, "")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stripe/webhook-test", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"secretKeyConfigured":false`)
	assert.Contains(t, rec.Body.String(), `"webhookSecretConfigured":false`)
}

func TestStripeWebhook_CheckoutCompleted(t *testing.T) {
	const secret = "whsec_test"
	repo := &fakeBillingUserRepo{}
	r := setupStripeRouter(repo, secret)

	payload := []byte(fmt.Sprintf(`{
		"id": "evt_1",
		"api_version": %q,
		"type": "checkout.session.completed",
		"data": {"object": {"id": "cs_1", "customer_email": "dj@onair.fm"}}
	}`, stripe.APIVersion))

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, secret, time.Now()))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, map[string]bool{"dj@onair.fm": true}, repo.flags)
}

func TestStripeWebhook_InvalidSignature(t *testing.T) {
	repo := &fakeBillingUserRepo{}
	r := setupStripeRouter(repo, "whsec_test")

	payload := []byte(`{"id":"evt_1","type":"checkout.session.completed","data":{"object":{}}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, "wrong-secret", time.Now()))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, repo.flags)
}

func TestStripeWebhook_StaleTimestampRejected(t *testing.T) {
	const secret = "whsec_test"
	r := setupStripeRouter(&fakeBillingUserRepo{}, secret)

	payload := []byte(`{"id":"evt_1","type":"ping","data":{"object":{}}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signPayload(payload, secret, time.Now().Add(-time.Hour)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestStripeWebhook_SecretNotConfigured(t *testing.T) {
	r := setupStripeRouter(&fakeBillingUserRepo{}, "")

	req := httptest.NewRequest(http.MethodPost, "/api/stripe/webhook", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
