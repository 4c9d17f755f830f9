package handlers

import (
	"io"
	"net/http"

	"onair/config"
	"onair/services/billing"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76/webhook"
	"go.uber.org/zap"
)

// StripeHandler serves billing webhook endpoints.
type StripeHandler struct {
	Billing       *billing.Service
	WebhookSecret string
}

// NewStripeHandler creates a StripeHandler.
func NewStripeHandler(svc *billing.Service, webhookSecret string) *StripeHandler {
	return &StripeHandler{Billing: svc, WebhookSecret: webhookSecret}
}

// WebhookTestHandler handles GET /api/stripe/webhook-test. It reports which
// Stripe settings are configured, never the values themselves.
func (h *StripeHandler) WebhookTestHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"secretKeyConfigured":     config.AppConfig.StripeKey != "",
		"webhookSecretConfigured": h.WebhookSecret != "",
		"env":                     config.GetEnv(),
	})
}

// WebhookHandler handles POST /api/stripe/webhook.
func (h *StripeHandler) WebhookHandler(c *gin.Context) {
	logger := getLogger(c)

	if h.WebhookSecret == "" {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook secret not configured"})
		return
	}

	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<16))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read payload"})
		return
	}

	event, err := webhook.ConstructEvent(payload, c.GetHeader("Stripe-Signature"), h.WebhookSecret)
	if err != nil {
		logger.Warn("Stripe webhook signature verification failed", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}

	if err := h.Billing.HandleEvent(c.Request.Context(), event); err != nil {
		logger.Error("Failed to process stripe event",
			zap.String("event", event.ID), zap.String("type", string(event.Type)), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"received": true})
}
