package handlers

import (
	"onair/middleware"

	"github.com/gin-gonic/gin"
)

// HandlerBundle aggregates every route handler the router needs, assembled
// in main once all services are wired.
type HandlerBundle struct {
	// Auth verification for protected routes.
	TokenVerifier middleware.TokenVerifier

	// Broadcast endpoints.
	AvailableSlotsHandler gin.HandlerFunc
	PauseSlotHandler      gin.HandlerFunc
	ResumeSlotHandler     gin.HandlerFunc
	ScheduleSlotHandler   gin.HandlerFunc
	HistoryHandler        gin.HandlerFunc

	// Calendar endpoints.
	CalendarDisconnectHandler gin.HandlerFunc

	// LiveKit endpoints.
	LiveKitTokenHandler gin.HandlerFunc

	// Stripe endpoints.
	StripeWebhookHandler     gin.HandlerFunc
	StripeWebhookTestHandler gin.HandlerFunc

	// User endpoints.
	LookupByEmailHandler gin.HandlerFunc
	UploadAvatarHandler  gin.HandlerFunc
}
