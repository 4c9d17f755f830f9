package routes

import (
	"net/http"
	"time"

	"onair/handlers"
	"onair/middleware"
	"onair/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterBroadcastRoutes registers slot availability and lifecycle endpoints.
func RegisterBroadcastRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/broadcast")
	{
		// Public: the scheduling UI polls availability, and pause-slot is a
		// beacon-style call that carries no credentials.
		api.GET("/available-slots", hb.AvailableSlotsHandler)
		api.POST("/pause-slot", hb.PauseSlotHandler)
		api.POST("/resume-slot", hb.ResumeSlotHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.FirebaseAuthMiddleware(hb.TokenVerifier))
		protected.POST("/schedule-slot", hb.ScheduleSlotHandler)
		protected.GET("/history", hb.HistoryHandler)
	}
}

// RegisterCalendarRoutes registers calendar connection endpoints.
func RegisterCalendarRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/calendar")
	{
		api.Use(middleware.FirebaseAuthMiddleware(hb.TokenVerifier))
		api.POST("/disconnect", hb.CalendarDisconnectHandler)
	}
}

// RegisterLiveKitRoutes registers media room token endpoints.
func RegisterLiveKitRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/livekit")
	{
		api.GET("/token", hb.LiveKitTokenHandler)
	}
}

// RegisterStripeRoutes registers billing webhook endpoints.
func RegisterStripeRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stripe")
	{
		api.GET("/webhook-test", hb.StripeWebhookTestHandler)
		api.POST("/webhook", hb.StripeWebhookHandler)
	}
}

// RegisterUserRoutes registers DJ profile endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.GET("/lookup-by-email", hb.LookupByEmailHandler)

		protected := api.Group("")
		protected.Use(middleware.FirebaseAuthMiddleware(hb.TokenVerifier))
		protected.POST("/avatar", hb.UploadAvatarHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterBroadcastRoutes(r, hb)
	RegisterCalendarRoutes(r, hb)
	RegisterLiveKitRoutes(r, hb)
	RegisterStripeRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterHealthRoute(r)
}
