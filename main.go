// File: onair/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onair/config"
	"onair/cron"
	"onair/database"
	recordsRepo "onair/database/repository/records"
	slotRepoPkg "onair/database/repository/slot"
	userRepoPkg "onair/database/repository/user"
	"onair/handlers"
	"onair/middleware"
	"onair/routes"
	"onair/services/billing"
	"onair/services/broadcast"
	"onair/services/calendar"
	"onair/services/livekit"
	"onair/services/user"
	"onair/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	storageService, err := utils.Cloudinary()
	if err != nil {
		logger.Sugar().Warnf("main: cloudinary storage unavailable, avatar uploads disabled: %v", err)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	stripe.Key = config.AppConfig.StripeKey

	// repositories.
	slotRepo := slotRepoPkg.NewFirestoreSlotRepo()
	userRepo := userRepoPkg.NewFirestoreUserRepo()
	recRepo := recordsRepo.NewMongoRecordRepo()

	// background job client (shared Redis with the worker).
	jobsClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	})
	defer jobsClient.Close()

	// services.
	broadcastService := &broadcast.DefaultBroadcastService{
		Repo:    slotRepo,
		Records: recRepo,
		Cache:   utils.GetCacheClient(),
		Jobs:    jobsClient,
	}
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	calendarService := &calendar.Service{
		Client: utils.FirestoreClient,
	}
	billingService := &billing.Service{
		Users: userRepo,
	}
	tokenMinter := &livekit.TokenMinter{
		APIKey:    config.AppConfig.LiveKitAPIKey,
		APISecret: config.AppConfig.LiveKitAPISecret,
	}

	broadcastHandler := handlers.NewBroadcastHandler(broadcastService, config.AppConfig.DefaultStationID)
	calendarHandler := handlers.NewCalendarHandler(calendarService)
	livekitHandler := handlers.NewLiveKitHandler(tokenMinter, config.AppConfig.LiveKitURL)
	stripeHandler := handlers.NewStripeHandler(billingService, config.AppConfig.StripeWebhookSecret)
	userHandler := handlers.NewUserHandler(userService, storageService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		TokenVerifier: utils.AuthClient,

		// Broadcast endpoints.
		AvailableSlotsHandler: broadcastHandler.AvailableSlotsHandler,
		PauseSlotHandler:      broadcastHandler.PauseSlotHandler,
		ResumeSlotHandler:     broadcastHandler.ResumeSlotHandler,
		ScheduleSlotHandler:   broadcastHandler.ScheduleSlotHandler,
		HistoryHandler:        broadcastHandler.HistoryHandler,

		// Calendar endpoints.
		CalendarDisconnectHandler: calendarHandler.DisconnectHandler,

		// LiveKit endpoints.
		LiveKitTokenHandler: livekitHandler.TokenHandler,

		// Stripe endpoints.
		StripeWebhookHandler:     stripeHandler.WebhookHandler,
		StripeWebhookTestHandler: stripeHandler.WebhookTestHandler,

		// User endpoints.
		LookupByEmailHandler: userHandler.LookupByEmailHandler,
		UploadAvatarHandler:  userHandler.UploadAvatarHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background worker: expired-slot sweeper and DJ reminders.
	cron.InitBroadcastWorker(broadcastService, slotRepo, userRepo)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient()}, database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
