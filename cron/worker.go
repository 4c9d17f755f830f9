package cron

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"onair/config"
	slotRepo "onair/database/repository/slot"
	userRepo "onair/database/repository/user"
	"onair/models"
	"onair/services/broadcast"
	"onair/services/tasks"
	"onair/utils"

	"firebase.google.com/go/v4/messaging"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// InitBroadcastWorker runs the asynq worker and scheduler in background.
// The worker pauses expired live slots (beacons on page unload are best
// effort and may never arrive) and delivers upcoming-slot reminders.
func InitBroadcastWorker(svc broadcast.BroadcastService, slots slotRepo.SlotRepository, users userRepo.UserRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisJobsDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSweepSlots, handleSweepTask(svc))
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(slots, users))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("@every 1m", tasks.NewSweepTask()); err != nil {
		log.Fatalf("[BroadcastWorker] failed to register sweep schedule: %v", err)
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[BroadcastWorker] scheduler stopped: %v", err)
		}
	}()

	go func() {
		log.Println("[BroadcastWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[BroadcastWorker] failed to start worker: %v", err)
		}
	}()
}

func handleSweepTask(svc broadcast.BroadcastService) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		swept, err := svc.SweepExpired(ctx)
		if err != nil {
			return fmt.Errorf("sweep failed: %w", err)
		}
		if swept > 0 {
			logger.Info("paused expired live slots", zap.Int("count", swept))
		}
		return nil
	}
}

func handleReminderTask(slots slotRepo.SlotRepository, users userRepo.UserRepository) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		logger := utils.GetLogger()

		var payload models.ReminderPayload
		if err := json.Unmarshal(t.Payload(), &payload); err != nil {
			return fmt.Errorf("bad reminder payload: %w", err)
		}

		// The slot may have been cancelled or started early since the task
		// was queued; a reminder then would only confuse the DJ.
		slot, err := slots.GetByID(ctx, payload.SlotID)
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if slot.Status != models.SlotStatusScheduled {
			return nil
		}

		profile, err := users.GetByID(ctx, payload.DJID)
		if err != nil {
			return err
		}
		if profile == nil || len(profile.FCMTokens) == 0 {
			return nil
		}

		msg := &messaging.MulticastMessage{
			Tokens: profile.FCMTokens,
			Notification: &messaging.Notification{
				Title: "You're on air soon",
				Body:  fmt.Sprintf("%s starts in 15 minutes", payload.Title),
			},
			Data: map[string]string{
				"slotId":    payload.SlotID,
				"stationId": payload.StationID,
			},
		}

		resp, err := utils.FCMClient.SendEachForMulticast(ctx, msg)
		if err != nil {
			return fmt.Errorf("failed to send reminder: %w", err)
		}
		logger.Info("sent slot reminder",
			zap.String("slotID", payload.SlotID),
			zap.Int("delivered", resp.SuccessCount),
			zap.Int("failed", resp.FailureCount))
		return nil
	}
}
