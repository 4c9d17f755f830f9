package broadcast

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	recordsRepo "onair/database/repository/records"
	slotRepo "onair/database/repository/slot"
	"onair/models"
	"onair/services/tasks"
	"onair/utils"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// DefaultBroadcastService is the production implementation.
type DefaultBroadcastService struct {
	Repo    slotRepo.SlotRepository
	Records recordsRepo.RecordRepository
	Cache   *redis.Client
	Jobs    *asynq.Client

	// NowFn overrides the clock in tests; nil means time.Now.
	NowFn func() time.Time
}

func (s *DefaultBroadcastService) now() time.Time {
	if s.NowFn != nil {
		return s.NowFn()
	}
	return time.Now()
}

func (s *DefaultBroadcastService) GetBlockedSlots(ctx context.Context, stationID string) ([]models.BlockedInterval, error) {
	logger := utils.GetLogger()

	if cached, ok := s.cacheGet(ctx, stationID); ok {
		return cached, nil
	}

	now := s.now()
	slots, err := s.Repo.ListUpcoming(ctx, stationID, now, now.Add(AvailabilityWindow))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch upcoming slots: %w", err)
	}

	// Records without resolvable timestamps are dropped, not errored.
	intervals := make([]models.BlockedInterval, 0, len(slots))
	for _, slot := range slots {
		if interval, ok := slot.Interval(); ok {
			intervals = append(intervals, interval)
		}
	}

	s.cacheSet(ctx, stationID, intervals)
	logger.Debug("availability computed",
		zap.String("stationID", stationID), zap.Int("blocked", len(intervals)))
	return intervals, nil
}

func (s *DefaultBroadcastService) PauseSlot(ctx context.Context, slotID string) error {
	return s.transition(ctx, slotID, models.SlotStatusLive, models.SlotStatusPaused, "client")
}

func (s *DefaultBroadcastService) ResumeSlot(ctx context.Context, slotID string) error {
	return s.transition(ctx, slotID, models.SlotStatusPaused, models.SlotStatusLive, "client")
}

// transition applies the guarded status flip. The read-then-write race is
// benign: two racing callers both write the same value.
func (s *DefaultBroadcastService) transition(ctx context.Context, slotID string, from, to models.SlotStatus, actor string) error {
	slot, err := s.Repo.GetByID(ctx, slotID)
	if err != nil {
		return err
	}

	if slot.Status != from {
		// No-op by design of the contract: duplicate and out-of-order
		// deliveries must not error.
		return nil
	}

	if err := s.Repo.UpdateStatus(ctx, slotID, to); err != nil {
		return err
	}

	s.record(ctx, slot, from, to, actor)
	s.cacheInvalidate(ctx, slot.StationID)
	return nil
}

func (s *DefaultBroadcastService) ScheduleSlot(ctx context.Context, req ScheduleSlotRequest) (*models.BroadcastSlot, error) {
	now := s.now()

	slot := &models.BroadcastSlot{
		StationID: req.StationID,
		DJID:      req.DJID,
		Title:     req.Title,
		Status:    models.SlotStatusScheduled,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
	if err := slot.ValidateWindow(now); err != nil {
		return nil, err
	}

	existing, err := s.Repo.ListOverlapping(ctx, req.StationID, req.StartTime, req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("failed to check slot conflicts: %w", err)
	}
	if len(existing) > 0 {
		return nil, ErrSlotOverlap
	}

	if err := s.Repo.Create(ctx, slot); err != nil {
		return nil, err
	}

	s.cacheInvalidate(ctx, slot.StationID)
	s.enqueueReminder(slot)
	return slot, nil
}

func (s *DefaultBroadcastService) SweepExpired(ctx context.Context) (int, error) {
	logger := utils.GetLogger()

	expired, err := s.Repo.ListExpiredLive(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to list expired live slots: %w", err)
	}

	swept := 0
	for _, slot := range expired {
		if err := s.Repo.UpdateStatus(ctx, slot.ID, models.SlotStatusPaused); err != nil {
			logger.Error("sweeper: failed to pause expired slot",
				zap.String("slotID", slot.ID), zap.Error(err))
			continue
		}
		s.record(ctx, &slot, models.SlotStatusLive, models.SlotStatusPaused, "sweeper")
		s.cacheInvalidate(ctx, slot.StationID)
		swept++
	}
	return swept, nil
}

func (s *DefaultBroadcastService) History(ctx context.Context, stationID string, limit int64) ([]models.BroadcastRecord, error) {
	if s.Records == nil {
		return nil, nil
	}
	return s.Records.ListRecent(ctx, stationID, limit)
}

// record appends the transition to the audit trail. Best effort: a records
// outage must not fail the lifecycle operation.
func (s *DefaultBroadcastService) record(ctx context.Context, slot *models.BroadcastSlot, from, to models.SlotStatus, actor string) {
	if s.Records == nil {
		return
	}
	err := s.Records.Insert(ctx, models.BroadcastRecord{
		SlotID:    slot.ID,
		StationID: slot.StationID,
		From:      from,
		To:        to,
		Actor:     actor,
		At:        s.now(),
	})
	if err != nil {
		utils.GetLogger().Error("failed to record slot transition",
			zap.String("slotID", slot.ID), zap.Error(err))
	}
}

func (s *DefaultBroadcastService) enqueueReminder(slot *models.BroadcastSlot) {
	if s.Jobs == nil {
		return
	}
	logger := utils.GetLogger()

	fireAt := slot.StartTime.Add(-tasks.ReminderLead)
	if fireAt.Before(s.now()) {
		return
	}

	task, opts, err := tasks.NewReminderTask(models.ReminderPayload{
		SlotID:    slot.ID,
		StationID: slot.StationID,
		DJID:      slot.DJID,
		Title:     slot.Title,
	}, fireAt)
	if err != nil {
		logger.Error("failed to build reminder task", zap.Error(err))
		return
	}
	if _, err := s.Jobs.Enqueue(task, opts...); err != nil {
		logger.Error("failed to enqueue reminder task",
			zap.String("slotID", slot.ID), zap.Error(err))
	}
}

// --- availability cache ---

func (s *DefaultBroadcastService) cacheKey(stationID string) string {
	return utils.AvailabilityCachePrefix + stationID
}

func (s *DefaultBroadcastService) cacheGet(ctx context.Context, stationID string) ([]models.BlockedInterval, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, s.cacheKey(stationID)).Result()
	if err != nil {
		return nil, false
	}
	var intervals []models.BlockedInterval
	if err := json.Unmarshal([]byte(raw), &intervals); err != nil {
		return nil, false
	}
	return intervals, true
}

func (s *DefaultBroadcastService) cacheSet(ctx context.Context, stationID string, intervals []models.BlockedInterval) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(intervals)
	if err != nil {
		return
	}
	// Cache failures degrade to direct queries, never to handler errors.
	if err := s.Cache.Set(ctx, s.cacheKey(stationID), raw, utils.AvailabilityCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("availability cache set failed", zap.Error(err))
	}
}

func (s *DefaultBroadcastService) cacheInvalidate(ctx context.Context, stationID string) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, s.cacheKey(stationID)).Err(); err != nil {
		utils.GetLogger().Debug("availability cache invalidate failed", zap.Error(err))
	}
}
