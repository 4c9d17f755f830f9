package broadcast

import (
	"context"
	"errors"
	"time"

	"onair/models"
)

// ErrSlotOverlap indicates a requested window conflicts with an existing
// scheduled or live slot on the same station.
var ErrSlotOverlap = errors.New("slot overlaps an existing broadcast slot")

// AvailabilityWindow is how far forward the availability query looks.
const AvailabilityWindow = 14 * 24 * time.Hour

// ScheduleSlotRequest is the input for scheduling a new broadcast slot.
type ScheduleSlotRequest struct {
	StationID string    `json:"stationId"`
	DJID      string    `json:"-"`
	Title     string    `json:"title" binding:"required"`
	StartTime time.Time `json:"startTime" binding:"required"`
	EndTime   time.Time `json:"endTime" binding:"required"`
}

// BroadcastService owns slot availability and lifecycle.
type BroadcastService interface {
	// GetBlockedSlots returns the station's blocked intervals inside
	// [now, now+AvailabilityWindow], ordered by start ascending.
	GetBlockedSlots(ctx context.Context, stationID string) ([]models.BlockedInterval, error)

	// PauseSlot transitions a live slot to paused. Any other status is a
	// silent no-op; only an unknown ID is an error.
	PauseSlot(ctx context.Context, slotID string) error

	// ResumeSlot transitions a paused slot back to live under the same
	// contract as PauseSlot.
	ResumeSlot(ctx context.Context, slotID string) error

	// ScheduleSlot validates and persists a new scheduled slot and queues
	// its reminder.
	ScheduleSlot(ctx context.Context, req ScheduleSlotRequest) (*models.BroadcastSlot, error)

	// SweepExpired pauses live slots whose endTime has passed. Returns the
	// number of slots transitioned.
	SweepExpired(ctx context.Context) (int, error)

	// History returns recent lifecycle transitions for a station.
	History(ctx context.Context, stationID string, limit int64) ([]models.BroadcastRecord, error)
}
