package slotRepo

import (
	"context"
	"errors"
	"time"

	"onair/models"
)

// ErrSlotNotFound is returned when a slot identifier does not resolve.
var ErrSlotNotFound = errors.New("slot not found")

// SlotRepository abstracts the Firestore "broadcast-slots" collection.
type SlotRepository interface {
	// Create persists a new slot and assigns its ID.
	Create(ctx context.Context, slot *models.BroadcastSlot) error

	// GetByID fetches a single slot. Returns ErrSlotNotFound for unknown IDs.
	GetByID(ctx context.Context, slotID string) (*models.BroadcastSlot, error)

	// UpdateStatus writes the slot's status field. The caller is responsible
	// for the guarded read that makes this idempotent.
	UpdateStatus(ctx context.Context, slotID string, status models.SlotStatus) error

	// ListUpcoming returns slots for a station with status scheduled or live
	// whose startTime falls in [from, to], ordered by startTime ascending.
	ListUpcoming(ctx context.Context, stationID string, from, to time.Time) ([]models.BroadcastSlot, error)

	// ListOverlapping returns slots for a station with status scheduled or
	// live whose window intersects [start, end). Used for conflict checks.
	ListOverlapping(ctx context.Context, stationID string, start, end time.Time) ([]models.BroadcastSlot, error)

	// ListExpiredLive returns live slots across all stations whose endTime
	// has passed. Used by the background sweeper.
	ListExpiredLive(ctx context.Context, now time.Time) ([]models.BroadcastSlot, error)
}
