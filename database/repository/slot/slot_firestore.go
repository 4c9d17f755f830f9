// File: database/repository/slot/slot_firestore.go
package slotRepo

import (
	"context"
	"fmt"
	"time"

	"onair/config"
	"onair/models"
	"onair/utils"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
)

type firestoreSlotRepo struct {
	client *firestore.Client
}

// NewFirestoreSlotRepo returns a SlotRepository backed by the shared
// Firestore client.
func NewFirestoreSlotRepo() SlotRepository {
	return &firestoreSlotRepo{client: utils.FirestoreClient}
}

func (repo *firestoreSlotRepo) coll() *firestore.CollectionRef {
	return repo.client.Collection(config.SlotsCollection)
}

func (repo *firestoreSlotRepo) Create(ctx context.Context, slot *models.BroadcastSlot) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if slot.ID == "" {
		slot.ID = uuid.New().String()
	}
	now := time.Now()
	slot.CreatedAt = now
	slot.UpdatedAt = now

	if _, err := repo.coll().Doc(slot.ID).Create(ctx, slot); err != nil {
		return fmt.Errorf("failed to create slot: %w", err)
	}
	return nil
}

func (repo *firestoreSlotRepo) GetByID(ctx context.Context, slotID string) (*models.BroadcastSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	snap, err := repo.coll().Doc(slotID).Get(ctx)
	if err != nil {
		if snap != nil && !snap.Exists() {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("failed to fetch slot %s: %w", slotID, err)
	}

	var slot models.BroadcastSlot
	if err := snap.DataTo(&slot); err != nil {
		return nil, fmt.Errorf("failed to decode slot %s: %w", slotID, err)
	}
	slot.ID = snap.Ref.ID
	return &slot, nil
}

func (repo *firestoreSlotRepo) UpdateStatus(ctx context.Context, slotID string, status models.SlotStatus) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := repo.coll().Doc(slotID).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
		{Path: "updatedAt", Value: time.Now()},
	})
	if err != nil {
		return fmt.Errorf("failed to update slot %s status: %w", slotID, err)
	}
	return nil
}

func (repo *firestoreSlotRepo) ListUpcoming(ctx context.Context, stationID string, from, to time.Time) ([]models.BroadcastSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := repo.coll().
		Where("stationId", "==", stationID).
		Where("status", "in", []string{string(models.SlotStatusScheduled), string(models.SlotStatusLive)}).
		Where("startTime", ">=", from).
		Where("startTime", "<=", to).
		OrderBy("startTime", firestore.Asc)

	return repo.collectSlots(query.Documents(ctx))
}

func (repo *firestoreSlotRepo) ListOverlapping(ctx context.Context, stationID string, start, end time.Time) ([]models.BroadcastSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Firestore cannot range-filter on two fields; fetch candidates by
	// startTime and narrow on endTime here.
	query := repo.coll().
		Where("stationId", "==", stationID).
		Where("status", "in", []string{string(models.SlotStatusScheduled), string(models.SlotStatusLive)}).
		Where("startTime", "<", end)

	candidates, err := repo.collectSlots(query.Documents(ctx))
	if err != nil {
		return nil, err
	}

	var overlapping []models.BroadcastSlot
	for _, slot := range candidates {
		if slot.Overlaps(start, end) {
			overlapping = append(overlapping, slot)
		}
	}
	return overlapping, nil
}

func (repo *firestoreSlotRepo) ListExpiredLive(ctx context.Context, now time.Time) ([]models.BroadcastSlot, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := repo.coll().
		Where("status", "==", string(models.SlotStatusLive)).
		Where("endTime", "<=", now)

	return repo.collectSlots(query.Documents(ctx))
}

// collectSlots drains a document iterator. Documents that fail to decode are
// skipped rather than failing the whole query; the store does not guarantee
// every record is well formed.
func (repo *firestoreSlotRepo) collectSlots(iter *firestore.DocumentIterator) ([]models.BroadcastSlot, error) {
	defer iter.Stop()

	var slots []models.BroadcastSlot
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate slots: %w", err)
		}

		var slot models.BroadcastSlot
		if err := snap.DataTo(&slot); err != nil {
			continue
		}
		slot.ID = snap.Ref.ID
		slots = append(slots, slot)
	}
	return slots, nil
}
