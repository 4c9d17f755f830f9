package recordsRepo

import (
	"context"

	"onair/models"
)

// RecordRepository stores the platform's broadcast transition audit trail.
type RecordRepository interface {
	Insert(ctx context.Context, record models.BroadcastRecord) error
	ListRecent(ctx context.Context, stationID string, limit int64) ([]models.BroadcastRecord, error)
}
