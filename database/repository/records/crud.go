// File: database/repository/records/crud.go
package recordsRepo

import (
	"context"
	"fmt"
	"time"

	"onair/database"
	"onair/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoRecordRepo struct {
	coll *mongo.Collection
}

// NewMongoRecordRepo returns a RecordRepository backed by the shared Mongo
// client.
func NewMongoRecordRepo() RecordRepository {
	coll := database.MongoClient.Database("onair").Collection("broadcast_records")
	return &mongoRecordRepo{coll: coll}
}

func (repo *mongoRecordRepo) Insert(ctx context.Context, record models.BroadcastRecord) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if record.ID == "" {
		record.ID = uuid.New().String()
	}
	if record.At.IsZero() {
		record.At = time.Now()
	}

	if _, err := repo.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("failed to insert broadcast record: %w", err)
	}
	return nil
}

func (repo *mongoRecordRepo) ListRecent(ctx context.Context, stationID string, limit int64) ([]models.BroadcastRecord, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if stationID != "" {
		filter["station_id"] = stationID
	}

	opts := options.Find().SetSort(bson.M{"at": -1}).SetLimit(limit)
	cursor, err := repo.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch broadcast records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BroadcastRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding broadcast records: %w", err)
	}
	return records, nil
}
