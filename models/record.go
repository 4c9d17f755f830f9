package models

import "time"

// BroadcastRecord captures one slot lifecycle transition for the platform's
// operational audit trail (Mongo, not Firestore: the records belong to us,
// not to the web app).
type BroadcastRecord struct {
	ID        string     `bson:"id" json:"id"`
	SlotID    string     `bson:"slot_id" json:"slotId"`
	StationID string     `bson:"station_id" json:"stationId"`
	From      SlotStatus `bson:"from" json:"from"`
	To        SlotStatus `bson:"to" json:"to"`
	Actor     string     `bson:"actor" json:"actor"` // "client", "sweeper"
	At        time.Time  `bson:"at" json:"at"`
}
