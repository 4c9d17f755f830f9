package models

import (
	"errors"
	"time"
)

// SlotStatus enumerates the lifecycle states a broadcast slot moves through.
type SlotStatus string

const (
	SlotStatusScheduled SlotStatus = "scheduled"
	SlotStatusLive      SlotStatus = "live"
	SlotStatusPaused    SlotStatus = "paused"
)

// BroadcastSlot is a scheduled time window during which a station broadcasts.
// Stored in the Firestore "broadcast-slots" collection owned by the web app.
type BroadcastSlot struct {
	ID        string     `firestore:"-" json:"id"`
	StationID string     `firestore:"stationId" json:"stationId"`
	DJID      string     `firestore:"djId" json:"djId"`
	Title     string     `firestore:"title" json:"title"`
	Status    SlotStatus `firestore:"status" json:"status"`
	StartTime time.Time  `firestore:"startTime" json:"startTime"`
	EndTime   time.Time  `firestore:"endTime" json:"endTime"`
	CreatedAt time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `firestore:"updatedAt" json:"updatedAt"`
}

// BlockedInterval is a {start, end} epoch-millisecond pair representing a
// window unavailable for new scheduling.
type BlockedInterval struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

var (
	ErrSlotWindowInverted = errors.New("slot endTime must be after startTime")
	ErrSlotWindowPast     = errors.New("slot startTime must be in the future")
)

// ValidateWindow enforces startTime < endTime and a future start. Applied on
// creation only; documents written by other clients are tolerated on read.
func (s *BroadcastSlot) ValidateWindow(now time.Time) error {
	if !s.StartTime.Before(s.EndTime) {
		return ErrSlotWindowInverted
	}
	if s.StartTime.Before(now) {
		return ErrSlotWindowPast
	}
	return nil
}

// Interval maps the slot to a blocked interval in epoch milliseconds. The
// second return is false when either timestamp is unresolved (zero value);
// such records are dropped from availability, never surfaced as errors.
func (s *BroadcastSlot) Interval() (BlockedInterval, bool) {
	if s.StartTime.IsZero() || s.EndTime.IsZero() {
		return BlockedInterval{}, false
	}
	return BlockedInterval{
		Start: s.StartTime.UnixMilli(),
		End:   s.EndTime.UnixMilli(),
	}, true
}

// Overlaps reports whether the slot's window intersects [start, end).
func (s *BroadcastSlot) Overlaps(start, end time.Time) bool {
	return s.StartTime.Before(end) && start.Before(s.EndTime)
}
