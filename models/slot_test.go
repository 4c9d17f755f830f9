package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateWindow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		start   time.Time
		end     time.Time
		wantErr error
	}{
		{"valid future window", now.Add(time.Hour), now.Add(2 * time.Hour), nil},
		{"end equals start", now.Add(time.Hour), now.Add(time.Hour), ErrSlotWindowInverted},
		{"end before start", now.Add(2 * time.Hour), now.Add(time.Hour), ErrSlotWindowInverted},
		{"start in the past", now.Add(-time.Hour), now.Add(time.Hour), ErrSlotWindowPast},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot := BroadcastSlot{StartTime: tt.start, EndTime: tt.end}
			err := slot.ValidateWindow(now)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestInterval(t *testing.T) {
	start := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)

	slot := BroadcastSlot{StartTime: start, EndTime: end}
	interval, ok := slot.Interval()
	require.True(t, ok)
	assert.Equal(t, start.UnixMilli(), interval.Start)
	assert.Equal(t, end.UnixMilli(), interval.End)
}

func TestInterval_MissingTimestampsDropped(t *testing.T) {
	end := time.Date(2026, 3, 1, 22, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		slot BroadcastSlot
	}{
		{"missing start", BroadcastSlot{EndTime: end}},
		{"missing end", BroadcastSlot{StartTime: end}},
		{"missing both", BroadcastSlot{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := tt.slot.Interval()
			assert.False(t, ok)
		})
	}
}

func TestOverlaps(t *testing.T) {
	base := time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC)
	slot := BroadcastSlot{StartTime: base, EndTime: base.Add(2 * time.Hour)}

	assert.True(t, slot.Overlaps(base.Add(time.Hour), base.Add(3*time.Hour)))
	assert.True(t, slot.Overlaps(base.Add(-time.Hour), base.Add(time.Hour)))
	assert.True(t, slot.Overlaps(base.Add(30*time.Minute), base.Add(time.Hour)))

	// Touching windows do not overlap.
	assert.False(t, slot.Overlaps(base.Add(2*time.Hour), base.Add(3*time.Hour)))
	assert.False(t, slot.Overlaps(base.Add(-time.Hour), base))
}
