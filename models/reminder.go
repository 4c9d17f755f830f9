package models

// ReminderPayload is the asynq task payload for an upcoming-slot reminder.
type ReminderPayload struct {
	SlotID    string `json:"slotId"`
	StationID string `json:"stationId"`
	DJID      string `json:"djId"`
	Title     string `json:"title"`
}
