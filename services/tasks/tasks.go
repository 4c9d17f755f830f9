package tasks

import (
	"encoding/json"
	"time"

	"onair/models"

	"github.com/hibiken/asynq"
)

const (
	TypeSendReminder = "reminder:send"
	TypeSweepSlots   = "slots:sweep"
)

// ReminderLead is how long before a slot's start the DJ is notified.
const ReminderLead = 15 * time.Minute

// NewReminderTask builds an upcoming-slot reminder scheduled for fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// NewSweepTask builds the periodic expired-slot sweep.
func NewSweepTask() *asynq.Task {
	return asynq.NewTask(TypeSweepSlots, nil)
}
