package tasks

import (
	"encoding/json"
	"time"

	"cleansync/models"

	"github.com/hibiken/asynq"
)

const TypeReminderSend = "reminder:send"

// NewReminderTask builds a delayed pickup-reminder task firing at fireAt.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeReminderSend, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}
