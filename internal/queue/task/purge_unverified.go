package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const (
	PurgeUnverifiedTaskName  = "purgeUnverifiedTask"
	PurgeUnverifiedQueueName = "janitorQueue"
)

type PurgeUnverified struct {
	Email string `json:"email"`
}

// NewPurgeUnverifiedTask builds the delayed task that removes an account
// still unverified after its OTP deadline. The processor re-checks state, so
// duplicate tasks for the same email are harmless.
func NewPurgeUnverifiedTask(email string) (*asynq.Task, error) {
	var data PurgeUnverified
	data.Email = email

	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("json data marshal failed: %w", err)
	}

	return asynq.NewTask(
		PurgeUnverifiedTaskName,
		payload,
		asynq.MaxRetry(5),
		asynq.Queue(PurgeUnverifiedQueueName),
	), nil
}
