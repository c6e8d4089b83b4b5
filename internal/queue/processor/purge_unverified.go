package processor

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/lovematch/backend/internal/queue/task"
	"github.com/lovematch/backend/internal/worker"

	"github.com/hibiken/asynq"
)

type purgeUnverifiedProcessor struct {
	workers *worker.Workers
}

func NewPurgeUnverifiedProcessor(workers *worker.Workers) *purgeUnverifiedProcessor {
	return &purgeUnverifiedProcessor{
		workers: workers,
	}
}

func (p *purgeUnverifiedProcessor) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var data task.PurgeUnverified
	err := json.Unmarshal(t.Payload(), &data)
	if err != nil {
		return fmt.Errorf("process purge unverified task json unmarshal failed: %w", err)
	}

	if err = p.workers.AccountJanitor.PurgeUnverified(ctx, data.Email); err != nil {
		return fmt.Errorf("purge unverified account failed: %w", err)
	}

	return nil
}
