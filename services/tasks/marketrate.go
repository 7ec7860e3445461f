package tasks

import (
	"encoding/json"
	"time"

	"sokoway/models"

	"github.com/hibiken/asynq"
)

const TypeMarketRateRefresh = "market:refresh"

// NewMarketRateTask builds the background task that recomputes per-corridor
// suggested prices. fireAt schedules the run; zero means immediately.
func NewMarketRateTask(payload models.MarketRatePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeMarketRateRefresh, b)

	var opts []asynq.Option
	if !fireAt.IsZero() {
		opts = append(opts, asynq.ProcessAt(fireAt))
	}
	return task, opts, nil
}
