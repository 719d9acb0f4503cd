package dispatch

import (
	"context"
	"encoding/json"
	"fmt"

	"quickfind/config"
	"quickfind/models"

	"github.com/hibiken/asynq"
)

const TypeSolicitationSend = "quickfind:solicitation"

// RedisOpt returns the asynq Redis connection settings for the dispatch queue.
func RedisOpt() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisDispatchDB,
	}
}

// QueueDispatcher enqueues solicitations onto the async dispatch queue. It
// implements quickfind.SolicitationDispatcher.
type QueueDispatcher struct {
	client *asynq.Client
}

// NewQueueDispatcher creates a dispatcher backed by the configured Redis queue.
func NewQueueDispatcher() *QueueDispatcher {
	return &QueueDispatcher{client: asynq.NewClient(RedisOpt())}
}

func (d *QueueDispatcher) Dispatch(ctx context.Context, payload models.SolicitationPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal solicitation payload: %w", err)
	}
	task := asynq.NewTask(TypeSolicitationSend, b)
	if _, err := d.client.EnqueueContext(ctx, task, asynq.MaxRetry(3)); err != nil {
		return fmt.Errorf("failed to enqueue solicitation: %w", err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (d *QueueDispatcher) Close() error {
	return d.client.Close()
}
