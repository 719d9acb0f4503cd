package channel

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"
)

// Bus is the narrow publish interface QuickFind uses to reach a user. One
// topic per user identity; the core never subscribes or manages topics.
type Bus interface {
	Publish(ctx context.Context, topic, event string, payload interface{}) error
}

// UserTopic returns the pub/sub topic addressed to one user identity.
func UserTopic(userID string) string {
	return "user-" + userID
}

// envelope is the wire format carried on every channel message.
type envelope struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// RedisBus implements Bus over Redis pub/sub. Delivery is fire-and-forget:
// a publish with no subscriber succeeds and the message is gone.
type RedisBus struct {
	client *redis.Client
}

// NewRedisBus creates a Bus backed by the given Redis client.
func NewRedisBus(client *redis.Client) *RedisBus {
	return &RedisBus{client: client}
}

func (b *RedisBus) Publish(ctx context.Context, topic, event string, payload interface{}) error {
	msg, err := json.Marshal(envelope{Event: event, Data: payload})
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", event, err)
	}
	if err := b.client.Publish(ctx, topic, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish %s to %s: %w", event, topic, err)
	}
	return nil
}
