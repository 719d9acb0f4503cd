package channel

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserTopic(t *testing.T) {
	assert.Equal(t, "user-client_42", UserTopic("client_42"))
	assert.Equal(t, "user-prov-1", UserTopic("prov-1"))
}

func TestRedisBusPublishesEnvelope(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	subscriber := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer subscriber.Close()
	sub := subscriber.Subscribe(ctx, UserTopic("client_42"))
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	publisher := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer publisher.Close()
	bus := NewRedisBus(publisher)

	payload := map[string]string{"requestId": "qf_1700000000_client_42"}
	require.NoError(t, bus.Publish(ctx, UserTopic("client_42"), "request_offered", payload))

	select {
	case msg := <-sub.Channel():
		assert.Equal(t, UserTopic("client_42"), msg.Channel)

		var env struct {
			Event string            `json:"event"`
			Data  map[string]string `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(msg.Payload), &env))
		assert.Equal(t, "request_offered", env.Event)
		assert.Equal(t, "qf_1700000000_client_42", env.Data["requestId"])
	case <-time.After(2 * time.Second):
		t.Fatal("no message received on channel")
	}
}

func TestRedisBusPublishWithNoSubscriberSucceeds(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	bus := NewRedisBus(client)
	// Fire-and-forget: nobody listening is not an error.
	assert.NoError(t, bus.Publish(context.Background(), UserTopic("nobody"), "request_offered", nil))
}
