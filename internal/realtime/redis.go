package realtime

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// RedisBroker publishes envelopes over Redis Pub/Sub and hands out
// subscriptions for the streaming endpoint. Redis keeps no backlog for
// pub/sub channels, which matches the at-most-once delivery contract:
// a client not connected at publish time never sees that frame.
type RedisBroker struct {
	client *redis.Client
}

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func (b *RedisBroker) Publish(ctx context.Context, channel, event string, payload Payload) error {
	frame, err := json.Marshal(Envelope{Event: event, Data: payload})
	if err != nil {
		return err
	}
	return b.client.Publish(ctx, channel, frame).Err()
}

// Subscribe opens a pub/sub subscription on the given channels. The caller
// owns the returned subscription and must close it.
func (b *RedisBroker) Subscribe(ctx context.Context, channels ...string) *redis.PubSub {
	return b.client.Subscribe(ctx, channels...)
}
