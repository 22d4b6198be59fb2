package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

// Publisher - sends game events to a redis pub/sub channel. Nothing is stored.
type Publisher struct {
	client  *redis.Client
	channel string
}

// New - connects to redis and checks the connection.
func New(ctx context.Context, addr, channel string) (*Publisher, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(client, channel), nil
}

func NewWithClient(client *redis.Client, channel string) *Publisher {
	return &Publisher{
		client:  client,
		channel: channel,
	}
}

// Publish - sends the event as JSON.
func (that *Publisher) Publish(ctx context.Context, event *entity.Event) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err = that.client.Publish(ctx, that.channel, eventJSON).Err(); err != nil {
		return fmt.Errorf("failed to publish event in Redis: %w", err)
	}

	return nil
}

func (that *Publisher) Close() error {
	return that.client.Close()
}

// Nop - used when no event channel is configured.
type Nop struct{}

func (Nop) Publish(context.Context, *entity.Event) error {
	return nil
}

func (Nop) Close() error {
	return nil
}
