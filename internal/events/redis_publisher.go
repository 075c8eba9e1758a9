// Package events delivers account change notifications to Redis Streams.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SscSPs/accounts_service/internal/apperrors"
	"github.com/SscSPs/accounts_service/internal/core/ports/events"
	"github.com/redis/go-redis/v9"
)

// DefaultStreamMaxLen caps the stream length; trimming is approximate.
const DefaultStreamMaxLen = 100_000

// StreamClient is the subset of *redis.Client the publisher needs.
type StreamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Ping(ctx context.Context) *redis.StatusCmd
}

type RedisStreamPublisher struct {
	client StreamClient
	stream string
	maxLen int64
}

var _ events.AccountEventPublisher = (*RedisStreamPublisher)(nil)

func NewRedisStreamPublisher(client StreamClient, stream string) *RedisStreamPublisher {
	return &RedisStreamPublisher{client: client, stream: stream, maxLen: DefaultStreamMaxLen}
}

// Publish appends the event to the stream as a single JSON "event" field,
// with the type duplicated so consumers can filter without decoding.
func (p *RedisStreamPublisher) Publish(ctx context.Context, event events.AccountEvent) error {
	eventJSON, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	args := &redis.XAddArgs{
		Stream: p.stream,
		MaxLen: p.maxLen,
		Approx: true,
		Values: map[string]any{
			"type":  event.Type,
			"event": eventJSON,
		},
	}

	if _, err := p.client.XAdd(ctx, args).Result(); err != nil {
		return fmt.Errorf("failed to publish event to %s: %w", p.stream, err)
	}
	return nil
}

// Ping reports whether Redis is reachable.
func (p *RedisStreamPublisher) Ping(ctx context.Context) error {
	if err := p.client.Ping(ctx).Err(); err != nil {
		return apperrors.NewAppError(http.StatusServiceUnavailable, "redis unreachable", err)
	}
	return nil
}
