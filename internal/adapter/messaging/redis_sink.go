// Package messaging delivers refund lifecycle events to downstream consumers.
package messaging

import (
	"context"
	"encoding/json"
	"fmt"

	"store-credit-ledger/internal/core/domain"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// RedisSink publishes refund events on a Redis Pub/Sub channel.
type RedisSink struct {
	client  *goredis.Client
	channel string
	log     zerolog.Logger
}

// NewRedisSink creates a sink publishing to channel.
func NewRedisSink(client *goredis.Client, channel string, log zerolog.Logger) *RedisSink {
	return &RedisSink{client: client, channel: channel, log: log}
}

// PublishRefundEvents sends every event in one pipeline, preserving order.
func (s *RedisSink) PublishRefundEvents(ctx context.Context, events []domain.RefundEvent) error {
	if len(events) == 0 {
		return nil
	}

	pipe := s.client.Pipeline()
	for _, ev := range events {
		payload, err := json.Marshal(ev)
		if err != nil {
			return fmt.Errorf("marshal refund event: %w", err)
		}
		pipe.Publish(ctx, s.channel, payload)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("publish refund events: %w", err)
	}

	s.log.Debug().
		Str("channel", s.channel).
		Int("count", len(events)).
		Msg("Refund events published")
	return nil
}
