package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const idempotencyPrefix = "ledger:idempotency:"

// IdempotencyCache implements ports.IdempotencyCache using Redis. It stores the
// primary refund of an allocation under the client's key. The first stored
// value wins, so two racing retries of one key both replay the same refund.
type IdempotencyCache struct {
	client *goredis.Client
}

// NewIdempotencyCache creates a new Redis-backed idempotency cache.
func NewIdempotencyCache(client *goredis.Client) *IdempotencyCache {
	return &IdempotencyCache{client: client}
}

// Get returns the stored refund JSON, or nil, nil when the key is unknown or expired.
func (c *IdempotencyCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, idempotencyPrefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("idempotency get %q: %w", key, err)
	}
	return val, nil
}

// Set stores value under key for ttl unless the key already holds a value.
func (c *IdempotencyCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.SetNX(ctx, idempotencyPrefix+key, value, ttl).Err(); err != nil {
		return fmt.Errorf("idempotency set %q: %w", key, err)
	}
	return nil
}
