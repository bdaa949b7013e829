package redis

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// pingTimeout bounds a health check so a hung Redis cannot stall /health.
const pingTimeout = 2 * time.Second

// HealthCheck implements ports.HealthChecker for the Redis instance backing
// idempotency, rate limiting and the refund event channel.
type HealthCheck struct {
	client *goredis.Client
}

// NewHealthCheck creates a Redis health checker.
func NewHealthCheck(client *goredis.Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping checks Redis connectivity within pingTimeout.
func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return h.client.Ping(ctx).Err()
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "redis"
}
