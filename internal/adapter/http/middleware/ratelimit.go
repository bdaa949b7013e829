package middleware

import (
	"context"
	"fmt"
	"strconv"
	"time"

	redisStore "store-credit-ledger/internal/adapter/storage/redis"
	"store-credit-ledger/pkg/apperror"
	"store-credit-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// Limiter is the counter store behind RateLimiter.
type Limiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*redisStore.RateLimitResult, error)
}

// DefaultRateLimitRules scales the per-group limits from the per-minute read budget.
// Money-moving groups get a fraction of it.
func DefaultRateLimitRules(perMinute int64) map[string]RateLimitRule {
	fraction := func(div int64) int64 {
		return max(perMinute/div, 1)
	}
	return map[string]RateLimitRule{
		"wallets_read":    {Limit: perMinute, Window: time.Minute},
		"wallets_write":   {Limit: fraction(4), Window: time.Minute},
		"wallet_payments": {Limit: fraction(4), Window: time.Minute},
		"refunds":         {Limit: fraction(10), Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
func RateLimiter(store Limiter, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		result, err := store.Allow(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(result.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(result.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt, 10))

		if !result.Allowed {
			retryAfter := result.ResetAt - time.Now().Unix()
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.FormatInt(retryAfter, 10))
			response.Error(c, apperror.ErrRateLimitExceeded())
			c.Abort()
			return
		}

		c.Next()
	}
}

// extractIdentifier keys the counter by authenticated actor, falling back to client IP.
func extractIdentifier(c *gin.Context) string {
	if actor, exists := c.Get(CtxActorID); exists {
		return fmt.Sprintf("%v", actor)
	}
	return c.ClientIP()
}
