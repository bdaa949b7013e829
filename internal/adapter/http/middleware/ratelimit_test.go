package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"store-credit-ledger/internal/adapter/http/middleware"
	redisStore "store-credit-ledger/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func setupRateLimitRouter(store middleware.Limiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	rule := middleware.RateLimitRule{Limit: 3, Window: time.Minute}
	actorFromHeader := func(c *gin.Context) {
		if actor := c.GetHeader("X-Test-Actor"); actor != "" {
			c.Set(middleware.CtxActorID, actor)
		}
		c.Next()
	}

	r.GET("/test", actorFromHeader, middleware.RateLimiter(store, "test", rule, zerolog.Nop()), func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	return r
}

func newRateLimitStore(t *testing.T) *redisStore.RateLimitStore {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return redisStore.NewRateLimitStore(client)
}

func doGet(router *gin.Engine, actor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/test", nil)
	if actor != "" {
		req.Header.Set("X-Test-Actor", actor)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router := setupRateLimitRouter(newRateLimitStore(t))

	for i := 0; i < 3; i++ {
		w := doGet(router, "")
		assert.Equal(t, 200, w.Code, "request %d should succeed", i+1)
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Remaining"))
		assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router := setupRateLimitRouter(newRateLimitStore(t))

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, "").Code)
	}

	w := doGet(router, "")
	assert.Equal(t, 429, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_CountsPerActor(t *testing.T) {
	router := setupRateLimitRouter(newRateLimitStore(t))
	actorA, actorB := uuid.NewString(), uuid.NewString()

	for i := 0; i < 3; i++ {
		assert.Equal(t, 200, doGet(router, actorA).Code)
	}
	assert.Equal(t, 429, doGet(router, actorA).Code)
	assert.Equal(t, 200, doGet(router, actorB).Code)
}

type failingLimiter struct{}

func (failingLimiter) Allow(context.Context, string, int64, time.Duration) (*redisStore.RateLimitResult, error) {
	return nil, errors.New("redis down")
}

func TestRateLimiter_DegradedModeAllows(t *testing.T) {
	router := setupRateLimitRouter(failingLimiter{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, 200, doGet(router, "").Code)
	}
}

func TestDefaultRateLimitRules(t *testing.T) {
	rules := middleware.DefaultRateLimitRules(600)
	assert.Equal(t, int64(600), rules["wallets_read"].Limit)
	assert.Equal(t, int64(150), rules["wallets_write"].Limit)
	assert.Equal(t, int64(150), rules["wallet_payments"].Limit)
	assert.Equal(t, int64(60), rules["refunds"].Limit)
	assert.Equal(t, time.Minute, rules["refunds"].Window)

	small := middleware.DefaultRateLimitRules(3)
	assert.Equal(t, int64(1), small["refunds"].Limit)
}
