package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"store-credit-ledger/config"
	httpHandler "store-credit-ledger/internal/adapter/http/handler"
	"store-credit-ledger/internal/adapter/http/middleware"
	"store-credit-ledger/internal/adapter/messaging"
	"store-credit-ledger/internal/adapter/storage/memory"
	pgStorage "store-credit-ledger/internal/adapter/storage/postgres"
	redisStorage "store-credit-ledger/internal/adapter/storage/redis"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/internal/service"
	"store-credit-ledger/pkg/logger"
	"store-credit-ledger/pkg/tracing"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// storage bundles the repositories of one backend.
type storage struct {
	wallets     ports.WalletRepository
	adjustments ports.AdjustmentRepository
	refunds     ports.RefundRepository
	orders      ports.OrderRepository
	idempotency ports.IdempotencyRepository
	customers   ports.CustomerRegistry
	transactor  ports.DBTransactor
	health      ports.HealthChecker
	close       func()
}

func main() {
	cfg, err := config.Load(os.Getenv("SCL_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	gin.SetMode(cfg.Server.Mode)

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("driver", cfg.Database.Driver).
		Msg("Starting Store Credit Ledger")

	ctx := context.Background()

	if cfg.Tracing.Enabled {
		shutdownTracing, err := tracing.Init(ctx, cfg.Tracing.ServiceName, log)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to initialize tracing")
		}
		defer shutdownTracing(context.Background())
		log.Info().Msg("Tracing enabled")
	}

	store, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize storage")
	}
	defer store.close()

	// Redis backs idempotency, rate limiting and the redis event sink. The
	// memory driver runs without it when it is unreachable.
	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		if cfg.Database.Driver != config.DriverMemory {
			log.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		log.Warn().Err(err).Msg("Redis unavailable, idempotency cache and rate limiting disabled")
	} else {
		defer rdb.Close()
		log.Info().Msg("Redis connected")
	}

	sink, closeSink, err := newEventSink(cfg.Events, rdb, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize event sink")
	}
	defer closeSink()

	var (
		idempCache     ports.IdempotencyCache
		rateLimitStore middleware.Limiter
		healthCheckers = []ports.HealthChecker{store.health}
	)
	if rdb != nil {
		idempCache = redisStorage.NewIdempotencyCache(rdb)
		rateLimitStore = redisStorage.NewRateLimitStore(rdb)
		healthCheckers = append(healthCheckers, redisStorage.NewHealthCheck(rdb))
	}

	tokenSvc := service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)

	ledgerSvc := service.NewLedgerService(
		store.wallets,
		store.adjustments,
		store.customers,
		cfg.Ledger.HistoryPageSize,
		logger.Component(log, "ledger"),
	)
	adjustmentSvc := service.NewAdjustmentService(
		store.wallets,
		store.adjustments,
		store.transactor,
		cfg.Ledger.HistoryPageSize,
		logger.Component(log, "adjustments"),
	)
	settlers := service.NewSettlerRegistry(
		service.NewStoreCreditSettler(adjustmentSvc, store.wallets),
		service.ManualSettler{},
	)
	refundSvc := service.NewRefundService(
		store.orders,
		store.refunds,
		store.idempotency,
		settlers,
		idempCache,
		sink,
		store.transactor,
		cfg.Events.IdempotencyTTL,
		logger.Component(log, "refunds"),
	)
	walletPayments := service.NewWalletPaymentHandler(
		adjustmentSvc,
		store.wallets,
		store.orders,
		refundSvc,
		store.transactor,
		logger.Component(log, "wallet_payments"),
	)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		Ledger:         ledgerSvc,
		Adjustments:    adjustmentSvc,
		WalletPayments: walletPayments,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		RateLimit:      int64(cfg.Server.RateLimit),
		HealthCheckers: healthCheckers,
		Logger:         log,
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

func openStorage(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*storage, error) {
	if cfg.Database.Driver == config.DriverMemory {
		store := memory.New()
		log.Warn().Msg("Using in-memory storage, data is lost on restart")
		return &storage{
			wallets:     store.Wallets(),
			adjustments: store.Adjustments(),
			refunds:     store.Refunds(),
			orders:      store.Orders(),
			idempotency: store.Idempotency(),
			customers:   store.Customers(),
			transactor:  store,
			health:      store,
			close:       func() {},
		}, nil
	}

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}
	log.Info().Msg("PostgreSQL connected")

	if cfg.Database.AutoMigrate {
		if err := pgStorage.Migrate(ctx, pool, log); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}

	return &storage{
		wallets:     pgStorage.NewWalletRepo(pool),
		adjustments: pgStorage.NewAdjustmentRepo(pool),
		refunds:     pgStorage.NewRefundRepo(pool),
		orders:      pgStorage.NewOrderRepo(pool),
		idempotency: pgStorage.NewIdempotencyRepo(pool),
		customers:   pgStorage.NewCustomerRepo(pool),
		transactor:  pgStorage.NewTransactor(pool),
		health:      pgStorage.NewHealthCheck(pool),
		close:       pool.Close,
	}, nil
}

func newEventSink(cfg config.EventsConfig, rdb *goredis.Client, log zerolog.Logger) (ports.RefundEventSink, func(), error) {
	switch cfg.Sink {
	case config.SinkKafka:
		sink := messaging.NewKafkaSink(messaging.NewKafkaWriter(cfg.KafkaBrokers, cfg.KafkaTopic))
		log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaTopic).Msg("Publishing refund events to Kafka")
		return sink, func() {
			if err := sink.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close kafka writer")
			}
		}, nil
	case config.SinkRedis:
		if rdb == nil {
			return nil, nil, fmt.Errorf("events sink %q requires redis", cfg.Sink)
		}
		log.Info().Str("channel", cfg.RedisChannel).Msg("Publishing refund events to Redis")
		return messaging.NewRedisSink(rdb, cfg.RedisChannel, log), func() {}, nil
	default:
		return messaging.NewLogSink(logger.Component(log, "refund_events")), func() {}, nil
	}
}
