package handler

import (
	"store-credit-ledger/internal/adapter/http/middleware"
	"store-credit-ledger/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// maxBodyBytes bounds every request body.
const maxBodyBytes = 1 << 20

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	Ledger         ports.WalletLedgerService
	Adjustments    ports.BalanceAdjustmentService
	WalletPayments ports.WalletPaymentHandler
	TokenSvc       ports.TokenService
	RateLimitStore middleware.Limiter // nil = rate limiting disabled
	RateLimit      int64              // requests per minute per caller, 0 disables
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(maxBodyBytes))
	r.Use(middleware.AuditLog(deps.Logger))

	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	rules := middleware.DefaultRateLimitRules(deps.RateLimit)

	// rl returns the limiter for group, or a no-op when limiting is disabled.
	rl := func(group string) gin.HandlerFunc {
		rule, ok := rules[group]
		if deps.RateLimitStore == nil || deps.RateLimit <= 0 || !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	v1 := r.Group("/api/v1", middleware.JWTAuth(deps.TokenSvc, deps.Logger))

	walletHandler := NewWalletHandler(deps.Ledger, deps.Adjustments)
	wallets := v1.Group("/wallets")
	{
		wallets.POST("", rl("wallets_write"), walletHandler.CreateWallet)
		wallets.GET("/:id", rl("wallets_read"), walletHandler.GetWallet)
		wallets.GET("/:id/adjustments", rl("wallets_read"), walletHandler.ListAdjustments)
		wallets.POST("/:id/adjustments", rl("wallets_write"), walletHandler.AdjustBalance)
		wallets.GET("/:id/reconciliation", rl("wallets_read"), walletHandler.Reconcile)
	}
	v1.GET("/customers/:id/wallets", rl("wallets_read"), walletHandler.ListCustomerWallets)

	orderHandler := NewOrderHandler(deps.WalletPayments)
	orders := v1.Group("/orders")
	{
		orders.POST("/:id/wallet-payments", rl("wallet_payments"), orderHandler.PayWithWallet)
		orders.POST("/:id/refunds", rl("refunds"), orderHandler.RefundOrder)
	}

	return r
}
