package ports

import (
	"context"
	"time"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

// --- Infrastructure Ports ---

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(actorID, channelID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	ActorID   uuid.UUID
	ChannelID uuid.UUID
}

// IdempotencyCache stores responses keyed by client idempotency keys.
type IdempotencyCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // Returns cached response JSON or nil
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// RefundEventSink receives the refund notifications of one allocation in a single call.
type RefundEventSink interface {
	PublishRefundEvents(ctx context.Context, events []domain.RefundEvent) error
}

// --- Service Ports (Business Logic) ---

// WalletLedgerService owns wallets and read access to their ledgers.
type WalletLedgerService interface {
	CreateWallet(ctx context.Context, req CreateWalletRequest) (*domain.Wallet, error)
	GetWallet(ctx context.Context, walletID uuid.UUID, withHistory bool) (*domain.Wallet, error)
	ListAdjustments(ctx context.Context, walletID uuid.UUID, page Page) ([]domain.Adjustment, int64, error)
	ListCustomerWallets(ctx context.Context, customerID uuid.UUID) ([]domain.Wallet, error)
	Reconcile(ctx context.Context, walletID uuid.UUID) (*domain.Reconciliation, error)
}

// CreateWalletRequest holds validated input for wallet creation.
type CreateWalletRequest struct {
	CustomerID uuid.UUID
	ChannelIDs []uuid.UUID
	Name       string
	Currency   string
}

// BalanceAdjustmentService is the only path that changes a wallet balance.
type BalanceAdjustmentService interface {
	// AdjustBalance runs in its own transaction using the caller from ctx.
	AdjustBalance(ctx context.Context, req AdjustBalanceRequest) (*domain.Wallet, error)
	// AdjustBalanceTx runs inside a transaction owned by the caller.
	AdjustBalanceTx(ctx context.Context, tx pgx.Tx, caller domain.Caller, req AdjustBalanceRequest) (*domain.Wallet, *domain.Adjustment, error)
}

// AdjustBalanceRequest holds a signed adjustment.
type AdjustBalanceRequest struct {
	WalletID    uuid.UUID
	Amount      int64
	Description string
}

// RefundService allocates refunds across the payments of an order.
type RefundService interface {
	// RefundOrder returns the first refund created. If a chunk fails after
	// earlier work committed, it returns that first refund and the error together.
	RefundOrder(ctx context.Context, req RefundRequest) (*domain.Refund, error)
}

// RefundRequest holds validated input for a refund allocation.
type RefundRequest struct {
	OrderID        uuid.UUID
	PaymentID      uuid.UUID
	Amount         int64
	Reason         string
	IdempotencyKey string
}

// WalletPaymentHandler lets the wallet act as a checkout payment method.
type WalletPaymentHandler interface {
	Method() string
	CreatePayment(ctx context.Context, order *domain.Order, amount int64, walletID uuid.UUID) (*PaymentResult, error)
	// PayOrder loads the order and runs CreatePayment against it.
	PayOrder(ctx context.Context, orderID uuid.UUID, amount int64, walletID uuid.UUID) (*PaymentResult, error)
	CreateRefund(ctx context.Context, req RefundRequest) (*domain.Refund, error)
}

// PaymentResult is the outcome of a wallet payment attempt.
type PaymentResult struct {
	State         domain.PaymentState `json:"state"`
	Amount        int64               `json:"amount"`
	Currency      string              `json:"currency"`
	TransactionID string              `json:"transaction_id,omitempty"`
	ErrorMessage  string              `json:"error_message,omitempty"`
	Metadata      map[string]string   `json:"metadata,omitempty"`
}

// RefundSettler moves value for one refund chunk of a given payment method.
type RefundSettler interface {
	Method() string
	Settle(ctx context.Context, tx pgx.Tx, req SettlementRequest) (*SettlementResult, error)
}

// SettlementRequest describes one refund chunk to settle.
type SettlementRequest struct {
	Order   *domain.Order
	Payment *domain.Payment
	Refund  *domain.Refund
}

// SettlementResult carries the references produced by a settlement.
type SettlementResult struct {
	TransactionID string
	Metadata      domain.RefundMetadata
}
