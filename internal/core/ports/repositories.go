package ports

import (
	"context"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

// WalletRepository defines persistence operations for wallets.
// Lookups return nil, nil when the wallet does not exist.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Wallet, error)
	// IncrementBalance applies balance = balance + delta only if the result stays
	// non-negative. It returns nil, nil when the guard rejects the update.
	IncrementBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, delta int64) (*domain.Wallet, error)
}

// AdjustmentRepository is the append-only ledger. There is no update or delete.
type AdjustmentRepository interface {
	Create(ctx context.Context, tx pgx.Tx, adj *domain.Adjustment) error
	// ListByWallet returns adjustments newest first and the total count.
	ListByWallet(ctx context.Context, walletID uuid.UUID, page Page) ([]domain.Adjustment, int64, error)
	// LedgerTotals reads the wallet balance and the ledger sum and count from
	// one snapshot. It returns nil, nil when the wallet does not exist.
	LedgerTotals(ctx context.Context, walletID uuid.UUID) (*domain.LedgerTotals, error)
}

// RefundRepository persists refund records created by the allocation engine.
type RefundRepository interface {
	Create(ctx context.Context, tx pgx.Tx, refund *domain.Refund) error
	Update(ctx context.Context, tx pgx.Tx, refund *domain.Refund) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error)
}

// IdempotencyRepository is the durable record of refund idempotency keys.
type IdempotencyRepository interface {
	// Claim inserts rec inside tx. If another transaction holds the key, Claim
	// waits for it to finish and returns false when it committed.
	Claim(ctx context.Context, tx pgx.Tx, rec *domain.IdempotencyRecord) (bool, error)
	// Complete records the first refund of the allocation under a claimed key.
	Complete(ctx context.Context, tx pgx.Tx, key string, refundID uuid.UUID) error
	// Get returns nil, nil for an unknown key.
	Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error)
}

// OrderRepository reads orders and payments owned by the order system.
type OrderRepository interface {
	// GetByID loads the order with its payments and their refunds.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	// GetPayment loads one payment with its refunds.
	GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error)
	// LockPayment row-locks the payment inside tx and loads the refunds visible to tx.
	LockPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error)
}

// CustomerRegistry answers whether a customer exists.
type CustomerRegistry interface {
	Exists(ctx context.Context, customerID uuid.UUID) (bool, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// MaxPageSize caps every ledger listing.
const MaxPageSize = 200

// Page selects one page of a listing. Page is 1-based.
type Page struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
