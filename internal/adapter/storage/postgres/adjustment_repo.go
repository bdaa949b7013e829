package postgres

import (
	"context"
	"errors"
	"fmt"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AdjustmentRepo implements ports.AdjustmentRepository. Rows are never updated.
type AdjustmentRepo struct {
	pool Pool
}

// NewAdjustmentRepo creates a new AdjustmentRepo.
func NewAdjustmentRepo(pool Pool) *AdjustmentRepo {
	return &AdjustmentRepo{pool: pool}
}

// Create appends a ledger row within the adjustment transaction.
func (r *AdjustmentRepo) Create(ctx context.Context, tx pgx.Tx, a *domain.Adjustment) error {
	query := `INSERT INTO wallet_adjustments (id, wallet_id, amount, description, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := tx.Exec(ctx, query, a.ID, a.WalletID, a.Amount, a.Description, a.ActorID, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert adjustment: %w", err)
	}
	return nil
}

// ListByWallet returns one page of the ledger, newest first, and the total row count.
func (r *AdjustmentRepo) ListByWallet(ctx context.Context, walletID uuid.UUID, page ports.Page) ([]domain.Adjustment, int64, error) {
	var total int64
	if err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM wallet_adjustments WHERE wallet_id = $1`, walletID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count adjustments: %w", err)
	}

	query := `SELECT id, wallet_id, amount, description, actor_id, created_at
		FROM wallet_adjustments WHERE wallet_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, walletID, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []domain.Adjustment
	for rows.Next() {
		var a domain.Adjustment
		if err := rows.Scan(&a.ID, &a.WalletID, &a.Amount, &a.Description, &a.ActorID, &a.CreatedAt); err != nil {
			return nil, 0, fmt.Errorf("scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate adjustments: %w", err)
	}
	return adjustments, total, nil
}

// LedgerTotals reads the balance and the ledger aggregate in one statement so
// both come from the same snapshot.
func (r *AdjustmentRepo) LedgerTotals(ctx context.Context, walletID uuid.UUID) (*domain.LedgerTotals, error) {
	query := `SELECT w.balance, COALESCE(SUM(a.amount), 0)::bigint, COUNT(a.id)
		FROM wallets w
		LEFT JOIN wallet_adjustments a ON a.wallet_id = w.id
		WHERE w.id = $1
		GROUP BY w.id, w.balance`

	totals := &domain.LedgerTotals{}
	err := r.pool.QueryRow(ctx, query, walletID).Scan(&totals.Balance, &totals.Sum, &totals.Count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ledger totals: %w", err)
	}
	return totals, nil
}
