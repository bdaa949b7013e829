package postgres

import (
	"context"
	"errors"
	"fmt"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct {
	pool Pool
}

// NewIdempotencyRepo creates a new IdempotencyRepo.
func NewIdempotencyRepo(pool Pool) *IdempotencyRepo {
	return &IdempotencyRepo{pool: pool}
}

// Claim inserts the key within the first refund transaction. An insert that
// conflicts with an uncommitted row blocks on it, so a racing retry only learns
// the outcome once the first claim commits or rolls back.
func (r *IdempotencyRepo) Claim(ctx context.Context, tx pgx.Tx, rec *domain.IdempotencyRecord) (bool, error) {
	query := `INSERT INTO refund_idempotency_keys (key, order_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (key) DO NOTHING`

	tag, err := tx.Exec(ctx, query, rec.Key, rec.OrderID, rec.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("claim idempotency key: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// Complete attaches the first refund of the allocation to a claimed key.
func (r *IdempotencyRepo) Complete(ctx context.Context, tx pgx.Tx, key string, refundID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `UPDATE refund_idempotency_keys SET refund_id = $2 WHERE key = $1`, key, refundID)
	if err != nil {
		return fmt.Errorf("complete idempotency key: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("complete idempotency key: %q was not claimed", key)
	}
	return nil
}

// Get fetches a committed key.
func (r *IdempotencyRepo) Get(ctx context.Context, key string) (*domain.IdempotencyRecord, error) {
	query := `SELECT key, order_id, refund_id, created_at FROM refund_idempotency_keys WHERE key = $1`

	rec := &domain.IdempotencyRecord{}
	err := r.pool.QueryRow(ctx, query, key).Scan(&rec.Key, &rec.OrderID, &rec.RefundID, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get idempotency key: %w", err)
	}
	return rec, nil
}
