package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const refundColumns = `id, payment_id, method, amount, reason, state, transaction_id, metadata, created_at, updated_at`

// RefundRepo implements ports.RefundRepository.
type RefundRepo struct {
	pool Pool
}

// NewRefundRepo creates a new RefundRepo.
func NewRefundRepo(pool Pool) *RefundRepo {
	return &RefundRepo{pool: pool}
}

// Create inserts a refund inside the chunk transaction.
func (r *RefundRepo) Create(ctx context.Context, tx pgx.Tx, ref *domain.Refund) error {
	meta, err := json.Marshal(ref.Metadata)
	if err != nil {
		return fmt.Errorf("marshal refund metadata: %w", err)
	}

	query := `INSERT INTO refunds (` + refundColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err = tx.Exec(ctx, query,
		ref.ID, ref.PaymentID, ref.Method, ref.Amount, ref.Reason,
		string(ref.State), ref.TransactionID, meta, ref.CreatedAt, ref.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert refund: %w", err)
	}
	return nil
}

// Update persists the state, transaction reference and metadata of a refund.
func (r *RefundRepo) Update(ctx context.Context, tx pgx.Tx, ref *domain.Refund) error {
	meta, err := json.Marshal(ref.Metadata)
	if err != nil {
		return fmt.Errorf("marshal refund metadata: %w", err)
	}

	query := `UPDATE refunds SET state = $1, transaction_id = $2, metadata = $3, updated_at = $4 WHERE id = $5`

	tag, err := tx.Exec(ctx, query, string(ref.State), ref.TransactionID, meta, ref.UpdatedAt, ref.ID)
	if err != nil {
		return fmt.Errorf("update refund: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("refund not found: %s", ref.ID)
	}
	return nil
}

// GetByID fetches a refund by id.
func (r *RefundRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Refund, error) {
	ref, err := scanRefund(r.pool.QueryRow(ctx, `SELECT `+refundColumns+` FROM refunds WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get refund by id: %w", err)
	}
	return ref, nil
}

func scanRefund(row pgx.Row) (*domain.Refund, error) {
	var (
		ref   domain.Refund
		state string
		meta  []byte
	)
	if err := row.Scan(
		&ref.ID, &ref.PaymentID, &ref.Method, &ref.Amount, &ref.Reason,
		&state, &ref.TransactionID, &meta, &ref.CreatedAt, &ref.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ref.State = domain.RefundState(state)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &ref.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal refund metadata: %w", err)
		}
	}
	return &ref, nil
}
