package postgres

import (
	"context"
	"errors"
	"fmt"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const walletColumns = `id, customer_id, name, channel_ids::text[], currency, balance, created_at, updated_at`

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct {
	pool Pool
}

// NewWalletRepo creates a new WalletRepo.
func NewWalletRepo(pool Pool) *WalletRepo {
	return &WalletRepo{pool: pool}
}

// Create inserts a new wallet into the database.
func (r *WalletRepo) Create(ctx context.Context, w *domain.Wallet) error {
	query := `INSERT INTO wallets (id, customer_id, name, channel_ids, currency, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4::uuid[], $5, $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		w.ID, w.CustomerID, w.Name, uuidStrings(w.ChannelIDs),
		w.Currency, w.Balance, w.CreatedAt, w.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert wallet: %w", err)
	}
	return nil
}

// GetByID fetches a wallet by its UUID.
func (r *WalletRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE id = $1`

	w, err := scanWallet(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get wallet by id: %w", err)
	}
	return w, nil
}

// ListByCustomer returns every wallet of a customer, oldest first.
func (r *WalletRepo) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE customer_id = $1 ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, customerID)
	if err != nil {
		return nil, fmt.Errorf("list wallets by customer: %w", err)
	}
	defer rows.Close()

	var wallets []domain.Wallet
	for rows.Next() {
		w, err := scanWallet(rows)
		if err != nil {
			return nil, fmt.Errorf("scan wallet: %w", err)
		}
		wallets = append(wallets, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wallets: %w", err)
	}
	return wallets, nil
}

// IncrementBalance atomically adds delta to the balance. The guard is evaluated
// on the post-increment value under the row lock taken by UPDATE, so concurrent
// adjustments serialize and never read a stale balance.
// Returns nil, nil when the result would be negative.
func (r *WalletRepo) IncrementBalance(ctx context.Context, tx pgx.Tx, walletID uuid.UUID, delta int64) (*domain.Wallet, error) {
	query := `UPDATE wallets SET balance = balance + $1, updated_at = NOW()
		WHERE id = $2 AND balance + $1 >= 0
		RETURNING ` + walletColumns

	w, err := scanWallet(tx.QueryRow(ctx, query, delta, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapWriteError("increment wallet balance", err)
	}
	return w, nil
}

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var (
		w        domain.Wallet
		channels []string
	)
	if err := row.Scan(
		&w.ID, &w.CustomerID, &w.Name, &channels,
		&w.Currency, &w.Balance, &w.CreatedAt, &w.UpdatedAt,
	); err != nil {
		return nil, err
	}
	ids, err := parseUUIDs(channels)
	if err != nil {
		return nil, err
	}
	w.ChannelIDs = ids
	return &w, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = id.String()
	}
	return out
}

func parseUUIDs(raw []string) ([]uuid.UUID, error) {
	out := make([]uuid.UUID, 0, len(raw))
	for _, s := range raw {
		id, err := uuid.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("parse channel id %q: %w", s, err)
		}
		out = append(out, id)
	}
	return out, nil
}
