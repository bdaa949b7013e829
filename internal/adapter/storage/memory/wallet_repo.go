package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// WalletRepo implements ports.WalletRepository.
type WalletRepo struct{ s *Store }

// Create inserts a wallet outside any transaction.
func (r *WalletRepo) Create(_ context.Context, w *domain.Wallet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, exists := r.s.wallets[w.ID]; exists {
		return fmt.Errorf("insert wallet: duplicate id %s", w.ID)
	}
	if _, ok := r.s.customers[w.CustomerID]; !ok {
		return fmt.Errorf("insert wallet: unknown customer %s", w.CustomerID)
	}
	r.s.wallets[w.ID] = copyWallet(w)
	return nil
}

// GetByID returns nil, nil when the wallet does not exist.
func (r *WalletRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.wallets[id]
	if !ok {
		return nil, nil
	}
	return copyWallet(w), nil
}

// ListByCustomer returns the customer's wallets, oldest first.
func (r *WalletRepo) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]domain.Wallet, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []domain.Wallet
	for _, w := range r.s.wallets {
		if w.CustomerID == customerID {
			out = append(out, *copyWallet(w))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// IncrementBalance locks the wallet row for the rest of tx and applies the
// conditional increment to the version tx sees. Returns nil, nil when the result
// would be negative.
func (r *WalletRepo) IncrementBalance(_ context.Context, tx pgx.Tx, walletID uuid.UUID, delta int64) (*domain.Wallet, error) {
	t, err := txFrom(tx)
	if err != nil {
		return nil, err
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := t.wallet(walletID); !ok {
		return nil, nil
	}
	s.lockRow(t, walletID)

	current, _ := t.wallet(walletID)
	if current.Balance+delta < 0 {
		return nil, nil
	}
	next := copyWallet(current)
	next.Balance += delta
	next.UpdatedAt = time.Now().UTC()
	t.writes.wallets[walletID] = next
	return copyWallet(next), nil
}
