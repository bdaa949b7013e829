package memory

import (
	"context"
	"sort"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AdjustmentRepo implements ports.AdjustmentRepository.
type AdjustmentRepo struct{ s *Store }

// Create appends a ledger row inside tx.
func (r *AdjustmentRepo) Create(_ context.Context, tx pgx.Tx, a *domain.Adjustment) error {
	t, err := txFrom(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	t.writes.adjustments = append(t.writes.adjustments, *a)
	return nil
}

// ListByWallet returns one page, newest first, and the total count.
func (r *AdjustmentRepo) ListByWallet(_ context.Context, walletID uuid.UUID, page ports.Page) ([]domain.Adjustment, int64, error) {
	r.s.mu.Lock()
	rows := append([]domain.Adjustment(nil), r.s.adjustments[walletID]...)
	r.s.mu.Unlock()

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].CreatedAt.Equal(rows[j].CreatedAt) {
			return rows[i].ID.String() > rows[j].ID.String()
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})

	total := int64(len(rows))
	start := page.Offset()
	if start >= len(rows) {
		return nil, total, nil
	}
	end := len(rows)
	if page.PageSize > 0 && start+page.PageSize < end {
		end = start + page.PageSize
	}
	return rows[start:end], total, nil
}

// LedgerTotals reads the committed balance and ledger under one lock hold.
// Commits publish both together, so the pair is always consistent.
func (r *AdjustmentRepo) LedgerTotals(_ context.Context, walletID uuid.UUID) (*domain.LedgerTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	w, ok := r.s.wallets[walletID]
	if !ok {
		return nil, nil
	}
	totals := &domain.LedgerTotals{Balance: w.Balance}
	for _, a := range r.s.adjustments[walletID] {
		totals.Sum += a.Amount
		totals.Count++
	}
	return totals, nil
}
