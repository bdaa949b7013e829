package memory

import (
	"context"
	"fmt"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// RefundRepo implements ports.RefundRepository.
type RefundRepo struct{ s *Store }

// Create inserts a refund inside tx.
func (r *RefundRepo) Create(_ context.Context, tx pgx.Tx, ref *domain.Refund) error {
	t, err := txFrom(tx)
	if err != nil {
		return err
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[ref.PaymentID]; !ok {
		return fmt.Errorf("insert refund: unknown payment %s", ref.PaymentID)
	}
	if ref.Amount <= 0 {
		return fmt.Errorf("insert refund: amount must be positive, got %d", ref.Amount)
	}
	if _, exists := t.refund(ref.ID); exists {
		return fmt.Errorf("insert refund: duplicate id %s", ref.ID)
	}
	row := copyRefund(ref)
	t.writes.refunds[ref.ID] = &row
	t.writes.newRefunds = append(t.writes.newRefunds, ref.ID)
	return nil
}

// Update persists state, transaction reference and metadata.
func (r *RefundRepo) Update(_ context.Context, tx pgx.Tx, ref *domain.Refund) error {
	t, err := txFrom(tx)
	if err != nil {
		return err
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := t.refund(ref.ID)
	if !ok {
		return fmt.Errorf("refund not found: %s", ref.ID)
	}
	next := copyRefund(current)
	update := copyRefund(ref)
	next.State = update.State
	next.TransactionID = update.TransactionID
	next.Metadata = update.Metadata
	next.UpdatedAt = update.UpdatedAt
	t.writes.refunds[ref.ID] = &next
	return nil
}

// GetByID returns nil, nil when the refund does not exist.
func (r *RefundRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Refund, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row, ok := r.s.refunds[id]
	if !ok {
		return nil, nil
	}
	out := copyRefund(row)
	return &out, nil
}

// refundsOf returns the refunds of a payment in insertion order. Caller holds s.mu.
func (s *Store) refundsOf(paymentID uuid.UUID) []domain.Refund {
	ids := s.paymentRefunds[paymentID]
	if len(ids) == 0 {
		return nil
	}
	out := make([]domain.Refund, 0, len(ids))
	for _, id := range ids {
		out = append(out, copyRefund(s.refunds[id]))
	}
	return out
}
