package memory

import (
	"context"
	"fmt"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// idempotencyLockSpace namespaces the lock ids derived from idempotency keys.
var idempotencyLockSpace = uuid.MustParse("6f1c1f43-2c55-4d0e-9a43-6c1d7d2a5e10")

// IdempotencyRepo implements ports.IdempotencyRepository.
type IdempotencyRepo struct{ s *Store }

// Claim locks the key for the rest of tx, then inserts it unless it is
// already visible.
func (r *IdempotencyRepo) Claim(_ context.Context, tx pgx.Tx, rec *domain.IdempotencyRecord) (bool, error) {
	t, err := txFrom(tx)
	if err != nil {
		return false, err
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lockRow(t, uuid.NewSHA1(idempotencyLockSpace, []byte(rec.Key)))
	if _, taken := t.idempotencyRecord(rec.Key); taken {
		return false, nil
	}
	row := *rec
	row.RefundID = nil
	t.writes.idempotency[rec.Key] = &row
	return true, nil
}

// Complete attaches the first refund of the allocation to a claimed key.
func (r *IdempotencyRepo) Complete(_ context.Context, tx pgx.Tx, key string, refundID uuid.UUID) error {
	t, err := txFrom(tx)
	if err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := t.idempotencyRecord(key)
	if !ok {
		return fmt.Errorf("complete idempotency key: %q was not claimed", key)
	}
	next := *current
	id := refundID
	next.RefundID = &id
	t.writes.idempotency[key] = &next
	return nil
}

// Get returns a committed key, or nil, nil.
func (r *IdempotencyRepo) Get(_ context.Context, key string) (*domain.IdempotencyRecord, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	rec, ok := r.s.idempotency[key]
	if !ok {
		return nil, nil
	}
	out := *rec
	if rec.RefundID != nil {
		id := *rec.RefundID
		out.RefundID = &id
	}
	return &out, nil
}
