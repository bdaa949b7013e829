package memory

import (
	"context"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Tx is a store transaction. A Tx started from another Tx behaves like a
// savepoint: committing it folds its writes into the parent, rolling it back
// discards only its own writes.
//
// Only Begin, Commit and Rollback are implemented; the embedded pgx.Tx is nil.
type Tx struct {
	pgx.Tx

	store  *Store
	parent *Tx
	writes *writeSet
	locked []uuid.UUID // root only
	closed bool
}

// writeSet holds the new row versions of one transaction level.
type writeSet struct {
	wallets     map[uuid.UUID]*walletRow
	adjustments []adjustmentRow
	refunds     map[uuid.UUID]*refundRow
	newRefunds  []uuid.UUID // inserted refunds, insertion order
	idempotency map[string]*domain.IdempotencyRecord
}

func newWriteSet() *writeSet {
	return &writeSet{
		wallets:     make(map[uuid.UUID]*walletRow),
		refunds:     make(map[uuid.UUID]*refundRow),
		idempotency: make(map[string]*domain.IdempotencyRecord),
	}
}

// fold merges child, which started after w's current writes, into w.
func (w *writeSet) fold(child *writeSet) {
	for id, row := range child.wallets {
		w.wallets[id] = row
	}
	w.adjustments = append(w.adjustments, child.adjustments...)
	for id, row := range child.refunds {
		w.refunds[id] = row
	}
	w.newRefunds = append(w.newRefunds, child.newRefunds...)
	for key, rec := range child.idempotency {
		w.idempotency[key] = rec
	}
}

func (t *Tx) root() *Tx {
	r := t
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// Begin opens a savepoint.
func (t *Tx) Begin(_ context.Context) (pgx.Tx, error) {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()
	if t.closed {
		return nil, pgx.ErrTxClosed
	}
	return &Tx{store: t.store, parent: t, writes: newWriteSet()}, nil
}

// Commit publishes the writes, or folds them into the parent for a savepoint.
func (t *Tx) Commit(_ context.Context) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true

	if t.parent != nil {
		t.parent.writes.fold(t.writes)
		t.writes = nil
		return nil
	}
	s.publish(t.writes)
	t.writes = nil
	s.releaseLocks(t)
	return nil
}

// Rollback discards the writes of t. Rolling back a closed transaction returns
// pgx.ErrTxClosed, matching pgx.
func (t *Tx) Rollback(_ context.Context) error {
	s := t.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if t.closed {
		return pgx.ErrTxClosed
	}
	t.closed = true

	t.writes = nil
	if t.parent == nil {
		s.releaseLocks(t)
	}
	return nil
}

// The lookups below resolve a row as t sees it: the innermost write wins, then
// committed data. Caller holds the store mutex.

func (t *Tx) wallet(id uuid.UUID) (*walletRow, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if w, ok := cur.writes.wallets[id]; ok {
			return w, true
		}
	}
	w, ok := t.store.wallets[id]
	return w, ok
}

func (t *Tx) refund(id uuid.UUID) (*refundRow, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if r, ok := cur.writes.refunds[id]; ok {
			return r, true
		}
	}
	r, ok := t.store.refunds[id]
	return r, ok
}

func (t *Tx) idempotencyRecord(key string) (*domain.IdempotencyRecord, bool) {
	for cur := t; cur != nil; cur = cur.parent {
		if rec, ok := cur.writes.idempotency[key]; ok {
			return rec, true
		}
	}
	rec, ok := t.store.idempotency[key]
	return rec, ok
}

// refundsOf lists the refunds of a payment visible to t: committed rows first,
// then rows inserted by t and its parents, outermost first.
func (t *Tx) refundsOf(paymentID uuid.UUID) []domain.Refund {
	ids := append([]uuid.UUID(nil), t.store.paymentRefunds[paymentID]...)
	var chain []*Tx
	for cur := t; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	for i := len(chain) - 1; i >= 0; i-- {
		for _, id := range chain[i].writes.newRefunds {
			if chain[i].writes.refunds[id].PaymentID == paymentID {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return nil
	}
	out := make([]domain.Refund, 0, len(ids))
	for _, id := range ids {
		r, _ := t.refund(id)
		out = append(out, copyRefund(r))
	}
	return out
}
