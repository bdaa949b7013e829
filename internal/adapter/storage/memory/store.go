// Package memory is a transactional in-memory store used for local runs and tests.
//
// Writes go to the transaction's write set and become visible to other readers
// only when the root transaction commits. Reads through a transaction see its own
// writes on top of committed data; reads without one see committed data only.
// Row locks (wallet increments, payment locks, idempotency claims) are held by the
// root transaction until it ends, as PostgreSQL row locks are.
package memory

import (
	"context"
	"errors"
	"sync"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrForeignTx is returned when a repository receives a transaction it did not create.
var ErrForeignTx = errors.New("memory: transaction was not started by this store")

// Store holds all tables behind one mutex.
type Store struct {
	mu   sync.Mutex
	cond *sync.Cond

	customers      map[uuid.UUID]struct{}
	wallets        map[uuid.UUID]*walletRow
	adjustments    map[uuid.UUID][]adjustmentRow // by wallet, append order
	orders         map[uuid.UUID]*orderRow
	payments       map[uuid.UUID]*paymentRow
	orderPayments  map[uuid.UUID][]uuid.UUID
	refunds        map[uuid.UUID]*refundRow
	paymentRefunds map[uuid.UUID][]uuid.UUID
	idempotency    map[string]*domain.IdempotencyRecord

	locks map[uuid.UUID]*Tx // row id -> owning root tx
}

// New creates an empty store.
func New() *Store {
	s := &Store{
		customers:      make(map[uuid.UUID]struct{}),
		wallets:        make(map[uuid.UUID]*walletRow),
		adjustments:    make(map[uuid.UUID][]adjustmentRow),
		orders:         make(map[uuid.UUID]*orderRow),
		payments:       make(map[uuid.UUID]*paymentRow),
		orderPayments:  make(map[uuid.UUID][]uuid.UUID),
		refunds:        make(map[uuid.UUID]*refundRow),
		paymentRefunds: make(map[uuid.UUID][]uuid.UUID),
		idempotency:    make(map[string]*domain.IdempotencyRecord),
		locks:          make(map[uuid.UUID]*Tx),
	}
	s.cond = sync.NewCond(&s.mu)
	return s
}

// Begin starts a root transaction. It implements ports.DBTransactor.
func (s *Store) Begin(_ context.Context) (pgx.Tx, error) {
	return &Tx{store: s, writes: newWriteSet()}, nil
}

// Ping implements ports.HealthChecker.
func (s *Store) Ping(_ context.Context) error { return nil }

// Name implements ports.HealthChecker.
func (s *Store) Name() string { return "memory" }

// Wallets returns the wallet repository view.
func (s *Store) Wallets() *WalletRepo { return &WalletRepo{s: s} }

// Adjustments returns the ledger repository view.
func (s *Store) Adjustments() *AdjustmentRepo { return &AdjustmentRepo{s: s} }

// Refunds returns the refund repository view.
func (s *Store) Refunds() *RefundRepo { return &RefundRepo{s: s} }

// Orders returns the order repository view.
func (s *Store) Orders() *OrderRepo { return &OrderRepo{s: s} }

// Customers returns the customer registry view.
func (s *Store) Customers() *CustomerRepo { return &CustomerRepo{s: s} }

// Idempotency returns the idempotency key view.
func (s *Store) Idempotency() *IdempotencyRepo { return &IdempotencyRepo{s: s} }

// lockRow blocks until tx's root owns id. Caller holds s.mu.
func (s *Store) lockRow(tx *Tx, id uuid.UUID) {
	root := tx.root()
	for {
		owner, held := s.locks[id]
		if !held || owner == root {
			break
		}
		s.cond.Wait()
	}
	if _, held := s.locks[id]; !held {
		s.locks[id] = root
		root.locked = append(root.locked, id)
	}
}

// publish applies a committed root write set to the shared tables. Caller holds s.mu.
func (s *Store) publish(w *writeSet) {
	for id, wallet := range w.wallets {
		s.wallets[id] = wallet
	}
	for _, a := range w.adjustments {
		s.adjustments[a.WalletID] = append(s.adjustments[a.WalletID], a)
	}
	for _, id := range w.newRefunds {
		ref := w.refunds[id]
		s.paymentRefunds[ref.PaymentID] = append(s.paymentRefunds[ref.PaymentID], id)
	}
	for id, ref := range w.refunds {
		s.refunds[id] = ref
	}
	for key, rec := range w.idempotency {
		s.idempotency[key] = rec
	}
}

// releaseLocks frees every row lock of a finished root tx. Caller holds s.mu.
func (s *Store) releaseLocks(root *Tx) {
	for _, id := range root.locked {
		delete(s.locks, id)
	}
	root.locked = nil
	s.cond.Broadcast()
}

func txFrom(tx pgx.Tx) (*Tx, error) {
	t, ok := tx.(*Tx)
	if !ok {
		return nil, ErrForeignTx
	}
	return t, nil
}
