package memory

import (
	"context"
	"sort"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderRepo implements ports.OrderRepository.
type OrderRepo struct{ s *Store }

// GetByID loads the order with payments in creation order and their refunds.
func (r *OrderRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.Order, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return nil, nil
	}
	out := *o
	out.Payments = nil
	for _, pid := range s.orderPayments[id] {
		p := copyPayment(s.payments[pid])
		p.Refunds = s.refundsOf(pid)
		out.Payments = append(out.Payments, *p)
	}
	sort.SliceStable(out.Payments, func(i, j int) bool {
		a, b := out.Payments[i], out.Payments[j]
		if a.CreatedAt.Equal(b.CreatedAt) {
			return a.ID.String() < b.ID.String()
		}
		return a.CreatedAt.Before(b.CreatedAt)
	})
	return &out, nil
}

// GetPayment loads one payment with its refunds.
func (r *OrderRepo) GetPayment(_ context.Context, id uuid.UUID) (*domain.Payment, error) {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadPayment(id), nil
}

// LockPayment holds the payment row for the rest of tx and loads the refunds tx sees.
func (r *OrderRepo) LockPayment(_ context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	t, err := txFrom(tx)
	if err != nil {
		return nil, err
	}
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.payments[id]; !ok {
		return nil, nil
	}
	s.lockRow(t, id)
	out := copyPayment(s.payments[id])
	out.Refunds = t.refundsOf(id)
	return out, nil
}

func (s *Store) loadPayment(id uuid.UUID) *domain.Payment {
	p, ok := s.payments[id]
	if !ok {
		return nil
	}
	out := copyPayment(p)
	out.Refunds = s.refundsOf(id)
	return out
}
