package memory

import (
	"fmt"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
)

// AddCustomer registers a customer id.
func (s *Store) AddCustomer(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[id] = struct{}{}
}

// AddOrder stores an order together with its payments and any refunds already
// issued on them, standing in for the order system.
func (s *Store) AddOrder(o *domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.orders[o.ID]; exists {
		return fmt.Errorf("add order: duplicate id %s", o.ID)
	}
	row := *o
	row.Payments = nil
	s.orders[o.ID] = &row

	for i := range o.Payments {
		p := o.Payments[i]
		p.OrderID = o.ID
		s.payments[p.ID] = copyPayment(&p)
		s.orderPayments[o.ID] = append(s.orderPayments[o.ID], p.ID)
		for j := range p.Refunds {
			ref := copyRefund(&p.Refunds[j])
			ref.PaymentID = p.ID
			s.refunds[ref.ID] = &ref
			s.paymentRefunds[p.ID] = append(s.paymentRefunds[p.ID], ref.ID)
		}
	}
	return nil
}

// SetOrderState changes the fulfilment state of a stored order.
func (s *Store) SetOrderState(id uuid.UUID, state domain.OrderState) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return fmt.Errorf("set order state: unknown order %s", id)
	}
	o.State = state
	return nil
}
