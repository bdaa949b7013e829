package memory

import (
	"context"

	"github.com/google/uuid"
)

// CustomerRepo implements ports.CustomerRegistry.
type CustomerRepo struct{ s *Store }

// Exists reports whether the customer was registered with AddCustomer.
func (r *CustomerRepo) Exists(_ context.Context, customerID uuid.UUID) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	_, ok := r.s.customers[customerID]
	return ok, nil
}
