package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CustomerRepo implements ports.CustomerRegistry against the customers table.
type CustomerRepo struct {
	pool Pool
}

// NewCustomerRepo creates a new CustomerRepo.
func NewCustomerRepo(pool Pool) *CustomerRepo {
	return &CustomerRepo{pool: pool}
}

// Exists reports whether the customer is known.
func (r *CustomerRepo) Exists(ctx context.Context, customerID uuid.UUID) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)`, customerID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check customer exists: %w", err)
	}
	return exists, nil
}
