package postgres

import (
	"context"
	"errors"
	"fmt"
)

// errSchemaMissing is reported when the database answers but the ledger tables are absent.
var errSchemaMissing = errors.New("ledger schema not migrated")

// HealthCheck implements ports.HealthChecker for PostgreSQL. It is healthy only
// when the ledger tables exist, so a fresh database without migrations reports degraded.
type HealthCheck struct {
	pool Pool
}

// NewHealthCheck creates a PostgreSQL health checker.
func NewHealthCheck(pool Pool) *HealthCheck {
	return &HealthCheck{pool: pool}
}

// Ping checks connectivity and the presence of the wallets and ledger tables.
func (h *HealthCheck) Ping(ctx context.Context) error {
	var ready bool
	err := h.pool.QueryRow(ctx,
		`SELECT to_regclass('wallets') IS NOT NULL AND to_regclass('wallet_adjustments') IS NOT NULL`,
	).Scan(&ready)
	if err != nil {
		return fmt.Errorf("postgres health: %w", err)
	}
	if !ready {
		return errSchemaMissing
	}
	return nil
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "postgresql"
}
