package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"store-credit-ledger/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const paymentColumns = `id, order_id, method, amount, state, transaction_id, metadata, created_at`

// querier is satisfied by both Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// OrderRepo implements ports.OrderRepository over the order system's tables.
// It never writes orders or payments.
type OrderRepo struct {
	pool Pool
}

// NewOrderRepo creates a new OrderRepo.
func NewOrderRepo(pool Pool) *OrderRepo {
	return &OrderRepo{pool: pool}
}

// GetByID loads an order with its payments (creation order) and their refunds.
func (r *OrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	var (
		o     domain.Order
		state string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, code, customer_id, channel_id, state, currency, created_at FROM orders WHERE id = $1`, id,
	).Scan(&o.ID, &o.Code, &o.CustomerID, &o.ChannelID, &state, &o.Currency, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order by id: %w", err)
	}
	o.State = domain.OrderState(state)

	payments, err := queryPayments(ctx, r.pool,
		`SELECT `+paymentColumns+` FROM payments WHERE order_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, err
	}

	refunds, err := queryRefunds(ctx, r.pool,
		`SELECT `+refundColumns+` FROM refunds
		WHERE payment_id IN (SELECT id FROM payments WHERE order_id = $1)
		ORDER BY created_at, id`, id)
	if err != nil {
		return nil, err
	}

	byPayment := make(map[uuid.UUID][]domain.Refund, len(payments))
	for _, ref := range refunds {
		byPayment[ref.PaymentID] = append(byPayment[ref.PaymentID], ref)
	}
	for i := range payments {
		payments[i].Refunds = byPayment[payments[i].ID]
	}
	o.Payments = payments
	return &o, nil
}

// GetPayment loads one payment with its refunds.
func (r *OrderRepo) GetPayment(ctx context.Context, id uuid.UUID) (*domain.Payment, error) {
	return loadPayment(ctx, r.pool, `SELECT `+paymentColumns+` FROM payments WHERE id = $1`, id)
}

// LockPayment takes a row lock on the payment so that concurrent allocations
// against it serialize, then reads its refunds as seen by tx.
func (r *OrderRepo) LockPayment(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Payment, error) {
	return loadPayment(ctx, tx, `SELECT `+paymentColumns+` FROM payments WHERE id = $1 FOR UPDATE`, id)
}

func loadPayment(ctx context.Context, q querier, query string, id uuid.UUID) (*domain.Payment, error) {
	p, err := scanPayment(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}

	p.Refunds, err = queryRefunds(ctx, q,
		`SELECT `+refundColumns+` FROM refunds WHERE payment_id = $1 ORDER BY created_at, id`, id)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func queryPayments(ctx context.Context, q querier, query string, args ...any) ([]domain.Payment, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return payments, nil
}

func queryRefunds(ctx context.Context, q querier, query string, args ...any) ([]domain.Refund, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list refunds: %w", err)
	}
	defer rows.Close()

	var refunds []domain.Refund
	for rows.Next() {
		ref, err := scanRefund(rows)
		if err != nil {
			return nil, fmt.Errorf("scan refund: %w", err)
		}
		refunds = append(refunds, *ref)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate refunds: %w", err)
	}
	return refunds, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	var (
		p     domain.Payment
		state string
		meta  []byte
	)
	if err := row.Scan(
		&p.ID, &p.OrderID, &p.Method, &p.Amount, &state,
		&p.TransactionID, &meta, &p.CreatedAt,
	); err != nil {
		return nil, err
	}
	p.State = domain.PaymentState(state)
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &p.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshal payment metadata: %w", err)
		}
	}
	return &p, nil
}
