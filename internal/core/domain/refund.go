package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefundState is the lifecycle state of a single refund record.
type RefundState string

const (
	RefundStatePending RefundState = "Pending"
	RefundStateSettled RefundState = "Settled"
	RefundStateFailed  RefundState = "Failed"
)

// IsTerminal returns true once the refund can no longer change state.
func (s RefundState) IsTerminal() bool {
	return s == RefundStateSettled || s == RefundStateFailed
}

// RefundMetadata records where a settled refund ended up.
type RefundMetadata struct {
	WalletID     *uuid.UUID `json:"walletId,omitempty"`
	AdjustmentID *uuid.UUID `json:"adjustmentId,omitempty"`
}

// Refund is one chunk of a refund allocation, drawn from exactly one payment.
type Refund struct {
	ID            uuid.UUID      `json:"id"`
	PaymentID     uuid.UUID      `json:"payment_id"`
	Method        string         `json:"method"`
	Amount        int64          `json:"amount"`
	Reason        string         `json:"reason"`
	State         RefundState    `json:"state"`
	TransactionID *string        `json:"transaction_id,omitempty"`
	Metadata      RefundMetadata `json:"metadata"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// NewRefund creates a Pending refund against payment.
func NewRefund(payment *Payment, amount int64, reason string) *Refund {
	now := time.Now().UTC()
	return &Refund{
		ID:        uuid.New(),
		PaymentID: payment.ID,
		Method:    payment.Method,
		Amount:    amount,
		Reason:    reason,
		State:     RefundStatePending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// TransitionTo moves the refund to next. Only Pending -> Settled and
// Pending -> Failed are legal.
func (r *Refund) TransitionTo(next RefundState) error {
	if r.State != RefundStatePending || !next.IsTerminal() {
		return &RefundStateTransitionError{RefundID: r.ID, From: r.State, To: next}
	}
	r.State = next
	r.UpdatedAt = time.Now().UTC()
	return nil
}
