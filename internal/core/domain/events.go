package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefundEventType names a refund lifecycle notification.
type RefundEventType string

const (
	RefundEventCreated           RefundEventType = "refund.created"
	RefundEventStateTransitioned RefundEventType = "refund.state_transitioned"
)

// RefundEvent is published once per allocation for every committed chunk.
type RefundEvent struct {
	Type       RefundEventType `json:"type"`
	RefundID   uuid.UUID       `json:"refund_id"`
	OrderID    uuid.UUID       `json:"order_id"`
	PaymentID  uuid.UUID       `json:"payment_id"`
	Amount     int64           `json:"amount"`
	FromState  RefundState     `json:"from_state,omitempty"`
	ToState    RefundState     `json:"to_state"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// NewRefundCreatedEvent describes a freshly inserted refund.
func NewRefundCreatedEvent(orderID uuid.UUID, r *Refund) RefundEvent {
	return RefundEvent{
		Type:       RefundEventCreated,
		RefundID:   r.ID,
		OrderID:    orderID,
		PaymentID:  r.PaymentID,
		Amount:     r.Amount,
		ToState:    RefundStatePending,
		OccurredAt: r.CreatedAt,
	}
}

// NewRefundTransitionEvent describes a refund leaving Pending.
func NewRefundTransitionEvent(orderID uuid.UUID, r *Refund, from RefundState) RefundEvent {
	return RefundEvent{
		Type:       RefundEventStateTransitioned,
		RefundID:   r.ID,
		OrderID:    orderID,
		PaymentID:  r.PaymentID,
		Amount:     r.Amount,
		FromState:  from,
		ToState:    r.State,
		OccurredAt: r.UpdatedAt,
	}
}
