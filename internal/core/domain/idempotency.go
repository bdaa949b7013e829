package domain

import (
	"time"

	"github.com/google/uuid"
)

// BuildRefundIdempotencyKey scopes a client-supplied key to one order.
func BuildRefundIdempotencyKey(orderID uuid.UUID, key string) string {
	return "refund:" + orderID.String() + ":" + key
}

// IdempotencyRecord is the durable claim on a refund idempotency key. RefundID
// is set in the same transaction that commits the first refund of the allocation.
type IdempotencyRecord struct {
	Key       string     `json:"key"`
	OrderID   uuid.UUID  `json:"order_id"`
	RefundID  *uuid.UUID `json:"refund_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewIdempotencyRecord creates an unfinished claim on key for an order.
func NewIdempotencyRecord(key string, orderID uuid.UUID) *IdempotencyRecord {
	return &IdempotencyRecord{
		Key:       key,
		OrderID:   orderID,
		CreatedAt: time.Now().UTC(),
	}
}
