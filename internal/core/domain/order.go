package domain

import (
	"time"

	"github.com/google/uuid"
)

// Payment method codes known to the refund settlement registry.
const (
	MethodStoreCredit = "store-credit"
	MethodManual      = "manual"
)

// PaymentMetaWalletID is the payment metadata key holding the debited wallet.
const PaymentMetaWalletID = "walletId"

// OrderState is the fulfilment state of an order.
type OrderState string

const (
	OrderStateAddingItems        OrderState = "AddingItems"
	OrderStateArrangingPayment   OrderState = "ArrangingPayment"
	OrderStatePaymentAuthorized  OrderState = "PaymentAuthorized"
	OrderStatePaymentSettled     OrderState = "PaymentSettled"
	OrderStatePartiallyShipped   OrderState = "PartiallyShipped"
	OrderStateShipped            OrderState = "Shipped"
	OrderStatePartiallyDelivered OrderState = "PartiallyDelivered"
	OrderStateDelivered          OrderState = "Delivered"
	OrderStateCancelled          OrderState = "Cancelled"
)

// IsPreSettlement returns true while no money has been captured for the order.
func (s OrderState) IsPreSettlement() bool {
	switch s {
	case OrderStateAddingItems, OrderStateArrangingPayment, OrderStatePaymentAuthorized:
		return true
	}
	return false
}

// Order is read from the order store; this module never writes it.
type Order struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	CustomerID uuid.UUID  `json:"customer_id"`
	ChannelID  uuid.UUID  `json:"channel_id"`
	State      OrderState `json:"state"`
	Currency   string     `json:"currency"`
	Payments   []Payment  `json:"payments"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Payment looks up a payment of the order by id.
func (o *Order) Payment(id uuid.UUID) (*Payment, bool) {
	for i := range o.Payments {
		if o.Payments[i].ID == id {
			return &o.Payments[i], true
		}
	}
	return nil, false
}

// PaymentState is the lifecycle state of a payment.
type PaymentState string

const (
	PaymentStateCreated    PaymentState = "Created"
	PaymentStateAuthorized PaymentState = "Authorized"
	PaymentStateSettled    PaymentState = "Settled"
	PaymentStateDeclined   PaymentState = "Declined"
	PaymentStateError      PaymentState = "Error"
	PaymentStateCancelled  PaymentState = "Cancelled"
)

// Payment is a single payment against an order together with the refunds issued on it.
type Payment struct {
	ID            uuid.UUID         `json:"id"`
	OrderID       uuid.UUID         `json:"order_id"`
	Method        string            `json:"method"`
	Amount        int64             `json:"amount"`
	State         PaymentState      `json:"state"`
	TransactionID string            `json:"transaction_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	Refunds       []Refund          `json:"refunds,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}

// RefundedTotal sums the refunds that have not failed.
func (p *Payment) RefundedTotal() int64 {
	var total int64
	for _, r := range p.Refunds {
		if r.State != RefundStateFailed {
			total += r.Amount
		}
	}
	return total
}

// RefundableRemainder is what can still be refunded against the payment.
// Payments that never settled have no capacity.
func (p *Payment) RefundableRemainder() int64 {
	if p.State != PaymentStateSettled {
		return 0
	}
	remainder := p.Amount - p.RefundedTotal()
	if remainder < 0 {
		return 0
	}
	return remainder
}

// WalletID parses the wallet reference of a store-credit payment.
func (p *Payment) WalletID() (uuid.UUID, bool) {
	raw, ok := p.Metadata[PaymentMetaWalletID]
	if !ok {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}
