package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrBalanceConstraint is returned by storage when the wallets_balance_non_negative
// check fires. It means the conditional increment was bypassed and must be alerted on.
var ErrBalanceConstraint = errors.New("wallet balance check constraint violated")

// ScopeMismatchError: the wallet is not assigned to the caller's channel.
type ScopeMismatchError struct {
	WalletID  uuid.UUID
	ChannelID uuid.UUID
}

func (e *ScopeMismatchError) Error() string {
	return fmt.Sprintf("wallet %s is not usable in channel %s", e.WalletID, e.ChannelID)
}

// InsufficientBalanceError: a debit would take the balance below zero.
type InsufficientBalanceError struct {
	WalletID uuid.UUID
	Balance  int64
	Amount   int64
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("wallet %s balance %d cannot absorb adjustment %d", e.WalletID, e.Balance, e.Amount)
}

// InvalidCustomerError: the wallet owner does not exist.
type InvalidCustomerError struct {
	CustomerID uuid.UUID
}

func (e *InvalidCustomerError) Error() string {
	return fmt.Sprintf("customer %s does not exist", e.CustomerID)
}

// RefundOrderStateError: the order has not captured any money yet.
type RefundOrderStateError struct {
	OrderID uuid.UUID
	State   OrderState
}

func (e *RefundOrderStateError) Error() string {
	return fmt.Sprintf("order %s cannot be refunded in state %s", e.OrderID, e.State)
}

// RefundAmountError: the requested amount is above what the order can refund.
type RefundAmountError struct {
	Requested     int64
	MaxRefundable int64
}

func (e *RefundAmountError) Error() string {
	return fmt.Sprintf("refund amount %d exceeds refundable total %d", e.Requested, e.MaxRefundable)
}

// RefundStateTransitionError: a refund could not reach the target state.
// Err holds the settlement failure, if any.
type RefundStateTransitionError struct {
	RefundID uuid.UUID
	From     RefundState
	To       RefundState
	Err      error
}

func (e *RefundStateTransitionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("refund %s: transition %s -> %s failed: %v", e.RefundID, e.From, e.To, e.Err)
	}
	return fmt.Sprintf("refund %s: illegal transition %s -> %s", e.RefundID, e.From, e.To)
}

func (e *RefundStateTransitionError) Unwrap() error {
	return e.Err
}
