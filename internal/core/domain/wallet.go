package domain

import (
	"time"

	"github.com/google/uuid"
)

// Wallet is a customer's prepaid store-credit balance, usable in a fixed set of channels.
// Balance is never written directly; it only moves through adjustments.
type Wallet struct {
	ID          uuid.UUID    `json:"id"`
	CustomerID  uuid.UUID    `json:"customer_id"`
	Name        string       `json:"name"`
	ChannelIDs  []uuid.UUID  `json:"channel_ids"`
	Currency    string       `json:"currency"`
	Balance     int64        `json:"balance"` // minor units, >= 0
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Adjustments []Adjustment `json:"adjustments,omitempty"` // only when history was requested
}

// UsableIn reports whether the wallet is assigned to channelID.
func (w *Wallet) UsableIn(channelID uuid.UUID) bool {
	for _, id := range w.ChannelIDs {
		if id == channelID {
			return true
		}
	}
	return false
}

// Adjustment is an immutable ledger entry. Credits are positive, debits negative.
type Adjustment struct {
	ID          uuid.UUID  `json:"id"`
	WalletID    uuid.UUID  `json:"wallet_id"`
	Amount      int64      `json:"amount"`
	Description string     `json:"description"`
	ActorID     *uuid.UUID `json:"actor_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewAdjustment builds a ledger entry with a time-ordered id.
func NewAdjustment(walletID uuid.UUID, amount int64, description string, actorID *uuid.UUID) (*Adjustment, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}
	return &Adjustment{
		ID:          id,
		WalletID:    walletID,
		Amount:      amount,
		Description: description,
		ActorID:     actorID,
		CreatedAt:   time.Now().UTC(),
	}, nil
}

// LedgerTotals is a wallet's stored balance and ledger aggregate read at one point in time.
type LedgerTotals struct {
	Balance int64
	Sum     int64
	Count   int64
}

// Reconciliation compares a wallet's stored balance with the sum of its ledger.
type Reconciliation struct {
	WalletID        uuid.UUID `json:"wallet_id"`
	Balance         int64     `json:"balance"`
	LedgerSum       int64     `json:"ledger_sum"`
	AdjustmentCount int64     `json:"adjustment_count"`
	Consistent      bool      `json:"consistent"`
}
