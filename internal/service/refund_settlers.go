package service

import (
	"context"
	"fmt"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"

	"github.com/jackc/pgx/v5"
)

// SettlerRegistry maps a payment method code to the settler that moves refund value for it.
type SettlerRegistry map[string]ports.RefundSettler

// NewSettlerRegistry indexes settlers by Method(). A later settler replaces an earlier one.
func NewSettlerRegistry(settlers ...ports.RefundSettler) SettlerRegistry {
	r := make(SettlerRegistry, len(settlers))
	for _, st := range settlers {
		r[st.Method()] = st
	}
	return r
}

// Lookup returns the settler for method.
func (r SettlerRegistry) Lookup(method string) (ports.RefundSettler, bool) {
	st, ok := r[method]
	return st, ok
}

// StoreCreditSettler credits the wallet that paid for the order.
type StoreCreditSettler struct {
	adjustments ports.BalanceAdjustmentService
	walletRepo  ports.WalletRepository
}

// NewStoreCreditSettler creates a new StoreCreditSettler.
func NewStoreCreditSettler(adjustments ports.BalanceAdjustmentService, walletRepo ports.WalletRepository) *StoreCreditSettler {
	return &StoreCreditSettler{adjustments: adjustments, walletRepo: walletRepo}
}

func (s *StoreCreditSettler) Method() string { return domain.MethodStoreCredit }

// Settle credits the refund amount as a system adjustment in the order's channel.
func (s *StoreCreditSettler) Settle(ctx context.Context, tx pgx.Tx, req ports.SettlementRequest) (*ports.SettlementResult, error) {
	walletID, ok := req.Payment.WalletID()
	if !ok {
		return nil, fmt.Errorf("payment %s has no wallet reference", req.Payment.ID)
	}

	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	if wallet == nil {
		return nil, fmt.Errorf("wallet %s not found", walletID)
	}
	if wallet.Currency != req.Order.Currency {
		return nil, fmt.Errorf("wallet currency %s does not match order currency %s", wallet.Currency, req.Order.Currency)
	}

	_, adj, err := s.adjustments.AdjustBalanceTx(ctx, tx,
		domain.Caller{ChannelID: req.Order.ChannelID},
		ports.AdjustBalanceRequest{
			WalletID:    walletID,
			Amount:      req.Refund.Amount,
			Description: "refund for order " + req.Order.Code,
		})
	if err != nil {
		return nil, err
	}

	adjID := adj.ID
	return &ports.SettlementResult{
		TransactionID: adjID.String(),
		Metadata: domain.RefundMetadata{
			WalletID:     &walletID,
			AdjustmentID: &adjID,
		},
	}, nil
}

// ManualSettler accepts refunds that are paid out offline. No value moves.
type ManualSettler struct{}

func (ManualSettler) Method() string { return domain.MethodManual }

func (ManualSettler) Settle(_ context.Context, _ pgx.Tx, _ ports.SettlementRequest) (*ports.SettlementResult, error) {
	return &ports.SettlementResult{}, nil
}
