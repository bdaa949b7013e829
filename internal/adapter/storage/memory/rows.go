package memory

import (
	"maps"
	"slices"

	"store-credit-ledger/internal/core/domain"
)

type (
	walletRow     = domain.Wallet
	adjustmentRow = domain.Adjustment
	orderRow      = domain.Order
	paymentRow    = domain.Payment
	refundRow     = domain.Refund
)

func copyWallet(w *walletRow) *domain.Wallet {
	out := *w
	out.ChannelIDs = slices.Clone(w.ChannelIDs)
	out.Adjustments = nil
	return &out
}

func copyPayment(p *paymentRow) *domain.Payment {
	out := *p
	out.Metadata = maps.Clone(p.Metadata)
	out.Refunds = nil
	return &out
}

func copyRefund(r *refundRow) domain.Refund {
	out := *r
	if r.TransactionID != nil {
		v := *r.TransactionID
		out.TransactionID = &v
	}
	if r.Metadata.WalletID != nil {
		v := *r.Metadata.WalletID
		out.Metadata.WalletID = &v
	}
	if r.Metadata.AdjustmentID != nil {
		v := *r.Metadata.AdjustmentID
		out.Metadata.AdjustmentID = &v
	}
	return out
}
