package handler

import (
	"time"

	"store-credit-ledger/internal/adapter/http/dto"
	"store-credit-ledger/internal/core/domain"
)

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	channelIDs := make([]string, 0, len(w.ChannelIDs))
	for _, id := range w.ChannelIDs {
		channelIDs = append(channelIDs, id.String())
	}

	resp := dto.WalletResponse{
		ID:             w.ID.String(),
		CustomerID:     w.CustomerID.String(),
		Name:           w.Name,
		ChannelIDs:     channelIDs,
		Currency:       w.Currency,
		Balance:        w.Balance,
		BalanceDisplay: formatMinor(w.Balance, w.Currency),
		CreatedAt:      w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      w.UpdatedAt.Format(time.RFC3339),
	}
	for i := range w.Adjustments {
		resp.Adjustments = append(resp.Adjustments, toAdjustmentResponse(&w.Adjustments[i], w.Currency))
	}
	return resp
}

func toAdjustmentResponse(a *domain.Adjustment, currency string) dto.AdjustmentResponse {
	resp := dto.AdjustmentResponse{
		ID:            a.ID.String(),
		Amount:        a.Amount,
		AmountDisplay: formatMinor(a.Amount, currency),
		Description:   a.Description,
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
	if a.ActorID != nil {
		actor := a.ActorID.String()
		resp.ActorID = &actor
	}
	return resp
}

func toRefundResponse(r *domain.Refund) dto.RefundResponse {
	resp := dto.RefundResponse{
		ID:            r.ID.String(),
		PaymentID:     r.PaymentID.String(),
		Method:        r.Method,
		Amount:        r.Amount,
		Reason:        r.Reason,
		State:         string(r.State),
		TransactionID: r.TransactionID,
		CreatedAt:     r.CreatedAt.Format(time.RFC3339),
	}
	if r.Metadata.WalletID != nil || r.Metadata.AdjustmentID != nil {
		resp.Metadata = make(map[string]string, 2)
		if r.Metadata.WalletID != nil {
			resp.Metadata[domain.PaymentMetaWalletID] = r.Metadata.WalletID.String()
		}
		if r.Metadata.AdjustmentID != nil {
			resp.Metadata["adjustmentId"] = r.Metadata.AdjustmentID.String()
		}
	}
	return resp
}

func formatMinor(amount int64, currency string) string {
	if currency == "" {
		return ""
	}
	return domain.FormatMinor(amount, currency)
}
