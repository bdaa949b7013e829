package dto

// CreateWalletRequest is the request body for wallet creation.
type CreateWalletRequest struct {
	CustomerID string   `json:"customer_id" binding:"required,uuid"`
	ChannelIDs []string `json:"channel_ids" binding:"required,min=1,dive,uuid"`
	Name       string   `json:"name" binding:"required,min=1,max=100"`
	Currency   string   `json:"currency" binding:"required,currency_code"`
}

// AdjustBalanceRequest is the request body for a manual balance adjustment.
// Positive amounts credit the wallet, negative amounts debit it.
type AdjustBalanceRequest struct {
	Amount      int64  `json:"amount" binding:"required"`
	Description string `json:"description" binding:"required,max=255"`
}

// WalletPaymentRequest is the request body for paying an order with store credit.
type WalletPaymentRequest struct {
	WalletID string `json:"wallet_id" binding:"required,uuid"`
	Amount   int64  `json:"amount" binding:"required,gt=0"`
}

// RefundOrderRequest is the request body for refunding an order.
type RefundOrderRequest struct {
	PaymentID string `json:"payment_id" binding:"required,uuid"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Reason    string `json:"reason" binding:"max=255"`
}

// WalletResponse is the response body for a wallet.
type WalletResponse struct {
	ID             string               `json:"id"`
	CustomerID     string               `json:"customer_id"`
	Name           string               `json:"name"`
	ChannelIDs     []string             `json:"channel_ids"`
	Currency       string               `json:"currency"`
	Balance        int64                `json:"balance"`
	BalanceDisplay string               `json:"balance_display"`
	CreatedAt      string               `json:"created_at"`
	UpdatedAt      string               `json:"updated_at"`
	Adjustments    []AdjustmentResponse `json:"adjustments,omitempty"`
}

// AdjustmentResponse is one ledger entry.
type AdjustmentResponse struct {
	ID            string  `json:"id"`
	Amount        int64   `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	Description   string  `json:"description"`
	ActorID       *string `json:"actor_id,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

// AdjustmentListResponse wraps a paginated ledger listing.
type AdjustmentListResponse struct {
	Items      []AdjustmentResponse `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	PageSize   int                  `json:"page_size"`
	TotalPages int                  `json:"total_pages"`
}

// RefundResponse is the response body for a refund record.
type RefundResponse struct {
	ID            string            `json:"id"`
	PaymentID     string            `json:"payment_id"`
	Method        string            `json:"method"`
	Amount        int64             `json:"amount"`
	Reason        string            `json:"reason"`
	State         string            `json:"state"`
	TransactionID *string           `json:"transaction_id,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     string            `json:"created_at"`
}

// ReconciliationResponse reports whether a wallet balance matches its ledger.
type ReconciliationResponse struct {
	WalletID        string `json:"wallet_id"`
	Balance         int64  `json:"balance"`
	LedgerSum       int64  `json:"ledger_sum"`
	AdjustmentCount int64  `json:"adjustment_count"`
	Consistent      bool   `json:"consistent"`
}

// WalletPaymentResponse is the outcome of a pay-with-wallet attempt.
type WalletPaymentResponse struct {
	Method        string            `json:"method"`
	State         string            `json:"state"`
	Amount        int64             `json:"amount"`
	AmountDisplay string            `json:"amount_display"`
	TransactionID string            `json:"transaction_id,omitempty"`
	ErrorMessage  string            `json:"error_message,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}
