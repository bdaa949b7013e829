package handler

import (
	"strconv"

	"store-credit-ledger/internal/adapter/http/dto"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/pkg/apperror"
	"store-credit-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WalletHandler handles wallet and ledger endpoints.
type WalletHandler struct {
	ledger      ports.WalletLedgerService
	adjustments ports.BalanceAdjustmentService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(ledger ports.WalletLedgerService, adjustments ports.BalanceAdjustmentService) *WalletHandler {
	return &WalletHandler{ledger: ledger, adjustments: adjustments}
}

// CreateWallet handles POST /api/v1/wallets.
func (h *WalletHandler) CreateWallet(c *gin.Context) {
	var req dto.CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	channelIDs := make([]uuid.UUID, 0, len(req.ChannelIDs))
	for _, raw := range req.ChannelIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("invalid channel id"))
			return
		}
		channelIDs = append(channelIDs, id)
	}

	wallet, err := h.ledger.CreateWallet(c.Request.Context(), ports.CreateWalletRequest{
		CustomerID: uuid.MustParse(req.CustomerID),
		ChannelIDs: channelIDs,
		Name:       req.Name,
		Currency:   req.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWalletResponse(wallet))
}

// GetWallet handles GET /api/v1/wallets/:id.
func (h *WalletHandler) GetWallet(c *gin.Context) {
	walletID, ok := pathUUID(c, "id", "wallet")
	if !ok {
		return
	}

	wallet, err := h.ledger.GetWallet(c.Request.Context(), walletID, c.Query("history") == "true")
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// ListAdjustments handles GET /api/v1/wallets/:id/adjustments.
func (h *WalletHandler) ListAdjustments(c *gin.Context) {
	walletID, ok := pathUUID(c, "id", "wallet")
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	pageSize = min(max(pageSize, 1), ports.MaxPageSize)

	wallet, err := h.ledger.GetWallet(c.Request.Context(), walletID, false)
	if err != nil {
		response.Error(c, err)
		return
	}

	items, total, err := h.ledger.ListAdjustments(c.Request.Context(), walletID, ports.Page{Page: page, PageSize: pageSize})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.AdjustmentListResponse{
		Items:      make([]dto.AdjustmentResponse, 0, len(items)),
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: int((total + int64(pageSize) - 1) / int64(pageSize)),
	}
	for i := range items {
		resp.Items = append(resp.Items, toAdjustmentResponse(&items[i], wallet.Currency))
	}
	response.OK(c, resp)
}

// AdjustBalance handles POST /api/v1/wallets/:id/adjustments.
func (h *WalletHandler) AdjustBalance(c *gin.Context) {
	walletID, ok := pathUUID(c, "id", "wallet")
	if !ok {
		return
	}

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, err := h.adjustments.AdjustBalance(c.Request.Context(), ports.AdjustBalanceRequest{
		WalletID:    walletID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toWalletResponse(wallet))
}

// Reconcile handles GET /api/v1/wallets/:id/reconciliation.
func (h *WalletHandler) Reconcile(c *gin.Context) {
	walletID, ok := pathUUID(c, "id", "wallet")
	if !ok {
		return
	}

	rec, err := h.ledger.Reconcile(c.Request.Context(), walletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ReconciliationResponse{
		WalletID:        rec.WalletID.String(),
		Balance:         rec.Balance,
		LedgerSum:       rec.LedgerSum,
		AdjustmentCount: rec.AdjustmentCount,
		Consistent:      rec.Consistent,
	})
}

// ListCustomerWallets handles GET /api/v1/customers/:id/wallets.
func (h *WalletHandler) ListCustomerWallets(c *gin.Context) {
	customerID, ok := pathUUID(c, "id", "customer")
	if !ok {
		return
	}

	wallets, err := h.ledger.ListCustomerWallets(c.Request.Context(), customerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.WalletResponse, 0, len(wallets))
	for i := range wallets {
		items = append(items, toWalletResponse(&wallets[i]))
	}
	response.OK(c, items)
}

// pathUUID parses a uuid path parameter, writing a validation error on failure.
func pathUUID(c *gin.Context, param, entity string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		response.Error(c, apperror.Validation("invalid "+entity+" id"))
		return uuid.Nil, false
	}
	return id, true
}
