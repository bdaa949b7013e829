package handler

import (
	"store-credit-ledger/internal/adapter/http/dto"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/pkg/apperror"
	"store-credit-ledger/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderIdempotencyKey carries the client's idempotency key for refunds.
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderHandler exposes store credit as a payment and refund method on orders.
type OrderHandler struct {
	payments ports.WalletPaymentHandler
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(payments ports.WalletPaymentHandler) *OrderHandler {
	return &OrderHandler{payments: payments}
}

// PayWithWallet handles POST /api/v1/orders/:id/wallet-payments.
// A declined payment is still a 201: the decline is the payment's state.
func (h *OrderHandler) PayWithWallet(c *gin.Context) {
	orderID, ok := pathUUID(c, "id", "order")
	if !ok {
		return
	}

	var req dto.WalletPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.payments.PayOrder(c.Request.Context(), orderID, req.Amount, uuid.MustParse(req.WalletID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.WalletPaymentResponse{
		Method:        h.payments.Method(),
		State:         string(result.State),
		Amount:        result.Amount,
		AmountDisplay: formatMinor(result.Amount, result.Currency),
		TransactionID: result.TransactionID,
		ErrorMessage:  result.ErrorMessage,
		Metadata:      result.Metadata,
	})
}

// RefundOrder handles POST /api/v1/orders/:id/refunds.
func (h *OrderHandler) RefundOrder(c *gin.Context) {
	orderID, ok := pathUUID(c, "id", "order")
	if !ok {
		return
	}

	idempotencyKey := c.GetHeader(HeaderIdempotencyKey)
	if idempotencyKey != "" && !dto.ValidIdempotencyKey(idempotencyKey) {
		response.Error(c, apperror.Validation("invalid Idempotency-Key header"))
		return
	}

	var req dto.RefundOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	refund, err := h.payments.CreateRefund(c.Request.Context(), ports.RefundRequest{
		OrderID:        orderID,
		PaymentID:      uuid.MustParse(req.PaymentID),
		Amount:         req.Amount,
		Reason:         req.Reason,
		IdempotencyKey: idempotencyKey,
	})
	if err != nil {
		if refund != nil {
			// Part of the allocation committed before the failure.
			response.ErrorWithData(c, err, toRefundResponse(refund))
			return
		}
		response.Error(c, err)
		return
	}

	response.Created(c, toRefundResponse(refund))
}
