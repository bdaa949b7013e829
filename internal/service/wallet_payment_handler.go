package service

import (
	"context"
	"fmt"
	"slices"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// declineCodes are adjustment failures that decline a payment instead of erroring.
var declineCodes = []string{"WAL_001", "WAL_002", "PAY_004"}

// WalletPaymentHandlerImpl implements ports.WalletPaymentHandler: store credit
// as a checkout payment method.
type WalletPaymentHandlerImpl struct {
	adjustments ports.BalanceAdjustmentService
	walletRepo  ports.WalletRepository
	orderRepo   ports.OrderRepository
	refunds     ports.RefundService
	transactor  ports.DBTransactor
	log         zerolog.Logger
}

// NewWalletPaymentHandler creates a new WalletPaymentHandlerImpl.
func NewWalletPaymentHandler(
	adjustments ports.BalanceAdjustmentService,
	walletRepo ports.WalletRepository,
	orderRepo ports.OrderRepository,
	refunds ports.RefundService,
	transactor ports.DBTransactor,
	log zerolog.Logger,
) *WalletPaymentHandlerImpl {
	return &WalletPaymentHandlerImpl{
		adjustments: adjustments,
		walletRepo:  walletRepo,
		orderRepo:   orderRepo,
		refunds:     refunds,
		transactor:  transactor,
		log:         log,
	}
}

func (h *WalletPaymentHandlerImpl) Method() string { return domain.MethodStoreCredit }

// CreatePayment debits the customer's wallet for the order. Business failures
// come back as a Declined result; only infrastructure failures are errors.
func (h *WalletPaymentHandlerImpl) CreatePayment(ctx context.Context, order *domain.Order, amount int64, walletID uuid.UUID) (*ports.PaymentResult, error) {
	if amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	wallet, err := h.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return h.decline(order, amount, walletID, "wallet not found"), nil
	}
	if wallet.CustomerID != order.CustomerID {
		return h.decline(order, amount, walletID, "wallet belongs to another customer"), nil
	}
	if wallet.Currency != order.Currency {
		return h.decline(order, amount, walletID,
			fmt.Sprintf("wallet currency %s does not match order currency %s", wallet.Currency, order.Currency)), nil
	}

	dbTx, err := h.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	actorID := order.CustomerID
	_, adj, err := h.adjustments.AdjustBalanceTx(ctx, dbTx,
		domain.Caller{ChannelID: order.ChannelID, ActorID: &actorID},
		ports.AdjustBalanceRequest{
			WalletID:    walletID,
			Amount:      -amount,
			Description: "paid for order " + order.Code,
		})
	if err != nil {
		if appErr, ok := apperror.As(err); ok && slices.Contains(declineCodes, appErr.Code) {
			return h.decline(order, amount, walletID, appErr.Message), nil
		}
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	h.log.Info().
		Str("order_id", order.ID.String()).
		Str("wallet_id", walletID.String()).
		Str("adjustment_id", adj.ID.String()).
		Int64("amount", amount).
		Msg("wallet payment settled")

	return &ports.PaymentResult{
		State:         domain.PaymentStateSettled,
		Amount:        amount,
		Currency:      order.Currency,
		TransactionID: adj.ID.String(),
		Metadata:      map[string]string{domain.PaymentMetaWalletID: walletID.String()},
	}, nil
}

// PayOrder runs CreatePayment against a stored order.
func (h *WalletPaymentHandlerImpl) PayOrder(ctx context.Context, orderID uuid.UUID, amount int64, walletID uuid.UUID) (*ports.PaymentResult, error) {
	order, err := h.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	return h.CreatePayment(ctx, order, amount, walletID)
}

// CreateRefund hands the refund to the allocation engine.
func (h *WalletPaymentHandlerImpl) CreateRefund(ctx context.Context, req ports.RefundRequest) (*domain.Refund, error) {
	return h.refunds.RefundOrder(ctx, req)
}

func (h *WalletPaymentHandlerImpl) decline(order *domain.Order, amount int64, walletID uuid.UUID, reason string) *ports.PaymentResult {
	h.log.Info().
		Str("order_id", order.ID.String()).
		Str("wallet_id", walletID.String()).
		Int64("amount", amount).
		Str("reason", reason).
		Msg("wallet payment declined")

	return &ports.PaymentResult{
		State:        domain.PaymentStateDeclined,
		Amount:       amount,
		Currency:     order.Currency,
		ErrorMessage: reason,
	}
}
