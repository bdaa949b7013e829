package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/pkg/apperror"
	"store-credit-ledger/pkg/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// AdjustmentServiceImpl implements ports.BalanceAdjustmentService.
// It is the only writer of wallet balances.
type AdjustmentServiceImpl struct {
	walletRepo      ports.WalletRepository
	adjRepo         ports.AdjustmentRepository
	transactor      ports.DBTransactor
	historyPageSize int
	log             zerolog.Logger
}

// NewAdjustmentService creates a new AdjustmentServiceImpl.
func NewAdjustmentService(
	walletRepo ports.WalletRepository,
	adjRepo ports.AdjustmentRepository,
	transactor ports.DBTransactor,
	historyPageSize int,
	log zerolog.Logger,
) *AdjustmentServiceImpl {
	return &AdjustmentServiceImpl{
		walletRepo:      walletRepo,
		adjRepo:         adjRepo,
		transactor:      transactor,
		historyPageSize: historyPageSize,
		log:             log,
	}
}

// AdjustBalance applies a signed adjustment in its own transaction on behalf of
// the caller stored in ctx, and returns the wallet with its newest history.
func (s *AdjustmentServiceImpl) AdjustBalance(ctx context.Context, req ports.AdjustBalanceRequest) (*domain.Wallet, error) {
	ctx, span := tracing.Tracer.Start(ctx, "ledger.AdjustBalance", trace.WithAttributes(
		attribute.String("wallet.id", req.WalletID.String()),
		attribute.Int64("adjustment.amount", req.Amount),
	))
	defer span.End()

	wallet, err := s.adjustBalance(ctx, req)
	return wallet, tracing.RecordError(span, err)
}

func (s *AdjustmentServiceImpl) adjustBalance(ctx context.Context, req ports.AdjustBalanceRequest) (*domain.Wallet, error) {
	if err := validateAdjustment(req); err != nil {
		return nil, err
	}
	caller, ok := domain.CallerFrom(ctx)
	if !ok {
		return nil, apperror.ErrInvalidToken()
	}

	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	wallet, adj, err := s.apply(ctx, dbTx, caller, req)
	if err != nil {
		return nil, err
	}

	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("adjustment_id", adj.ID.String()).
		Int64("amount", adj.Amount).
		Int64("balance", wallet.Balance).
		Msg("balance adjusted")

	history, _, err := s.adjRepo.ListByWallet(ctx, wallet.ID, ports.Page{Page: 1, PageSize: s.historyPageSize})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list adjustments: %w", err))
	}
	wallet.Adjustments = history
	return wallet, nil
}

// AdjustBalanceTx applies a signed adjustment inside tx. The caller commits.
func (s *AdjustmentServiceImpl) AdjustBalanceTx(ctx context.Context, tx pgx.Tx, caller domain.Caller, req ports.AdjustBalanceRequest) (*domain.Wallet, *domain.Adjustment, error) {
	if err := validateAdjustment(req); err != nil {
		return nil, nil, err
	}
	return s.apply(ctx, tx, caller, req)
}

func (s *AdjustmentServiceImpl) apply(ctx context.Context, tx pgx.Tx, caller domain.Caller, req ports.AdjustBalanceRequest) (*domain.Wallet, *domain.Adjustment, error) {
	wallet, err := s.walletRepo.GetByID(ctx, req.WalletID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, nil, apperror.ErrNotFound("wallet")
	}
	if !wallet.UsableIn(caller.ChannelID) {
		return nil, nil, apperror.ErrScopeMismatch(&domain.ScopeMismatchError{
			WalletID:  wallet.ID,
			ChannelID: caller.ChannelID,
		})
	}

	updated, err := s.walletRepo.IncrementBalance(ctx, tx, wallet.ID, req.Amount)
	if errors.Is(err, domain.ErrBalanceConstraint) {
		s.log.Error().
			Err(err).
			Bool("alert", true).
			Str("wallet_id", wallet.ID.String()).
			Int64("amount", req.Amount).
			Msg("balance check constraint fired")
		return nil, nil, apperror.ErrDatabaseError(err)
	}
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("increment balance: %w", err))
	}
	if updated == nil {
		return nil, nil, apperror.ErrInsufficientBalance(&domain.InsufficientBalanceError{
			WalletID: wallet.ID,
			Balance:  wallet.Balance,
			Amount:   req.Amount,
		})
	}

	adj, err := domain.NewAdjustment(wallet.ID, req.Amount, req.Description, caller.ActorID)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("new adjustment: %w", err))
	}
	if err := s.adjRepo.Create(ctx, tx, adj); err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("create adjustment: %w", err))
	}

	return updated, adj, nil
}

func validateAdjustment(req ports.AdjustBalanceRequest) error {
	if req.Amount == 0 {
		return apperror.ErrInvalidAmount()
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperror.Validation("description is required")
	}
	return nil
}
