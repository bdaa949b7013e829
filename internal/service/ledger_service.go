package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// LedgerServiceImpl implements ports.WalletLedgerService.
type LedgerServiceImpl struct {
	walletRepo      ports.WalletRepository
	adjRepo         ports.AdjustmentRepository
	customers       ports.CustomerRegistry
	historyPageSize int
	log             zerolog.Logger
}

// NewLedgerService creates a new LedgerServiceImpl.
func NewLedgerService(
	walletRepo ports.WalletRepository,
	adjRepo ports.AdjustmentRepository,
	customers ports.CustomerRegistry,
	historyPageSize int,
	log zerolog.Logger,
) *LedgerServiceImpl {
	return &LedgerServiceImpl{
		walletRepo:      walletRepo,
		adjRepo:         adjRepo,
		customers:       customers,
		historyPageSize: historyPageSize,
		log:             log,
	}
}

// CreateWallet opens an empty wallet for an existing customer.
func (s *LedgerServiceImpl) CreateWallet(ctx context.Context, req ports.CreateWalletRequest) (*domain.Wallet, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperror.Validation("name is required")
	}
	currency, ok := normalizeCurrency(req.Currency)
	if !ok {
		return nil, apperror.Validation("currency must be a 3-letter ISO-4217 code")
	}
	channels := uniqueChannels(req.ChannelIDs)
	if len(channels) == 0 {
		return nil, apperror.Validation("at least one channel is required")
	}

	exists, err := s.customers.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check customer: %w", err))
	}
	if !exists {
		return nil, apperror.ErrInvalidCustomer(&domain.InvalidCustomerError{CustomerID: req.CustomerID})
	}

	now := time.Now().UTC()
	wallet := &domain.Wallet{
		ID:         uuid.New(),
		CustomerID: req.CustomerID,
		Name:       name,
		ChannelIDs: channels,
		Currency:   currency,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.walletRepo.Create(ctx, wallet); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create wallet: %w", err))
	}

	s.log.Info().
		Str("wallet_id", wallet.ID.String()).
		Str("customer_id", wallet.CustomerID.String()).
		Str("currency", wallet.Currency).
		Int("channels", len(channels)).
		Msg("wallet created")

	return wallet, nil
}

// GetWallet loads a wallet, optionally with the newest page of its ledger.
func (s *LedgerServiceImpl) GetWallet(ctx context.Context, walletID uuid.UUID, withHistory bool) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, apperror.ErrNotFound("wallet")
	}
	if !withHistory {
		return wallet, nil
	}

	history, _, err := s.adjRepo.ListByWallet(ctx, walletID, ports.Page{Page: 1, PageSize: s.historyPageSize})
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list adjustments: %w", err))
	}
	wallet.Adjustments = history
	return wallet, nil
}

// ListAdjustments pages through a wallet's ledger, newest first.
func (s *LedgerServiceImpl) ListAdjustments(ctx context.Context, walletID uuid.UUID, page ports.Page) ([]domain.Adjustment, int64, error) {
	wallet, err := s.walletRepo.GetByID(ctx, walletID)
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("get wallet: %w", err))
	}
	if wallet == nil {
		return nil, 0, apperror.ErrNotFound("wallet")
	}

	adjustments, total, err := s.adjRepo.ListByWallet(ctx, walletID, s.normalizePage(page))
	if err != nil {
		return nil, 0, apperror.InternalError(fmt.Errorf("list adjustments: %w", err))
	}
	return adjustments, total, nil
}

// ListCustomerWallets returns every wallet owned by a customer.
func (s *LedgerServiceImpl) ListCustomerWallets(ctx context.Context, customerID uuid.UUID) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list wallets: %w", err))
	}
	if wallets == nil {
		wallets = []domain.Wallet{}
	}
	return wallets, nil
}

// Reconcile compares the stored balance with the sum of the ledger. Both come
// from one snapshot, so a concurrent adjustment cannot produce a false mismatch.
func (s *LedgerServiceImpl) Reconcile(ctx context.Context, walletID uuid.UUID) (*domain.Reconciliation, error) {
	totals, err := s.adjRepo.LedgerTotals(ctx, walletID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("ledger totals: %w", err))
	}
	if totals == nil {
		return nil, apperror.ErrNotFound("wallet")
	}

	rec := &domain.Reconciliation{
		WalletID:        walletID,
		Balance:         totals.Balance,
		LedgerSum:       totals.Sum,
		AdjustmentCount: totals.Count,
		Consistent:      totals.Sum == totals.Balance,
	}
	if !rec.Consistent {
		s.log.Error().
			Bool("alert", true).
			Str("wallet_id", walletID.String()).
			Int64("balance", totals.Balance).
			Int64("ledger_sum", totals.Sum).
			Msg("wallet balance does not match ledger")
	}
	return rec, nil
}

func (s *LedgerServiceImpl) normalizePage(p ports.Page) ports.Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize <= 0 {
		p.PageSize = s.historyPageSize
	}
	if p.PageSize > ports.MaxPageSize {
		p.PageSize = ports.MaxPageSize
	}
	return p
}

func normalizeCurrency(code string) (string, bool) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", false
	}
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return "", false
		}
	}
	return code, true
}

func uniqueChannels(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == uuid.Nil {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
