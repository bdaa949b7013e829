package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"store-credit-ledger/internal/adapter/storage/memory"
	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

const testHistoryPageSize = 50

// mockTx implements pgx.Tx for testing. Begin hands out a savepoint.
type mockTx struct {
	pgx.Tx
	committed bool
}

func (m *mockTx) Begin(_ context.Context) (pgx.Tx, error) { return &mockTx{}, nil }
func (m *mockTx) Rollback(_ context.Context) error        { return nil }
func (m *mockTx) Commit(_ context.Context) error {
	m.committed = true
	return nil
}

// recordingSink keeps every batch it receives.
type recordingSink struct {
	mu      sync.Mutex
	batches [][]domain.RefundEvent
	err     error
}

func (s *recordingSink) PublishRefundEvents(_ context.Context, events []domain.RefundEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches = append(s.batches, events)
	return s.err
}

func (s *recordingSink) Batches() [][]domain.RefundEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batches
}

// ledgerHarness wires the real services over the in-memory store.
type ledgerHarness struct {
	store       *memory.Store
	ledger      *LedgerServiceImpl
	adjustments *AdjustmentServiceImpl
	refunds     *RefundServiceImpl
	payments    *WalletPaymentHandlerImpl
	sink        *recordingSink
	customerID  uuid.UUID
	channelID   uuid.UUID
}

func newLedgerHarness(t *testing.T, cache ports.IdempotencyCache) *ledgerHarness {
	t.Helper()
	store := memory.New()
	log := zerolog.Nop()

	h := &ledgerHarness{
		store:      store,
		sink:       &recordingSink{},
		customerID: uuid.New(),
		channelID:  uuid.New(),
	}
	store.AddCustomer(h.customerID)

	h.ledger = NewLedgerService(store.Wallets(), store.Adjustments(), store.Customers(), testHistoryPageSize, log)
	h.adjustments = NewAdjustmentService(store.Wallets(), store.Adjustments(), store, testHistoryPageSize, log)
	settlers := NewSettlerRegistry(
		NewStoreCreditSettler(h.adjustments, store.Wallets()),
		ManualSettler{},
	)
	h.refunds = NewRefundService(store.Orders(), store.Refunds(), store.Idempotency(), settlers, cache, h.sink, store, time.Hour, log)
	h.payments = NewWalletPaymentHandler(h.adjustments, store.Wallets(), store.Orders(), h.refunds, store, log)
	return h
}

func (h *ledgerHarness) ctx() context.Context {
	actor := uuid.New()
	return domain.WithCaller(context.Background(), domain.Caller{ChannelID: h.channelID, ActorID: &actor})
}

func (h *ledgerHarness) newWallet(t *testing.T, currency string) *domain.Wallet {
	t.Helper()
	w, err := h.ledger.CreateWallet(context.Background(), ports.CreateWalletRequest{
		CustomerID: h.customerID,
		ChannelIDs: []uuid.UUID{h.channelID},
		Name:       "Gift card",
		Currency:   currency,
	})
	require.NoError(t, err)
	return w
}

func (h *ledgerHarness) adjust(t *testing.T, walletID uuid.UUID, amount int64, desc string) *domain.Wallet {
	t.Helper()
	w, err := h.adjustments.AdjustBalance(h.ctx(), ports.AdjustBalanceRequest{
		WalletID:    walletID,
		Amount:      amount,
		Description: desc,
	})
	require.NoError(t, err)
	return w
}

func (h *ledgerHarness) balance(t *testing.T, walletID uuid.UUID) int64 {
	t.Helper()
	w, err := h.ledger.GetWallet(context.Background(), walletID, false)
	require.NoError(t, err)
	return w.Balance
}

func (h *ledgerHarness) reconcile(t *testing.T, walletID uuid.UUID) *domain.Reconciliation {
	t.Helper()
	rec, err := h.ledger.Reconcile(context.Background(), walletID)
	require.NoError(t, err)
	return rec
}

func (h *ledgerHarness) addOrder(t *testing.T, state domain.OrderState, payments ...domain.Payment) *domain.Order {
	t.Helper()
	order := &domain.Order{
		ID:         uuid.New(),
		Code:       "ORD-" + uuid.NewString()[:8],
		CustomerID: h.customerID,
		ChannelID:  h.channelID,
		State:      state,
		Currency:   "USD",
		Payments:   payments,
		CreatedAt:  time.Now().UTC(),
	}
	require.NoError(t, h.store.AddOrder(order))
	return order
}

// refundsOf reloads the refunds recorded against a payment.
func (h *ledgerHarness) refundsOf(t *testing.T, paymentID uuid.UUID) []domain.Refund {
	t.Helper()
	p, err := h.store.Orders().GetPayment(context.Background(), paymentID)
	require.NoError(t, err)
	require.NotNil(t, p)
	return p.Refunds
}

func storeCreditPayment(walletID uuid.UUID, amount int64, createdAt time.Time) domain.Payment {
	return domain.Payment{
		ID:        uuid.New(),
		Method:    domain.MethodStoreCredit,
		Amount:    amount,
		State:     domain.PaymentStateSettled,
		Metadata:  map[string]string{domain.PaymentMetaWalletID: walletID.String()},
		CreatedAt: createdAt,
	}
}

func methodPayment(method string, amount int64, createdAt time.Time) domain.Payment {
	return domain.Payment{
		ID:        uuid.New(),
		Method:    method,
		Amount:    amount,
		State:     domain.PaymentStateSettled,
		CreatedAt: createdAt,
	}
}
