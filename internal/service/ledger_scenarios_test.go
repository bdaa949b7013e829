package service

import (
	"context"
	"errors"
	"math/rand/v2"
	"sync"
	"testing"
	"time"

	"store-credit-ledger/internal/adapter/storage/redis"
	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/pkg/apperror"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_TopUpThenSpend(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	assert.Equal(t, int64(0), w.Balance)

	w = h.adjust(t, w.ID, 100, "initial top-up")
	assert.Equal(t, int64(100), w.Balance)
	require.Len(t, w.Adjustments, 1)

	w = h.adjust(t, w.ID, -70, "paid for order X")
	assert.Equal(t, int64(30), w.Balance)
	require.Len(t, w.Adjustments, 2)
	// newest first
	assert.Equal(t, int64(-70), w.Adjustments[0].Amount)
	assert.Equal(t, "paid for order X", w.Adjustments[0].Description)
	assert.Equal(t, int64(100), w.Adjustments[1].Amount)
}

func TestScenario_SinglePaymentRefundToWallet(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	h.adjust(t, w.ID, 500_000, "initial top-up")

	payment := storeCreditPayment(w.ID, 500_000, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)

	refund, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: payment.ID, Amount: 492_140, Reason: "returned items",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(492_140), refund.Amount)
	assert.Equal(t, domain.RefundStateSettled, refund.State)
	require.NotNil(t, refund.Metadata.AdjustmentID)
	require.NotNil(t, refund.TransactionID)
	assert.Equal(t, refund.Metadata.AdjustmentID.String(), *refund.TransactionID)

	assert.Equal(t, int64(992_140), h.balance(t, w.ID))
	assert.True(t, h.reconcile(t, w.ID).Consistent)

	refunds := h.refundsOf(t, payment.ID)
	require.Len(t, refunds, 1)
	assert.Equal(t, domain.RefundStateSettled, refunds[0].State)

	adjustments, _, err := h.ledger.ListAdjustments(context.Background(), w.ID, ports.Page{Page: 1, PageSize: 1})
	require.NoError(t, err)
	assert.Equal(t, "refund for order "+order.Code, adjustments[0].Description)
	assert.Nil(t, adjustments[0].ActorID, "refund credits are system adjustments")
}

func TestScenario_RefundSpansTwoPayments(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	base := time.Now().UTC()

	// The other payment is older, so only the trigger-first rule puts p40 first.
	p80 := storeCreditPayment(w.ID, 80, base)
	p40 := storeCreditPayment(w.ID, 40, base.Add(time.Minute))
	order := h.addOrder(t, domain.OrderStateShipped, p80, p40)

	primary, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: p40.ID, Amount: 100, Reason: "cancelled",
	})
	require.NoError(t, err)
	assert.Equal(t, p40.ID, primary.PaymentID)
	assert.Equal(t, int64(40), primary.Amount)

	r40 := h.refundsOf(t, p40.ID)
	r80 := h.refundsOf(t, p80.ID)
	require.Len(t, r40, 1)
	require.Len(t, r80, 1)
	assert.Equal(t, int64(40), r40[0].Amount)
	assert.Equal(t, int64(60), r80[0].Amount)

	got, err := h.store.Orders().GetByID(context.Background(), order.ID)
	require.NoError(t, err)
	remainders := map[uuid.UUID]int64{}
	for i := range got.Payments {
		remainders[got.Payments[i].ID] = got.Payments[i].RefundableRemainder()
	}
	assert.Equal(t, int64(0), remainders[p40.ID])
	assert.Equal(t, int64(20), remainders[p80.ID])
	assert.Equal(t, int64(100), h.balance(t, w.ID))

	batches := h.sink.Batches()
	require.Len(t, batches, 1, "one sink call per allocation")
	assert.Len(t, batches[0], 4)
}

func TestScenario_OrderStillAddingItems(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateAddingItems, payment)

	for _, amount := range []int64{1, 100} {
		_, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
			OrderID: order.ID, PaymentID: payment.ID, Amount: amount,
		})
		var stateErr *domain.RefundOrderStateError
		require.True(t, errors.As(err, &stateErr))
		assert.Equal(t, domain.OrderStateAddingItems, stateErr.State)
	}
	assert.Empty(t, h.refundsOf(t, payment.ID))
	assert.Empty(t, h.sink.Batches())
}

func TestProperty_ConservationAndNonNegativity(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	rng := rand.New(rand.NewPCG(7, 11))

	var rows, rejected int64
	for i := 0; i < 200; i++ {
		amount := rng.Int64N(201) - 120
		if amount == 0 {
			continue
		}
		before := h.balance(t, w.ID)
		_, err := h.adjustments.AdjustBalance(h.ctx(), ports.AdjustBalanceRequest{
			WalletID: w.ID, Amount: amount, Description: "random",
		})
		if before+amount < 0 {
			require.True(t, apperror.HasCode(err, "WAL_002"), "step %d: %v", i, err)
			rejected++
		} else {
			require.NoError(t, err)
			rows++
		}

		rec := h.reconcile(t, w.ID)
		require.True(t, rec.Consistent, "step %d", i)
		require.GreaterOrEqual(t, rec.Balance, int64(0))
		require.Equal(t, rows, rec.AdjustmentCount)
	}
	assert.Positive(t, rejected, "sequence should exercise rejected debits")
}

func TestProperty_ConcurrentIncrements(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	const n = 50

	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.adjustments.AdjustBalance(h.ctx(), ports.AdjustBalanceRequest{
				WalletID: w.ID, Amount: 1, Description: "+1",
			})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	_, total, err := h.ledger.ListAdjustments(context.Background(), w.ID, ports.Page{})
	require.NoError(t, err)
	assert.Equal(t, int64(n), total)
	assert.Equal(t, int64(n), h.balance(t, w.ID))
}

func TestProperty_ConcurrentDebitsNeverOverdraw(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	h.adjust(t, w.ID, 10, "top-up")

	var wg sync.WaitGroup
	results := make(chan error, 25)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.adjustments.AdjustBalance(h.ctx(), ports.AdjustBalanceRequest{
				WalletID: w.ID, Amount: -1, Description: "-1",
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		case apperror.HasCode(err, "WAL_002"):
			insufficient++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 10, ok)
	assert.Equal(t, 15, insufficient)
	assert.Equal(t, int64(0), h.balance(t, w.ID))
	assert.True(t, h.reconcile(t, w.ID).Consistent)
}

func TestProperty_RefundConservationAndPerPaymentCap(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	base := time.Now().UTC()
	payments := []domain.Payment{
		storeCreditPayment(w.ID, 30, base),
		methodPayment(domain.MethodManual, 50, base.Add(time.Second)),
		storeCreditPayment(w.ID, 20, base.Add(2*time.Second)),
	}
	order := h.addOrder(t, domain.OrderStatePaymentSettled, payments...)

	var refunded int64
	for i, amount := range []int64{15, 45, 25, 15} {
		trigger := payments[i%len(payments)].ID
		_, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
			OrderID: order.ID, PaymentID: trigger, Amount: amount,
		})
		require.NoError(t, err, "refund %d", i)
		refunded += amount

		var sum int64
		for _, p := range payments {
			var perPayment int64
			for _, r := range h.refundsOf(t, p.ID) {
				require.Equal(t, domain.RefundStateSettled, r.State)
				perPayment += r.Amount
			}
			require.LessOrEqual(t, perPayment, p.Amount)
			sum += perPayment
		}
		require.Equal(t, refunded, sum)
	}

	// Fully refunded now.
	_, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: payments[0].ID, Amount: 1,
	})
	assert.True(t, apperror.HasCode(err, "REF_002"))
	// Only the store-credit share landed in the wallet.
	assert.Equal(t, int64(50), h.balance(t, w.ID))
}

func TestProperty_OverRefundMutatesNothing(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	h.adjust(t, w.ID, 5, "top-up")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)

	_, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: payment.ID, Amount: 101,
	})
	appErr, ok := apperror.As(err)
	require.True(t, ok)
	assert.Equal(t, "REF_002", appErr.Code)
	assert.Equal(t, int64(100), appErr.Details["max_refundable"])

	assert.Empty(t, h.refundsOf(t, payment.ID))
	assert.Equal(t, int64(5), h.balance(t, w.ID))
	assert.Equal(t, int64(1), h.reconcile(t, w.ID).AdjustmentCount)
}

func TestProperty_ConcurrentRefundsRespectCap(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)

	const n = 8
	var wg sync.WaitGroup
	results := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
				OrderID: order.ID, PaymentID: payment.ID, Amount: 30,
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok int
	for err := range results {
		if err == nil {
			ok++
			continue
		}
		require.True(t, apperror.HasCode(err, "REF_002"), "unexpected error: %v", err)
	}
	assert.Equal(t, 3, ok)

	var total int64
	for _, r := range h.refundsOf(t, payment.ID) {
		total += r.Amount
	}
	assert.Equal(t, int64(90), total)
	assert.Equal(t, int64(90), h.balance(t, w.ID))
}

func TestRefundOrder_MidLoopFailureKeepsEarlierChunks(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	base := time.Now().UTC()
	good := storeCreditPayment(w.ID, 60, base)
	unsupported := methodPayment("gift-voucher", 70, base.Add(time.Second))
	order := h.addOrder(t, domain.OrderStateDelivered, good, unsupported)

	primary, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: good.ID, Amount: 100,
	})
	require.Error(t, err)
	assert.True(t, apperror.HasCode(err, "REF_003"))
	require.NotNil(t, primary, "the committed first chunk is reported with the error")
	assert.Equal(t, good.ID, primary.PaymentID)
	assert.Equal(t, int64(60), primary.Amount)
	assert.Equal(t, domain.RefundStateSettled, primary.State)

	var transition *domain.RefundStateTransitionError
	require.True(t, errors.As(err, &transition))
	assert.Equal(t, domain.RefundStatePending, transition.From)
	assert.Equal(t, domain.RefundStateSettled, transition.To)
	assert.ErrorContains(t, transition.Err, "gift-voucher")

	settled := h.refundsOf(t, good.ID)
	require.Len(t, settled, 1)
	assert.Equal(t, domain.RefundStateSettled, settled[0].State)
	assert.Equal(t, int64(60), h.balance(t, w.ID))

	failed := h.refundsOf(t, unsupported.ID)
	require.Len(t, failed, 1)
	assert.Equal(t, domain.RefundStateFailed, failed[0].State)
	assert.Equal(t, int64(40), failed[0].Amount)

	batches := h.sink.Batches()
	require.Len(t, batches, 1)
	assert.Len(t, batches[0], 4)
	assert.Equal(t, domain.RefundStateFailed, batches[0][3].ToState)

	// The failed chunk does not consume capacity.
	got, err := h.store.Orders().GetPayment(context.Background(), unsupported.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(70), got.RefundableRemainder())
}

func TestRefundOrder_SettlementRollbackLeavesWalletUntouched(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "EUR")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)

	_, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: payment.ID, Amount: 10,
	})
	assert.True(t, apperror.HasCode(err, "REF_003"))
	assert.Equal(t, int64(0), h.balance(t, w.ID))
	assert.Equal(t, int64(0), h.reconcile(t, w.ID).AdjustmentCount)

	refunds := h.refundsOf(t, payment.ID)
	require.Len(t, refunds, 1)
	assert.Equal(t, domain.RefundStateFailed, refunds[0].State)
	assert.Nil(t, refunds[0].TransactionID)
}

func TestRefundOrder_IdempotencyKeyReplaysWithRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	h := newLedgerHarness(t, redis.NewIdempotencyCache(client))
	w := h.newWallet(t, "USD")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)
	req := ports.RefundRequest{OrderID: order.ID, PaymentID: payment.ID, Amount: 25, IdempotencyKey: "client-1"}

	first, err := h.refunds.RefundOrder(context.Background(), req)
	require.NoError(t, err)
	second, err := h.refunds.RefundOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, h.refundsOf(t, payment.ID), 1)
	assert.Equal(t, int64(25), h.balance(t, w.ID))
	assert.Len(t, h.sink.Batches(), 1)
}

func TestRefundOrder_ConcurrentRetriesRefundOnce(t *testing.T) {
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	h := newLedgerHarness(t, redis.NewIdempotencyCache(client))
	w := h.newWallet(t, "USD")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)
	req := ports.RefundRequest{OrderID: order.ID, PaymentID: payment.ID, Amount: 25, IdempotencyKey: "retry-1"}

	const retries = 8
	ids := make([]uuid.UUID, retries)
	var wg sync.WaitGroup
	for i := 0; i < retries; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			refund, err := h.refunds.RefundOrder(context.Background(), req)
			if assert.NoError(t, err) {
				ids[i] = refund.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids[1:] {
		assert.Equal(t, ids[0], id)
	}
	assert.Len(t, h.refundsOf(t, payment.ID), 1)
	assert.Equal(t, int64(25), h.balance(t, w.ID))
	assert.True(t, h.reconcile(t, w.ID).Consistent)
	assert.Len(t, h.sink.Batches(), 1)
}

func TestRefundOrder_IdempotencyKeyReplaysWithoutRedis(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)
	req := ports.RefundRequest{OrderID: order.ID, PaymentID: payment.ID, Amount: 40, IdempotencyKey: "client-2"}

	first, err := h.refunds.RefundOrder(context.Background(), req)
	require.NoError(t, err)
	second, err := h.refunds.RefundOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, domain.RefundStateSettled, second.State)
	assert.Equal(t, int64(40), h.balance(t, w.ID))

	other, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: payment.ID, Amount: 40, IdempotencyKey: "client-3",
	})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
	assert.Equal(t, int64(80), h.balance(t, w.ID))
}

func TestRefundOrder_ReplayOfFailedRefundKeepsError(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "EUR")
	payment := storeCreditPayment(w.ID, 100, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)
	req := ports.RefundRequest{OrderID: order.ID, PaymentID: payment.ID, Amount: 10, IdempotencyKey: "client-4"}

	first, err := h.refunds.RefundOrder(context.Background(), req)
	assert.True(t, apperror.HasCode(err, "REF_003"))
	require.NotNil(t, first)
	assert.Equal(t, domain.RefundStateFailed, first.State)

	replayed, err := h.refunds.RefundOrder(context.Background(), req)
	assert.True(t, apperror.HasCode(err, "REF_003"))
	require.NotNil(t, replayed)
	assert.Equal(t, first.ID, replayed.ID)
	assert.Len(t, h.refundsOf(t, payment.ID), 1)
}

func TestRefundOrder_RejectedRequestReleasesKey(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	payment := storeCreditPayment(w.ID, 50, time.Now().UTC())
	order := h.addOrder(t, domain.OrderStateDelivered, payment)

	_, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: payment.ID, Amount: 60, IdempotencyKey: "client-5",
	})
	assert.True(t, apperror.HasCode(err, "REF_002"))

	refund, err := h.refunds.RefundOrder(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: payment.ID, Amount: 50, IdempotencyKey: "client-5",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50), refund.Amount)
	assert.Equal(t, int64(50), h.balance(t, w.ID))
}

func TestReconcile_NoFalseAlarmUnderConcurrentAdjustments(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				_, err := h.adjustments.AdjustBalance(h.ctx(), ports.AdjustBalanceRequest{
					WalletID: w.ID, Amount: 1, Description: "load",
				})
				assert.NoError(t, err)
			}
		}()
	}

	for i := 0; i < 1000; i++ {
		rec := h.reconcile(t, w.ID)
		if !rec.Consistent {
			close(stop)
			wg.Wait()
			t.Fatalf("reconcile reported balance %d against ledger sum %d", rec.Balance, rec.LedgerSum)
		}
	}
	close(stop)
	wg.Wait()
	assert.True(t, h.reconcile(t, w.ID).Consistent)
}

func TestPayWithWallet_DebitThenRefund(t *testing.T) {
	h := newLedgerHarness(t, nil)
	w := h.newWallet(t, "USD")
	h.adjust(t, w.ID, 100, "initial top-up")
	order := &domain.Order{
		ID:         uuid.New(),
		Code:       "PAY-1",
		CustomerID: h.customerID,
		ChannelID:  h.channelID,
		State:      domain.OrderStateArrangingPayment,
		Currency:   "USD",
	}

	declined, err := h.payments.CreatePayment(context.Background(), order, 150, w.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PaymentStateDeclined, declined.State)
	assert.Equal(t, int64(100), h.balance(t, w.ID))

	res, err := h.payments.CreatePayment(context.Background(), order, 70, w.ID)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentStateSettled, res.State)
	assert.Equal(t, int64(30), h.balance(t, w.ID))

	// The order system records the settled payment.
	order.State = domain.OrderStatePaymentSettled
	order.Payments = []domain.Payment{{
		ID:            uuid.New(),
		Method:        domain.MethodStoreCredit,
		Amount:        res.Amount,
		State:         res.State,
		TransactionID: res.TransactionID,
		Metadata:      res.Metadata,
		CreatedAt:     time.Now().UTC(),
	}}
	require.NoError(t, h.store.AddOrder(order))

	refund, err := h.payments.CreateRefund(context.Background(), ports.RefundRequest{
		OrderID: order.ID, PaymentID: order.Payments[0].ID, Amount: 70,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.RefundStateSettled, refund.State)
	assert.Equal(t, int64(100), h.balance(t, w.ID))
	assert.True(t, h.reconcile(t, w.ID).Consistent)
}
