package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"store-credit-ledger/internal/core/domain"
	"store-credit-ledger/internal/core/ports"
	"store-credit-ledger/pkg/apperror"
	"store-credit-ledger/pkg/tracing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// RefundServiceImpl implements ports.RefundService. It splits a refund across
// the settled payments of an order, one transaction per payment drawn from.
type RefundServiceImpl struct {
	orderRepo  ports.OrderRepository
	refundRepo ports.RefundRepository
	idempRepo  ports.IdempotencyRepository
	settlers   SettlerRegistry
	idempCache ports.IdempotencyCache // optional
	events     ports.RefundEventSink
	transactor ports.DBTransactor
	idempTTL   time.Duration
	log        zerolog.Logger
}

// NewRefundService creates a new RefundServiceImpl. idempCache may be nil.
func NewRefundService(
	orderRepo ports.OrderRepository,
	refundRepo ports.RefundRepository,
	idempRepo ports.IdempotencyRepository,
	settlers SettlerRegistry,
	idempCache ports.IdempotencyCache,
	events ports.RefundEventSink,
	transactor ports.DBTransactor,
	idempTTL time.Duration,
	log zerolog.Logger,
) *RefundServiceImpl {
	return &RefundServiceImpl{
		orderRepo:  orderRepo,
		refundRepo: refundRepo,
		idempRepo:  idempRepo,
		settlers:   settlers,
		idempCache: idempCache,
		events:     events,
		transactor: transactor,
		idempTTL:   idempTTL,
		log:        log,
	}
}

// RefundOrder allocates req.Amount across the order's payments, starting with
// the triggering payment, and returns the first refund created. When a later
// chunk fails, the first refund is returned together with the error.
func (s *RefundServiceImpl) RefundOrder(ctx context.Context, req ports.RefundRequest) (*domain.Refund, error) {
	ctx, span := tracing.Tracer.Start(ctx, "refund.RefundOrder", trace.WithAttributes(
		attribute.String("order.id", req.OrderID.String()),
		attribute.String("payment.id", req.PaymentID.String()),
		attribute.Int64("refund.amount", req.Amount),
	))
	defer span.End()

	refund, err := s.refundOrder(ctx, req)
	return refund, tracing.RecordError(span, err)
}

func (s *RefundServiceImpl) refundOrder(ctx context.Context, req ports.RefundRequest) (*domain.Refund, error) {
	if req.Amount <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	var idempKey string
	if req.IdempotencyKey != "" {
		idempKey = domain.BuildRefundIdempotencyKey(req.OrderID, req.IdempotencyKey)
		refund, found, err := s.lookupReplay(ctx, idempKey)
		if found || err != nil {
			return refund, err
		}
	}

	order, err := s.orderRepo.GetByID(ctx, req.OrderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get order: %w", err))
	}
	if order == nil {
		return nil, apperror.ErrNotFound("order")
	}
	if err := s.checkTriggeringPayment(ctx, order, req.PaymentID); err != nil {
		return nil, err
	}
	if order.State.IsPreSettlement() {
		return nil, apperror.ErrRefundOrderState(&domain.RefundOrderStateError{OrderID: order.ID, State: order.State})
	}

	// The key is claimed in the transaction of the first chunk. A retry racing
	// this request blocks on the claim and replays once it commits.
	var claimTx pgx.Tx
	if idempKey != "" {
		tx, err := s.transactor.Begin(ctx)
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
		}
		defer tx.Rollback(ctx) //nolint:errcheck

		claimed, err := s.idempRepo.Claim(ctx, tx, domain.NewIdempotencyRecord(idempKey, order.ID))
		if err != nil {
			return nil, apperror.InternalError(fmt.Errorf("claim idempotency key: %w", err))
		}
		if !claimed {
			_ = tx.Rollback(ctx)
			return s.replayClaimed(ctx, idempKey)
		}
		claimTx = tx
	}

	plan := allocationOrder(order, req.PaymentID)
	var maxRefundable int64
	for _, p := range plan {
		maxRefundable += p.RefundableRemainder()
	}
	if req.Amount > maxRefundable {
		return nil, apperror.ErrRefundAmount(&domain.RefundAmountError{
			Requested:     req.Amount,
			MaxRefundable: maxRefundable,
		}, maxRefundable)
	}

	var (
		primary *domain.Refund
		events  []domain.RefundEvent
		chunks  int
		loopErr error
	)
	remaining := req.Amount
	for _, p := range plan {
		if remaining == 0 {
			break
		}
		chunk := min(remaining, p.RefundableRemainder())
		refund, chunkEvents, err := s.refundChunk(ctx, claimTx, order, p.ID, chunk, req.Reason, idempKey)
		claimTx, idempKey = nil, ""
		events = append(events, chunkEvents...)
		if primary == nil && refund != nil {
			primary = refund
		}
		if err != nil {
			loopErr = err
			break
		}
		chunks++
		remaining -= chunk
	}

	s.publish(ctx, order.ID, events)

	if loopErr != nil {
		event := s.log.Warn().
			Err(loopErr).
			Str("order_id", order.ID.String()).
			Int64("amount", req.Amount).
			Int64("unallocated", remaining).
			Int("chunks", chunks)
		if primary != nil {
			event = event.Str("refund_id", primary.ID.String())
		}
		event.Msg("refund allocation stopped")
		return primary, loopErr
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("refund_id", primary.ID.String()).
		Int64("amount", req.Amount).
		Int("chunks", chunks).
		Msg("order refunded")

	if req.IdempotencyKey != "" && s.idempCache != nil {
		s.cacheRefund(ctx, domain.BuildRefundIdempotencyKey(req.OrderID, req.IdempotencyKey), primary)
	}
	return primary, nil
}

// lookupReplay checks the Redis cache, then the durable key record.
func (s *RefundServiceImpl) lookupReplay(ctx context.Context, key string) (*domain.Refund, bool, error) {
	if s.idempCache != nil {
		cached, err := s.idempCache.Get(ctx, key)
		if err != nil {
			s.log.Warn().Err(err).Str("key", key).Msg("redis idempotency check failed, falling through to DB")
		}
		if cached != nil {
			refund, err := s.unmarshalCachedRefund(cached)
			return refund, true, err
		}
	}

	rec, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, false, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if rec == nil {
		return nil, false, nil
	}
	refund, err := s.replayRecord(ctx, rec)
	return refund, true, err
}

// replayClaimed replays the request that won the claim on key.
func (s *RefundServiceImpl) replayClaimed(ctx context.Context, key string) (*domain.Refund, error) {
	rec, err := s.idempRepo.Get(ctx, key)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("db idempotency check: %w", err))
	}
	if rec == nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency key %q claimed but not stored", key))
	}
	return s.replayRecord(ctx, rec)
}

// replayRecord loads the stored first refund. A Failed one replays with the
// settlement error code it was first reported with.
func (s *RefundServiceImpl) replayRecord(ctx context.Context, rec *domain.IdempotencyRecord) (*domain.Refund, error) {
	if rec.RefundID == nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency key %q has no refund", rec.Key))
	}
	refund, err := s.refundRepo.GetByID(ctx, *rec.RefundID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get refund: %w", err))
	}
	if refund == nil {
		return nil, apperror.InternalError(fmt.Errorf("idempotency key %q points at missing refund %s", rec.Key, *rec.RefundID))
	}

	s.log.Info().
		Str("key", rec.Key).
		Str("refund_id", refund.ID.String()).
		Msg("refund replayed from idempotency key")

	if refund.State == domain.RefundStateFailed {
		return refund, apperror.ErrRefundStateTransition(&domain.RefundStateTransitionError{
			RefundID: refund.ID,
			From:     domain.RefundStatePending,
			To:       domain.RefundStateSettled,
		})
	}
	return refund, nil
}

// checkTriggeringPayment tells a payment of another order apart from a missing one.
func (s *RefundServiceImpl) checkTriggeringPayment(ctx context.Context, order *domain.Order, paymentID uuid.UUID) error {
	if _, ok := order.Payment(paymentID); ok {
		return nil
	}
	payment, err := s.orderRepo.GetPayment(ctx, paymentID)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("get payment: %w", err))
	}
	if payment == nil {
		return apperror.ErrNotFound("payment")
	}
	return apperror.Validation("payment does not belong to the order")
}

// refundChunk draws amount from one payment in its own transaction, or in dbTx
// when the caller already opened one. A non-empty idempKey is completed with
// the new refund before commit. Events are returned only for committed work.
func (s *RefundServiceImpl) refundChunk(ctx context.Context, dbTx pgx.Tx, order *domain.Order, paymentID uuid.UUID, amount int64, reason, idempKey string) (*domain.Refund, []domain.RefundEvent, error) {
	ctx, span := tracing.Tracer.Start(ctx, "refund.chunk", trace.WithAttributes(
		attribute.String("payment.id", paymentID.String()),
		attribute.Int64("refund.amount", amount),
	))
	defer span.End()

	if dbTx == nil {
		tx, err := s.transactor.Begin(ctx)
		if err != nil {
			return nil, nil, tracing.RecordError(span, apperror.InternalError(fmt.Errorf("begin tx: %w", err)))
		}
		dbTx = tx
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	payment, err := s.orderRepo.LockPayment(ctx, dbTx, paymentID)
	if err != nil {
		return nil, nil, tracing.RecordError(span, apperror.InternalError(fmt.Errorf("lock payment: %w", err)))
	}
	if payment == nil {
		return nil, nil, tracing.RecordError(span, apperror.ErrNotFound("payment"))
	}
	if remainder := payment.RefundableRemainder(); remainder < amount {
		return nil, nil, tracing.RecordError(span, apperror.ErrRefundAmount(&domain.RefundAmountError{
			Requested:     amount,
			MaxRefundable: remainder,
		}, remainder))
	}

	refund := domain.NewRefund(payment, amount, reason)
	if err := s.refundRepo.Create(ctx, dbTx, refund); err != nil {
		return nil, nil, tracing.RecordError(span, apperror.InternalError(fmt.Errorf("create refund: %w", err)))
	}
	events := []domain.RefundEvent{domain.NewRefundCreatedEvent(order.ID, refund)}
	from := refund.State

	settleErr := s.settle(ctx, dbTx, order, payment, refund)
	next := domain.RefundStateSettled
	if settleErr != nil {
		next = domain.RefundStateFailed
	}
	if err := refund.TransitionTo(next); err != nil {
		return nil, nil, tracing.RecordError(span, apperror.ErrRefundStateTransition(err))
	}
	if err := s.refundRepo.Update(ctx, dbTx, refund); err != nil {
		return nil, nil, tracing.RecordError(span, apperror.InternalError(fmt.Errorf("update refund: %w", err)))
	}
	if idempKey != "" {
		if err := s.idempRepo.Complete(ctx, dbTx, idempKey, refund.ID); err != nil {
			return nil, nil, tracing.RecordError(span, apperror.InternalError(fmt.Errorf("complete idempotency key: %w", err)))
		}
	}
	if err := dbTx.Commit(ctx); err != nil {
		return nil, nil, tracing.RecordError(span, apperror.InternalError(fmt.Errorf("commit tx: %w", err)))
	}
	events = append(events, domain.NewRefundTransitionEvent(order.ID, refund, from))

	if settleErr != nil {
		return refund, events, tracing.RecordError(span, apperror.ErrRefundStateTransition(&domain.RefundStateTransitionError{
			RefundID: refund.ID,
			From:     from,
			To:       domain.RefundStateSettled,
			Err:      settleErr,
		}))
	}
	return refund, events, nil
}

// settle runs the payment method's settler inside a savepoint so that a failed
// settlement leaves the refund row in place.
func (s *RefundServiceImpl) settle(ctx context.Context, tx pgx.Tx, order *domain.Order, payment *domain.Payment, refund *domain.Refund) error {
	settler, ok := s.settlers.Lookup(payment.Method)
	if !ok {
		return fmt.Errorf("no refund settler for payment method %q", payment.Method)
	}

	sp, err := tx.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin savepoint: %w", err)
	}
	defer sp.Rollback(ctx) //nolint:errcheck

	result, err := settler.Settle(ctx, sp, ports.SettlementRequest{
		Order:   order,
		Payment: payment,
		Refund:  refund,
	})
	if err != nil {
		return err
	}
	if err := sp.Commit(ctx); err != nil {
		return fmt.Errorf("release savepoint: %w", err)
	}

	if result.TransactionID != "" {
		txID := result.TransactionID
		refund.TransactionID = &txID
	}
	refund.Metadata = result.Metadata
	return nil
}

func (s *RefundServiceImpl) publish(ctx context.Context, orderID uuid.UUID, events []domain.RefundEvent) {
	if len(events) == 0 || s.events == nil {
		return
	}
	if err := s.events.PublishRefundEvents(ctx, events); err != nil {
		s.log.Error().
			Err(err).
			Str("order_id", orderID.String()).
			Int("events", len(events)).
			Msg("failed to publish refund events")
	}
}

func (s *RefundServiceImpl) cacheRefund(ctx context.Context, key string, refund *domain.Refund) {
	data, err := json.Marshal(refund)
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to marshal refund for idempotency cache")
		return
	}
	if err := s.idempCache.Set(ctx, key, data, s.idempTTL); err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("failed to cache idempotency in redis")
	}
}

func (s *RefundServiceImpl) unmarshalCachedRefund(data []byte) (*domain.Refund, error) {
	var refund domain.Refund
	if err := json.Unmarshal(data, &refund); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("unmarshal cached refund: %w", err))
	}
	return &refund, nil
}

// allocationOrder lists the payments with capacity: the triggering payment
// first, then the rest by creation time and id.
func allocationOrder(order *domain.Order, triggerID uuid.UUID) []*domain.Payment {
	var plan []*domain.Payment
	others := make([]*domain.Payment, 0, len(order.Payments))
	for i := range order.Payments {
		p := &order.Payments[i]
		if p.RefundableRemainder() <= 0 {
			continue
		}
		if p.ID == triggerID {
			plan = append(plan, p)
			continue
		}
		others = append(others, p)
	}
	slices.SortFunc(others, func(a, b *domain.Payment) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return bytes.Compare(a.ID[:], b.ID[:])
	})
	return append(plan, others...)
}
