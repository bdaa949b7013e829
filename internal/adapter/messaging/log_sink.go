package messaging

import (
	"context"

	"store-credit-ledger/internal/core/domain"

	"github.com/rs/zerolog"
)

// LogSink writes refund events to the application log. Used when no broker is configured.
type LogSink struct {
	log zerolog.Logger
}

// NewLogSink creates a log-backed sink.
func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

// PublishRefundEvents logs one line per event.
func (s *LogSink) PublishRefundEvents(_ context.Context, events []domain.RefundEvent) error {
	for _, ev := range events {
		s.log.Info().
			Str("event", string(ev.Type)).
			Str("refund_id", ev.RefundID.String()).
			Str("order_id", ev.OrderID.String()).
			Str("payment_id", ev.PaymentID.String()).
			Int64("amount", ev.Amount).
			Str("from_state", string(ev.FromState)).
			Str("to_state", string(ev.ToState)).
			Msg("Refund event")
	}
	return nil
}
