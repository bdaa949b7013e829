package domain

import (
	"context"

	"github.com/google/uuid"
)

// Caller identifies who is acting and in which channel.
// ActorID is nil for system-initiated work such as refund settlement.
type Caller struct {
	ChannelID uuid.UUID
	ActorID   *uuid.UUID
}

type callerKey struct{}

// WithCaller returns a context carrying c.
func WithCaller(ctx context.Context, c Caller) context.Context {
	return context.WithValue(ctx, callerKey{}, c)
}

// CallerFrom extracts the caller set by WithCaller.
func CallerFrom(ctx context.Context) (Caller, bool) {
	c, ok := ctx.Value(callerKey{}).(Caller)
	return c, ok
}
