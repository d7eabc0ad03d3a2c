package notify

import (
	"context"
	"time"
)

// Effect labels for side-effect failure events.
const (
	EffectPersist        = "persist"
	EffectNotifyBusiness = "notify_business"
	EffectNotifyCustomer = "notify_customer"
)

// SideEffectFailure is emitted whenever a best-effort side effect (insert or
// email send) fails without failing the client request. These events are the
// only way operators can see silent data loss, so every swallowed failure
// must produce one.
type SideEffectFailure struct {
	Pipeline   string
	Effect     string
	Error      string
	OccurredAt time.Time
}

// Sink is a destination for side-effect failure events.
type Sink interface {
	RecordFailure(ctx context.Context, ev SideEffectFailure) error
}

// SinkFunc adapts a function to the Sink interface (useful for tests).
type SinkFunc func(ctx context.Context, ev SideEffectFailure) error

func (f SinkFunc) RecordFailure(ctx context.Context, ev SideEffectFailure) error {
	if f == nil {
		return nil
	}
	return f(ctx, ev)
}
