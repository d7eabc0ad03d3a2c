// Package pipeline runs the shared persist-then-notify flow behind the three
// lead intakes. Validation and response formatting stay in the handlers;
// the runner owns the best-effort side-effect policy.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"brightway/internal/email"
	"brightway/internal/observability/notify"
)

// Sender delivers one email message.
type Sender interface {
	Send(ctx context.Context, m email.Message) error
}

// Notification is one message to send plus its effect label for failure events.
type Notification struct {
	Effect  string
	Message email.Message
}

// Options configures a Runner.
type Options struct {
	Logger *slog.Logger
	Events notify.Sink

	// AbortOnPersistError makes an insert failure fail the whole request
	// instead of being swallowed. The lead forms ran for years with this
	// off, so off is the default.
	AbortOnPersistError bool

	// EffectTimeout bounds each outbound call. Zero means 10s.
	EffectTimeout time.Duration
}

// Runner executes the persist and notify side effects for one submission.
type Runner struct {
	sender              Sender
	logger              *slog.Logger
	events              notify.Sink
	abortOnPersistError bool
	effectTimeout       time.Duration
}

func New(sender Sender, opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default().With("component", "pipeline")
	}
	events := opts.Events
	if events == nil {
		events = notify.NewLogSink(logger)
	}
	timeout := opts.EffectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Runner{
		sender:              sender,
		logger:              logger,
		events:              events,
		abortOnPersistError: opts.AbortOnPersistError,
		effectTimeout:       timeout,
	}
}

// Run persists the submission and then sends each notification. Notification
// failures never abort; a persistence failure aborts only under the
// AbortOnPersistError policy. The returned id is nil when the insert failed.
func (r *Runner) Run(ctx context.Context, name string, persist func(context.Context) (int64, error), notifications ...Notification) (*int64, error) {
	var recordID *int64

	pctx, cancel := context.WithTimeout(ctx, r.effectTimeout)
	id, err := persist(pctx)
	cancel()
	if err != nil {
		r.recordFailure(ctx, name, notify.EffectPersist, err)
		if r.abortOnPersistError {
			return nil, err
		}
	} else {
		recordID = &id
	}

	for _, n := range notifications {
		sctx, cancel := context.WithTimeout(ctx, r.effectTimeout)
		err := r.sender.Send(sctx, n.Message)
		cancel()
		if err == nil {
			continue
		}
		if errors.Is(err, email.ErrDisabled{}) {
			r.logger.DebugContext(ctx, "email disabled, skipping notification",
				"pipeline", name, "effect", n.Effect)
			continue
		}
		r.recordFailure(ctx, name, n.Effect, err)
	}

	return recordID, nil
}

func (r *Runner) recordFailure(ctx context.Context, pipeline, effect string, err error) {
	r.logger.ErrorContext(ctx, "pipeline side effect failed",
		"pipeline", pipeline,
		"effect", effect,
		"error", err,
	)
	ev := notify.SideEffectFailure{
		Pipeline:   pipeline,
		Effect:     effect,
		Error:      err.Error(),
		OccurredAt: time.Now(),
	}
	if serr := r.events.RecordFailure(ctx, ev); serr != nil {
		r.logger.ErrorContext(ctx, "failure event delivery error", "error", serr)
	}
}
