package notify

import (
	"context"
	"log/slog"
)

// LogSink writes failure events to the structured log. It is the default
// sink; real alerting destinations implement Sink the same way.
type LogSink struct {
	logger *slog.Logger
}

func NewLogSink(logger *slog.Logger) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger.With("component", "side_effects")}
}

func (s *LogSink) RecordFailure(ctx context.Context, ev SideEffectFailure) error {
	s.logger.ErrorContext(ctx, "side effect failed",
		"pipeline", ev.Pipeline,
		"effect", ev.Effect,
		"error", ev.Error,
		"occurred_at", ev.OccurredAt,
	)
	return nil
}
