package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// UseCaseEvent is one completed service call: which use case ran, how long
// it took, and whether it succeeded.
type UseCaseEvent struct {
	Name      string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	StartedAt time.Time
}

// UseCaseObserver is notified after each service use case finishes.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver discards every event.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type slogUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver emits use-case events as slog text lines on w.
// A nil writer yields the noop observer.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	return &slogUseCaseObserver{logger: slog.New(handler)}
}

func (o *slogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := []any{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success),
	}
	for k, v := range event.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}

	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
		o.logger.ErrorContext(ctx, "use_case", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "use_case", attrs...)
}

// useCaseObserverOrNoop picks the first non-nil observer from a variadic
// constructor argument.
func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
