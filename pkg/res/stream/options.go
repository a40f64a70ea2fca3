package stream

import "context"

type optionKey string

const (
	drainOptionKey  optionKey = "drain_options"
	workerOptionKey optionKey = "worker_options"
)

type workerOptions struct {
	MaxCount int
}

type drainOptions struct {
	Drain bool
}

// WithDrainOptions controls whether cancellation handlers flush remaining
// items (see DrainHandlers) or drop them.
func WithDrainOptions(ctx context.Context, drain bool) context.Context {
	return context.WithValue(ctx, drainOptionKey, drainOptions{Drain: drain})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, workerOptionKey, workerOptions{MaxCount: maxWorkers})
}

func WorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(workerOptionKey).(workerOptions)
	if ok {
		return options.MaxCount
	}
	return defaultMaxWorkers
}

func IsDrainEnabled(ctx context.Context, defaultDrain bool) bool {
	options, ok := ctx.Value(drainOptionKey).(drainOptions)
	if ok {
		return options.Drain
	}
	return defaultDrain
}
