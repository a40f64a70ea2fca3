package stream

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/res3/pkg/res"
)

// ErrCancelled marks items flushed out of a cancelled pipeline.
var ErrCancelled = errors.New("stream: operation cancelled")

// Engine is one pipeline stage: it consumes a single result and delivers
// the processed result on the returned channel.
type Engine[In, Out, E any] func(ctx context.Context, input res.Result[In, E]) <-chan res.Result[Out, E]

// CancelHandlers lets callers decide what happens to in-flight and
// remaining items when the context is cancelled. Nil handlers drop.
type CancelHandlers[In, Out, E any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan res.Result[In, E], outCh chan<- res.Result[Out, E])
	OnCancelUnprocessed func(ctx context.Context, unprocessed res.Result[In, E], outCh chan<- res.Result[Out, E])
	OnCancelProcessed   func(ctx context.Context, in res.Result[In, E], processed res.Result[Out, E], outCh chan<- res.Result[Out, E])
}

// locomotive drives one worker: pull an input, run the engine, deliver the
// output, honoring cancellation at every step.
func locomotive[In, Out, E any](ctx context.Context, inputCh <-chan res.Result[In, E], outCh chan<- res.Result[Out, E],
	engine Engine[In, Out, E],
	handlers CancelHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out res.Result[Out, E]), wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh, outCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in, outCh)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh, outCh)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					// engine gave up; on cancellation the item counts as unprocessed
					if ctx.Err() != nil {
						if handlers.OnCancelUnprocessed != nil {
							handlers.OnCancelUnprocessed(ctx, in, outCh)
						}
						if handlers.OnCancel != nil {
							handlers.OnCancel(ctx, inputCh, outCh)
						}
					}
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr, outCh)
					}
					if handlers.OnCancel != nil {
						handlers.OnCancel(ctx, inputCh, outCh)
					}
					return
				case outCh <- pr:
					if onDelivered != nil {
						onDelivered(ctx, pr)
					}
				}
			}
		}
	}
}

// Run fans a same-type engine out across the given number of workers.
func Run[T, E any](ctx context.Context, inputCh <-chan res.Result[T, E],
	engine Engine[T, T, E], workers int) <-chan res.Result[T, E] {
	return RunWith(ctx, inputCh, engine, CancelHandlers[T, T, E]{}, nil, workers)
}

// Turnout fans a type-switching engine out across the given number of workers.
func Turnout[In, Out, E any](ctx context.Context, inputCh <-chan res.Result[In, E],
	engine Engine[In, Out, E], workers int) <-chan res.Result[Out, E] {
	return TurnoutWith(ctx, inputCh, engine, CancelHandlers[In, Out, E]{}, nil, workers)
}

// RunWith is Run with custom cancellation handlers and a delivery callback.
func RunWith[T, E any](ctx context.Context, inputCh <-chan res.Result[T, E],
	engine Engine[T, T, E], handlers CancelHandlers[T, T, E],
	onDelivered func(ctx context.Context, out res.Result[T, E]), workers int) <-chan res.Result[T, E] {
	return TurnoutWith(ctx, inputCh, engine, handlers, onDelivered, workers)
}

// TurnoutWith is Turnout with custom cancellation handlers and a delivery callback.
func TurnoutWith[In, Out, E any](ctx context.Context, inputCh <-chan res.Result[In, E],
	engine Engine[In, Out, E], handlers CancelHandlers[In, Out, E],
	onDelivered func(ctx context.Context, out res.Result[Out, E]), workers int) <-chan res.Result[Out, E] {

	out := make(chan res.Result[Out, E])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go locomotive(ctx, inputCh, out, engine, handlers, onDelivered, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// DrainHandlers flushes remaining and unprocessed items as Fail(ErrCancelled)
// and lets already-processed items through, when draining is enabled on ctx.
func DrainHandlers[In, Out any]() CancelHandlers[In, Out, error] {
	return CancelHandlers[In, Out, error]{
		OnCancel: func(ctx context.Context, inputCh <-chan res.Result[In, error], outCh chan<- res.Result[Out, error]) {
			if !IsDrainEnabled(ctx, true) {
				return
			}
			for range inputCh {
				outCh <- res.Fail[Out](ErrCancelled)
			}
		},
		OnCancelUnprocessed: func(ctx context.Context, unprocessed res.Result[In, error], outCh chan<- res.Result[Out, error]) {
			if !IsDrainEnabled(ctx, true) {
				return
			}
			outCh <- res.Fail[Out](ErrCancelled)
		},
		OnCancelProcessed: func(ctx context.Context, in res.Result[In, error], processed res.Result[Out, error], outCh chan<- res.Result[Out, error]) {
			if !IsDrainEnabled(ctx, true) {
				return
			}
			outCh <- processed
		},
	}
}
