package stream

import (
	"context"

	"github.com/ib-77/res3/pkg/res"
	"github.com/ib-77/res3/pkg/res/solo"
)

// lift turns a synchronous result transform into an Engine stage.
func lift[In, Out, E any](apply func(ctx context.Context, input res.Result[In, E]) res.Result[Out, E]) Engine[In, Out, E] {
	return func(ctx context.Context, input res.Result[In, E]) <-chan res.Result[Out, E] {
		out := make(chan res.Result[Out, E])

		go func() {
			defer close(out)

			if ctx.Err() != nil {
				return
			}

			select {
			case out <- apply(ctx, input):
			case <-ctx.Done():
			}
		}()

		return out
	}
}

// Apply lifts an arbitrary synchronous transform into a stage.
func Apply[In, Out, E any](apply func(ctx context.Context, input res.Result[In, E]) res.Result[Out, E]) Engine[In, Out, E] {
	return lift(apply)
}

func Validate[T any](validate func(ctx context.Context, v T) (valid bool, errMsg string)) Engine[T, T, error] {
	return lift(func(ctx context.Context, input res.Result[T, error]) res.Result[T, error] {
		return solo.Validate(ctx, input, validate)
	})
}

// Switch lifts the monadic bind into a stage.
func Switch[In, Out, E any](onOk func(ctx context.Context, v In) res.Result[Out, E]) Engine[In, Out, E] {
	return lift(func(ctx context.Context, input res.Result[In, E]) res.Result[Out, E] {
		return solo.Then(ctx, input, onOk)
	})
}

func Map[In, Out, E any](onOk func(ctx context.Context, v In) Out) Engine[In, Out, E] {
	return lift(func(ctx context.Context, input res.Result[In, E]) res.Result[Out, E] {
		return solo.Map(ctx, input, onOk)
	})
}

func Try[In, Out any](onTryExecute func(ctx context.Context, v In) (Out, error)) Engine[In, Out, error] {
	return lift(func(ctx context.Context, input res.Result[In, error]) res.Result[Out, error] {
		return solo.Try(ctx, input, onTryExecute)
	})
}

func Tee[T, E any](onOk func(ctx context.Context, v T)) Engine[T, T, E] {
	return lift(func(ctx context.Context, input res.Result[T, E]) res.Result[T, E] {
		return solo.Tee(ctx, input, onOk)
	})
}

// FinallyHandlers collapse both variants to a plain output value.
type FinallyHandlers[In, E, Out any] struct {
	OnOk  func(ctx context.Context, v In) Out
	OnErr func(ctx context.Context, e E) Out
}

// Finalize reduces a result channel to plain values via the handlers.
// onDelivered, when non-nil, observes every delivered value.
func Finalize[In, E, Out any](ctx context.Context, inputCh <-chan res.Result[In, E],
	handlers FinallyHandlers[In, E, Out],
	onDelivered func(ctx context.Context, out Out)) <-chan Out {

	out := make(chan Out)

	go func() {
		defer close(out)

		for {
			select {
			case <-ctx.Done():
				return
			case in, ok := <-inputCh:
				if !ok {
					return
				}

				v := solo.Match(ctx, in, handlers.OnOk, handlers.OnErr)

				select {
				case <-ctx.Done():
					return
				case out <- v:
					if onDelivered != nil {
						onDelivered(ctx, v)
					}
				}
			}
		}
	}()

	return out
}
