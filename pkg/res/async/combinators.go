package async

import (
	"context"

	"github.com/ib-77/res3/pkg/res"
	"github.com/ib-77/res3/pkg/res/solo"
)

// Then registers the bind as a continuation on a and returns the next
// pending computation immediately. Steps in one chain run in declaration
// order, each strictly after the previous resolves.
func Then[In, Out, E any](ctx context.Context, a *AsyncResult[In, E],
	onOk func(ctx context.Context, v In) res.Result[Out, E]) *AsyncResult[Out, E] {

	next := pending[Out, E]()
	go func() {
		prev, err := a.Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		next.resolve(solo.Then(ctx, prev, onOk))
	}()
	return next
}

func ThenErr[T, E any](ctx context.Context, a *AsyncResult[T, E],
	onErr func(ctx context.Context, e E) res.Result[T, E]) *AsyncResult[T, E] {

	next := pending[T, E]()
	go func() {
		prev, err := a.Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		next.resolve(solo.ThenErr(ctx, prev, onErr))
	}()
	return next
}

func Map[In, Out, E any](ctx context.Context, a *AsyncResult[In, E],
	onOk func(ctx context.Context, v In) Out) *AsyncResult[Out, E] {

	next := pending[Out, E]()
	go func() {
		prev, err := a.Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		next.resolve(solo.Map(ctx, prev, onOk))
	}()
	return next
}

func MapErr[T, EIn, EOut any](ctx context.Context, a *AsyncResult[T, EIn],
	onErr func(ctx context.Context, e EIn) EOut) *AsyncResult[T, EOut] {

	next := pending[T, EOut]()
	go func() {
		prev, err := a.Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		next.resolve(solo.MapErr(ctx, prev, onErr))
	}()
	return next
}

// ThenAsync composes with a continuation that is itself asynchronous.
// The continuation is never started unless the resolved result is Ok.
func ThenAsync[In, Out, E any](ctx context.Context, a *AsyncResult[In, E],
	onOk func(ctx context.Context, v In) *AsyncResult[Out, E]) *AsyncResult[Out, E] {

	next := pending[Out, E]()
	go func() {
		prev, err := a.Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		if !prev.IsOk() {
			next.resolve(res.Err[Out](prev.MustErr()))
			return
		}
		inner, err := onOk(ctx, prev.MustValue()).Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		next.resolve(inner)
	}()
	return next
}

// MapAsync transforms the success payload through a continuation that
// delivers its value on a channel. An Err result passes through without
// starting the continuation.
func MapAsync[In, Out, E any](ctx context.Context, a *AsyncResult[In, E],
	onOk func(ctx context.Context, v In) <-chan Out) *AsyncResult[Out, E] {

	next := pending[Out, E]()
	go func() {
		prev, err := a.Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		if !prev.IsOk() {
			next.resolve(res.Err[Out](prev.MustErr()))
			return
		}
		select {
		case v, ok := <-onOk(ctx, prev.MustValue()):
			if !ok {
				next.abort(ErrNoResult)
				return
			}
			next.resolve(res.Ok[Out, E](v))
		case <-ctx.Done():
			next.abort(ctx.Err())
		}
	}()
	return next
}

// MapErrAsync is the error-side MapAsync. An Ok result passes through
// without starting the continuation.
func MapErrAsync[T, EIn, EOut any](ctx context.Context, a *AsyncResult[T, EIn],
	onErr func(ctx context.Context, e EIn) <-chan EOut) *AsyncResult[T, EOut] {

	next := pending[T, EOut]()
	go func() {
		prev, err := a.Await(ctx)
		if err != nil {
			next.abort(err)
			return
		}
		if !prev.IsErr() {
			next.resolve(res.Ok[T, EOut](prev.MustValue()))
			return
		}
		select {
		case e, ok := <-onErr(ctx, prev.MustErr()):
			if !ok {
				next.abort(ErrNoResult)
				return
			}
			next.resolve(res.Err[T](e))
		case <-ctx.Done():
			next.abort(ctx.Err())
		}
	}()
	return next
}

// Match is the terminal reduction: a one-shot channel delivering the
// handler's value. The channel closes without a value when the chain
// was aborted.
func Match[T, E, R any](ctx context.Context, a *AsyncResult[T, E],
	onOk func(ctx context.Context, v T) R,
	onErr func(ctx context.Context, e E) R) <-chan R {

	out := make(chan R, 1)
	go func() {
		defer close(out)
		prev, err := a.Await(ctx)
		if err != nil {
			return
		}
		out <- solo.Match(ctx, prev, onOk, onErr)
	}()
	return out
}

// MatchAsync reduces through handlers that deliver their value on a
// channel; only the handler for the active variant is started.
func MatchAsync[T, E, R any](ctx context.Context, a *AsyncResult[T, E],
	onOk func(ctx context.Context, v T) <-chan R,
	onErr func(ctx context.Context, e E) <-chan R) <-chan R {

	out := make(chan R, 1)
	go func() {
		defer close(out)
		prev, err := a.Await(ctx)
		if err != nil {
			return
		}

		var src <-chan R
		if prev.IsOk() {
			src = onOk(ctx, prev.MustValue())
		} else {
			src = onErr(ctx, prev.MustErr())
		}

		select {
		case v, ok := <-src:
			if ok {
				out <- v
			}
		case <-ctx.Done():
		}
	}()
	return out
}

// ValueOr is the terminal fallback extraction as a one-shot channel.
func ValueOr[T, E any](ctx context.Context, a *AsyncResult[T, E], fallback T) <-chan T {
	out := make(chan T, 1)
	go func() {
		defer close(out)
		prev, err := a.Await(ctx)
		if err != nil {
			return
		}
		out <- prev.ValueOr(fallback)
	}()
	return out
}
