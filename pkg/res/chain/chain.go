package chain

import (
	"context"

	"github.com/ib-77/res3/pkg/res"
	"github.com/ib-77/res3/pkg/res/solo"
)

// Chain wraps a res.Result with context to enable fluent chaining
type Chain[T, E any] struct {
	ctx context.Context
	res res.Result[T, E]
}

// Start creates a new chain from a res.Result
func Start[T, E any](ctx context.Context, r res.Result[T, E]) Chain[T, E] {
	return Chain[T, E]{ctx: ctx, res: r}
}

// FromValue creates a new error-typed chain from a successful value
func FromValue[T any](ctx context.Context, v T) Chain[T, error] {
	return Start(ctx, res.Success(v))
}

// Result returns the underlying res.Result
func (c Chain[T, E]) Result() res.Result[T, E] {
	return c.res
}

// Then composes functions that already return res.Result[T, E]
func (c Chain[T, E]) Then(onOk func(ctx context.Context, v T) res.Result[T, E]) Chain[T, E] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onOk(c.ctx, c.res.MustValue())}
}

// ThenErr composes a recovery function invoked only on the error side
func (c Chain[T, E]) ThenErr(onErr func(ctx context.Context, e E) res.Result[T, E]) Chain[T, E] {
	if !c.res.IsErr() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: onErr(c.ctx, c.res.MustErr())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onOk func(ctx context.Context, v T) T) Chain[T, E] {
	if !c.res.IsOk() {
		return c
	}
	return Chain[T, E]{ctx: c.ctx, res: res.Ok[T, E](onOk(c.ctx, c.res.MustValue()))}
}

// Ensure triggers side effects for the active variant without changing the result
func (c Chain[T, E]) Ensure(onOk func(context.Context, T), onErr func(context.Context, E)) Chain[T, E] {

	if c.res.IsErr() {
		if onErr != nil {
			onErr(c.ctx, c.res.MustErr())
		}
		return c
	}

	if c.res.IsOk() && onOk != nil {
		onOk(c.ctx, c.res.MustValue())
	}
	return c
}

// ValueOr collapses the chain to the successful value or the fallback
func (c Chain[T, E]) ValueOr(fallback T) T {
	return c.res.ValueOr(fallback)
}

// Then chains a function that switches the value type
func Then[In, Out, E any](c Chain[In, E], onOk func(context.Context, In) res.Result[Out, E]) Chain[Out, E] {
	return Chain[Out, E]{
		ctx: c.ctx,
		res: solo.Then(c.ctx, c.res, onOk),
	}
}

// Map chains a pure transformation function that switches the value type
func Map[In, Out, E any](c Chain[In, E], onOk func(context.Context, In) Out) Chain[Out, E] {
	return Chain[Out, E]{
		ctx: c.ctx,
		res: solo.Map(c.ctx, c.res, onOk),
	}
}

// Try chains a function that returns (Out, error)
func Try[In, Out any](c Chain[In, error], onTry func(context.Context, In) (Out, error)) Chain[Out, error] {
	return Chain[Out, error]{
		ctx: c.ctx,
		res: solo.Try(c.ctx, c.res, onTry),
	}
}

// Match collapses the chain into a final value using solo.Match
func Match[T, E, R any](c Chain[T, E], onOk func(context.Context, T) R, onErr func(context.Context, E) R) R {
	return solo.Match(c.ctx, c.res, onOk, onErr)
}
