package solo

import (
	"context"
	"errors"

	"github.com/ib-77/res3/pkg/res"
)

func Succeed[T any](input T) res.Result[T, error] {
	return res.Success(input)
}

func Fail[T any](err error) res.Result[T, error] {
	return res.Fail[T](err)
}

// Match invokes exactly one handler with the active payload and returns
// its result.
func Match[T, E, R any](ctx context.Context, input res.Result[T, E],
	onOk func(ctx context.Context, v T) R,
	onErr func(ctx context.Context, e E) R) R {

	if input.IsOk() {
		return onOk(ctx, input.MustValue())
	}
	return onErr(ctx, input.MustErr())
}

// Then is the monadic bind: an Ok input feeds next, an Err input passes
// through re-typed without invoking next.
func Then[In, Out, E any](ctx context.Context, input res.Result[In, E],
	next func(ctx context.Context, v In) res.Result[Out, E]) res.Result[Out, E] {

	if input.IsOk() {
		return next(ctx, input.MustValue())
	}
	return res.Err[Out](input.MustErr())
}

// ThenErr binds on the error side; an Ok input passes through unchanged.
func ThenErr[T, E any](ctx context.Context, input res.Result[T, E],
	next func(ctx context.Context, e E) res.Result[T, E]) res.Result[T, E] {

	if input.IsErr() {
		return next(ctx, input.MustErr())
	}
	return input
}

func Map[In, Out, E any](ctx context.Context, input res.Result[In, E],
	onOk func(ctx context.Context, v In) Out) res.Result[Out, E] {

	return Then(ctx, input, func(ctx context.Context, v In) res.Result[Out, E] {
		return res.Ok[Out, E](onOk(ctx, v))
	})
}

func MapErr[T, EIn, EOut any](ctx context.Context, input res.Result[T, EIn],
	onErr func(ctx context.Context, e EIn) EOut) res.Result[T, EOut] {

	if input.IsErr() {
		return res.Err[T](onErr(ctx, input.MustErr()))
	}
	return res.Ok[T, EOut](input.MustValue())
}

// Try calls a function in the (Out, error) form and converts a non-nil
// error to the Err variant.
func Try[In, Out any](ctx context.Context, input res.Result[In, error],
	onTryExecute func(ctx context.Context, v In) (Out, error)) res.Result[Out, error] {

	if input.IsOk() {

		out, err := onTryExecute(ctx, input.MustValue())
		if err != nil {
			return res.Fail[Out](err)
		}

		return res.Success(out)
	}
	return res.Fail[Out](input.MustErr())
}

// Catch runs fn and captures a panic as the Err variant, preserving the
// panic object when it is an error. Cancellation-class payloads are
// re-raised rather than turned into a value-level error.
func Catch[T any](fn func() T) (r res.Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			err := res.AsError(p)
			if res.IsCancellation(err) {
				panic(p)
			}
			r = res.Fail[T](err)
		}
	}()
	return res.Success(fn())
}

func Validate[T any](ctx context.Context, input res.Result[T, error],
	validate func(ctx context.Context, v T) (valid bool, errMsg string)) res.Result[T, error] {

	if input.IsOk() {
		if valid, errMsg := validate(ctx, input.MustValue()); !valid {
			return res.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func Tee[T, E any](ctx context.Context, input res.Result[T, E],
	onOk func(ctx context.Context, v T)) res.Result[T, E] {

	if input.IsOk() {
		onOk(ctx, input.MustValue())
	}

	return input
}

func DoubleTee[T, E any](ctx context.Context, input res.Result[T, E],
	onOk func(ctx context.Context, v T),
	onErr func(ctx context.Context, e E)) res.Result[T, E] {

	if input.IsOk() {
		onOk(ctx, input.MustValue())
	} else if input.IsErr() {
		onErr(ctx, input.MustErr())
	}

	return input
}
