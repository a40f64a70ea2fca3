package async

import (
	"context"
	"errors"
	"sync"

	"github.com/ib-77/res3/pkg/res"
)

// ErrNoResult reports a source channel closed before delivering a result.
var ErrNoResult = errors.New("async: source closed without a result")

// AsyncResult owns exactly one pending computation that resolves to a
// res.Result[T, E]. It resolves once; any number of waiters and attached
// continuations observe the same resolved value (broadcast read).
//
// A resolution is either a concrete Result or an abort: a
// cancellation-class failure of the computation itself, kept apart from
// the Err variant so domain errors and abandoned work never mix.
type AsyncResult[T, E any] struct {
	once sync.Once
	done chan struct{}
	res  res.Result[T, E]
	err  error
}

func pending[T, E any]() *AsyncResult[T, E] {
	return &AsyncResult[T, E]{done: make(chan struct{})}
}

func (a *AsyncResult[T, E]) resolve(r res.Result[T, E]) {
	a.once.Do(func() {
		a.res = r
		close(a.done)
	})
}

func (a *AsyncResult[T, E]) abort(err error) {
	a.once.Do(func() {
		a.err = err
		close(a.done)
	})
}

// Ok returns an already-resolved success; no suspension occurs.
func Ok[T, E any](v T) *AsyncResult[T, E] {
	a := pending[T, E]()
	a.resolve(res.Ok[T, E](v))
	return a
}

// Err returns an already-resolved error; no suspension occurs.
func Err[T, E any](e E) *AsyncResult[T, E] {
	a := pending[T, E]()
	a.resolve(res.Err[T](e))
	return a
}

// FromResult lifts a concrete result into an already-resolved AsyncResult.
func FromResult[T, E any](r res.Result[T, E]) *AsyncResult[T, E] {
	a := pending[T, E]()
	a.resolve(r)
	return a
}

// Go runs fn on its own goroutine and captures its outcome: a non-nil
// error becomes the Err variant and a panic is captured at this boundary
// the same way solo.Catch captures it. Cancellation-class failures abort
// the chain instead of becoming a value-level error.
func Go[T any](fn func() (T, error)) *AsyncResult[T, error] {
	a := pending[T, error]()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				err := res.AsError(p)
				if res.IsCancellation(err) {
					a.abort(err)
					return
				}
				a.resolve(res.Fail[T](err))
			}
		}()

		v, err := fn()
		if err != nil {
			if res.IsCancellation(err) {
				a.abort(err)
				return
			}
			a.resolve(res.Fail[T](err))
			return
		}
		a.resolve(res.Success(v))
	}()

	return a
}

// GoResult runs a result-returning fn on its own goroutine. A panic in fn
// aborts the chain, since a generic E cannot carry an arbitrary panic.
func GoResult[T, E any](fn func() res.Result[T, E]) *AsyncResult[T, E] {
	a := pending[T, E]()

	go func() {
		defer func() {
			if p := recover(); p != nil {
				a.abort(res.AsError(p))
			}
		}()
		a.resolve(fn())
	}()

	return a
}

// FromChan resolves with the first result received from ch. A channel
// closed without a value aborts with ErrNoResult.
func FromChan[T, E any](ch <-chan res.Result[T, E]) *AsyncResult[T, E] {
	a := pending[T, E]()

	go func() {
		r, ok := <-ch
		if !ok {
			a.abort(ErrNoResult)
			return
		}
		a.resolve(r)
	}()

	return a
}

// Await blocks until the computation resolves or ctx is done. The error
// return carries only cancellation-class aborts, never a domain error;
// domain errors arrive as the Err variant of the result.
func (a *AsyncResult[T, E]) Await(ctx context.Context) (res.Result[T, E], error) {
	select {
	case <-a.done:
		if a.err != nil {
			return res.Result[T, E]{}, a.err
		}
		return a.res, nil
	case <-ctx.Done():
		return res.Result[T, E]{}, ctx.Err()
	}
}

// Done exposes the resolution signal for select loops.
func (a *AsyncResult[T, E]) Done() <-chan struct{} {
	return a.done
}

// TryResult is the non-blocking probe: it reports false while the
// computation is pending or aborted.
func (a *AsyncResult[T, E]) TryResult() (res.Result[T, E], bool) {
	select {
	case <-a.done:
		if a.err != nil {
			return res.Result[T, E]{}, false
		}
		return a.res, true
	default:
		return res.Result[T, E]{}, false
	}
}
