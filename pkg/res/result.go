package res

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

type Result[T, E any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       E
	isOk      bool
	isErr     bool
}

func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Err[T, E any](e E) Result[T, E] {
	if IsNil(e) {
		panic("res: Err with nil payload")
	}
	return Result[T, E]{
		err:       e,
		isErr:     true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Success is the shorthand for Ok with the error type fixed to error.
func Success[T any](v T) Result[T, error] {
	return Ok[T, error](v)
}

// Fail is the shorthand for Err with the error type fixed to error.
func Fail[T any](err error) Result[T, error] {
	return Err[T](err)
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// IsEmpty reports whether r is the zero value, which belongs to no variant.
func (r Result[T, E]) IsEmpty() bool {
	return !r.isOk && !r.isErr
}

// MustValue returns the success payload. It panics with a *StateError
// when called on an Err or empty result.
func (r Result[T, E]) MustValue() T {
	if !r.isOk {
		panic(&StateError{Requested: variantOk, Active: r.variant()})
	}
	return r.value
}

// MustErr returns the error payload. It panics with a *StateError
// when called on an Ok or empty result.
func (r Result[T, E]) MustErr() E {
	if !r.isErr {
		panic(&StateError{Requested: variantErr, Active: r.variant()})
	}
	return r.err
}

func (r Result[T, E]) TryValue() (T, bool) {
	if r.isOk {
		return r.value, true
	}
	var zero T
	return zero, false
}

func (r Result[T, E]) TryErr() (E, bool) {
	if r.isErr {
		return r.err, true
	}
	var zero E
	return zero, false
}

func (r Result[T, E]) ValueOr(fallback T) T {
	if r.isOk {
		return r.value
	}
	return fallback
}

// Equal reports whether both results hold the same variant with equal
// payloads. Identity metadata (id, creation time) does not participate.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.isOk != other.isOk || r.isErr != other.isErr {
		return false
	}
	if r.isOk {
		return reflect.DeepEqual(r.value, other.value)
	}
	if r.isErr {
		return reflect.DeepEqual(r.err, other.err)
	}
	return true
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}

func (r Result[T, E]) variant() string {
	switch {
	case r.isOk:
		return variantOk
	case r.isErr:
		return variantErr
	default:
		return variantEmpty
	}
}
