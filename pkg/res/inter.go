package res

import "time"

type ValueProvider[T any] interface {
	// MustValue returns the successful payload or panics with *StateError
	MustValue() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithErr defines an interface for types holding either a value or an error payload
type WithErr[T, E any] interface {
	ValueProvider[T]
	// MustErr returns the error payload or panics with *StateError
	MustErr() E
	// IsOk returns true if the success variant is active
	IsOk() bool
	// IsErr returns true if the error variant is active
	IsErr() bool
}
