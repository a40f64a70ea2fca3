// Package async adapts the Result combinators onto pending computations.
//
// An AsyncResult[T, E] wraps exactly one computation that will resolve to
// a Result[T, E]. It resolves once; resolution is a broadcast, so several
// combinator chains may branch from the same instance and each observes
// the same value. Every combinator registers a continuation on the prior
// computation and returns the next pending computation immediately, so a
// chain introduces no synchronization point until a terminal accessor
// (Await, Match, ValueOr) runs.
//
// Short-circuiting is preserved across the asynchronous boundary: an Err
// result never starts an Ok-side continuation and vice versa.
//
// A failure of the computation itself (a panic inside Go, a closed source
// channel, caller-side context cancellation) is an abort, reported through
// Await's error return and propagated down the chain without invoking any
// continuation. Domain errors never travel that way; they stay inside the
// Err variant.
//
// The package defines no scheduler. Each continuation is one goroutine
// blocked on the prior computation's resolution.
package async
