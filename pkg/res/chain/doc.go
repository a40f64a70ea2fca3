// Package chain provides a fluent wrapper around Result[T, E]
// for building synchronous pipelines using solo primitives.
//
// It composes functions like Then, Map, Try, and Match behind a
// convenient Chain[T, E] type. This enables ergonomic pipelines without
// dealing directly with branching results at each step.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result or value
// - Then/ThenErr: compose result-returning functions per variant
// - Map: transform the successful value
// - Ensure: trigger side effects without changing the result
// - ValueOr: collapse to the value or a fallback
//
// Type-switching steps (T -> U) are package-level functions, since Go
// methods cannot introduce new type parameters.
package chain
