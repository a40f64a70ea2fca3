// Package solo contains single-value, synchronous combinators that operate
// on Result[T, E]. These functions form the core building blocks for
// error-aware composition without channels.
//
// Highlights:
// - Succeed/Fail: construct error-typed results
// - Match: reduce to a concrete value via one handler per variant
// - Then/ThenErr: bind on the success or error side
// - Map/MapErr: transform one payload, pass the other variant through
// - Try: call a function (Out, error) and convert the error to Err
// - Catch: run a panicking function and capture the panic as Err
// - Validate: apply validation producing failure on invalid input
// - Tee/DoubleTee: side-effect helpers
//
// Every combinator short-circuits: a handler for one variant is never
// invoked while the other variant is active.
package solo
