// Package stream runs Result-aware pipelines over channels with controlled
// worker fan-out.
//
// A stage is an Engine: one result in, one result out on a channel. Stage
// constructors (Validate, Switch, Map, Try, Tee, Apply) lift the solo
// combinators; Run/Turnout drive an Engine across N workers; Finalize
// collapses the result stream to plain values.
//
// Cancellation is cooperative: every select honors ctx, and CancelHandlers
// decide what happens to in-flight and remaining items. DrainHandlers gives
// the common flush-as-failure policy, toggled per context via
// WithDrainOptions. Worker counts may also travel on the context via
// WithWorkerOptions.
package stream
