// Package deferred provides Deferred[T], a lazily-evaluated outcome: a
// fallible computation that runs only when first forced and memoizes its
// success value or error permanently.
//
// A Deferred is in exactly one of three states: pending (thunk not yet run),
// resolved (value memoized) or rejected (error memoized). The terminal
// states are never left and the thunk runs at most once.
//
// Key operations:
// - From/Catch/Resolve/Reject/FromOutcome: construct a Deferred
// - Perform: force evaluation in place
// - Outcome/Get: force and convert to an eager outcome or (T, error)
// - Map/MapErr: transform the success or error channel lazily
// - FlatMap/FlatMapErr: chain dependent lazy computations or recoveries
//
// Map and FlatMap change the value type, so they are package-level functions;
// MapErr and FlatMapErr keep it, so they are methods.
//
// Evaluation is synchronous on the caller's goroutine. The type performs no
// locking: forcing requires exclusive access to the instance, while terminal
// instances are immutable and safe for concurrent reads.
package deferred
