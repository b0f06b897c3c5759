// Package outcome holds the eager success/failure union Outcome[T], the
// forced counterpart of the deferred package's Deferred[T].
//
// An Outcome is immutable once built: it is either a Success carrying a
// value or a Failure carrying an error, with an id and creation timestamp.
//
// Key operations:
// - Success/Failure: construct Outcome[T]
// - Get/GetOrElse: unwrap into (T, error) or fall back to a default
// - IsSuccess/IsFailure/Value/Err: inspect without unwrapping
// - UnwrapErrors: flatten joined validation errors
package outcome
