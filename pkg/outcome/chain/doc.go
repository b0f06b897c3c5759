// Package chain provides a fluent wrapper around deferred.Deferred[T]
// for building lazy synchronous pipelines.
//
// It composes the deferred primitives Map, MapErr, FlatMap and FlatMapErr
// behind a convenient Chain[T] type. Every step stays unevaluated until a
// collapsing call, so a whole pipeline is described first and run once.
//
// Key operations:
// - Start/From/FromValue: begin a chain from a Deferred, thunk or value
// - Then: compose a dependent (T, error) step
// - Map/MapErr: transform the success or error channel
// - Recover: compose a dependent recovery for the failure channel
// - Ensure: attach side effects without changing the result
// - Validate/ValidateAll: predicate checks producing failures
// - Finally/Outcome/Get: force the pipeline and collapse it
package chain
