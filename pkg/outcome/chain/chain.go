package chain

import (
	"errors"

	"github.com/ib-77/lazyrop/pkg/outcome"
	"github.com/ib-77/lazyrop/pkg/outcome/deferred"
)

// Chain wraps a deferred outcome to enable fluent lazy composition. Nothing
// runs until one of the collapsing calls (Finally, Outcome, Get, Perform).
type Chain[T any] struct {
	d *deferred.Deferred[T]
}

// Start creates a new chain from an existing deferred outcome.
func Start[T any](d *deferred.Deferred[T]) Chain[T] {
	return Chain[T]{d: d}
}

// From creates a new chain from a fallible computation, unevaluated.
func From[T any](thunk func() (T, error)) Chain[T] {
	return Start(deferred.From(thunk))
}

// FromValue creates a new chain from an already-resolved value.
func FromValue[T any](v T) Chain[T] {
	return Start(deferred.Resolve(v))
}

// Deferred returns the underlying deferred outcome without forcing it.
func (c Chain[T]) Deferred() *deferred.Deferred[T] {
	return c.d
}

// Then composes a dependent step that returns (T, error) — like repo calls.
func (c Chain[T]) Then(onSuccess func(t T) (T, error)) Chain[T] {
	return Start(deferred.FlatMap(c.d, func(t T) *deferred.Deferred[T] {
		return deferred.From(func() (T, error) {
			return onSuccess(t)
		})
	}))
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(t T) T) Chain[T] {
	return Start(deferred.Map(c.d, onSuccess))
}

// MapErr transforms the error of a failed step
func (c Chain[T]) MapErr(onFailure func(err error) error) Chain[T] {
	return Start(c.d.MapErr(onFailure))
}

// Recover composes a dependent recovery step for the failure channel. On
// success the value passes through untouched.
func (c Chain[T]) Recover(onFailure func(err error) (T, error)) Chain[T] {
	return Start(c.d.FlatMapErr(func(err error) *deferred.Deferred[T] {
		return deferred.From(func() (T, error) {
			return onFailure(err)
		})
	}))
}

// Ensure triggers side effects for success/failure without changing the
// result. The effects are as lazy as the chain itself.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error)) Chain[T] {
	return c.Then(func(t T) (T, error) {
		if onSuccess != nil {
			onSuccess(t)
		}
		return t, nil
	}).MapErr(func(err error) error {
		if onFailure != nil {
			onFailure(err)
		}
		return err
	})
}

// Validate fails the chain with errMsg when the predicate rejects the value.
func (c Chain[T]) Validate(validate func(t T) (valid bool, errMsg string)) Chain[T] {
	return c.Then(func(t T) (T, error) {
		if valid, errMsg := validate(t); !valid {
			var zero T
			return zero, errors.New(errMsg)
		}
		return t, nil
	})
}

// ValidateAll applies every validator and aggregates all rejections into a
// single joined error.
func (c Chain[T]) ValidateAll(validators ...func(t T) (valid bool, errMsg string)) Chain[T] {
	return c.Then(func(t T) (T, error) {
		var errs []error
		for _, validate := range validators {
			if valid, errMsg := validate(t); !valid {
				errs = append(errs, errors.New(errMsg))
			}
		}
		if len(errs) > 0 {
			var zero T
			return zero, errors.Join(errs...)
		}
		return t, nil
	})
}

// Finally collapses the chain to a final value, forcing evaluation.
func (c Chain[T]) Finally(onSuccess func(t T) T, onFailure func(err error) T) T {
	o := c.d.Outcome()
	if o.IsSuccess() {
		return onSuccess(o.Value())
	}
	return onFailure(o.Err())
}

// Outcome forces the chain and returns the eager outcome.
func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.d.Outcome()
}

// Get forces the chain and unwraps it.
func (c Chain[T]) Get() (T, error) {
	return c.d.Get()
}
