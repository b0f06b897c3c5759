package deferred

import (
	"fmt"

	"github.com/ib-77/lazyrop/pkg/outcome"
)

type state uint8

const (
	statePending state = iota
	stateResolved
	stateRejected
)

// Deferred is a lazily-evaluated computation: a thunk that is not run until
// the first forcing call (Perform, Get or Outcome), after which the value or
// error is memoized and the thunk is never run again.
//
// Forcing mutates the instance in place, so a Deferred is handled by pointer
// and every holder of the handle observes the memoized result. Forcing is
// single-writer: it must not race with other calls on the same instance.
// Once resolved or rejected the instance is immutable and safe to read from
// anywhere.
type Deferred[T any] struct {
	st    state
	thunk func() (T, error)
	value T
	err   error
}

// From builds a pending Deferred wrapping thunk. The thunk is not called.
func From[T any](thunk func() (T, error)) *Deferred[T] {
	return &Deferred[T]{st: statePending, thunk: thunk}
}

// Resolve builds an already-resolved Deferred carrying v.
func Resolve[T any](v T) *Deferred[T] {
	return &Deferred[T]{st: stateResolved, value: v}
}

// Reject builds an already-rejected Deferred carrying err.
func Reject[T any](err error) *Deferred[T] {
	return &Deferred[T]{st: stateRejected, err: err}
}

// FromOutcome builds a terminal Deferred from an eager outcome.
func FromOutcome[T any](o outcome.Outcome[T]) *Deferred[T] {
	if o.IsSuccess() {
		return Resolve(o.Value())
	}
	return Reject[T](o.Err())
}

// Catch wraps a computation that signals failure by panicking. A recovered
// error value is stored as-is; any other panic value is formatted into one.
func Catch[T any](compute func() T) *Deferred[T] {
	return From(func() (v T, err error) {
		defer func() {
			if a := recover(); a != nil {
				if e, ok := a.(error); ok {
					err = e
				} else {
					err = fmt.Errorf("%v", a)
				}
			}
		}()
		return compute(), nil
	})
}

func (d *Deferred[T]) IsPending() bool {
	return d.st == statePending
}

func (d *Deferred[T]) IsResolved() bool {
	return d.st == stateResolved
}

func (d *Deferred[T]) IsRejected() bool {
	return d.st == stateRejected
}

// Perform forces evaluation. On a pending instance it runs the thunk exactly
// once and transitions to resolved or rejected before returning; on a
// terminal instance it is a no-op. Both success and failure are memoized.
func (d *Deferred[T]) Perform() {
	if d.st != statePending {
		return
	}

	v, err := d.thunk()
	d.thunk = nil

	if err != nil {
		d.err = err
		d.st = stateRejected
		return
	}

	d.value = v
	d.st = stateResolved
}

// Outcome forces evaluation and returns the equivalent eager outcome. The
// receiver is never pending afterwards.
func (d *Deferred[T]) Outcome() outcome.Outcome[T] {
	d.Perform()

	if d.st == stateRejected {
		return outcome.Failure[T](d.err)
	}
	return outcome.Success(d.value)
}

// Get forces evaluation and unwraps: the resolved value, or the zero value
// together with the stored error.
func (d *Deferred[T]) Get() (T, error) {
	d.Perform()

	if d.st == stateRejected {
		var zero T
		return zero, d.err
	}
	return d.value, nil
}
