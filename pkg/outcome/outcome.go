package outcome

import (
	"time"

	"github.com/google/uuid"
)

// Outcome is the eager counterpart of deferred.Deferred: a computation that
// has already run, holding either a success value or a failure error.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess
}

// Get unwraps the outcome: the success value, or the zero value together
// with the stored error.
func (o Outcome[T]) Get() (T, error) {
	if o.isSuccess {
		return o.value, nil
	}
	var zero T
	return zero, o.err
}

// GetOrElse returns the success value, or def on failure.
func (o Outcome[T]) GetOrElse(def T) T {
	if o.isSuccess {
		return o.value
	}
	return def
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) Id() uuid.UUID {
	return o.id
}
