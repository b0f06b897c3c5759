package deferred

// Map returns a new Deferred that applies transform to the success value.
// A pending receiver is not forced: the derived instance forces it on its own
// first forcing call. A resolved receiver is transformed immediately; a
// rejected receiver short-circuits with its error, transform never called.
func Map[In, Out any](d *Deferred[In], transform func(In) Out) *Deferred[Out] {
	switch d.st {
	case stateResolved:
		return Resolve(transform(d.value))
	case stateRejected:
		return Reject[Out](d.err)
	}

	return From(func() (Out, error) {
		v, err := d.Get()
		if err != nil {
			var zero Out
			return zero, err
		}
		return transform(v), nil
	})
}

// FlatMap chains a dependent lazy computation on the success value. A
// resolved receiver returns transform(value) directly, still unforced; a
// rejected receiver short-circuits with its error, transform never called.
func FlatMap[In, Out any](d *Deferred[In], transform func(In) *Deferred[Out]) *Deferred[Out] {
	switch d.st {
	case stateResolved:
		return transform(d.value)
	case stateRejected:
		return Reject[Out](d.err)
	}

	return From(func() (Out, error) {
		v, err := d.Get()
		if err != nil {
			var zero Out
			return zero, err
		}
		return transform(v).Get()
	})
}

// MapErr returns a new Deferred that applies transform to the error channel.
// Success values pass through unchanged.
func (d *Deferred[T]) MapErr(transform func(error) error) *Deferred[T] {
	switch d.st {
	case stateResolved:
		return Resolve(d.value)
	case stateRejected:
		return Reject[T](transform(d.err))
	}

	return From(func() (T, error) {
		v, err := d.Get()
		if err != nil {
			var zero T
			return zero, transform(err)
		}
		return v, nil
	})
}

// FlatMapErr chains a dependent lazy recovery on the error channel. On the
// receiver's failure the recovery outcome transform(err) is forced: its
// resolved value replaces the failure, but if the recovery itself fails the
// receiver's original error is kept and the recovery's error is discarded.
// A rejected receiver returns transform(err) directly, still unforced;
// success values pass through unchanged.
func (d *Deferred[T]) FlatMapErr(transform func(error) *Deferred[T]) *Deferred[T] {
	switch d.st {
	case stateResolved:
		return Resolve(d.value)
	case stateRejected:
		return transform(d.err)
	}

	return From(func() (T, error) {
		v, err := d.Get()
		if err == nil {
			return v, nil
		}

		rv, rerr := transform(err).Get()
		if rerr != nil {
			var zero T
			return zero, err
		}
		return rv, nil
	})
}
