package props

// Observer is a registration handle around a callback. Identity is the
// pointer, so the same observer may be added more than once and each
// registration is notified separately.
type Observer[T Scalar] struct {
	fn func(Event[T])
}

func NewObserver[T Scalar](fn func(Event[T])) *Observer[T] {
	return &Observer[T]{fn: fn}
}

// OnInvalidated only receives invalidation events.
func OnInvalidated[T Scalar](fn func(InvalidationEvent[T])) *Observer[T] {
	return NewObserver(func(evt Event[T]) {
		if e, ok := evt.(InvalidationEvent[T]); ok {
			fn(e)
		}
	})
}

// OnChange only receives change events.
func OnChange[T Scalar](fn func(ChangeEvent[T])) *Observer[T] {
	return NewObserver(func(evt Event[T]) {
		if e, ok := evt.(ChangeEvent[T]); ok {
			fn(e)
		}
	})
}

func (o *Observer[T]) handle(evt Event[T]) {
	if o.fn != nil {
		o.fn(evt)
	}
}
