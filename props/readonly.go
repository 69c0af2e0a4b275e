package props

import (
	"fmt"
	"slices"

	"github.com/cespare/xxhash/v2"
)

type ReadOnlyProperty[T Scalar] struct {
	bean         any
	name         string
	value        T
	initialValue T
	observers    []*Observer[T]

	// forward edge, fired after a local value change
	propertyToUpdate *Property[T]
	bidirectional    bool

	willChange func(oldValue, newValue T)
	didChange  func(oldValue, newValue T)
}

func NewReadOnlyProperty[T Scalar](value T) *ReadOnlyProperty[T] {
	return NewNamedReadOnlyProperty[T](nil, "", value)
}

func NewNamedReadOnlyProperty[T Scalar](bean any, name string, value T) *ReadOnlyProperty[T] {
	p := &ReadOnlyProperty[T]{}
	p.init(bean, name, value)
	return p
}

func (p *ReadOnlyProperty[T]) init(bean any, name string, value T) {
	p.bean = bean
	p.name = name
	p.value = value
	p.initialValue = value
}

func (p *ReadOnlyProperty[T]) readOnly() *ReadOnlyProperty[T] { return p }

func (p *ReadOnlyProperty[T]) Get() T             { return p.value }
func (p *ReadOnlyProperty[T]) InitialValue() T    { return p.initialValue }
func (p *ReadOnlyProperty[T]) Bean() any          { return p.bean }
func (p *ReadOnlyProperty[T]) Name() string       { return p.name }
func (p *ReadOnlyProperty[T]) HasObservers() bool { return len(p.observers) > 0 }

func (p *ReadOnlyProperty[T]) AddObserver(o *Observer[T]) {
	if o == nil {
		return
	}
	p.observers = append(p.observers, o)
}

// RemoveObserver drops the first registration of o.
func (p *ReadOnlyProperty[T]) RemoveObserver(o *Observer[T]) {
	for i, obs := range p.observers {
		if obs == o {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

func (p *ReadOnlyProperty[T]) RemoveAllObservers() {
	p.observers = nil
}

// FireEvent notifies the observers registered when the call started, in
// insertion order.
func (p *ReadOnlyProperty[T]) FireEvent(evt Event[T]) {
	if len(p.observers) == 0 {
		return
	}
	for _, o := range slices.Clone(p.observers) {
		o.handle(evt)
	}
}

func (p *ReadOnlyProperty[T]) Invalidated() {
	p.FireEvent(InvalidationEvent[T]{source: p})
}

// OnWillChange registers a hook run right before a changed value is stored.
func (p *ReadOnlyProperty[T]) OnWillChange(fn func(oldValue, newValue T)) {
	p.willChange = fn
}

// OnDidChange registers a hook run after the change event has been fired.
func (p *ReadOnlyProperty[T]) OnDidChange(fn func(oldValue, newValue T)) {
	p.didChange = fn
}

func (p *ReadOnlyProperty[T]) IsBoundBidirectional() bool { return p.bidirectional }

func (p *ReadOnlyProperty[T]) setPropertyToUpdate(target *Property[T], bidirectional bool) {
	p.propertyToUpdate = target
	if target == nil {
		p.bidirectional = false
		return
	}
	if bidirectional {
		p.value = target.value
	}
	p.bidirectional = bidirectional
}

func (p *ReadOnlyProperty[T]) unsetPropertyToUpdate() {
	p.setPropertyToUpdate(nil, false)
}

func (p *ReadOnlyProperty[T]) Equal(other *ReadOnlyProperty[T]) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return p.value == other.value
}

func (p *ReadOnlyProperty[T]) Hash() uint64 {
	v := p.value
	var zero T
	if v == zero {
		// folds -0 into 0 so equal floats hash alike
		v = zero
	}
	return xxhash.Sum64String(fmt.Sprint(v))
}

func (p *ReadOnlyProperty[T]) String() string {
	return fmt.Sprint(p.value)
}
