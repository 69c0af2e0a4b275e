package props

import "fmt"

type Property[T Scalar] struct {
	ReadOnlyProperty[T]

	// upstream source of a binding, not owned
	propertyBoundTo *ReadOnlyProperty[T]
	bound           bool
}

func NewProperty[T Scalar](value T) *Property[T] {
	return NewNamedProperty[T](nil, "", value)
}

// NewNamedProperty creates a property owned by bean. When bean is a *Bean the
// property is registered with it.
func NewNamedProperty[T Scalar](bean any, name string, value T) *Property[T] {
	p := &Property[T]{}
	p.init(bean, name, value)
	if b, ok := bean.(*Bean); ok && b != nil {
		b.Register(p)
	}
	return p
}

func (p *Property[T]) ReadOnly() *ReadOnlyProperty[T] { return &p.ReadOnlyProperty }

// Set writes v and propagates it. Writing a one-way bound property fails with
// ErrIllegalMutation and leaves it untouched.
func (p *Property[T]) Set(v T) error {
	if p.bound && !p.bidirectional {
		return fmt.Errorf("%w: %s is bound and cannot be set", ErrIllegalMutation, p.label())
	}
	p.setValue(v, nil)
	return nil
}

// setValue stores v, forwards it along the update edge and notifies. A
// non-nil origin marks a forwarded write, which never forwards again; that is
// what stops two bidirectionally bound properties from ping-ponging.
func (p *Property[T]) setValue(v T, origin *Property[T]) {
	if v != p.value {
		oldValue := p.value
		if p.willChange != nil {
			p.willChange(oldValue, v)
		}
		p.value = v
		if origin == nil && p.propertyToUpdate != nil {
			p.propertyToUpdate.setValue(v, p)
		}
		p.FireEvent(ChangeEvent[T]{source: &p.ReadOnlyProperty, OldValue: oldValue, NewValue: v})
		if p.didChange != nil {
			p.didChange(oldValue, v)
		}
	}
	p.Invalidated()
}

func (p *Property[T]) Unset() error {
	return p.Set(p.initialValue)
}

func (p *Property[T]) SetInitialValue(v T) {
	p.initialValue = v
}

// Bind makes p mirror src. p takes src's current value and src forwards every
// later change to p.
func (p *Property[T]) Bind(src Source[T]) {
	ro := src.readOnly()
	p.propertyBoundTo = ro
	p.value = ro.value
	ro.setPropertyToUpdate(p, false)
	p.unsetPropertyToUpdate()
	p.bound = true
}

// BindBidirectional links p and peer so a write to either reaches the other.
// Both end up holding peer's value.
func (p *Property[T]) BindBidirectional(peer *Property[T]) {
	p.setPropertyToUpdate(peer, true)
	peer.setPropertyToUpdate(p, true)
	p.propertyBoundTo = &peer.ReadOnlyProperty
	p.bound = true
}

// Unbind removes p's edges. The forward edge is broken on both ends and the
// far property is unbound as well; the upstream edge only has its far end
// detached, the upstream property is not unbound.
func (p *Property[T]) Unbind() {
	if target := p.propertyToUpdate; target != nil {
		target.unsetPropertyToUpdate()
		target.Unbind()
		p.propertyToUpdate = nil
	}
	if src := p.propertyBoundTo; src != nil {
		src.unsetPropertyToUpdate()
		p.propertyBoundTo = nil
	}
	p.bound = false
	p.bidirectional = false
}

func (p *Property[T]) IsBound() bool { return p.bound }

func (p *Property[T]) BoundTo() *ReadOnlyProperty[T] { return p.propertyBoundTo }

func (p *Property[T]) State() BindState {
	switch {
	case p.bidirectional:
		return BoundBidirectional
	case p.bound:
		return BoundOneWay
	default:
		return Free
	}
}

func (p *Property[T]) label() string {
	if p.name == "" {
		return "property"
	}
	return fmt.Sprintf("property %q", p.name)
}
