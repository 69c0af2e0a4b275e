package props

import (
	mapset "github.com/deckarep/golang-set/v2"
)

// Bean owns a group of properties. Bindings between properties are non-owning
// references, so whoever owns a property is expected to unbind it before
// dropping it; UnbindAll does that for every registered property.
type Bean struct {
	name  string
	props mapset.Set[Bindable]
}

func NewBean(name string) *Bean {
	return &Bean{
		name:  name,
		props: mapset.NewThreadUnsafeSet[Bindable](),
	}
}

func (b *Bean) Name() string { return b.name }

// Register adds p, returning false if it was already registered.
func (b *Bean) Register(p Bindable) bool {
	return b.props.Add(p)
}

func (b *Bean) Unregister(p Bindable) {
	b.props.Remove(p)
}

// Lookup finds a registered property by name.
func (b *Bean) Lookup(name string) (Bindable, bool) {
	var found Bindable
	b.props.Each(func(p Bindable) bool {
		if p.Name() == name {
			found = p
			return true
		}
		return false
	})
	return found, found != nil
}

func (b *Bean) Len() int { return b.props.Cardinality() }

// Bound returns the registered properties that are currently bound.
func (b *Bean) Bound() []Bindable {
	var bound []Bindable
	for _, p := range b.props.ToSlice() {
		if p.IsBound() {
			bound = append(bound, p)
		}
	}
	return bound
}

func (b *Bean) UnbindAll() {
	for _, p := range b.props.ToSlice() {
		p.Unbind()
	}
}
