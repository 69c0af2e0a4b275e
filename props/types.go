// Package props provides observable single-value properties with change and
// invalidation notification, plus one-way and bidirectional binding between
// properties of the same type.
//
// Everything runs synchronously on the caller's goroutine: observers and bound
// properties are updated depth-first before Set returns. Properties are not
// safe for concurrent use, and adding or removing observers from inside a
// notification callback without external locking is undefined.
package props

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Scalar is the closed set of value kinds a property can hold.
type Scalar interface {
	constraints.Integer | constraints.Float | ~bool | ~string
}

var ErrIllegalMutation = errors.New("illegal mutation")

type BindState uint8

const (
	Free BindState = iota
	BoundOneWay
	BoundBidirectional
)

func (s BindState) String() string {
	switch s {
	case Free:
		return "FREE"
	case BoundOneWay:
		return "BOUND_ONE_WAY"
	case BoundBidirectional:
		return "BOUND_BIDIRECTIONAL"
	default:
		return "UNKNOWN"
	}
}

// Source is anything a property can be bound to. Both ReadOnlyProperty and
// Property satisfy it.
type Source[T Scalar] interface {
	readOnly() *ReadOnlyProperty[T]
}

// Bindable is the type-erased view a Bean keeps of its properties.
type Bindable interface {
	Name() string
	IsBound() bool
	Unbind()
}
