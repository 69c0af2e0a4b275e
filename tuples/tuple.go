// Package tuples provides small fixed-size heterogeneous containers.
//
// tuples.go is generated by cmd/codegen; edit the templates there instead.
package tuples

import (
	"errors"
	"fmt"
	"reflect"
)

//go:generate go run ../cmd/codegen --out tuples.go

var ErrIndexOutOfBounds = errors.New("index out of bounds")

type Tuple interface {
	Size() int
	ValueAt(i int) (any, error)
}

var (
	_ Tuple = (*Pair[int, int])(nil)
	_ Tuple = (*Ennead[int, int, int, int, int, int, int, int, int])(nil)
)

func outOfBounds(name string, i, size int) error {
	return fmt.Errorf("%w: %d, %s has %d elements", ErrIndexOutOfBounds, i, name, size)
}

// TypeAt reports the dynamic type of the element at i, nil for a nil element.
func TypeAt(t Tuple, i int) (reflect.Type, error) {
	v, err := t.ValueAt(i)
	if err != nil {
		return nil, err
	}
	return reflect.TypeOf(v), nil
}

// Values returns all elements in order.
func Values(t Tuple) []any {
	values := make([]any, t.Size())
	for i := range values {
		values[i], _ = t.ValueAt(i)
	}
	return values
}

// Equal reports whether x and y are the same tuple type holding deeply equal
// elements. Both must be non-nil tuples or both nil.
func Equal(x, y Tuple) bool {
	if reflect.TypeOf(x) != reflect.TypeOf(y) {
		return false
	}
	if x == nil {
		return true
	}
	return reflect.DeepEqual(Values(x), Values(y))
}

func fieldName(i int) string {
	return string(rune('a' + i))
}
