package props_test

import (
	"math"
	"testing"

	"github.com/delaneyj/toolbox/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserversRunInInsertionOrder(t *testing.T) {
	p := props.NewProperty(0)

	var order []int
	for i := range 5 {
		p.AddObserver(props.OnChange(func(props.ChangeEvent[int]) {
			order = append(order, i)
		}))
	}

	require.NoError(t, p.Set(1))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, order)
}

func TestDuplicateObserverIsNotifiedTwice(t *testing.T) {
	p := props.NewProperty(0)
	calls := 0
	o := props.OnChange(func(props.ChangeEvent[int]) { calls++ })
	p.AddObserver(o)
	p.AddObserver(o)

	require.NoError(t, p.Set(1))
	assert.Equal(t, 2, calls)

	p.RemoveObserver(o)
	require.NoError(t, p.Set(2))
	assert.Equal(t, 3, calls)

	p.RemoveObserver(o)
	assert.False(t, p.HasObservers())
	require.NoError(t, p.Set(3))
	assert.Equal(t, 3, calls)
}

func TestRemoveUnknownObserver(t *testing.T) {
	p := props.NewProperty(0)
	p.AddObserver(props.NewObserver(func(props.Event[int]) {}))
	p.RemoveObserver(props.NewObserver(func(props.Event[int]) {}))
	p.AddObserver(nil)
	assert.True(t, p.HasObservers())

	p.RemoveAllObservers()
	assert.False(t, p.HasObservers())
}

func TestObserverAddedDuringNotificationWaits(t *testing.T) {
	p := props.NewProperty(0)
	late := 0
	lateObserver := props.OnChange(func(props.ChangeEvent[int]) { late++ })

	added := false
	p.AddObserver(props.OnChange(func(props.ChangeEvent[int]) {
		if !added {
			added = true
			p.AddObserver(lateObserver)
		}
	}))

	require.NoError(t, p.Set(1))
	assert.Equal(t, 0, late)
	require.NoError(t, p.Set(2))
	assert.Equal(t, 1, late)
}

func TestFireEventDirectly(t *testing.T) {
	p := props.NewNamedReadOnlyProperty[string]("bean", "title", "x")
	assert.Equal(t, "bean", p.Bean())
	assert.Equal(t, "title", p.Name())
	assert.Equal(t, "x", p.InitialValue())

	var got []props.Event[string]
	p.AddObserver(props.NewObserver(func(evt props.Event[string]) {
		got = append(got, evt)
	}))
	p.Invalidated()
	require.Len(t, got, 1)
	assert.Equal(t, props.Invalidated, got[0].Type())
	assert.Same(t, p, got[0].Source())
}

func TestEqualAndHashByValue(t *testing.T) {
	a := props.NewProperty(1.5)
	b := props.NewProperty(1.5)
	c := props.NewProperty(2.5)

	assert.True(t, a.Equal(b.ReadOnly()))
	assert.Equal(t, a.Hash(), b.Hash())
	assert.False(t, a.Equal(c.ReadOnly()))
	assert.NotEqual(t, a.Hash(), c.Hash())
	assert.False(t, a.Equal(nil))

	zero := props.NewProperty(0.0)
	negZero := props.NewProperty(math.Copysign(0, -1))
	assert.True(t, zero.Equal(negZero.ReadOnly()))
	assert.Equal(t, zero.Hash(), negZero.Hash())
}

func TestString(t *testing.T) {
	assert.Equal(t, "true", props.NewProperty(true).String())
	assert.Equal(t, "42", props.NewProperty(42).String())
	assert.Equal(t, "0.25", props.NewProperty(0.25).String())
}
