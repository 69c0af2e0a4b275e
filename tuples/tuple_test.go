package tuples_test

import (
	"reflect"
	"testing"

	"github.com/delaneyj/toolbox/tuples"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPair(t *testing.T) {
	p := tuples.NewPair("x", 2)
	assert.Equal(t, "x", p.A())
	assert.Equal(t, 2, p.B())
	assert.Equal(t, 2, p.Size())

	p.SetB(3)
	v, err := p.ValueAt(1)
	require.NoError(t, err)
	assert.Equal(t, 3, v)
	assert.Equal(t, `{"a":"x","b":"3"}`, p.String())
}

func TestEnnead(t *testing.T) {
	e := tuples.NewEnnead(1, "two", 3.0, true, int8(5), uint(6), 'g', []int{8}, error(nil))
	assert.Equal(t, 9, e.Size())
	assert.Equal(t, "two", e.B())
	assert.Nil(t, e.I())

	e.SetI(errDummy)
	assert.Equal(t, errDummy, e.I())

	values := tuples.Values(e)
	require.Len(t, values, 9)
	assert.Equal(t, 1, values[0])
	assert.Equal(t, []int{8}, values[7])

	typ, err := tuples.TypeAt(e, 2)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(0.0), typ)

	assert.Equal(t,
		`{"a":"1","b":"two","c":"3","d":"true","e":"5","f":"6","g":"103","h":"[8]","i":"dummy"}`,
		e.String(),
	)
}

type dummyErr struct{}

func (dummyErr) Error() string { return "dummy" }

var errDummy error = dummyErr{}

func TestValueAtOutOfBounds(t *testing.T) {
	tuplesUnderTest := []tuples.Tuple{
		tuples.NewPair(1, 2),
		tuples.NewTriplet(1, 2, 3),
		tuples.NewQuartet(1, 2, 3, 4),
		tuples.NewQuintet(1, 2, 3, 4, 5),
		tuples.NewSextet(1, 2, 3, 4, 5, 6),
		tuples.NewSeptet(1, 2, 3, 4, 5, 6, 7),
		tuples.NewOctet(1, 2, 3, 4, 5, 6, 7, 8),
		tuples.NewEnnead(1, 2, 3, 4, 5, 6, 7, 8, 9),
	}
	for i, tup := range tuplesUnderTest {
		assert.Equal(t, i+2, tup.Size())

		last, err := tup.ValueAt(tup.Size() - 1)
		require.NoError(t, err)
		assert.Equal(t, tup.Size(), last)

		_, err = tup.ValueAt(tup.Size())
		assert.ErrorIs(t, err, tuples.ErrIndexOutOfBounds)
		_, err = tup.ValueAt(-1)
		assert.ErrorIs(t, err, tuples.ErrIndexOutOfBounds)
		_, err = tuples.TypeAt(tup, 99)
		assert.ErrorIs(t, err, tuples.ErrIndexOutOfBounds)
	}
}

func TestEqual(t *testing.T) {
	assert.True(t, tuples.Equal(tuples.NewPair("x", 2), tuples.NewPair("x", 2)))
	assert.False(t, tuples.Equal(tuples.NewPair("x", 2), tuples.NewPair("x", 3)))
	assert.False(t, tuples.Equal(tuples.NewPair("x", 2), tuples.NewPair[string, int64]("x", 2)))
	assert.False(t, tuples.Equal(tuples.NewPair(1, 2), tuples.NewTriplet(1, 2, 3)))
	assert.True(t, tuples.Equal(nil, nil))
	assert.False(t, tuples.Equal(tuples.NewPair(1, 2), nil))

	a := tuples.NewTriplet([]int{1, 2}, "s", error(nil))
	b := tuples.NewTriplet([]int{1, 2}, "s", error(nil))
	assert.True(t, tuples.Equal(a, b))
	b.SetA([]int{1})
	assert.False(t, tuples.Equal(a, b))
}
