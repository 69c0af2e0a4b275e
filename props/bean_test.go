package props_test

import (
	"testing"

	"github.com/delaneyj/toolbox/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeanRegistersNamedProperties(t *testing.T) {
	bean := props.NewBean("gauge")
	value := props.NewNamedProperty(bean, "value", 0.0)
	props.NewNamedProperty(bean, "visible", true)
	props.NewNamedProperty[float64](nil, "orphan", 0)

	assert.Equal(t, "gauge", bean.Name())
	assert.Equal(t, 2, bean.Len())
	assert.Same(t, bean, value.Bean())
	assert.False(t, bean.Register(value))

	found, ok := bean.Lookup("value")
	require.True(t, ok)
	assert.Equal(t, props.Bindable(value), found)

	_, ok = bean.Lookup("orphan")
	assert.False(t, ok)

	bean.Unregister(value)
	assert.Equal(t, 1, bean.Len())
}

func TestBeanUnbindAll(t *testing.T) {
	bean := props.NewBean("panel")
	width := props.NewNamedProperty(bean, "width", 10)
	height := props.NewNamedProperty(bean, "height", 20)
	label := props.NewNamedProperty(bean, "label", "x")

	src := props.NewProperty(30)
	width.Bind(src)
	peer := props.NewProperty(40)
	height.BindBidirectional(peer)

	assert.Len(t, bean.Bound(), 2)
	assert.False(t, label.IsBound())

	bean.UnbindAll()
	assert.Empty(t, bean.Bound())

	require.NoError(t, src.Set(31))
	assert.Equal(t, 30, width.Get())
	require.NoError(t, peer.Set(41))
	assert.Equal(t, 40, height.Get())
	require.NoError(t, width.Set(1))
}
