package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalSome(t *testing.T) {
	t.Parallel()

	o := Some(42)
	assert.True(t, o.IsPresent())
	assert.False(t, o.IsEmpty())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, o.GetOrElse(0))
	assert.Equal(t, "Some(42)", o.String())
}

func TestOptionalNone(t *testing.T) {
	t.Parallel()

	o := None[int]()
	assert.False(t, o.IsPresent())
	assert.True(t, o.IsEmpty())

	_, ok := o.Get()
	assert.False(t, ok)
	assert.Equal(t, 99, o.GetOrElse(99))
	assert.Equal(t, 0, o.GetOrZero())
	assert.Equal(t, "None", o.String())
}
