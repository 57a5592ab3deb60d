package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairUnpack(t *testing.T) {
	t.Parallel()

	p := NewPair(1, "a")
	first, second := p.Unpack()
	assert.Equal(t, 1, first)
	assert.Equal(t, "a", second)
}

func TestTripleUnpack(t *testing.T) {
	t.Parallel()

	tr := NewTriple(1, "b", 3.5)
	a, b, c := tr.Unpack()
	assert.Equal(t, 1, a)
	assert.Equal(t, "b", b)
	assert.Equal(t, 3.5, c)
}
