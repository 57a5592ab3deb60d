package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapTransformsValues(t *testing.T) {
	t.Parallel()

	sv := NewSparseVector([]int{1, 2, 3}, []int{10, 20, 30})
	doubled := Map(sv.GallopStream(), func(_ int, v int) int { return v * 2 })

	result := FromStream[int, int](doubled)
	assert.Equal(t, []int{20, 40, 60}, result.Vals, "Map should transform every value")
	assert.Equal(t, []int{1, 2, 3}, result.Inds, "Map should preserve indices")
}

func TestMapCanSeeIndex(t *testing.T) {
	t.Parallel()

	sv := NewSparseVector([]int{1, 2, 3}, []string{"x", "x", "x"})
	withIndex := Map(sv.GallopStream(), func(i int, v string) int { return i })

	result := FromStream[int, int](withIndex)
	assert.Equal(t, []int{1, 2, 3}, result.Vals, "the map function should receive the stream's index, not just its value")
}

func TestMapCloneRequiresCloneableChild(t *testing.T) {
	t.Parallel()

	cloneable := Map(GallopSetCloneable([]int{1, 2}), func(i int, _ struct{}) int { return i })
	clone := CloneStream(cloneable)
	assert.Equal(t, []int{1, 2}, CollectIndices(clone), "a Map over a cloneable source should itself be cloneable")
}
