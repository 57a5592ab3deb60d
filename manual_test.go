package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManualIntersectOrderedAgainstZip(t *testing.T) {
	t.Parallel()

	a := NewOrderedSetFromSorted([]int{1, 2, 3, 4, 5, 6})
	b := NewOrderedSetFromSorted([]int{2, 4, 6, 8})

	manual := ManualIntersectOrdered(a, b)

	streamed := CollectIndices(ZipWith(GallopSet([]int{1, 2, 3, 4, 5, 6}), GallopSet([]int{2, 4, 6, 8}),
		func(_, _ struct{}) struct{} { return struct{}{} }))

	assert.Equal(t, []int{2, 4, 6}, manual)
	assert.Equal(t, streamed, manual, "the random-lookup baseline and the fused galloping intersection should agree")
}

func TestManualIntersectOrderedEmpty(t *testing.T) {
	t.Parallel()

	a := NewOrderedSetFromSorted([]int{1, 2, 3})
	b := NewOrderedSetFromSorted([]int{4, 5, 6})

	assert.Empty(t, ManualIntersectOrdered(a, b))
}
