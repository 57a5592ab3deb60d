package streams

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDenseSeqPadsGaps(t *testing.T) {
	t.Parallel()

	sv := NewSparseVector([]int{1, 3, 4}, []int{10, 30, 40})
	d := Dense[int](sv.GallopStream(), 0)

	var got []int
	for {
		v, ok := d.Next()
		if !ok {
			break
		}
		got = append(got, v)
		if len(got) > 5 {
			break
		}
	}
	assert.Equal(t, []int{0, 10, 0, 30, 40}, got, "dense adaptation should zero-fill every gap between sparse entries")
}

func TestDenseSeqEndsWhenSourceExhausted(t *testing.T) {
	t.Parallel()

	sv := NewSparseVector([]int{0}, []int{5})
	d := Dense[int](sv.GallopStream(), -1)

	v, ok := d.Next()
	assert.True(t, ok)
	assert.Equal(t, 5, v)

	_, ok = d.Next()
	assert.False(t, ok, "the dense sequence should end exactly when the sparse source is exhausted")
}

func TestDenseSeqInteropWithSeq(t *testing.T) {
	t.Parallel()

	sv := NewSparseVector([]int{0, 2}, []int{1, 2})
	d := Dense[int](sv.GallopStream(), 0)

	got := slices.Collect(d.Seq())
	assert.Equal(t, []int{1, 0, 2}, got, "Seq should expose the same sequence as repeated Next calls")
}
