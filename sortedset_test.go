package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSortedSetSeek(t *testing.T) {
	t.Parallel()

	t.Run("gallop cursor seeks non-strict", func(t *testing.T) {
		t.Parallel()
		s := GallopSet([]int{1, 3, 5, 7, 9, 11, 13})
		s.Seek(6, false)
		assert.Equal(t, 7, s.Index(), "non-strict seek should land on the first index >= target")
	})

	t.Run("gallop cursor seeks strict", func(t *testing.T) {
		t.Parallel()
		s := GallopSet([]int{1, 3, 5, 7})
		s.Seek(5, true)
		assert.Equal(t, 7, s.Index(), "strict seek should skip past an exact match")
	})

	t.Run("linear cursor matches gallop cursor", func(t *testing.T) {
		t.Parallel()
		data := []int{2, 4, 6, 8, 10, 12}
		g := GallopSet(data)
		l := LinearSet(data)
		g.Seek(7, false)
		l.Seek(7, false)
		assert.Equal(t, g.Index(), l.Index(), "gallop and linear cursors should agree on seek results")
	})

	t.Run("seek past the end invalidates the stream", func(t *testing.T) {
		t.Parallel()
		s := GallopSet([]int{1, 2, 3})
		s.Seek(100, false)
		assert.False(t, s.Valid(), "seeking past every element should invalidate the stream")
	})
}

func TestSortedSetClone(t *testing.T) {
	t.Parallel()

	original := GallopSetCloneable([]int{1, 2, 3, 4})
	original.Seek(3, false)
	clone := original.Clone()
	original.Next()

	assert.Equal(t, 4, original.Index(), "advancing the original should not affect the clone")
	assert.Equal(t, 3, clone.Index(), "the clone should remain at the position it was cloned from")
}

func TestGallopSeekScenarioB(t *testing.T) {
	t.Parallel()

	// Scenario B: a gallop with a large skip distance should land exactly
	// on the smallest element >= target after one doubling-probe pass.
	data := make([]int, 1000)
	for i := range data {
		data[i] = i * 2
	}
	s := GallopSet(data)
	s.Seek(777, false)
	assert.Equal(t, 778, s.Index(), "gallop seek should land on the first even number >= target")
}
