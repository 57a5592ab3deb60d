package streams

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandWithScalesAStream(t *testing.T) {
	t.Parallel()

	sv := NewSparseVector([]int{1, 2, 3}, []int{10, 20, 30})
	scaled := ExpandWith(sv.GallopStream(), Broadcast[int, int]{Value: 3}, func(v, scale int) int { return v * scale })

	result := FromStream[int, int](scaled)
	assert.Equal(t, []int{30, 60, 90}, result.Vals, "ExpandWith should multiply every value by the broadcast constant")
	assert.Equal(t, sv.Inds, result.Inds, "broadcasting should never change validity, readiness, or the index frontier")
}

func TestBroadcastAtIsConstant(t *testing.T) {
	t.Parallel()

	b := Broadcast[string, int]{Value: 7}
	assert.Equal(t, 7, b.At("anything"))
	assert.Equal(t, 7, b.At("something else"))
}
