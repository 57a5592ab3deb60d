package streams

import "cmp"

// zipStream intersects two streams on index: it is valid while both are
// valid, ready only where both are ready and agree on index, and its own
// index is the max of the two sides' indices (so that seeking the zip past
// a mismatch advances whichever side is behind).
type zipStream[I cmp.Ordered, L any, R any, O any] struct {
	left  Stream[I, L]
	right Stream[I, R]
	f     func(L, R) O
}

// ZipWith combines two streams by intersecting their indices: the result is
// ready exactly where left and right are both ready at the same index, and
// f computes the combined value there. This is set intersection generalized
// to a join, and the core building block of sparse dot products
// (Contract(ZipWith(a, b, mul))) and fused multiway joins.
func ZipWith[I cmp.Ordered, L any, R any, O any](left Stream[I, L], right Stream[I, R], f func(L, R) O) Stream[I, O] {
	return &zipStream[I, L, R, O]{left: left, right: right, f: f}
}

func (z *zipStream[I, L, R, O]) Valid() bool {
	return z.left.Valid() && z.right.Valid()
}

func (z *zipStream[I, L, R, O]) Ready() bool {
	return z.left.Ready() && z.right.Ready() && z.left.Index() == z.right.Index()
}

func (z *zipStream[I, L, R, O]) Index() I {
	return max(z.left.Index(), z.right.Index())
}

func (z *zipStream[I, L, R, O]) Value() O {
	return z.f(z.left.Value(), z.right.Value())
}

func (z *zipStream[I, L, R, O]) Next() { DefaultNext[I, O](z) }

func (z *zipStream[I, L, R, O]) Seek(target I, strict bool) {
	z.left.Seek(target, strict)
	z.right.Seek(target, strict)
}

func (z *zipStream[I, L, R, O]) Clone() Stream[I, O] {
	return &zipStream[I, L, R, O]{left: CloneStream(z.left), right: CloneStream(z.right), f: z.f}
}
