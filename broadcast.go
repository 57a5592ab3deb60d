package streams

// Broadcast is a constant, index-parameterized value: it has no native
// notion of validity or termination and only makes sense paired with a real
// stream whose shape supplies both. It is the building block for outer
// products and for broadcasting a scalar across a sparse matvec.
type Broadcast[I any, V any] struct {
	Value V
}

// At returns the broadcast value regardless of index.
func (b Broadcast[I, V]) At(_ I) V { return b.Value }

// ExpandWith pairs a real stream with a broadcast value, pointwise. Since a
// broadcast never gates validity, readiness, or the seek frontier, this
// reduces directly to Map — the broadcast side contributes nothing but a
// per-index lookup.
func ExpandWith[I any, L any, V any, O any](left Stream[I, L], bcast Broadcast[I, V], f func(L, V) O) Stream[I, O] {
	return Map(left, func(i I, l L) O {
		return f(l, bcast.At(i))
	})
}
