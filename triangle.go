package streams

import "cmp"

// CreateAllPairsTable builds the outer-product relation over two sorted key
// sets: a stream indexed by s1 whose every value is a cloneable stream over
// all of s2. It is the standard building block for turning two independent
// sorted sets into a two-level join input, and it is itself cloneable, which
// TriangleJoin1 relies on to replay the B-axis once per A.
func CreateAllPairsTable[A cmp.Ordered, B cmp.Ordered](s1 []A, s2 []B) Stream[A, Stream[B, struct{}]] {
	return Map(GallopSet(s1), func(_ A, _ struct{}) Stream[B, struct{}] {
		return GallopSetCloneable(s2)
	})
}

// TriangleJoin1 fuses the first two legs of a three-way join: given
// x, a stream of A -> (stream of B), and y, a stream of B -> (stream of C),
// it produces a stream of A -> (stream of B -> (stream of C)) by, at every A,
// intersecting x's B-stream against a fresh clone of y. y is cloned once per
// A rather than driven once overall, because each A potentially needs to
// revisit the same B range.
func TriangleJoin1[A cmp.Ordered, B cmp.Ordered, C cmp.Ordered](
	x Stream[A, Stream[B, struct{}]],
	y Stream[B, Stream[C, struct{}]],
) Stream[A, Stream[B, Stream[C, struct{}]]] {
	return Map(x, func(_ A, bs Stream[B, struct{}]) Stream[B, Stream[C, struct{}]] {
		return ZipWith(bs, CloneStream(y), func(_ struct{}, cs Stream[C, struct{}]) Stream[C, struct{}] {
			return cs
		})
	})
}

// TriangleJoin2 fuses the final leg: given x, a stream of
// A -> (stream of B -> (stream of C)), and y, a stream of A -> (stream of C)
// (the direct A-C edge), it keeps only the C values present in both the
// B-nested stream and y's C-stream at each A. y's per-A value is cloned once
// per B, since it's checked against every B's C-stream independently.
func TriangleJoin2[A cmp.Ordered, B cmp.Ordered, C cmp.Ordered](
	x Stream[A, Stream[B, Stream[C, struct{}]]],
	y Stream[A, Stream[C, struct{}]],
) Stream[A, Stream[B, Stream[C, struct{}]]] {
	return ZipWith(x, y, func(bs Stream[B, Stream[C, struct{}]], cTemplate Stream[C, struct{}]) Stream[B, Stream[C, struct{}]] {
		return Map(bs, func(_ B, cs Stream[C, struct{}]) Stream[C, struct{}] {
			return ZipWith(CloneStream(cTemplate), cs, func(_, _ struct{}) struct{} { return struct{}{} })
		})
	})
}

// FlattenTriangle drains a fully fused A -> B -> C join into the set of
// (a, b, c) triples it describes, for comparison against NaiveTriangleJoin
// and for the full-Cartesian-product scenario where every A connects to
// every B connects to every C.
func FlattenTriangle[A cmp.Ordered, B cmp.Ordered, C cmp.Ordered](s Stream[A, Stream[B, Stream[C, struct{}]]]) []Triple[A, B, C] {
	var out []Triple[A, B, C]
	ForEach(s, func(a A, bs Stream[B, Stream[C, struct{}]]) {
		ForEach(bs, func(b B, cs Stream[C, struct{}]) {
			ForEach(cs, func(c C, _ struct{}) {
				out = append(out, NewTriple(a, b, c))
			})
		})
	})
	return out
}
