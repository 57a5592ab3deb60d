package streams

import "cmp"

// Collector describes how to reduce a Stream[I, V] into a final result R,
// via a mutable accumulator of type A: Supplier builds the initial
// accumulator, Accumulator folds one (index, value) pair into it, and
// Finisher converts the accumulator into the result. It is the Go-idiomatic
// equivalent of a FromStream<I, V> implementation: CollectInto plays the
// role of from_stream, and repeated Accumulator calls the role of
// extend_from_stream.
type Collector[I any, V any, A any, R any] struct {
	Supplier    func() A
	Accumulator func(A, I, V) A
	Finisher    func(A) R
}

// CollectInto drains s through c and returns the finished result.
func CollectInto[I any, V any, A any, R any](s Stream[I, V], c Collector[I, V, A, R]) R {
	acc := c.Supplier()
	ForEach(s, func(i I, v V) {
		acc = c.Accumulator(acc, i, v)
	})
	return c.Finisher(acc)
}

// SparseVectorCollector collects a strictly-increasing-index stream into a
// SparseVector. Feeding it a non-increasing index is a contract violation —
// unlike ScalarCollector (where repeated contributions at the same position
// are the whole point of contraction), a sparse vector's identity *is* its
// strictly sorted index list, so silently accepting duplicates would produce
// a value no longer representable as one (see DESIGN.md's note on the
// duplicate-index Open Question).
func SparseVectorCollector[I cmp.Ordered, T any]() Collector[I, T, *SparseVector[I, T], SparseVector[I, T]] {
	return Collector[I, T, *SparseVector[I, T], SparseVector[I, T]]{
		Supplier: func() *SparseVector[I, T] { return &SparseVector[I, T]{} },
		Accumulator: func(acc *SparseVector[I, T], i I, v T) *SparseVector[I, T] {
			n := len(acc.Inds)
			assertInvariant(n == 0 || acc.Inds[n-1] < i,
				"SparseVectorCollector requires strictly increasing indices")
			acc.Inds = append(acc.Inds, i)
			acc.Vals = append(acc.Vals, v)
			return acc
		},
		Finisher: func(acc *SparseVector[I, T]) SparseVector[I, T] { return *acc },
	}
}

// FromStream collects an ordered-index stream into a SparseVector.
func FromStream[I cmp.Ordered, T any](s Stream[I, T]) SparseVector[I, T] {
	return CollectInto(s, SparseVectorCollector[I, T]())
}

// ExtendFromStream appends s's entries onto an existing SparseVector.
func ExtendFromStream[I cmp.Ordered, T any](v *SparseVector[I, T], s Stream[I, T]) {
	ForEach(s, func(i I, val T) {
		n := len(v.Inds)
		assertInvariant(n == 0 || v.Inds[n-1] < i,
			"ExtendFromStream requires strictly increasing indices")
		v.Inds = append(v.Inds, i)
		v.Vals = append(v.Vals, val)
	})
}

type csrAccum[T any] struct {
	rows []int
	cols []int
	vals []T
}

// CSRCollector collects a Stream[int, Stream[int, T]] of rows — such as a
// SparseCSRMatrix's own Stream, or any row-major stream of sparse rows —
// into a SparseCSRMatrix. Rows with no entries still
// advance the row-pointer array by filling in a repeated prefix count, the
// same lazy-extend rule NewCSRFromTriples uses for skipped rows.
func CSRCollector[T any]() Collector[int, Stream[int, T], *csrAccum[T], SparseCSRMatrix[T]] {
	return Collector[int, Stream[int, T], *csrAccum[T], SparseCSRMatrix[T]]{
		Supplier: func() *csrAccum[T] { return &csrAccum[T]{rows: []int{0}} },
		Accumulator: func(acc *csrAccum[T], row int, rowStream Stream[int, T]) *csrAccum[T] {
			for len(acc.rows) <= row {
				acc.rows = append(acc.rows, len(acc.cols))
			}
			ForEach(rowStream, func(col int, val T) {
				acc.cols = append(acc.cols, col)
				acc.vals = append(acc.vals, val)
			})
			acc.rows = append(acc.rows, len(acc.cols))
			return acc
		},
		Finisher: func(acc *csrAccum[T]) SparseCSRMatrix[T] {
			return SparseCSRMatrix[T]{Rows: acc.rows, Cols: acc.cols, Vals: acc.vals}
		},
	}
}

// ScalarCollector sums a ()-indexed stream into a single scalar — the
// collector form of Contract. It deliberately sums every contribution rather
// than rejecting repeats the way SparseVectorCollector does: with index type
// struct{}, every position compares equal, so "no duplicate indices" would
// forbid anything but a single-element stream. Summing repeats is exactly
// what contraction means.
func ScalarCollector[V Numeric]() Collector[struct{}, V, V, V] {
	return Collector[struct{}, V, V, V]{
		Supplier:    func() V { var zero V; return zero },
		Accumulator: func(acc V, _ struct{}, v V) V { return acc + v },
		Finisher:    func(acc V) V { return acc },
	}
}

// PairsCollector collects a stream into a slice of (index, value) pairs with
// no aggregation — useful as a debugging sink or when the caller wants raw
// join output rather than a specific container shape.
func PairsCollector[I any, V any]() Collector[I, V, []Pair[I, V], []Pair[I, V]] {
	return Collector[I, V, []Pair[I, V], []Pair[I, V]]{
		Supplier: func() []Pair[I, V] { return nil },
		Accumulator: func(acc []Pair[I, V], i I, v V) []Pair[I, V] {
			return append(acc, NewPair(i, v))
		},
		Finisher: func(acc []Pair[I, V]) []Pair[I, V] { return acc },
	}
}
