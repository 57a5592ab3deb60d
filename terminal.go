package streams

// TryFold drives s to completion, calling f at every ready position with the
// accumulator and the (index, value) pair. f returns the next accumulator and
// whether to continue; returning false short-circuits the loop immediately
// (a "Break"), leaving s wherever it had already advanced to.
//
// This is the base derived operation every other terminal in this file is
// expressed in terms of. The order of operations — read, then advance, then
// invoke f — matters: f is free to retain i and v without the stream mutating
// them underneath it, and a panic inside f never leaves the stream mid-step.
func TryFold[I any, V any, A any](s Stream[I, V], init A, f func(A, I, V) (A, bool)) A {
	acc := init
	for s.Valid() {
		i := s.Index()
		ready := s.Ready()
		var v V
		if ready {
			v = s.Value()
		}
		s.Next()
		if ready {
			var cont bool
			acc, cont = f(acc, i, v)
			if !cont {
				return acc
			}
		}
	}
	return acc
}

// ForEach drives s to completion, invoking f at every (index, value) pair.
func ForEach[I any, V any](s Stream[I, V], f func(I, V)) {
	TryFold(s, struct{}{}, func(acc struct{}, i I, v V) (struct{}, bool) {
		f(i, v)
		return acc, true
	})
}

// Fold drives s to completion, threading an accumulator through f.
func Fold[I any, V any, A any](s Stream[I, V], init A, f func(A, I, V) A) A {
	return TryFold(s, init, func(acc A, i I, v V) (A, bool) {
		return f(acc, i, v), true
	})
}

// Contract sums every value in s, using the numeric type's zero value as the
// additive identity. This is the "contraction" step of sparse linear algebra:
// a dot product is Contract(ZipWith(a, b, mul)), and a matrix-vector product
// row is Contract(ZipWith(row, vec, mul)).
func Contract[I any, V Numeric](s Stream[I, V]) V {
	var zero V
	return Fold(s, zero, func(acc V, _ I, v V) V {
		return acc + v
	})
}

// CollectIndices drains s and returns every index it visited, in order.
// Useful for turning a Zip/Union pipeline into a plain sorted-set result, or
// for asserting a pipeline's output pattern in tests.
func CollectIndices[I any, V any](s Stream[I, V]) []I {
	var out []I
	ForEach(s, func(i I, _ V) {
		out = append(out, i)
	})
	return out
}

// AnyNonzero reports whether s emits at least one ready value, stopping as
// soon as it finds one. Named for its most common use — checking whether a
// sparse row/column/contraction has any nonzero entries — but it works for
// any stream.
func AnyNonzero[I any, V any](s Stream[I, V]) bool {
	found := false
	TryFold(s, struct{}{}, func(acc struct{}, _ I, _ V) (struct{}, bool) {
		found = true
		return acc, false
	})
	return found
}
