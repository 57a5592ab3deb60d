package streams

// Stream is the universal contract shared by every sorted, indexed source and
// every combinator built on top of one. It is the single capability set the
// whole package is built from: valid, ready, index, value, seek.
//
//   - Valid reports whether the stream has any more output at all.
//   - Ready reports whether Value can be called right now, at Index. A
//     stream may be Valid but not Ready (e.g. a ZipWith whose two sides sit
//     at different indices, or a Union whose side(s) at the frontier are not
//     ready).
//   - Index returns the current position. It is defined whenever Valid is
//     true, regardless of Ready.
//   - Value returns the value at Index. Calling it when Ready is false is a
//     contract violation.
//   - Seek(target, strict) advances the cursor to the first position p such
//     that (p, ready-at-p) >= (target, strict) in lexicographic order, with
//     false < true. A target behind the current position leaves the cursor
//     where it is. Calling Index, Ready, Value or Seek on an invalid stream
//     is a contract violation with undefined behavior; the sources do not
//     check for it, in Debug builds or otherwise.
//   - Next advances by exactly one logical step; it defaults to
//     Seek(Index(), Ready()), which is the convenience DefaultNext provides.
//
// Implementations must guarantee progress: after Seek or Next, the stream is
// either invalid or has moved to an index/readiness no earlier than before.
type Stream[I any, V any] interface {
	Valid() bool
	Ready() bool
	Index() I
	Value() V
	Seek(target I, strict bool)
	Next()
}

// Cloneable is implemented by streams whose cursor can be duplicated cheaply:
// an independent copy that starts wherever the original currently stands.
// Cloning is needed whenever a stream must be driven to completion more than
// once from the same starting point, most commonly the right-hand side of a
// fused outer join (see TriangleJoin1/TriangleJoin2).
//
// Cloning duplicates only the small cursor offset, never the underlying
// backing data (slice, CSR matrix, tree) — that data is always shared and
// immutable for the lifetime of the pipeline.
type Cloneable[I any, V any] interface {
	Stream[I, V]
	Clone() Stream[I, V]
}

// CloneStream asserts that s is cloneable and returns an independent copy of
// its cursor. It panics if s was not built from a source that supports
// cloning — the same "contract violation, fatal" treatment every other
// protocol precondition gets, see the error handling notes in SPEC_FULL.md.
func CloneStream[I any, V any](s Stream[I, V]) Stream[I, V] {
	c, ok := s.(Cloneable[I, V])
	if !ok {
		panic("streams: stream does not support Clone")
	}
	return c.Clone()
}

// DefaultNext implements the standard Next behavior: Seek(Index(), Ready()).
// When ready, this is a strict seek past the current index (guaranteeing
// progress); when not ready, it's a non-strict seek that gives the source a
// chance to catch up to its own current index. Nearly every source and
// combinator in this package defines Next in terms of DefaultNext; the
// exceptions are Map, whose Next forwards to its child's Next, and
// AndThenChain, whose Next also runs the first-to-second handover.
func DefaultNext[I any, V any](s Stream[I, V]) {
	s.Seek(s.Index(), s.Ready())
}
