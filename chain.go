package streams

import "cmp"

// fixedChainStream concatenates two streams whose index ranges are already
// disjoint and ordered: first is fully exhausted before second is consulted
// at all. Use this when the two ranges are known in advance (e.g. two
// non-overlapping key bands); use AndThenChain when the second stream can
// only be constructed after the first has finished.
type fixedChainStream[I cmp.Ordered, V any] struct {
	first  Stream[I, V]
	second Stream[I, V]
}

// Chain concatenates first and second into a single stream, in that order.
// Debug builds assert that the handover preserves monotone order: second's
// first index, once it becomes valid, must be no smaller than first's last
// index.
func Chain[I cmp.Ordered, V any](first, second Stream[I, V]) Stream[I, V] {
	return &fixedChainStream[I, V]{first: first, second: second}
}

func (c *fixedChainStream[I, V]) Valid() bool {
	return c.first.Valid() || c.second.Valid()
}

func (c *fixedChainStream[I, V]) Ready() bool {
	if c.first.Valid() {
		return c.first.Ready()
	}
	return c.second.Ready()
}

func (c *fixedChainStream[I, V]) Index() I {
	if c.first.Valid() {
		return c.first.Index()
	}
	return c.second.Index()
}

func (c *fixedChainStream[I, V]) Value() V {
	if c.first.Valid() {
		return c.first.Value()
	}
	return c.second.Value()
}

func (c *fixedChainStream[I, V]) Next() { DefaultNext[I, V](c) }

func (c *fixedChainStream[I, V]) Seek(target I, strict bool) {
	if c.first.Valid() {
		oldIndex := c.first.Index()
		c.first.Seek(target, strict)
		if !c.first.Valid() {
			assertInvariant(!c.second.Valid() || oldIndex <= c.second.Index(),
				"chain handover must preserve monotone order")
			// first's exhaustion may have left second short of target (it
			// only just became reachable), so the seek must continue into
			// second rather than stopping at its first position.
			c.second.Seek(target, strict)
		}
		return
	}
	c.second.Seek(target, strict)
}

func (c *fixedChainStream[I, V]) Clone() Stream[I, V] {
	return &fixedChainStream[I, V]{first: CloneStream(c.first), second: CloneStream(c.second)}
}

// andThenChainStream is the other flavor of chain: the second stream doesn't
// exist until the first is exhausted, because it's built from whatever state
// the first stream accumulated (f consumes the spent first stream to produce
// it). It's a two-state machine — "in first" / "in second" — with the
// transition happening lazily, the first time Seek or Next discovers the
// first stream has gone invalid.
type andThenChainStream[I cmp.Ordered, V any] struct {
	inSecond bool
	stream   Stream[I, V]
	f        func(Stream[I, V]) Stream[I, V]
}

// AndThenChain chains first into a second stream produced by f once first is
// exhausted. f receives the spent first stream so it can extract any state
// it needs (e.g. a shared buffer, or simply to ignore it and build the
// second stream from closed-over data).
func AndThenChain[I cmp.Ordered, V any](first Stream[I, V], f func(Stream[I, V]) Stream[I, V]) Stream[I, V] {
	if first.Valid() {
		return &andThenChainStream[I, V]{stream: first, f: f}
	}
	return &andThenChainStream[I, V]{stream: f(first), f: f, inSecond: true}
}

func (s *andThenChainStream[I, V]) Valid() bool {
	if !s.inSecond {
		return true
	}
	return s.stream.Valid()
}

func (s *andThenChainStream[I, V]) Ready() bool { return s.stream.Ready() }
func (s *andThenChainStream[I, V]) Index() I    { return s.stream.Index() }
func (s *andThenChainStream[I, V]) Value() V    { return s.stream.Value() }

func (s *andThenChainStream[I, V]) transition(oldIndex I) {
	if s.inSecond || s.stream.Valid() {
		return
	}
	second := s.f(s.stream)
	assertInvariant(!second.Valid() || oldIndex <= second.Index(),
		"and-then chain handover must preserve monotone order")
	s.stream = second
	s.inSecond = true
}

func (s *andThenChainStream[I, V]) Next() {
	oldIndex := s.stream.Index()
	s.stream.Next()
	s.transition(oldIndex)
}

func (s *andThenChainStream[I, V]) Seek(target I, strict bool) {
	oldIndex := s.stream.Index()
	s.stream.Seek(target, strict)
	s.transition(oldIndex)
}

func (s *andThenChainStream[I, V]) Clone() Stream[I, V] {
	return &andThenChainStream[I, V]{inSecond: s.inSecond, stream: CloneStream(s.stream), f: s.f}
}
