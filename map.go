package streams

// mappedStream applies f pointwise to a stream's value while leaving its
// index, validity, and readiness untouched.
type mappedStream[I any, V any, O any] struct {
	stream Stream[I, V]
	f      func(I, V) O
}

// Map is a free function rather than a method because Go methods cannot
// introduce a new type parameter (O here) beyond those already bound to the
// receiver — the same limitation the teacher's own Chunk/MapTo/FlatMap
// document for the unindexed Stream[T] type.
func Map[I any, V any, O any](s Stream[I, V], f func(I, V) O) Stream[I, O] {
	return &mappedStream[I, V, O]{stream: s, f: f}
}

func (m *mappedStream[I, V, O]) Valid() bool { return m.stream.Valid() }
func (m *mappedStream[I, V, O]) Ready() bool { return m.stream.Ready() }
func (m *mappedStream[I, V, O]) Index() I    { return m.stream.Index() }
func (m *mappedStream[I, V, O]) Value() O    { return m.f(m.stream.Index(), m.stream.Value()) }
func (m *mappedStream[I, V, O]) Next()       { m.stream.Next() }
func (m *mappedStream[I, V, O]) Seek(target I, strict bool) {
	m.stream.Seek(target, strict)
}

// Clone is only valid when the wrapped stream itself supports cloning; it
// panics otherwise, per the same contract-violation treatment CloneStream
// uses. This lets a Map over a cloneable source (e.g. CreateAllPairsTable)
// be cloned as a whole without a separate "cloneable map" constructor.
func (m *mappedStream[I, V, O]) Clone() Stream[I, O] {
	return &mappedStream[I, V, O]{stream: CloneStream(m.stream), f: m.f}
}
