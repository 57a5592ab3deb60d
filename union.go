package streams

import "cmp"

// EitherOrBoth tags which side(s) of a Union contributed a value at the
// current index.
type EitherOrBoth[L any, R any] struct {
	left  Optional[L]
	right Optional[R]
}

// LeftOnly builds an EitherOrBoth carrying only a left value.
func LeftOnly[L any, R any](l L) EitherOrBoth[L, R] {
	return EitherOrBoth[L, R]{left: Some(l)}
}

// RightOnly builds an EitherOrBoth carrying only a right value.
func RightOnly[L any, R any](r R) EitherOrBoth[L, R] {
	return EitherOrBoth[L, R]{right: Some(r)}
}

// Both builds an EitherOrBoth carrying both a left and a right value.
func Both[L any, R any](l L, r R) EitherOrBoth[L, R] {
	return EitherOrBoth[L, R]{left: Some(l), right: Some(r)}
}

// HasLeft reports whether a left value is present.
func (e EitherOrBoth[L, R]) HasLeft() bool { return e.left.IsPresent() }

// HasRight reports whether a right value is present.
func (e EitherOrBoth[L, R]) HasRight() bool { return e.right.IsPresent() }

// Left returns the left value, if present.
func (e EitherOrBoth[L, R]) Left() Optional[L] { return e.left }

// Right returns the right value, if present.
func (e EitherOrBoth[L, R]) Right() Optional[R] { return e.right }

// unionStream merges two streams on index (set union, generalized to a tagged
// join): valid while either side is valid, indexed at the minimum of the two
// valid sides, and ready wherever the side(s) at that minimum are ready.
type unionStream[I cmp.Ordered, L any, R any, O any] struct {
	left  Stream[I, L]
	right Stream[I, R]
	f     func(EitherOrBoth[L, R]) O
}

// Union merges two streams by index: the result carries every index present
// in either side, tagged via EitherOrBoth so f can tell which side(s)
// contributed. When both sides are valid at the same frontier index but only
// one is ready, Union emits on the ready side immediately rather than
// stalling until the other catches up — the "non-stalling" resolution of the
// ready-at-the-frontier ambiguity (see DESIGN.md's Open Questions section).
func Union[I cmp.Ordered, L any, R any, O any](left Stream[I, L], right Stream[I, R], f func(EitherOrBoth[L, R]) O) Stream[I, O] {
	return &unionStream[I, L, R, O]{left: left, right: right, f: f}
}

func (u *unionStream[I, L, R, O]) Valid() bool {
	return u.left.Valid() || u.right.Valid()
}

func (u *unionStream[I, L, R, O]) Index() I {
	switch {
	case u.left.Valid() && u.right.Valid():
		return min(u.left.Index(), u.right.Index())
	case u.left.Valid():
		return u.left.Index()
	default:
		return u.right.Index()
	}
}

func (u *unionStream[I, L, R, O]) leftAtFrontier(frontier I) bool {
	return u.left.Valid() && u.left.Index() == frontier && u.left.Ready()
}

func (u *unionStream[I, L, R, O]) rightAtFrontier(frontier I) bool {
	return u.right.Valid() && u.right.Index() == frontier && u.right.Ready()
}

func (u *unionStream[I, L, R, O]) Ready() bool {
	frontier := u.Index()
	return u.leftAtFrontier(frontier) || u.rightAtFrontier(frontier)
}

func (u *unionStream[I, L, R, O]) Value() O {
	frontier := u.Index()
	switch left, right := u.leftAtFrontier(frontier), u.rightAtFrontier(frontier); {
	case left && right:
		return u.f(Both[L, R](u.left.Value(), u.right.Value()))
	case left:
		return u.f(LeftOnly[L, R](u.left.Value()))
	case right:
		return u.f(RightOnly[L, R](u.right.Value()))
	default:
		panic("streams: Union.Value called while not ready")
	}
}

func (u *unionStream[I, L, R, O]) Next() { DefaultNext[I, O](u) }

func (u *unionStream[I, L, R, O]) Seek(target I, strict bool) {
	if u.left.Valid() {
		u.left.Seek(target, strict)
	}
	if u.right.Valid() {
		u.right.Seek(target, strict)
	}
}

func (u *unionStream[I, L, R, O]) Clone() Stream[I, O] {
	return &unionStream[I, L, R, O]{left: CloneStream(u.left), right: CloneStream(u.right), f: u.f}
}
