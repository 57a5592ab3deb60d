package streams

import (
	"cmp"

	"github.com/zhangyunhao116/skipset"
)

// ManualIntersectOrdered mirrors the "manual" baseline from the original
// streaming intersection example: walk one ordered set and probe membership
// in the other via a random lookup, with no cursor fusion at all. It exists
// as a correctness oracle to compare the streaming Zip combinator against,
// not as a recommended way to intersect two sets. Returns the keys present
// in both, in ascending order.
func ManualIntersectOrdered[K cmp.Ordered](a, b *skipset.OrderedSet[K]) []K {
	var out []K
	a.Range(func(k K) bool {
		if b.Contains(k) {
			out = append(out, k)
		}
		return true
	})
	return out
}

// NewOrderedSetFromSorted builds a skipset.OrderedSet from a sorted slice,
// for use as the manual-baseline counterpart to GallopSet/LinearSet in tests
// comparing streaming vs. random-lookup intersection.
func NewOrderedSetFromSorted[K cmp.Ordered](sorted []K) *skipset.OrderedSet[K] {
	s := skipset.NewOrdered[K]()
	for _, k := range sorted {
		s.Add(k)
	}
	return s
}
