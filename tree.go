package streams

import (
	"cmp"

	"github.com/tidwall/btree"
)

// OrderedTree is a balanced key-value tree supporting both a seekable,
// sorted cursor (Stream) and O(log n) random lookup (Get/Contains). The
// dual interface matters: fused multiway joins want the cursor, ad hoc
// membership checks want the lookup. (The manual intersection baseline in
// manual.go does its lookups on a skipset.OrderedSet, not on this type.)
//
// It is backed by tidwall/btree.BTreeG, whose Ascend(pivot, iter) gives a
// genuine seek-from-key cursor — unlike a plain sorted map that only exposes
// full ascending iteration, this lets Seek skip directly to a target key in
// O(log n) instead of re-scanning from the start.
type OrderedTree[K cmp.Ordered, V any] struct {
	tree *btree.BTreeG[treeEntry[K, V]]
}

type treeEntry[K cmp.Ordered, V any] struct {
	Key   K
	Value V
}

// NewOrderedTree creates an empty ordered tree.
func NewOrderedTree[K cmp.Ordered, V any]() *OrderedTree[K, V] {
	less := func(a, b treeEntry[K, V]) bool { return a.Key < b.Key }
	return &OrderedTree[K, V]{tree: btree.NewBTreeG(less)}
}

// Put inserts or overwrites the value at key.
func (t *OrderedTree[K, V]) Put(key K, value V) {
	t.tree.Set(treeEntry[K, V]{Key: key, Value: value})
}

// Get performs a random lookup, returning the value and whether key was present.
func (t *OrderedTree[K, V]) Get(key K) (V, bool) {
	e, ok := t.tree.Get(treeEntry[K, V]{Key: key})
	return e.Value, ok
}

// Contains performs a random membership check.
func (t *OrderedTree[K, V]) Contains(key K) bool {
	_, ok := t.tree.Get(treeEntry[K, V]{Key: key})
	return ok
}

// Len returns the number of entries.
func (t *OrderedTree[K, V]) Len() int { return t.tree.Len() }

// Stream returns a cursor positioned at the smallest key, seekable to the
// smallest key >= (or >, if strict) a target in O(log n).
func (t *OrderedTree[K, V]) Stream() Stream[K, V] {
	c := &treeCursor[K, V]{tree: t.tree}
	if e, ok := t.tree.Min(); ok {
		c.current = e
		c.valid = true
	}
	return c
}

type treeCursor[K cmp.Ordered, V any] struct {
	tree    *btree.BTreeG[treeEntry[K, V]]
	current treeEntry[K, V]
	valid   bool
}

func (c *treeCursor[K, V]) Valid() bool { return c.valid }
func (c *treeCursor[K, V]) Ready() bool { return true }
func (c *treeCursor[K, V]) Index() K    { return c.current.Key }
func (c *treeCursor[K, V]) Value() V    { return c.current.Value }
func (c *treeCursor[K, V]) Next()       { DefaultNext[K, V](c) }

func (c *treeCursor[K, V]) Clone() Stream[K, V] {
	return &treeCursor[K, V]{tree: c.tree, current: c.current, valid: c.valid}
}

// Seek descends to the smallest key >= target (non-strict) or > target
// (strict) in O(log n): Ascend starts its scan at the first entry >= the
// pivot, so the only work beyond the tree descent is skipping a single
// exact match when strict is set.
//
// A request weaker than the cursor's current position must never move it
// backward: target < current.Key is a no-op, and target == current.Key is a
// no-op unless strict asks to advance past the exact match. Only a target
// strictly ahead of the current key descends from that target.
func (c *treeCursor[K, V]) Seek(target K, strict bool) {
	if !c.valid || target < c.current.Key {
		return
	}
	if target == c.current.Key && !strict {
		return
	}

	pivot := treeEntry[K, V]{Key: target}
	found := false
	c.tree.Ascend(pivot, func(e treeEntry[K, V]) bool {
		if strict && e.Key == target {
			return true
		}
		c.current = e
		found = true
		return false
	})
	c.valid = found
}
