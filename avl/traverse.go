// SPDX-License-Identifier: MIT

package avl

import "iter"

// Traverse returns a lazy sequence of entries in the given order.
// An unknown order yields nothing.
func (m *Map[K, V]) Traverse(order Order) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		switch order {
		case InOrder:
			inOrder(m.root, yield)
		case PreOrder:
			preOrder(m.root, yield)
		case PostOrder:
			postOrder(m.root, yield)
		}
	}
}

// All is Traverse(InOrder): entries in ascending key order.
func (m *Map[K, V]) All() iter.Seq2[K, V] { return m.Traverse(InOrder) }

// Keys yields keys in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Range yields entries with lo <= key < hi in ascending order, skipping
// subtrees that cannot intersect the interval.
func (m *Map[K, V]) Range(lo, hi K) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.rangeWalk(m.root, lo, hi, yield)
	}
}

func (m *Map[K, V]) rangeWalk(n *node[K, V], lo, hi K, yield func(K, V) bool) bool {
	if n == nil {
		return true
	}
	geLo := m.cmp(n.key, lo) >= 0
	ltHi := m.cmp(n.key, hi) < 0
	if geLo && !m.rangeWalk(n.left, lo, hi, yield) {
		return false
	}
	if geLo && ltHi && !yield(n.key, n.value) {
		return false
	}
	if ltHi {
		return m.rangeWalk(n.right, lo, hi, yield)
	}

	return true
}

// The walkers return false once the consumer has stopped.

func inOrder[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return inOrder(n.left, yield) && yield(n.key, n.value) && inOrder(n.right, yield)
}

func preOrder[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return yield(n.key, n.value) && preOrder(n.left, yield) && preOrder(n.right, yield)
}

func postOrder[K, V any](n *node[K, V], yield func(K, V) bool) bool {
	if n == nil {
		return true
	}

	return postOrder(n.left, yield) && postOrder(n.right, yield) && yield(n.key, n.value)
}
