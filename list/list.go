// SPDX-License-Identifier: MIT

// Package list implements a generic singly linked list with head and tail
// pointers. It backs record registries (patients, tickets, stock) and the
// per-bucket chains of package hashtable.
//
// A List is not safe for concurrent mutation.
package list

import "iter"

type node[T any] struct {
	val  T
	next *node[T]
}

// List is a singly linked list. The zero value is an empty list ready to use.
type List[T any] struct {
	head, tail *node[T]
	n          int
}

// New returns an empty list holding vals in order.
func New[T any](vals ...T) *List[T] {
	l := &List[T]{}
	for _, v := range vals {
		l.PushBack(v)
	}

	return l
}

// Len returns the number of elements. Complexity: O(1).
func (l *List[T]) Len() int { return l.n }

// PushBack appends v. Complexity: O(1).
func (l *List[T]) PushBack(v T) {
	nd := &node[T]{val: v}
	if l.tail == nil {
		l.head = nd
	} else {
		l.tail.next = nd
	}
	l.tail = nd
	l.n++
}

// PushFront prepends v. Complexity: O(1).
func (l *List[T]) PushFront(v T) {
	nd := &node[T]{val: v, next: l.head}
	l.head = nd
	if l.tail == nil {
		l.tail = nd
	}
	l.n++
}

// Front returns the first element.
func (l *List[T]) Front() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}

	return l.head.val, true
}

// PopFront removes and returns the first element.
func (l *List[T]) PopFront() (T, bool) {
	if l.head == nil {
		var zero T
		return zero, false
	}
	nd := l.head
	l.head = nd.next
	if l.head == nil {
		l.tail = nil
	}
	l.n--

	return nd.val, true
}

// Find returns the first element satisfying pred.
func (l *List[T]) Find(pred func(T) bool) (T, bool) {
	for nd := l.head; nd != nil; nd = nd.next {
		if pred(nd.val) {
			return nd.val, true
		}
	}
	var zero T

	return zero, false
}

// Remove unlinks the first element satisfying pred and reports whether one
// was found.
func (l *List[T]) Remove(pred func(T) bool) bool {
	var prev *node[T]
	for nd := l.head; nd != nil; prev, nd = nd, nd.next {
		if !pred(nd.val) {
			continue
		}
		if prev == nil {
			l.head = nd.next
		} else {
			prev.next = nd.next
		}
		if l.tail == nd {
			l.tail = prev
		}
		l.n--

		return true
	}

	return false
}

// All yields the elements front to back. The list must not be mutated
// during iteration.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for nd := l.head; nd != nil; nd = nd.next {
			if !yield(nd.val) {
				return
			}
		}
	}
}

// Values returns the elements as a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.n)
	for v := range l.All() {
		out = append(out, v)
	}

	return out
}
