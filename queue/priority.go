// SPDX-License-Identifier: MIT

package queue

import "container/heap"

type pqItem[T any] struct {
	prio int
	seq  uint64
	val  T
}

// pqHeap implements heap.Interface ordered by (prio, seq).
type pqHeap[T any] []pqItem[T]

func (h pqHeap[T]) Len() int { return len(h) }
func (h pqHeap[T]) Less(i, j int) bool {
	if h[i].prio != h[j].prio {
		return h[i].prio < h[j].prio
	}
	return h[i].seq < h[j].seq
}
func (h pqHeap[T]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pqHeap[T]) Push(x any)   { *h = append(*h, x.(pqItem[T])) }
func (h *pqHeap[T]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = pqItem[T]{}
	*h = old[:n-1]
	return it
}

// Priority is a min-priority queue with FIFO order among equal priorities.
// The zero value is empty and ready to use.
type Priority[T any] struct {
	h   pqHeap[T]
	seq uint64
}

// Push adds v with the given priority (lower is served first).
// Complexity: O(log n).
func (q *Priority[T]) Push(prio int, v T) {
	heap.Push(&q.h, pqItem[T]{prio: prio, seq: q.seq, val: v})
	q.seq++
}

// Pop removes the most urgent element.
func (q *Priority[T]) Pop() (prio int, v T, ok bool) {
	if len(q.h) == 0 {
		return 0, v, false
	}
	it := heap.Pop(&q.h).(pqItem[T])

	return it.prio, it.val, true
}

// Peek returns the most urgent element without removing it.
func (q *Priority[T]) Peek() (prio int, v T, ok bool) {
	if len(q.h) == 0 {
		return 0, v, false
	}

	return q.h[0].prio, q.h[0].val, true
}

// Len returns the number of queued elements.
func (q *Priority[T]) Len() int { return len(q.h) }
