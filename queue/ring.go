// SPDX-License-Identifier: MIT

package queue

import (
	"errors"
	"fmt"
	"iter"
)

var (
	// ErrFull is returned by Enqueue when the ring holds Cap() elements.
	ErrFull = errors.New("queue: full")

	// ErrEmpty is returned by Dequeue and Rotate on an empty ring.
	ErrEmpty = errors.New("queue: empty")

	// ErrBadCapacity is returned by NewRing for a capacity ≤ 0.
	ErrBadCapacity = errors.New("queue: capacity must be positive")
)

// Ring is a bounded circular FIFO queue.
type Ring[T any] struct {
	buf   []T
	front int
	n     int
}

// NewRing allocates a ring holding at most capacity elements.
func NewRing[T any](capacity int) (*Ring[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, capacity)
	}

	return &Ring[T]{buf: make([]T, capacity)}, nil
}

// Len returns the number of queued elements.
func (r *Ring[T]) Len() int { return r.n }

// Cap returns the fixed capacity.
func (r *Ring[T]) Cap() int { return len(r.buf) }

// Enqueue appends v at the rear.
func (r *Ring[T]) Enqueue(v T) error {
	if r.n == len(r.buf) {
		return fmt.Errorf("%w: capacity %d", ErrFull, len(r.buf))
	}
	r.buf[(r.front+r.n)%len(r.buf)] = v
	r.n++

	return nil
}

// Dequeue removes and returns the front element.
func (r *Ring[T]) Dequeue() (T, error) {
	var zero T
	if r.n == 0 {
		return zero, ErrEmpty
	}
	v := r.buf[r.front]
	r.buf[r.front] = zero
	r.front = (r.front + 1) % len(r.buf)
	r.n--

	return v, nil
}

// Peek returns the front element without removing it.
func (r *Ring[T]) Peek() (T, bool) {
	if r.n == 0 {
		var zero T
		return zero, false
	}

	return r.buf[r.front], true
}

// Rotate moves the front element to the rear and returns it.
func (r *Ring[T]) Rotate() (T, error) {
	v, err := r.Dequeue()
	if err != nil {
		return v, err
	}
	// A slot was just freed, so this cannot fail.
	_ = r.Enqueue(v)

	return v, nil
}

// All yields the elements front to rear.
func (r *Ring[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < r.n; i++ {
			if !yield(r.buf[(r.front+i)%len(r.buf)]) {
				return
			}
		}
	}
}
