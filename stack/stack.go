// SPDX-License-Identifier: MIT

// Package stack provides a generic LIFO stack on a growable slice.
// Pop and Peek report emptiness with ok == false.
package stack

// Stack is a LIFO stack. The zero value is empty and ready to use.
type Stack[T any] struct {
	items []T
}

// Push places v on top.
func (s *Stack[T]) Push(v T) { s.items = append(s.items, v) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	if len(s.items) == 0 {
		return zero, false
	}
	top := s.items[len(s.items)-1]
	s.items[len(s.items)-1] = zero // drop the reference
	s.items = s.items[:len(s.items)-1]

	return top, true
}

// Peek returns the top element without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return len(s.items) }
