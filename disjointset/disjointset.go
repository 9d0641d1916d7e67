// SPDX-License-Identifier: MIT

package disjointset

import (
	"errors"
	"fmt"
)

// ErrUnknownElement indicates that an element was never added to the Set.
var ErrUnknownElement = errors.New("disjointset: unknown element")

// Option configures a Set.
type Option func(*options)

type options struct {
	noCompression bool
	noRank        bool
}

// WithoutPathCompression makes Find a plain walk to the root.
func WithoutPathCompression() Option {
	return func(o *options) { o.noCompression = true }
}

// WithoutUnionByRank makes Union always hang the first root under the second.
func WithoutUnionByRank() Option {
	return func(o *options) { o.noRank = true }
}

// Set is a disjoint-set forest over comparable elements.
type Set[T comparable] struct {
	parent map[T]T
	rank   map[T]int
	sets   int
	opts   options
}

// New returns a Set holding each of elems as a singleton.
func New[T comparable](elems ...T) *Set[T] {
	return NewWithOptions[T](nil, elems...)
}

// NewWithOptions is New with heuristics configured by opts.
func NewWithOptions[T comparable](opts []Option, elems ...T) *Set[T] {
	s := &Set[T]{
		parent: make(map[T]T, len(elems)),
		rank:   make(map[T]int, len(elems)),
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	for _, e := range elems {
		s.Add(e)
	}

	return s
}

// Add inserts x as a singleton. It returns false if x was already present.
func (s *Set[T]) Add(x T) bool {
	if _, ok := s.parent[x]; ok {
		return false
	}
	s.parent[x] = x
	s.rank[x] = 0
	s.sets++

	return true
}

// Contains reports whether x was added.
func (s *Set[T]) Contains(x T) bool {
	_, ok := s.parent[x]

	return ok
}

// Len returns the number of elements.
func (s *Set[T]) Len() int { return len(s.parent) }

// Count returns the number of disjoint sets.
func (s *Set[T]) Count() int { return s.sets }

// Find returns the root of x's set.
func (s *Set[T]) Find(x T) (T, error) {
	if _, ok := s.parent[x]; !ok {
		var zero T
		return zero, fmt.Errorf("%w: %v", ErrUnknownElement, x)
	}

	return s.find(x), nil
}

func (s *Set[T]) find(x T) T {
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	if s.opts.noCompression {
		return root
	}
	// Second pass: point every node on the path straight at the root.
	for x != root {
		next := s.parent[x]
		s.parent[x] = root
		x = next
	}

	return root
}

// Union merges the sets of x and y. It reports false when they were
// already in the same set.
func (s *Set[T]) Union(x, y T) (bool, error) {
	rx, err := s.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := s.Find(y)
	if err != nil {
		return false, err
	}
	if rx == ry {
		return false, nil
	}

	switch {
	case s.opts.noRank:
		s.parent[rx] = ry
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}
	s.sets--

	return true, nil
}

// Connected reports whether x and y share a set.
func (s *Set[T]) Connected(x, y T) (bool, error) {
	rx, err := s.Find(x)
	if err != nil {
		return false, err
	}
	ry, err := s.Find(y)
	if err != nil {
		return false, err
	}

	return rx == ry, nil
}

// Groups returns the members of each set keyed by root.
func (s *Set[T]) Groups() map[T][]T {
	out := make(map[T][]T, s.sets)
	for x := range s.parent {
		r := s.find(x)
		out[r] = append(out[r], x)
	}

	return out
}
