// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

var (
	// ErrUnknownAlgorithm is returned by ByName for an unrecognized name.
	ErrUnknownAlgorithm = errors.New("sorting: unknown algorithm")

	// ErrIntegerKeyRequired is returned by SortOrdered for Radix or Counting.
	ErrIntegerKeyRequired = errors.New("sorting: algorithm requires integer keys")
)

// Algorithm names a sort for run-time selection.
type Algorithm string

const (
	AlgBubble    Algorithm = "bubble"
	AlgInsertion Algorithm = "insertion"
	AlgMerge     Algorithm = "merge"
	AlgQuick     Algorithm = "quick"
	AlgHeap      Algorithm = "heap"
	AlgRadix     Algorithm = "radix"
	AlgCounting  Algorithm = "counting"
)

// Algorithms lists every supported Algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{AlgBubble, AlgInsertion, AlgMerge, AlgQuick, AlgHeap, AlgRadix, AlgCounting}
}

// ByName resolves a case-insensitive algorithm name.
func ByName(name string) (Algorithm, error) {
	want := Algorithm(strings.ToLower(strings.TrimSpace(name)))
	for _, a := range Algorithms() {
		if a == want {
			return a, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Stable reports whether a preserves the order of equal keys.
func (a Algorithm) Stable() bool {
	return a != AlgQuick && a != AlgHeap
}

// Sort runs a on s with an integer key. Every algorithm is available.
func Sort[E any, K constraints.Integer](a Algorithm, s []E, key func(E) K) error {
	switch a {
	case AlgRadix:
		return Radix(s, key)
	case AlgCounting:
		return Counting(s, key)
	default:
		return SortOrdered(a, s, key)
	}
}

// SortOrdered runs a comparison sort on s with any ordered key.
func SortOrdered[E any, K cmp.Ordered](a Algorithm, s []E, key func(E) K) error {
	switch a {
	case AlgBubble:
		Bubble(s, key)
	case AlgInsertion:
		Insertion(s, key)
	case AlgMerge:
		Merge(s, key)
	case AlgQuick:
		Quick(s, key)
	case AlgHeap:
		Heap(s, key)
	case AlgRadix, AlgCounting:
		return fmt.Errorf("%w: %s", ErrIntegerKeyRequired, a)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
	}

	return nil
}
