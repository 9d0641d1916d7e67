// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	// ErrNegativeKey is returned by Radix and Counting for a negative key.
	ErrNegativeKey = errors.New("sorting: negative key")

	// ErrKeyRangeTooLarge is returned by Counting when the largest key would
	// need a count array far bigger than the input.
	ErrKeyRangeTooLarge = errors.New("sorting: key range too large for counting sort")
)

// Counting sizes its count array by the largest key. The span may reach
// countingSpanPerElement slots per element, at least countingMinSpan and never
// more than countingMaxSpan.
const (
	countingMinSpan        = 1 << 16
	countingSpanPerElement = 64
	countingMaxSpan        = 1 << 26
)

// Bubble sorts s by key with adjacent swaps, stopping after a clean pass.
func Bubble[E any, K cmp.Ordered](s []E, key func(E) K) {
	for end := len(s) - 1; end > 0; end-- {
		swapped := false
		for i := 0; i < end; i++ {
			if key(s[i+1]) < key(s[i]) {
				s[i], s[i+1] = s[i+1], s[i]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts s by key, shifting larger elements right.
func Insertion[E any, K cmp.Ordered](s []E, key func(E) K) {
	for i := 1; i < len(s); i++ {
		cur := s[i]
		k := key(cur)
		j := i - 1
		for ; j >= 0 && key(s[j]) > k; j-- {
			s[j+1] = s[j]
		}
		s[j+1] = cur
	}
}

// Merge sorts s by key with top-down merge sort.
func Merge[E any, K cmp.Ordered](s []E, key func(E) K) {
	if len(s) < 2 {
		return
	}
	buf := make([]E, len(s))
	mergeSort(s, buf, key)
}

func mergeSort[E any, K cmp.Ordered](s, buf []E, key func(E) K) {
	if len(s) < 2 {
		return
	}
	mid := len(s) / 2
	mergeSort(s[:mid], buf[:mid], key)
	mergeSort(s[mid:], buf[mid:], key)

	i, j, k := 0, mid, 0
	for i < mid && j < len(s) {
		// Take from the left on ties to stay stable.
		if key(s[j]) < key(s[i]) {
			buf[k] = s[j]
			j++
		} else {
			buf[k] = s[i]
			i++
		}
		k++
	}
	k += copy(buf[k:], s[i:mid])
	copy(buf[k:], s[j:])
	copy(s, buf[:len(s)])
}

// Quick sorts s by key with Lomuto partitioning around the last element.
func Quick[E any, K cmp.Ordered](s []E, key func(E) K) {
	lo, hi := 0, len(s)-1
	for lo < hi {
		p := partition(s, lo, hi, key)
		// Recurse into the smaller side, loop on the larger.
		if p-lo < hi-p {
			Quick(s[lo:p], key)
			lo = p + 1
		} else {
			Quick(s[p+1:hi+1], key)
			hi = p - 1
		}
	}
}

func partition[E any, K cmp.Ordered](s []E, lo, hi int, key func(E) K) int {
	pivot := key(s[hi])
	i := lo
	for j := lo; j < hi; j++ {
		if key(s[j]) < pivot {
			s[i], s[j] = s[j], s[i]
			i++
		}
	}
	s[i], s[hi] = s[hi], s[i]

	return i
}

// Heap sorts s by key: build a max-heap, then repeatedly move the root to
// the end and sift the new root down.
func Heap[E any, K cmp.Ordered](s []E, key func(E) K) {
	n := len(s)
	for i := n/2 - 1; i >= 0; i-- {
		siftDown(s, i, n, key)
	}
	for end := n - 1; end > 0; end-- {
		s[0], s[end] = s[end], s[0]
		siftDown(s, 0, end, key)
	}
}

func siftDown[E any, K cmp.Ordered](s []E, root, n int, key func(E) K) {
	for {
		largest := root
		l, r := 2*root+1, 2*root+2
		if l < n && key(s[l]) > key(s[largest]) {
			largest = l
		}
		if r < n && key(s[r]) > key(s[largest]) {
			largest = r
		}
		if largest == root {
			return
		}
		s[root], s[largest] = s[largest], s[root]
		root = largest
	}
}

// maxKey returns the largest key as uint64, or ErrNegativeKey.
func maxKey[E any, K constraints.Integer](s []E, key func(E) K) (uint64, error) {
	var hi uint64
	for i, e := range s {
		k := key(e)
		if k < 0 {
			return 0, fmt.Errorf("%w: %v at index %d", ErrNegativeKey, k, i)
		}
		hi = max(hi, uint64(k))
	}

	return hi, nil
}

// Radix sorts s by a non-negative integer key, least significant decimal
// digit first, with one stable counting pass per digit.
func Radix[E any, K constraints.Integer](s []E, key func(E) K) error {
	hi, err := maxKey(s, key)
	if err != nil {
		return err
	}

	out := make([]E, len(s))
	for exp := uint64(1); hi/exp > 0; exp *= 10 {
		var count [10]int
		for _, e := range s {
			count[(uint64(key(e))/exp)%10]++
		}
		for d := 1; d < 10; d++ {
			count[d] += count[d-1]
		}
		// Walk backwards so equal digits keep their relative order.
		for i := len(s) - 1; i >= 0; i-- {
			d := (uint64(key(s[i])) / exp) % 10
			count[d]--
			out[count[d]] = s[i]
		}
		copy(s, out)

		if exp > math.MaxUint64/10 {
			break
		}
	}

	return nil
}

// Counting sorts s by a non-negative integer key with a stable counting
// sort over [0, max key]. Memory is O(max key), so a max key beyond
// countingSpan(len(s)) returns ErrKeyRangeTooLarge and leaves s untouched.
func Counting[E any, K constraints.Integer](s []E, key func(E) K) error {
	hi, err := maxKey(s, key)
	if err != nil {
		return err
	}
	if len(s) < 2 {
		return nil
	}
	if limit := countingSpan(len(s)); hi >= limit {
		return fmt.Errorf("%w: max key %d, limit %d for %d elements", ErrKeyRangeTooLarge, hi, limit, len(s))
	}

	count := make([]int, hi+1)
	for _, e := range s {
		count[uint64(key(e))]++
	}
	for k := 1; k < len(count); k++ {
		count[k] += count[k-1]
	}
	out := make([]E, len(s))
	for i := len(s) - 1; i >= 0; i-- {
		k := uint64(key(s[i]))
		count[k]--
		out[count[k]] = s[i]
	}
	copy(s, out)

	return nil
}

// countingSpan returns the exclusive upper bound on keys Counting accepts for n elements.
func countingSpan(n int) uint64 {
	span := uint64(n) * countingSpanPerElement

	return min(max(span, countingMinSpan), countingMaxSpan)
}

// IsSorted reports whether s is non-decreasing by key.
func IsSorted[E any, K cmp.Ordered](s []E, key func(E) K) bool {
	for i := 1; i < len(s); i++ {
		if key(s[i]) < key(s[i-1]) {
			return false
		}
	}

	return true
}
