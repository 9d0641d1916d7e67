// SPDX-License-Identifier: MIT

// Package search finds an element by key in a slice.
//
// Linear scans in order and works on any slice. Binary requires s to be
// sorted by key in non-decreasing order and returns the leftmost match.
// Both report the index and whether it was found; there is no -1 index.
package search

import "cmp"

// Linear returns the index of the first element whose key equals target.
// Complexity: O(n).
func Linear[E any, K comparable](s []E, target K, key func(E) K) (int, bool) {
	for i, e := range s {
		if key(e) == target {
			return i, true
		}
	}

	return 0, false
}

// Binary returns the index of the leftmost element whose key equals target.
// The result is unspecified if s is not sorted by key.
// Complexity: O(log n).
func Binary[E any, K cmp.Ordered](s []E, target K, key func(E) K) (int, bool) {
	lo, hi := 0, len(s)
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if key(s[mid]) < target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	if lo < len(s) && key(s[lo]) == target {
		return lo, true
	}

	return 0, false
}
