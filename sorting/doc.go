// SPDX-License-Identifier: MIT

// Package sorting implements the classical in-place sorts over a slice of
// arbitrary elements ordered by a key function.
//
//	Bubble     O(n²)        stable   early exit on a pass without swaps
//	Insertion  O(n²)        stable
//	Merge      O(n log n)   stable   top-down, one scratch buffer
//	Quick      O(n log n)*  unstable Lomuto partition, last element as pivot
//	Heap       O(n log n)   unstable max-heap with sift-down
//	Radix      O(d·(n+10))  stable   LSD base 10, integer keys ≥ 0
//	Counting   O(n+k)       stable   integer keys in [0, k]
//
// (*) Quick degrades to O(n²) on sorted input, as the last-element pivot
// implies; recursion depth stays O(log n) because it recurses into the
// smaller partition only.
//
// Radix and Counting return ErrNegativeKey and leave the slice untouched
// when any key is negative. Counting also refuses keys whose span would
// dwarf the input (ErrKeyRangeTooLarge); Radix handles the full uint64 range.
//
// Sort and SortOrdered dispatch by Algorithm name for callers that pick
// the algorithm at run time.
package sorting
