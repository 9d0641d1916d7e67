// SPDX-License-Identifier: MIT

// Package hashtable implements a separate-chaining hash map keyed by an
// integer.
//
// By default a key lands in bucket k mod B (normalised into [0, B) for
// negative keys) and the bucket count B is fixed at construction. Each
// bucket holds an insertion-ordered chain; duplicate keys are kept, so
// Search returns the earliest inserted value and SearchAll returns every one.
//
// Two opt-in extensions:
//
//	WithMaxLoadFactor(f)  double B and redistribute when Len()/B exceeds f
//	WithHasher(h)         replace k mod B by h(k) mod B, e.g. Murmur3
//
// A Table is not safe for concurrent mutation.
package hashtable
