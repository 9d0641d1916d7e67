// SPDX-License-Identifier: MIT

// Package avl provides Map, an ordered key/value map kept height-balanced
// by AVL rotations.
//
// Invariants after every mutation:
//
//   - strict BST ordering by key (no duplicate keys);
//   - each node caches its height (leaf = 1, empty = 0);
//   - every balance factor height(left) - height(right) is in {-1, 0, 1}.
//
// Rebalancing happens on the way back up from an insert or delete:
//
//	LL (bf > 1, child leans left)   → rotate right
//	RR (bf < -1, child leans right) → rotate left
//	LR                              → rotate child left, then rotate right
//	RL                              → rotate child right, then rotate left
//
// Traversals are lazy iter.Seq2 sequences in in-, pre- or post-order. They
// are restartable, read-only, and stop as soon as the consumer breaks.
//
// Errors:
//
//	ErrDuplicateKey      - Insert of an existing key (stored value unchanged).
//	ErrKeyNotFound       - Delete of a missing key.
//	ErrUnknownOrder      - ParseOrder with an unrecognized name.
//	ErrInvariantViolated - Validate found a broken ordering, height or balance.
//
// Complexity: Insert, Search, Delete O(log n); traversals O(n).
//
// A Map is not safe for concurrent mutation.
package avl
