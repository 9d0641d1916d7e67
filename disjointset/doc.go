// SPDX-License-Identifier: MIT

// Package disjointset implements a generic union-find forest.
//
// Every element belongs to exactly one set and each set is named by its
// root. Find follows parent links to the root; Union links one root under
// the other.
//
// By default Find compresses paths and Union links by rank, giving
// near-constant amortized operations. WithoutPathCompression and
// WithoutUnionByRank switch those heuristics off; the partitions observed
// through Find, Connected and Count are identical either way, only the
// shape of the forest differs.
//
// Errors:
//
//	ErrUnknownElement - Find/Union/Connected on an element never added.
//
// A Set is not safe for concurrent use.
package disjointset
