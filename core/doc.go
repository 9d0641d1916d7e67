// SPDX-License-Identifier: MIT

// Package core provides the weighted graph shared by every graph algorithm in
// dsalab: dense integer node identifiers, an ordered adjacency list and a dense
// weight matrix kept side by side.
//
// The Graph G = (V,E) has these properties:
//
//   - Node IDs are dense integers 1..n, assigned sequentially by AddNode.
//   - Edges are append-only; there is no node or edge removal.
//   - Default orientation is undirected (WithDirected(true) flips it); any
//     single edge may override it with WithEdgeDirected.
//   - Undirected edges are mirrored in both adjacency lists and in both
//     matrix cells. A self-loop appears once in its node's adjacency.
//   - The matrix stores the minimum weight per ordered pair, the diagonal
//     is always present with weight 0, and a missing edge is reported as
//     absent (ok == false), never as a magic "infinity" number.
//   - Capacity is growable. WithCapacity is an allocation hint only;
//     WithMaxNodes opts into a hard ceiling that AddNode reports with
//     ErrCapacityExceeded.
//
// Configuration Options (GraphOption):
//
//	– WithDirected(defaultDirected bool)
//	– WithCapacity(n int)
//	– WithMaxNodes(n int)
//
// EdgeOptions:
//
//	– WithEdgeDirected(directed bool)
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode() (NodeID, error)          // O(n) amortized (matrix row/column growth)
//	HasNode(id NodeID) bool            // O(1)
//	NodeCount() int                    // O(1)
//	Nodes() []NodeID                   // O(n)
//
//	// Edge lifecycle
//	AddEdge(u, v NodeID, w int64, opts ...EdgeOption) error // O(1) amortized
//
//	// Query
//	Neighbors(id NodeID) ([]Arc, error) // O(deg), insertion order
//	Edges() []Edge                      // O(E), each logical edge once
//	Weight(u, v NodeID) (int64, bool)   // O(1) matrix lookup
//	InDegrees() []int                   // O(V+E)
//
//	// Cloning & stats
//	Clone() *Graph
//	Stats() GraphStats
//
// Concurrency:
//
//	A single sync.RWMutex guards all state. Mutators take the write lock,
//	queries the read lock, so algorithms may share one graph read-only.
//
// Errors:
//
//	ErrInvalidNode      - node id outside 1..NodeCount().
//	ErrCapacityExceeded - AddNode past the WithMaxNodes ceiling.
package core
