// SPDX-License-Identifier: MIT

// Package prim_kruskal computes minimum spanning trees of an undirected
// core.Graph with Kruskal's and Prim's algorithms.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...) ([]core.Edge, int64, error)
//     Sort edges by weight (stable), accept every edge that joins two different
//     disjointset components. Time O(E log E + α(V)·E).
//
//   - Prim(g, opts...) ([]core.Edge, int64, error)
//     Array variant for dense graphs: n rounds, each scanning for the unused
//     node with the smallest key and lowering its neighbors' keys. Time O(V² + E).
//     The root is node 1 unless WithRoot says otherwise.
//
//   - Compute(g, MSTOptions) dispatches on MSTOptions.Method.
//
// Both report the same total weight on any connected graph; the edge sets may
// differ when weights tie. Self-loops never enter a tree; parallel edges are
// fine (the lightest one wins).
//
// Errors:
//
//   - ErrInvalidGraph  nil graph or any directed edge.
//   - ErrEmptyGraph    no nodes.
//   - ErrRootNotFound  Prim root outside 1..n.
//   - ErrDisconnected  unless WithSpanningForest, in which case a minimum
//     spanning forest is returned (Prim grows one tree per component).
//   - ErrUnknownMethod from Compute.
package prim_kruskal
