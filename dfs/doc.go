// SPDX-License-Identifier: MIT

// Package dfs implements depth-first search, DFS-based topological sort and
// cycle detection on a core.Graph.
//
// What:
//
//   - DFS(g, start, opts...): pre-order and post-order visit lists, tree
//     depth and parent links. Supports cancellation, hooks, depth limits and
//     forest traversal (WithFullTraversal).
//   - TopologicalSort(g): reverse post-order over every adjacency arc,
//     returning ErrCycleDetected on a back edge.
//   - HasCycle(g): the same traversal reduced to a yes/no answer.
//
// Arcs follow core.Graph adjacency: a directed edge is walked only from its
// source, an undirected edge both ways (so for ordering purposes it is a
// two-cycle). The results agree with toposort.Kahn on every graph.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V) for recursion stack and color slice.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - ErrStartVertexNotFound    if start is outside 1..n.
//   - ErrCycleDetected          from TopologicalSort.
//   - context errors            if the context is done.
//   - any error returned by OnVisit or OnExit.
package dfs
