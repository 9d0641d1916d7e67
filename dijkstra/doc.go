// SPDX-License-Identifier: MIT

// Package dijkstra implements Dijkstra's single-source shortest-path algorithm
// over core.Graph with non-negative edge weights.
//
// Overview:
//
//   - Tentative distances start unreachable except the source, which is 0.
//   - A min-heap frontier always expands the next-closest vertex.
//   - Every strictly improving relaxation pushes a new heap entry (lazy
//     decrease-key); a popped entry whose distance no longer equals the best
//     known distance is stale and skipped.
//   - Unreachable vertices are reported as absent, never as an "infinity" value.
//
// Key features:
//
//   - ReturnPath: record predecessors so Result.PathTo can rebuild a route.
//   - MaxDistance: vertices farther than the cap stay unreachable.
//   - InfEdgeThreshold: treats any edge with weight ≥ threshold as impassable.
//   - Mixed edges: directed arcs are followed only from their source, undirected
//     edges both ways, exactly as core.Graph stores them.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E), the heap holds up to E entries under lazy decrease-key.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:       g == nil.
//   - ErrVertexNotFound: source outside 1..g.NodeCount().
//   - ErrNegativeWeight: any edge weight < 0, detected by an O(E) pre-scan.
//   - ErrNoPath, ErrPathNotTracked: from Result.PathTo.
//
// Option constructors panic on nonsensical arguments (ErrBadMaxDistance,
// ErrBadInfThreshold) since those are programming errors.
//
// Example:
//
//	res, err := dijkstra.Dijkstra(g, 1, dijkstra.WithReturnPath())
//	if err != nil {
//	    return err
//	}
//	d, ok := res.Distance(3)
//	path, _ := res.PathTo(3)
package dijkstra
