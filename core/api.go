// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only getters and the Stats snapshot.
// Policy:
//   - No algorithms or hidden state here.

package core

// Directed reports the default orientation applied to newly added edges.
// It does not say whether the graph currently holds directed edges
// (use HasDirectedEdges for that).
func (g *Graph) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// MaxNodes reports the WithMaxNodes ceiling, or 0 when unbounded.
func (g *Graph) MaxNodes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.maxNodes
}

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Directed          bool // default orientation
	MaxNodes          int  // 0 = unbounded
	NodeCount         int
	EdgeCount         int // logical edges
	DirectedEdgeCount int
	ArcCount          int // adjacency entries (undirected non-loop edges count twice)
	SelfLoopCount     int
}

// Stats produces a deterministic snapshot of configuration and sizes.
// Complexity: O(V + E).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Directed:          g.directed,
		MaxNodes:          g.maxNodes,
		NodeCount:         g.n,
		EdgeCount:         len(g.edges),
		DirectedEdgeCount: g.directedN,
	}
	for u := 1; u <= g.n; u++ {
		s.ArcCount += len(g.adjacency[u])
	}
	for _, e := range g.edges {
		if e.From == e.To {
			s.SelfLoopCount++
		}
	}

	return s
}
