// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge insertion and adjacency/matrix queries.
//
// Determinism:
//   - Neighbors() and Edges() return entries in insertion order.

package core

// AddEdge adds an edge u→v (or u—v) with weight w.
//
// Implementation:
//   - Stage 1: Resolve orientation: graph default, then EdgeOption overrides.
//   - Stage 2: Validate both endpoints under the write lock; on failure the graph
//     is left untouched.
//   - Stage 3: Append (v, w) to u's adjacency; for an undirected non-loop edge also
//     append (u, w) to v's adjacency.
//   - Stage 4: Lower matrix[u][v] (and matrix[v][u] if undirected) to w when the
//     cell is absent or holds a heavier parallel edge. The diagonal stays 0.
//
// Errors:
//   - ErrInvalidNode: u or v outside 1..NodeCount().
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddEdge(u, v NodeID, w int64, opts ...EdgeOption) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	e := Edge{From: u, To: v, Weight: w, Directed: g.directed}
	for _, opt := range opts {
		opt(&e)
	}

	if err := g.checkNode(u); err != nil {
		return err
	}
	if err := g.checkNode(v); err != nil {
		return err
	}

	g.adjacency[u] = append(g.adjacency[u], Arc{To: v, Weight: w, Directed: e.Directed})
	g.lowerCell(u, v, w)
	if !e.Directed && u != v {
		g.adjacency[v] = append(g.adjacency[v], Arc{To: u, Weight: w, Directed: false})
		g.lowerCell(v, u, w)
	}

	g.edges = append(g.edges, e)
	if e.Directed {
		g.directedN++
	}

	return nil
}

// lowerCell keeps the lightest weight per ordered pair. Caller holds g.mu.
func (g *Graph) lowerCell(u, v NodeID, w int64) {
	if u == v {
		return
	}
	if !g.present[u][v] || w < g.matrix[u][v] {
		g.matrix[u][v] = w
		g.present[u][v] = true
	}
}

// Neighbors returns a copy of u's adjacency in insertion order.
// Directed edges appear only in their source's list; undirected edges in both.
func (g *Graph) Neighbors(u NodeID) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if err := g.checkNode(u); err != nil {
		return nil, err
	}

	out := make([]Arc, len(g.adjacency[u]))
	copy(out, g.adjacency[u])

	return out, nil
}

// Edges returns every logical edge once, in insertion order.
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of logical edges (an undirected edge counts once).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Weight returns the matrix entry for u→v: the lightest direct edge weight,
// 0 for u == v, or ok == false when there is no direct edge or an id is invalid.
func (g *Graph) Weight(u, v NodeID) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.valid(u) || !g.valid(v) {
		return 0, false
	}
	if !g.present[u][v] {
		return 0, false
	}

	return g.matrix[u][v], true
}

// HasEdge reports whether a direct u→v connection exists (u != v).
func (g *Graph) HasEdge(u, v NodeID) bool {
	if u == v {
		return false
	}
	_, ok := g.Weight(u, v)

	return ok
}

// HasDirectedEdges reports whether any stored edge is one-way.
func (g *Graph) HasDirectedEdges() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directedN > 0
}

// InDegrees returns the number of adjacency entries pointing at each node,
// indexed by NodeID (index 0 is unused and always 0).
// Complexity: O(V + E).
func (g *Graph) InDegrees() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	indeg := make([]int, g.n+1)
	for u := 1; u <= g.n; u++ {
		for _, a := range g.adjacency[u] {
			indeg[a.To]++
		}
	}

	return indeg
}
