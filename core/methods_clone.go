// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.

package core

// Clone returns a deep copy of the Graph: configuration, nodes, edges,
// adjacency and matrix. The clone shares no slices with g.
//
// Complexity: O(V² + E) because the dense matrix is copied.
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := NewGraph(WithDirected(g.directed), WithMaxNodes(g.maxNodes), WithCapacity(g.n))
	c.n = g.n
	c.directedN = g.directedN
	c.edges = append([]Edge(nil), g.edges...)

	for u := 1; u <= g.n; u++ {
		c.adjacency = append(c.adjacency, append([]Arc(nil), g.adjacency[u]...))
		c.matrix = append(c.matrix, append([]int64(nil), g.matrix[u]...))
		c.present = append(c.present, append([]bool(nil), g.present[u]...))
	}

	return c
}
