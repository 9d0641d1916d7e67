// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Nodes() returns ids in ascending order, which is also creation order.

package core

import "fmt"

// AddNode appends a new node and returns its id (previous count + 1).
//
// Implementation:
//   - Stage 1: Under the write lock, check the optional WithMaxNodes ceiling.
//   - Stage 2: Grow every existing matrix row by one column, then append the new
//     row with its self-distance set to 0 and an empty adjacency list.
//
// Errors:
//   - ErrCapacityExceeded: WithMaxNodes was set and the graph is full.
//
// Complexity:
//   - Time O(n) amortized for the column growth, Space O(n) for the new row.
func (g *Graph) AddNode() (NodeID, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.maxNodes > 0 && g.n >= g.maxNodes {
		return 0, fmt.Errorf("%w: limit %d", ErrCapacityExceeded, g.maxNodes)
	}

	g.n++
	id := g.n

	// Existing rows get a column for the new node; it starts absent.
	for i := 1; i < id; i++ {
		g.matrix[i] = append(g.matrix[i], 0)
		g.present[i] = append(g.present[i], false)
	}

	row := make([]int64, id+1)
	seen := make([]bool, id+1)
	seen[id] = true // self distance is zero and always present

	g.matrix = append(g.matrix, row)
	g.present = append(g.present, seen)
	g.adjacency = append(g.adjacency, nil)

	return NodeID(id), nil
}

// AddNodes appends k nodes and returns the id of the last one.
// It stops at the first failure, keeping the nodes already added.
func (g *Graph) AddNodes(k int) (NodeID, error) {
	var last NodeID
	for i := 0; i < k; i++ {
		id, err := g.AddNode()
		if err != nil {
			return last, err
		}
		last = id
	}

	return last, nil
}

// HasNode reports whether id is a valid node of g.
func (g *Graph) HasNode(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.valid(id)
}

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.n
}

// Nodes returns every node id in ascending order.
func (g *Graph) Nodes() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]NodeID, g.n)
	for i := range ids {
		ids[i] = NodeID(i + 1)
	}

	return ids
}

// valid must be called with g.mu held.
func (g *Graph) valid(id NodeID) bool { return id >= 1 && int(id) <= g.n }

// checkNode wraps ErrInvalidNode with the offending id. Caller holds g.mu.
func (g *Graph) checkNode(id NodeID) error {
	if !g.valid(id) {
		return fmt.Errorf("%w: %d (graph has %d nodes)", ErrInvalidNode, id, g.n)
	}

	return nil
}
