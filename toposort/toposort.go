// SPDX-License-Identifier: MIT

// Package toposort orders the nodes of a core.Graph with Kahn's algorithm.
//
// Every adjacency entry is an arc: directed edges point one way, undirected
// edges both ways. An undirected edge therefore forms a two-cycle and a
// self-loop a one-cycle; both make the graph unorderable.
//
// Errors:
//
//	ErrGraphNil       - nil graph.
//	ErrCycleDetected  - some nodes never reach in-degree zero. No partial
//	                    order is returned.
//	ErrNotTopological - from Valid, for an order that breaks an arc or is
//	                    not a permutation of the nodes.
package toposort

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Kahn or Valid.
	ErrGraphNil = errors.New("toposort: graph is nil")

	// ErrCycleDetected indicates that some nodes never reached in-degree zero.
	ErrCycleDetected = errors.New("toposort: cycle detected")

	// ErrNotTopological indicates that Valid rejected an order.
	ErrNotTopological = errors.New("toposort: order is not topological")
)

// Kahn returns a topological order of g's nodes.
//
// Steps:
//  1. Count in-degrees over all adjacency arcs.
//  2. Seed a FIFO queue with every in-degree-zero node, ascending by id.
//  3. Dequeue u, append it, decrement its targets, enqueue any that hit zero.
//  4. Fewer than n appended means a cycle.
//
// Complexity: O(V + E).
func Kahn(g *core.Graph) ([]core.NodeID, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	// 1. In-degrees.
	indeg := g.InDegrees()
	n := g.NodeCount()

	// 2. Seed.
	queue := make([]core.NodeID, 0, n)
	for v := 1; v <= n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, core.NodeID(v))
		}
	}

	// 3. Drain. The output doubles as the queue: head walks behind the tail.
	for head := 0; head < len(queue); head++ {
		arcs, err := g.Neighbors(queue[head])
		if err != nil {
			return nil, err
		}
		for _, a := range arcs {
			indeg[a.To]--
			if indeg[a.To] == 0 {
				queue = append(queue, a.To)
			}
		}
	}

	// 4. Leftovers sit on or behind a cycle.
	if len(queue) < n {
		return nil, fmt.Errorf("%w: %d of %d nodes ordered", ErrCycleDetected, len(queue), n)
	}

	return queue, nil
}

// Valid checks that order lists every node of g exactly once and that every
// arc u→v has u before v.
func Valid(g *core.Graph, order []core.NodeID) error {
	if g == nil {
		return ErrGraphNil
	}
	n := g.NodeCount()
	if len(order) != n {
		return fmt.Errorf("%w: %d entries for %d nodes", ErrNotTopological, len(order), n)
	}

	pos := make([]int, n+1)
	for i, v := range order {
		if !g.HasNode(v) || pos[v] != 0 {
			return fmt.Errorf("%w: node %d invalid or repeated", ErrNotTopological, v)
		}
		pos[v] = i + 1
	}
	for u := 1; u <= n; u++ {
		arcs, err := g.Neighbors(core.NodeID(u))
		if err != nil {
			return err
		}
		for _, a := range arcs {
			if pos[u] >= pos[a.To] {
				return fmt.Errorf("%w: arc %d→%d", ErrNotTopological, u, a.To)
			}
		}
	}

	return nil
}
