// SPDX-License-Identifier: MIT

package dfs

import (
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

// dfsWalker encapsulates state during DFS.
type dfsWalker struct {
	graph   *core.Graph
	opts    DFSOptions
	visited []bool
	res     *DFSResult
}

// DFS performs depth-first search on g. With WithFullTraversal it covers all
// components, starting from start first and then from every unvisited vertex
// in ascending id order; otherwise only vertices reachable from start.
// Neighbors are explored in adjacency insertion order.
func DFS(g *core.Graph, start core.NodeID, opts ...Option) (*DFSResult, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Verify start
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	// 4. Initialize result with capacity hint
	n := g.NodeCount()
	walker := &dfsWalker{
		graph:   g,
		opts:    dopts,
		visited: make([]bool, n+1),
		res: &DFSResult{
			Preorder: make([]core.NodeID, 0, n),
			Order:    make([]core.NodeID, 0, n),
			Depth:    make(map[core.NodeID]int, n),
			Parent:   make(map[core.NodeID]core.NodeID, n),
		},
	}

	// 5. Traverse: start tree, then the rest of the forest if requested
	if err := walker.traverse(start, 0); err != nil {
		return walker.res, err
	}
	if dopts.FullTraversal {
		for v := 1; v <= n; v++ {
			if !walker.visited[v] {
				if err := walker.traverse(core.NodeID(v), 0); err != nil {
					return walker.res, err
				}
			}
		}
	}

	return walker.res, nil
}

// traverse visits id at the given depth, recursing to unvisited neighbors.
func (w *dfsWalker) traverse(id core.NodeID, depth int) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Mark visited and record depth
	w.visited[id] = true
	w.res.Depth[id] = depth
	w.res.Preorder = append(w.res.Preorder, id)

	// 3. Pre-order hook
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %d: %w", id, err)
		}
	}

	// 4. Explore neighbors unless the depth limit is reached
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		arcs, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
		}
		for _, a := range arcs {
			if w.visited[a.To] {
				continue
			}
			w.res.Parent[a.To] = id
			if err = w.traverse(a.To, depth+1); err != nil {
				return err
			}
		}
	}

	// 5. Post-order hook
	if w.opts.OnExit != nil {
		if err := w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for %d: %w", id, err)
		}
	}

	// 6. Record finish order
	w.res.Order = append(w.res.Order, id)

	return nil
}
