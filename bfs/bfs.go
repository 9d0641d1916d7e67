// SPDX-License-Identifier: MIT

// Package bfs provides breadth-first search over a core.Graph,
// returning edge-count distances, parent links, and visit order.
//
// BFS explores vertices in increasing hop distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering. Edge
// weights are ignored. Directed arcs are followed only forward.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error.
func BFS(g *core.Graph, start core.NodeID, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartVertexNotFound, start)
	}

	n := g.NodeCount()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n+1),
		res: &BFSResult{
			Order:  make([]core.NodeID, 0, n),
			Depth:  make(map[core.NodeID]int, n),
			Parent: make(map[core.NodeID]core.NodeID, n),
		},
	}

	w.enqueue(start, 0, 0)

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent (0 = root).
func (w *walker) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != 0 {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit hook for %d: %w", item.id, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// enqueueNeighbors enqueues unvisited neighbors that pass the filter and depth limit.
func (w *walker) enqueueNeighbors(item queueItem) error {
	arcs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("bfs: failed to get neighbors of %d: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, a := range arcs {
		if w.visited[a.To] || !w.opts.FilterNeighbor(item.id, a) {
			continue
		}
		w.enqueue(a.To, next, item.id)
	}

	return nil
}
