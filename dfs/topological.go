// SPDX-License-Identifier: MIT

package dfs

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/dsalab/core"
)

// TopoOption configures optional behavior for TopologicalSort and HasCycle.
type TopoOption func(*topoOptions)

type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// topoSorter encapsulates state for a three-color traversal.
type topoSorter struct {
	graph *core.Graph
	opts  topoOptions
	state []int
	order []core.NodeID
}

// TopologicalSort orders all vertices so that every arc u→v has u before v,
// using reverse DFS post-order. Every adjacency entry counts as an arc, so an
// undirected edge is a two-cycle.
//
// Errors: ErrGraphNil, ErrCycleDetected (wrapped with the closing arc), or
// the context error on cancellation.
//
// Complexity: Time O(V + E), Memory O(V).
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]core.NodeID, error) {
	s, err := newSorter(g, options)
	if err != nil {
		return nil, err
	}
	if err = s.run(); err != nil {
		return nil, err
	}
	slices.Reverse(s.order)

	return s.order, nil
}

// HasCycle reports whether following adjacency arcs can return to a vertex.
func HasCycle(g *core.Graph, options ...TopoOption) (bool, error) {
	_, err := TopologicalSort(g, options...)
	switch {
	case err == nil:
		return false, nil
	case errors.Is(err, ErrCycleDetected):
		return true, nil
	default:
		return false, err
	}
}

func newSorter(g *core.Graph, options []TopoOption) (*topoSorter, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}
	n := g.NodeCount()

	return &topoSorter{
		graph: g,
		opts:  opts,
		state: make([]int, n+1),
		order: make([]core.NodeID, 0, n),
	}, nil
}

func (t *topoSorter) run() error {
	for v := 1; v < len(t.state); v++ {
		if t.state[v] == White {
			if err := t.visit(core.NodeID(v)); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit performs a DFS from id, marking states and detecting back edges.
func (t *topoSorter) visit(id core.NodeID) error {
	select {
	case <-t.opts.ctx.Done():
		return t.opts.ctx.Err()
	default:
	}

	t.state[id] = Gray
	arcs, err := t.graph.Neighbors(id)
	if err != nil {
		return fmt.Errorf("dfs: Neighbors(%d): %w", id, err)
	}
	for _, a := range arcs {
		switch t.state[a.To] {
		case Gray:
			return fmt.Errorf("%w: arc %d→%d", ErrCycleDetected, id, a.To)
		case White:
			if err = t.visit(a.To); err != nil {
				return err
			}
		}
	}
	t.state[id] = Black
	t.order = append(t.order, id)

	return nil
}
