// SPDX-License-Identifier: MIT

// Package dfs defines types and options for depth-first search traversal,
// including cancellation, pre-/post-order hooks, depth limiting and
// full-graph (forest) traversal.
package dfs

import (
	"context"
	"errors"

	"github.com/katalvlaran/dsalab/core"
)

// Vertex colors used by the traversals.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // it and all its descendants are fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to DFS,
	// TopologicalSort, or HasCycle.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrStartVertexNotFound indicates that the start id is outside 1..n.
	ErrStartVertexNotFound = errors.New("dfs: start vertex not found")

	// ErrCycleDetected indicates that TopologicalSort met a back edge.
	ErrCycleDetected = errors.New("dfs: cycle detected")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked upon discovering a vertex (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(id core.NodeID) error

	// OnExit, if non-nil, is invoked after all descendants of a vertex
	// have been explored (post-order), before appending to result.Order.
	OnExit func(id core.NodeID) error

	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start vertex. Default is -1 (no limit).
	MaxDepth int

	// FullTraversal restarts from every unvisited vertex in id order,
	// covering disconnected components.
	FullTraversal bool
}

// DefaultOptions returns a DFSOptions struct with a background context,
// no hooks, no depth limit and single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext returns an Option that sets the Context for DFS traversal.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) {
		o.OnVisit = fn
	}
}

// WithOnExit installs fn as a post-order hook.
func WithOnExit(fn func(id core.NodeID) error) Option {
	return func(o *DFSOptions) {
		o.OnExit = fn
	}
}

// WithMaxDepth limits traversal depth; 0 means only the start vertex.
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		o.MaxDepth = limit
	}
}

// WithFullTraversal enables forest traversal over every component.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}

// DFSResult captures the outcome of a depth-first traversal.
type DFSResult struct {
	// Preorder records vertices in discovery order.
	Preorder []core.NodeID

	// Order records vertices in the sequence they finished (post-order).
	Order []core.NodeID

	// Depth maps each vertex to its tree depth from the root of its DFS tree.
	Depth map[core.NodeID]int

	// Parent maps each non-root vertex to the vertex that discovered it.
	Parent map[core.NodeID]core.NodeID
}

// Visited reports whether id was reached.
func (r *DFSResult) Visited(id core.NodeID) bool {
	_, ok := r.Depth[id]

	return ok
}
