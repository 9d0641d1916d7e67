// SPDX-License-Identifier: MIT

// Package prim_kruskal defines configuration options and sentinel errors for MST computation.
// It supports selecting between Kruskal and Prim algorithms via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/dsalab/core"
)

// ErrInvalidGraph indicates that MST algorithms require an undirected graph.
// Returned when graph is nil or holds any directed edge.
var ErrInvalidGraph = errors.New("prim_kruskal: MST requires undirected graph")

// ErrEmptyGraph indicates a graph with no nodes, which has no spanning tree.
var ErrEmptyGraph = errors.New("prim_kruskal: graph has no nodes")

// ErrRootNotFound indicates that the Prim root is not a node of the graph.
var ErrRootNotFound = errors.New("prim_kruskal: root vertex not found")

// ErrDisconnected indicates that the graph is not fully connected, so a spanning
// tree covering all vertices cannot be formed. WithSpanningForest lifts it.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or MethodKruskal.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrWeightOverflow indicates that the total MST weight does not fit in int64.
var ErrWeightOverflow = errors.New("prim_kruskal: total weight overflows int64")

// addWeight adds w to total, failing with ErrWeightOverflow instead of wrapping.
func addWeight(total, w int64) (int64, error) {
	if (w > 0 && total > math.MaxInt64-w) || (w < 0 && total < math.MinInt64-w) {
		return 0, fmt.Errorf("%w: %d + %d", ErrWeightOverflow, total, w)
	}

	return total + w, nil
}

// MethodPrim selects Prim's algorithm (grow from a root by repeated minimum-key scans).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// MSTOptions configures which MST algorithm to run and how.
// Use DefaultOptions() to get a default setup (Kruskal, root 1, tree only).
//
// Fields:
//
//	Method  one of MethodPrim or MethodKruskal.
//	Root    start vertex for Prim; ignored by Kruskal.
//	Forest  return a minimum spanning forest instead of failing on a
//	        disconnected graph.
type MSTOptions struct {
	Method string
	Root   core.NodeID
	Forest bool
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot returns an Option that sets the starting vertex for Prim's algorithm.
func WithRoot(root core.NodeID) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithSpanningForest accepts disconnected graphs and returns one minimum
// spanning tree per component.
func WithSpanningForest() Option {
	return func(opts *MSTOptions) {
		opts.Forest = true
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = 1
//	– Forest = false
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   1,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
// A zero Root means the default root 1.
//
// Returns:
//
//	[]core.Edge  edges of the tree (empty for a single vertex).
//	int64        total weight.
//	error        ErrUnknownMethod or whatever the selected algorithm reports.
func Compute(graph *core.Graph, opts MSTOptions) ([]core.Edge, int64, error) {
	apply := func(o *MSTOptions) {
		root := o.Root
		*o = opts
		if o.Root == 0 {
			o.Root = root
		}
	}
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(graph, apply)
	case MethodPrim:
		return Prim(graph, apply)
	default:
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// validate applies the checks shared by both algorithms.
func validate(graph *core.Graph) error {
	if graph == nil || graph.HasDirectedEdges() {
		return ErrInvalidGraph
	}
	if graph.NodeCount() == 0 {
		return ErrEmptyGraph
	}

	return nil
}

func buildOptions(opts []Option) MSTOptions {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
