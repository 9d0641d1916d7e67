// SPDX-License-Identifier: MIT

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrInvalidNode indicates an operation referenced a node id outside 1..n.
	ErrInvalidNode = errors.New("core: invalid node id")

	// ErrCapacityExceeded indicates AddNode would pass the WithMaxNodes ceiling.
	ErrCapacityExceeded = errors.New("core: node capacity exceeded")
)

// NodeID identifies a node. Valid ids are 1..NodeCount(); 0 is never assigned.
type NodeID int

// Arc is one adjacency entry: the neighbor reached from the owning node,
// the edge weight, and whether the underlying edge is one-way.
type Arc struct {
	To       NodeID
	Weight   int64
	Directed bool
}

// Edge is a logical edge as added by AddEdge.
// For undirected edges From/To keep the order the caller used.
type Edge struct {
	From     NodeID
	To       NodeID
	Weight   int64
	Directed bool
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected sets the default orientation for new edges
// (true = directed, false = undirected).
func WithDirected(defaultDirected bool) GraphOption {
	return func(g *Graph) { g.directed = defaultDirected }
}

// WithCapacity pre-allocates room for n nodes. It is a hint, not a limit.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n > 0 {
			g.capHint = n
		}
	}
}

// WithMaxNodes caps the node count at n. AddNode past the cap returns
// ErrCapacityExceeded. n <= 0 means unlimited (the default).
func WithMaxNodes(n int) GraphOption {
	return func(g *Graph) { g.maxNodes = n }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the Graph's default orientation for this edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the weighted graph container.
//
// adjacency and matrix are indexed by NodeID; index 0 is an unused pad so
// that node ids can be used directly. matrix[u][v] is valid only when
// present[u][v] is true.
type Graph struct {
	mu sync.RWMutex

	// Configuration
	directed bool // default orientation
	capHint  int  // allocation hint
	maxNodes int  // hard ceiling, 0 = none

	// Storage
	n         int
	adjacency [][]Arc
	matrix    [][]int64
	present   [][]bool
	edges     []Edge
	directedN int // number of directed logical edges
}

// NewGraph creates an empty Graph. By default it is undirected and unbounded.
// Complexity: O(capacity hint).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{}
	for _, opt := range opts {
		opt(g)
	}

	// Row 0 is the pad for the unused NodeID 0.
	g.adjacency = make([][]Arc, 1, g.capHint+1)
	g.matrix = make([][]int64, 1, g.capHint+1)
	g.present = make([][]bool, 1, g.capHint+1)

	return g
}
