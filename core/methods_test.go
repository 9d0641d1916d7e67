// SPDX-License-Identifier: MIT
// Package core_test verifies core.Graph method-level contracts.
//
// Purpose:
//   - Lock in node id assignment, edge mirroring and matrix semantics.
//   - Validate sentinel errors and the "graph unchanged on failure" rule.

package core_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/dsalab/core"
)

// TestGraph_AddNode VERIFIES sequential ids, zero self-distance and the optional ceiling.
func TestGraph_AddNode(t *testing.T) {
	// Stage 1: ids are assigned 1..n in order.
	g := core.NewGraph(core.WithMaxNodes(3))
	for want := core.NodeID(1); want <= 3; want++ {
		id, err := g.AddNode()
		if err != nil {
			t.Fatalf("AddNode #%d: unexpected error %v", want, err)
		}
		if id != want {
			t.Fatalf("AddNode: got id %d, want %d", id, want)
		}
		if w, ok := g.Weight(id, id); !ok || w != 0 {
			t.Fatalf("Weight(%d,%d) = %d,%v; want 0,true", id, id, w, ok)
		}
	}

	// Stage 2: the fourth node is refused and the count is untouched.
	if _, err := g.AddNode(); !errors.Is(err, core.ErrCapacityExceeded) {
		t.Fatalf("AddNode past ceiling: got %v, want ErrCapacityExceeded", err)
	}
	if g.NodeCount() != 3 {
		t.Fatalf("NodeCount after refusal = %d, want 3", g.NodeCount())
	}
}

// TestGraph_UnboundedByDefault VERIFIES that capacity is only a hint.
func TestGraph_UnboundedByDefault(t *testing.T) {
	g := core.NewGraph(core.WithCapacity(2))
	last, err := g.AddNodes(50)
	if err != nil {
		t.Fatalf("AddNodes: %v", err)
	}
	if last != 50 || g.NodeCount() != 50 {
		t.Fatalf("got last=%d count=%d, want 50/50", last, g.NodeCount())
	}
	if ids := g.Nodes(); len(ids) != 50 || ids[0] != 1 || ids[49] != 50 {
		t.Fatalf("Nodes() = %v", ids)
	}
}

// TestGraph_AddEdgeInvalidNode VERIFIES ErrInvalidNode and that nothing is mutated.
func TestGraph_AddEdgeInvalidNode(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(2)

	for _, tc := range []struct{ u, v core.NodeID }{{0, 1}, {1, 3}, {-1, 2}, {3, 3}} {
		err := g.AddEdge(tc.u, tc.v, 1)
		if !errors.Is(err, core.ErrInvalidNode) {
			t.Fatalf("AddEdge(%d,%d): got %v, want ErrInvalidNode", tc.u, tc.v, err)
		}
	}
	if g.EdgeCount() != 0 {
		t.Fatalf("EdgeCount = %d after rejected edges, want 0", g.EdgeCount())
	}
	nbs, err := g.Neighbors(1)
	if err != nil || len(nbs) != 0 {
		t.Fatalf("Neighbors(1) = %v, %v; want empty", nbs, err)
	}
	if _, err := g.Neighbors(9); !errors.Is(err, core.ErrInvalidNode) {
		t.Fatalf("Neighbors(9): got %v, want ErrInvalidNode", err)
	}
}

// TestGraph_UndirectedMirroring VERIFIES adjacency and matrix mirroring for undirected edges.
func TestGraph_UndirectedMirroring(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(3)
	if err := g.AddEdge(1, 2, 4); err != nil {
		t.Fatal(err)
	}

	a, _ := g.Neighbors(1)
	b, _ := g.Neighbors(2)
	if len(a) != 1 || a[0] != (core.Arc{To: 2, Weight: 4}) {
		t.Fatalf("Neighbors(1) = %v", a)
	}
	if len(b) != 1 || b[0] != (core.Arc{To: 1, Weight: 4}) {
		t.Fatalf("Neighbors(2) = %v", b)
	}
	if w, ok := g.Weight(2, 1); !ok || w != 4 {
		t.Fatalf("Weight(2,1) = %d,%v; want 4,true", w, ok)
	}
	if _, ok := g.Weight(1, 3); ok {
		t.Fatalf("Weight(1,3) present; want absent")
	}
	if !g.HasEdge(1, 2) || g.HasEdge(1, 1) {
		t.Fatalf("HasEdge mismatch")
	}
}

// TestGraph_DirectedOverride VERIFIES per-edge orientation and HasDirectedEdges.
func TestGraph_DirectedOverride(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(2)
	if g.HasDirectedEdges() {
		t.Fatal("empty graph reports directed edges")
	}
	if err := g.AddEdge(1, 2, 7, core.WithEdgeDirected(true)); err != nil {
		t.Fatal(err)
	}
	if !g.HasDirectedEdges() {
		t.Fatal("HasDirectedEdges = false after directed edge")
	}
	if _, ok := g.Weight(2, 1); ok {
		t.Fatal("directed edge was mirrored in the matrix")
	}
	if nbs, _ := g.Neighbors(2); len(nbs) != 0 {
		t.Fatalf("directed edge was mirrored in adjacency: %v", nbs)
	}
	indeg := g.InDegrees()
	if indeg[1] != 0 || indeg[2] != 1 {
		t.Fatalf("InDegrees = %v, want [_ 0 1]", indeg)
	}
}

// TestGraph_ParallelAndLoops VERIFIES min-weight matrix cells and single self-loop entries.
func TestGraph_ParallelAndLoops(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddNodes(2)
	_ = g.AddEdge(1, 2, 9)
	_ = g.AddEdge(1, 2, 3)
	_ = g.AddEdge(1, 2, 5)
	_ = g.AddEdge(2, 2, -4, core.WithEdgeDirected(false))

	if w, _ := g.Weight(1, 2); w != 3 {
		t.Fatalf("Weight(1,2) = %d, want lightest parallel weight 3", w)
	}
	if w, _ := g.Weight(2, 2); w != 0 {
		t.Fatalf("diagonal overwritten by self-loop: %d", w)
	}
	if nbs, _ := g.Neighbors(2); len(nbs) != 1 {
		t.Fatalf("undirected self-loop appended %d times, want 1", len(nbs))
	}

	s := g.Stats()
	want := core.GraphStats{
		Directed: true, NodeCount: 2, EdgeCount: 4,
		DirectedEdgeCount: 3, ArcCount: 4, SelfLoopCount: 1,
	}
	if s != want {
		t.Fatalf("Stats = %+v, want %+v", s, want)
	}
}

// TestGraph_Clone VERIFIES that a clone is deep and independent.
func TestGraph_Clone(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(2)
	_ = g.AddEdge(1, 2, 1)

	c := g.Clone()
	_, _ = c.AddNode()
	_ = c.AddEdge(1, 3, 2)
	_ = c.AddEdge(1, 2, 0)

	if g.NodeCount() != 2 || g.EdgeCount() != 1 {
		t.Fatalf("original mutated: nodes=%d edges=%d", g.NodeCount(), g.EdgeCount())
	}
	if w, _ := g.Weight(1, 2); w != 1 {
		t.Fatalf("original matrix mutated: %d", w)
	}
	if nbs, _ := g.Neighbors(1); len(nbs) != 1 {
		t.Fatalf("original adjacency mutated: %v", nbs)
	}
	if w, _ := c.Weight(1, 2); w != 0 {
		t.Fatalf("clone matrix = %d, want 0", w)
	}
	if edges := c.Edges(); len(edges) != 3 || edges[1].To != 3 {
		t.Fatalf("clone edges = %v", edges)
	}
}
