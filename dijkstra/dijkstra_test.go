// SPDX-License-Identifier: MIT
// Package dijkstra_test contains unit tests for the Dijkstra implementation:
// validation order, basic routes, mixed orientation, thresholds, and a
// brute-force cross-check on random graphs.
package dijkstra_test

import (
	"errors"
	"math"
	"math/rand"
	"slices"
	"testing"

	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/dijkstra"
)

// triangle builds 1—2 (4), 2—3 (1), 1—3 (7).
func triangle(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	_, _ = g.AddNodes(3)
	for _, e := range []core.Edge{{From: 1, To: 2, Weight: 4}, {From: 2, To: 3, Weight: 1}, {From: 1, To: 3, Weight: 7}} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatalf("AddEdge: %v", err)
		}
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation Tests: Ensure errors are returned for invalid inputs.
// ------------------------------------------------------------------------

func TestDijkstra_NilGraph(t *testing.T) {
	if _, err := dijkstra.Dijkstra(nil, 1); !errors.Is(err, dijkstra.ErrNilGraph) {
		t.Fatalf("Expected ErrNilGraph, got %v", err)
	}
}

func TestDijkstra_SourceNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode()
	for _, src := range []core.NodeID{0, 2, -3} {
		if _, err := dijkstra.Dijkstra(g, src); !errors.Is(err, dijkstra.ErrVertexNotFound) {
			t.Fatalf("source %d: expected ErrVertexNotFound, got %v", src, err)
		}
	}
}

func TestDijkstra_NegativeWeightDetectedEarly(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(3)
	_ = g.AddEdge(2, 3, -5) // unreachable from 1, still rejected
	if _, err := dijkstra.Dijkstra(g, 1); !errors.Is(err, dijkstra.ErrNegativeWeight) {
		t.Fatalf("Expected ErrNegativeWeight, got %v", err)
	}
}

func TestDijkstra_OptionPanics(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode()
	for name, opt := range map[string]dijkstra.Option{
		"MaxDistance":  dijkstra.WithMaxDistance(-1),
		"InfThreshold": dijkstra.WithInfEdgeThreshold(0),
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s: expected panic", name)
				}
			}()
			_, _ = dijkstra.Dijkstra(g, 1, opt)
		}()
	}
}

// ------------------------------------------------------------------------
// 2. Basic Functionality
// ------------------------------------------------------------------------

func TestDijkstra_Triangle(t *testing.T) {
	res, err := dijkstra.Dijkstra(triangle(t), 1, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := map[core.NodeID]int64{1: 0, 2: 4, 3: 5}
	got := res.Distances()
	if len(got) != len(want) {
		t.Fatalf("Distances() = %v, want %v", got, want)
	}
	for v, d := range want {
		if got[v] != d {
			t.Fatalf("dist[%d] = %d, want %d", v, got[v], d)
		}
	}

	path, err := res.PathTo(3)
	if err != nil {
		t.Fatalf("PathTo(3): %v", err)
	}
	if !slices.Equal(path, []core.NodeID{1, 2, 3}) {
		t.Fatalf("PathTo(3) = %v, want [1 2 3]", path)
	}
	if p, _ := res.PathTo(1); !slices.Equal(p, []core.NodeID{1}) {
		t.Fatalf("PathTo(source) = %v", p)
	}
}

func TestDijkstra_UnreachableAndPathErrors(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(3)
	_ = g.AddEdge(1, 2, 2)

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := res.Distance(3); ok {
		t.Fatal("vertex 3 must be unreachable")
	}
	if res.Reachable(99) {
		t.Fatal("unknown vertex reported reachable")
	}
	if _, err := res.PathTo(2); !errors.Is(err, dijkstra.ErrPathNotTracked) {
		t.Fatalf("Expected ErrPathNotTracked, got %v", err)
	}

	res, _ = dijkstra.Dijkstra(g, 1, dijkstra.WithReturnPath())
	if _, err := res.PathTo(3); !errors.Is(err, dijkstra.ErrNoPath) {
		t.Fatalf("Expected ErrNoPath, got %v", err)
	}
}

func TestDijkstra_SingleVertexAndSelfLoop(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNode()
	_ = g.AddEdge(1, 1, 3)
	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := res.Distance(1); !ok || d != 0 {
		t.Fatalf("Distance(1) = %d,%v; want 0,true", d, ok)
	}
}

// ------------------------------------------------------------------------
// 3. Orientation and thresholds
// ------------------------------------------------------------------------

func TestDijkstra_DirectedArcsOneWay(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddNodes(3)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(3, 2, 1)
	_ = g.AddEdge(2, 3, 10, core.WithEdgeDirected(false))

	res, _ := dijkstra.Dijkstra(g, 2)
	if res.Reachable(1) {
		t.Fatal("walked a directed arc backwards")
	}
	if d, _ := res.Distance(3); d != 10 {
		t.Fatalf("Distance(3) = %d, want 10 via undirected edge", d)
	}
}

func TestDijkstra_MaxDistanceAndInfThreshold(t *testing.T) {
	g := triangle(t)

	res, _ := dijkstra.Dijkstra(g, 1, dijkstra.WithMaxDistance(4))
	if res.Reachable(3) {
		t.Fatal("vertex 3 at distance 5 must be beyond MaxDistance 4")
	}
	if d, ok := res.Distance(2); !ok || d != 4 {
		t.Fatalf("Distance(2) = %d,%v", d, ok)
	}

	// Edge 1—3 (7) becomes a wall; the two-hop route is unaffected.
	res, _ = dijkstra.Dijkstra(g, 1, dijkstra.WithInfEdgeThreshold(5))
	if d, _ := res.Distance(3); d != 5 {
		t.Fatalf("Distance(3) = %d, want 5", d)
	}

	// From 3 only the weight-1 edge is passable, so 1 is cut off.
	res, _ = dijkstra.Dijkstra(g, 3, dijkstra.WithInfEdgeThreshold(2))
	if d, ok := res.Distance(2); !ok || d != 1 {
		t.Fatalf("Distance(2) = %d,%v; want 1,true", d, ok)
	}
	if res.Reachable(1) {
		t.Fatal("vertex 1 must be behind walls")
	}
}

// ------------------------------------------------------------------------
// 4. Brute-force cross-check
// ------------------------------------------------------------------------

// bruteForce enumerates every simple path from src and keeps the cheapest per target.
func bruteForce(g *core.Graph, src core.NodeID) map[core.NodeID]int64 {
	best := map[core.NodeID]int64{src: 0}
	onPath := make([]bool, g.NodeCount()+1)
	var walk func(u core.NodeID, cost int64)
	walk = func(u core.NodeID, cost int64) {
		onPath[u] = true
		arcs, _ := g.Neighbors(u)
		for _, a := range arcs {
			if onPath[a.To] {
				continue
			}
			c := cost + a.Weight
			if d, ok := best[a.To]; !ok || c < d {
				best[a.To] = c
			}
			walk(a.To, c)
		}
		onPath[u] = false
	}
	walk(src, 0)

	return best
}

// TestDijkstra_HugeWeights checks that sums beyond int64 never wrap: a route
// that does not fit stays unreachable, one that lands exactly on
// math.MaxInt64 is kept.
func TestDijkstra_HugeWeights(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(4)
	_ = g.AddEdge(1, 2, math.MaxInt64-1)
	_ = g.AddEdge(2, 3, math.MaxInt64-1)
	_ = g.AddEdge(1, 4, math.MaxInt64-5)

	res, err := dijkstra.Dijkstra(g, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := res.Distance(2); !ok || d != math.MaxInt64-1 {
		t.Fatalf("dist[2] = %d,%v; want MaxInt64-1,true", d, ok)
	}
	if d, ok := res.Distance(3); ok {
		t.Fatalf("dist[3] = %d; sum overflows int64 and must stay unreachable", d)
	}

	_ = g.AddEdge(4, 3, 5)
	res, err = dijkstra.Dijkstra(g, 1, dijkstra.WithReturnPath())
	if err != nil {
		t.Fatal(err)
	}
	if d, ok := res.Distance(3); !ok || d != math.MaxInt64 {
		t.Fatalf("dist[3] = %d,%v; want MaxInt64,true", d, ok)
	}
	if p, _ := res.PathTo(3); !slices.Equal(p, []core.NodeID{1, 4, 3}) {
		t.Fatalf("PathTo(3) = %v, want [1 4 3]", p)
	}
}

func TestDijkstra_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for round := 0; round < 40; round++ {
		n := 2 + rng.Intn(6)
		g := core.NewGraph(core.WithDirected(round%2 == 0))
		_, _ = g.AddNodes(n)
		for i := rng.Intn(2 * n); i >= 0; i-- {
			u := core.NodeID(1 + rng.Intn(n))
			v := core.NodeID(1 + rng.Intn(n))
			_ = g.AddEdge(u, v, int64(rng.Intn(10)))
		}

		src := core.NodeID(1 + rng.Intn(n))
		res, err := dijkstra.Dijkstra(g, src)
		if err != nil {
			t.Fatalf("round %d: %v", round, err)
		}
		want := bruteForce(g, src)
		got := res.Distances()
		if len(got) != len(want) {
			t.Fatalf("round %d: reachable set %v, want %v", round, got, want)
		}
		for v, d := range want {
			if got[v] != d {
				t.Fatalf("round %d: dist[%d] = %d, want %d", round, v, got[v], d)
			}
		}
	}
}
