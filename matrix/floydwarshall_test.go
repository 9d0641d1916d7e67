// SPDX-License-Identifier: MIT
package matrix_test

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/dijkstra"
	"github.com/katalvlaran/dsalab/matrix"
)

// ---------- FloydWarshall ----------

func TestFloydWarshall_Errors(t *testing.T) {
	if err := matrix.FloydWarshall(nil); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("nil: got %v, want ErrNilMatrix", err)
	}

	ns, _ := matrix.NewDense(3, 4)
	if err := matrix.FloydWarshall(ns); !errors.Is(err, matrix.ErrNonSquare) {
		t.Fatalf("3x4: got %v, want ErrNonSquare", err)
	}

	sq, _ := matrix.NewDense(2, 2)
	if err := matrix.FloydWarshall(sq); !errors.Is(err, matrix.ErrNonZeroDiagonal) {
		t.Fatalf("absent diagonal: got %v, want ErrNonZeroDiagonal", err)
	}

	if _, err := matrix.AllPairs(nil); !errors.Is(err, matrix.ErrGraphNil) {
		t.Fatalf("AllPairs(nil): got %v, want ErrGraphNil", err)
	}
}

// Classic CLRS example (5×5, directed, negative edges, no negative cycles).
func TestFloydWarshall_CLRS(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddNodes(5)
	for _, e := range []core.Edge{
		{From: 1, To: 2, Weight: 3}, {From: 1, To: 3, Weight: 8}, {From: 1, To: 5, Weight: -4},
		{From: 2, To: 4, Weight: 1}, {From: 2, To: 5, Weight: 7},
		{From: 3, To: 2, Weight: 4},
		{From: 4, To: 1, Weight: 2}, {From: 4, To: 3, Weight: -5},
		{From: 5, To: 4, Weight: 6},
	} {
		if err := g.AddEdge(e.From, e.To, e.Weight); err != nil {
			t.Fatal(err)
		}
	}

	d, err := matrix.AllPairs(g)
	if err != nil {
		t.Fatalf("AllPairs: %v", err)
	}
	want := [5][5]int64{
		{0, 1, -3, 2, -4},
		{3, 0, -4, 1, -1},
		{7, 4, 0, 5, 3},
		{2, -1, -5, 0, -2},
		{8, 5, 1, 6, 0},
	}
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			got, ok := d.Distance(core.NodeID(i+1), core.NodeID(j+1))
			if !ok || got != want[i][j] {
				t.Fatalf("d[%d][%d] = %d,%v; want %d", i+1, j+1, got, ok, want[i][j])
			}
		}
	}
	if matrix.HasNegativeCycle(d) {
		t.Fatal("reported a negative cycle where none exists")
	}
}

func TestFloydWarshall_TriangleAndUnreachable(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(4)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(1, 3, 7)

	d, err := matrix.AllPairs(g)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := d.Distance(1, 3); v != 5 {
		t.Fatalf("d(1,3) = %d, want 5", v)
	}
	if v, _ := d.Distance(3, 1); v != 5 {
		t.Fatalf("d(3,1) = %d, want 5", v)
	}
	if _, ok := d.Distance(1, 4); ok {
		t.Fatal("node 4 is isolated; distance must be absent")
	}
	if _, ok := d.Distance(0, 1); ok {
		t.Fatal("id 0 must be absent")
	}
	if v, ok := d.Distance(4, 4); !ok || v != 0 {
		t.Fatalf("d(4,4) = %d,%v; want 0,true", v, ok)
	}
}

func TestFloydWarshall_NegativeCycle(t *testing.T) {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddNodes(2)
	_ = g.AddEdge(1, 2, 1)
	_ = g.AddEdge(2, 1, -3)
	d, err := matrix.AllPairs(g)
	if err != nil {
		t.Fatal(err)
	}
	if !matrix.HasNegativeCycle(d) {
		t.Fatal("negative cycle not detected")
	}
}

func TestFloydWarshall_HugeWeights(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddNodes(4)
	_ = g.AddEdge(1, 2, math.MaxInt64-1)
	_ = g.AddEdge(2, 3, math.MaxInt64-1)

	d, err := matrix.AllPairs(g)
	if err != nil {
		t.Fatal(err)
	}
	if matrix.HasNegativeCycle(d) {
		t.Fatal("overflowing sums must not look like a negative cycle")
	}
	if v, ok := d.Distance(1, 2); !ok || v != math.MaxInt64-1 {
		t.Fatalf("d(1,2) = %d,%v; want MaxInt64-1,true", v, ok)
	}
	if v, ok := d.Distance(1, 3); ok {
		t.Fatalf("d(1,3) = %d; the sum does not fit in int64", v)
	}

	_ = g.AddEdge(1, 4, math.MaxInt64-5)
	_ = g.AddEdge(4, 3, 5)
	d, err = matrix.AllPairs(g)
	if err != nil {
		t.Fatal(err)
	}
	if v, ok := d.Distance(1, 3); !ok || v != math.MaxInt64 {
		t.Fatalf("d(1,3) = %d,%v; want MaxInt64,true", v, ok)
	}
	if matrix.HasNegativeCycle(d) {
		t.Fatal("unexpected negative cycle")
	}
}

// TestAllPairs_MatchesDijkstra checks that each row equals a Dijkstra run.
func TestAllPairs_MatchesDijkstra(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for round := 0; round < 25; round++ {
		n := 1 + rng.Intn(12)
		g := core.NewGraph(core.WithDirected(round%3 != 0))
		_, _ = g.AddNodes(n)
		for i := rng.Intn(3 * n); i > 0; i-- {
			_ = g.AddEdge(core.NodeID(1+rng.Intn(n)), core.NodeID(1+rng.Intn(n)), int64(rng.Intn(20)))
		}

		d, err := matrix.AllPairs(g)
		if err != nil {
			t.Fatal(err)
		}
		for _, s := range g.Nodes() {
			res, err := dijkstra.Dijkstra(g, s)
			if err != nil {
				t.Fatal(err)
			}
			for _, v := range g.Nodes() {
				want, wok := res.Distance(v)
				got, gok := d.Distance(s, v)
				if want != got || wok != gok {
					t.Fatalf("round %d: (%d,%d) FW=%d,%v Dijkstra=%d,%v", round, s, v, got, gok, want, wok)
				}
			}
		}
	}
}
