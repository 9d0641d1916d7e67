// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for core.Graph operations.
package core_test

import (
	"testing"

	"github.com/katalvlaran/dsalab/core"
)

// BenchmarkAddNode measures node growth including the dense matrix column append.
func BenchmarkAddNode(b *testing.B) {
	g := core.NewGraph()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%1024 == 0 {
			g = core.NewGraph()
		}
		_, _ = g.AddNode()
	}
}

// BenchmarkAddEdge measures edge insertion in a fixed 512-node graph.
func BenchmarkAddEdge(b *testing.B) {
	const n = 512
	g := core.NewGraph(core.WithCapacity(n))
	_, _ = g.AddNodes(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		u := core.NodeID(i%n + 1)
		v := core.NodeID((i*7)%n + 1)
		_ = g.AddEdge(u, v, int64(i%100))
	}
}

// BenchmarkNeighbors measures copying a 1000-arc adjacency list.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewGraph()
	_, _ = g.AddNodes(1001)
	for i := 2; i <= 1001; i++ {
		_ = g.AddEdge(1, core.NodeID(i), 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(1)
	}
}
