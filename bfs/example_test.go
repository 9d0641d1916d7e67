// SPDX-License-Identifier: MIT
package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/dsalab/bfs"
	"github.com/katalvlaran/dsalab/core"
)

// ExampleBFS demonstrates BFS layering on a 3×3 grid; node (i, j) has id 3i+j+1.
func ExampleBFS() {
	g := core.NewGraph()
	_, _ = g.AddNodes(9)
	id := func(i, j int) core.NodeID { return core.NodeID(3*i + j + 1) }
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(id(i, j), id(i, j+1), 1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(id(i, j), id(i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS(g, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	fmt.Println(res.Depth[9])

	// Output:
	// [1 2 4 3 5 7 6 8 9]
	// 4
}
