// SPDX-License-Identifier: MIT
package toposort_test

import (
	"fmt"

	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/toposort"
)

func ExampleKahn() {
	g := core.NewGraph(core.WithDirected(true))
	_, _ = g.AddNodes(4)
	_ = g.AddEdge(1, 2, 0)
	_ = g.AddEdge(1, 3, 0)
	_ = g.AddEdge(3, 4, 0)
	_ = g.AddEdge(2, 4, 0)

	order, err := toposort.Kahn(g)
	fmt.Println(order, err)

	_ = g.AddEdge(4, 1, 0)
	_, err = toposort.Kahn(g)
	fmt.Println(err)

	// Output:
	// [1 2 3 4] <nil>
	// toposort: cycle detected: 0 of 4 nodes ordered
}
