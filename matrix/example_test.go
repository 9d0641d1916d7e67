// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/matrix"
)

// ExampleAllPairs prints the closed distance matrix of a triangle plus an isolated node.
func ExampleAllPairs() {
	g := core.NewGraph()
	_, _ = g.AddNodes(4)
	_ = g.AddEdge(1, 2, 4)
	_ = g.AddEdge(2, 3, 1)
	_ = g.AddEdge(1, 3, 7)

	d, err := matrix.AllPairs(g)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(d)

	// Output:
	// [0, 4, 5, -]
	// [4, 0, 1, -]
	// [5, 1, 0, -]
	// [-, -, -, 0]
}

// ExampleGrid shows that only populated cells are stored.
func ExampleGrid() {
	temps, _ := matrix.NewGrid[int](2, 2) // year × city
	_ = temps.Set(0, 1, 31)
	_ = temps.Set(1, 0, 28)

	for p, v := range temps.Present() {
		fmt.Println(p.Row, p.Col, v)
	}

	// Output:
	// 0 1 31
	// 1 0 28
}
