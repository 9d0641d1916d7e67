// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

const (
	methodGrid  = "Grid"
	minGridSide = 1
)

// Grid builds a rows×cols 4-neighborhood lattice. Cell (r, c) is node
// b + r*cols + c. For each cell in row-major order the right edge is
// emitted before the down edge.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridSide || cols < minGridSide {
			return fmt.Errorf("%s: %dx%d below %dx%d: %w", methodGrid, rows, cols, minGridSide, minGridSide, ErrTooFewVertices)
		}
		b, err := addBlock(g, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) core.NodeID { return b + core.NodeID(r*cols+c) }

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := link(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := link(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
