// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Dense all-pairs shortest paths (Floyd–Warshall) with deterministic loop order.
//
// Contract:
//   - Square matrix; an absent cell means "no path"; the diagonal must be present and 0.

package matrix

import (
	"fmt"
	"math"

	"github.com/katalvlaran/dsalab/core"
)

const (
	opFloydWarshall = "FloydWarshall"
	opAllPairs      = "AllPairs"
)

// FloydWarshall computes all-pairs shortest paths in place on d.
//
// Loop order is fixed (k → i → j). A candidate through k is considered only
// when both legs i→k and k→j are present, and replaces i→j when i→j is absent
// or strictly longer.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrNonZeroDiagonal.
//
// A candidate whose sum does not fit in int64 is skipped: it can only be
// longer than math.MaxInt64 or shorter than math.MinInt64, and the latter
// needs a negative cycle that the diagonal already reports.
//
// Negative edge weights are allowed; after a negative cycle some diagonal
// entries become negative, which callers can check with HasNegativeCycle.
//
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return matrixErrorf(opFloydWarshall, ErrNilMatrix)
	}
	if d.r != d.c {
		return matrixErrorf(opFloydWarshall, fmt.Errorf("%dx%d: %w", d.r, d.c, ErrNonSquare))
	}
	n := d.r
	for i := 0; i < n; i++ {
		if c := d.data[i*n+i]; !c.OK || c.Value != 0 {
			return matrixErrorf(opFloydWarshall, fmt.Errorf("row %d: %w", i, ErrNonZeroDiagonal))
		}
	}

	data := d.data
	for k := 0; k < n; k++ { // intermediate vertex
		baseK := k * n
		for i := 0; i < n; i++ { // source
			ik := data[i*n+k]
			if !ik.OK {
				continue
			}
			baseI := i * n
			for j := 0; j < n; j++ { // destination
				kj := data[baseK+j]
				if !kj.OK {
					continue
				}
				cand, ok := addInt64(ik.Value, kj.Value)
				if !ok {
					continue
				}
				if ij := data[baseI+j]; !ij.OK || cand < ij.Value {
					data[baseI+j] = Cell{Value: cand, OK: true}
				}
			}
		}
	}

	return nil
}

// AllPairs returns the shortest-path distance between every ordered pair of
// g's nodes. Use Dense.Distance(u, v) for 1-based lookups.
func AllPairs(g *core.Graph) (*Dense, error) {
	d, err := FromGraph(g)
	if err != nil {
		return nil, matrixErrorf(opAllPairs, err)
	}
	if err = FloydWarshall(d); err != nil {
		return nil, err
	}

	return d, nil
}

// addInt64 returns a+b and false when the sum overflows.
func addInt64(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}

	return a + b, true
}

// HasNegativeCycle reports whether a FloydWarshall result has a negative diagonal.
func HasNegativeCycle(d *Dense) bool {
	for i := 0; i < d.r && i < d.c; i++ {
		if c := d.data[i*d.c+i]; c.OK && c.Value < 0 {
			return true
		}
	}

	return false
}
