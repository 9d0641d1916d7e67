// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse builds an Erdős–Rényi G(n, p) graph: each unordered pair
// (i<j), or each ordered pair i≠j when the graph defaults to directed
// edges, is kept independently with probability p. p in (0,1) needs
// WithSeed; p == 0 and p == 1 are deterministic.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return tooFew(methodRandomSparse, n, minRandomSparseVertices)
		}
		if p < 0 || p > 1 {
			return fmt.Errorf("%s: p=%.6f not in [0,1]: %w", methodRandomSparse, p, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > 0 && p < 1 {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}

		b, err := addBlock(g, methodRandomSparse, n)
		if err != nil {
			return err
		}
		keep := func() bool {
			switch p {
			case 0:
				return false
			case 1:
				return true
			}
			return cfg.rng.Float64() < p
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			start := i + 1
			if directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !keep() {
					continue
				}
				if err := link(g, cfg, methodRandomSparse, b+core.NodeID(i), b+core.NodeID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
