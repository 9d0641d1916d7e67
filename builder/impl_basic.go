// SPDX-License-Identifier: MIT
//
// impl_basic.go: Path, Cycle, Star, Wheel, Complete.
//
// Node numbering is relative to the block start b (first id of the block):
//   Path/Cycle  b .. b+n-1, edges i→i+1 in ascending i (Cycle closes n-1→0)
//   Star/Wheel  center b, leaves b+1 .. b+n-1
//   Complete    all pairs i<j in lexicographic order

package builder

import (
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodWheel    = "Wheel"
	methodComplete = "Complete"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
)

func tooFew(method string, n, least int) error {
	return fmt.Errorf("%s: n=%d < min=%d: %w", method, n, least, ErrTooFewVertices)
}

// Path builds P_n (n ≥ 2).
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, n, minPathNodes)
		}
		b, err := addBlock(g, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i < n-1; i++ {
			if err := link(g, cfg, methodPath, b+core.NodeID(i), b+core.NodeID(i+1)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Cycle builds C_n (n ≥ 3).
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, n, minCycleNodes)
		}
		b, err := addBlock(g, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err := link(g, cfg, methodCycle, b+core.NodeID(i), b+core.NodeID((i+1)%n)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Star builds a center with n-1 leaves (n ≥ 2).
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, n, minStarNodes)
		}
		b, err := addBlock(g, methodStar, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := link(g, cfg, methodStar, b, b+core.NodeID(i)); err != nil {
				return err
			}
		}

		return nil
	}
}

// Wheel builds W_n: a rim cycle of n-1 nodes plus spokes to the center (n ≥ 4).
// Spokes come first, then the rim.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, n, minWheelNodes)
		}
		b, err := addBlock(g, methodWheel, n)
		if err != nil {
			return err
		}
		rim := n - 1
		for i := 1; i <= rim; i++ {
			if err := link(g, cfg, methodWheel, b, b+core.NodeID(i)); err != nil {
				return err
			}
		}
		for i := 0; i < rim; i++ {
			u := b + 1 + core.NodeID(i)
			v := b + 1 + core.NodeID((i+1)%rim)
			if err := link(g, cfg, methodWheel, u, v); err != nil {
				return err
			}
		}

		return nil
	}
}

// Complete builds K_n (n ≥ 1).
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, n, minCompleteNodes)
		}
		b, err := addBlock(g, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := link(g, cfg, methodComplete, b+core.NodeID(i), b+core.NodeID(j)); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
