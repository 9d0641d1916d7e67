// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/dsalab/core"
)

// Constructor adds one topology to g using the resolved configuration.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts, and applies cons in
// order. The first failing constructor aborts the build.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply runs cons against an existing graph. Nodes added by a failing
// constructor stay in g.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	cfg := newBuilderConfig(bopts...)
	if cfg.needRNG && cfg.rng == nil {
		return fmt.Errorf("BuildGraph: weight range: %w", ErrNeedRandSource)
	}

	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return nil
}

// addBlock appends n nodes and returns the id of the first.
func addBlock(g *core.Graph, method string, n int) (core.NodeID, error) {
	first := core.NodeID(g.NodeCount() + 1)
	if _, err := g.AddNodes(n); err != nil {
		return 0, fmt.Errorf("%s: AddNodes(%d): %w", method, n, err)
	}

	return first, nil
}

// link adds u-v with the next configured weight.
func link(g *core.Graph, cfg builderConfig, method string, u, v core.NodeID) error {
	w := cfg.weight()
	if err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}

// ByName resolves a topology name and its integer/float arguments, as typed
// at the prompt: "path 5", "grid 3 4", "random 10 0.3".
func ByName(kind string, args []string) (Constructor, error) {
	ints := func(want int) ([]int, error) {
		if len(args) != want {
			return nil, fmt.Errorf("%w: %s takes %d arguments", ErrUnknownTopology, kind, want)
		}
		out := make([]int, want)
		for i, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return nil, fmt.Errorf("%s: argument %q: %w", kind, a, err)
			}
			out[i] = n
		}
		return out, nil
	}

	switch strings.ToLower(kind) {
	case "path", "cycle", "star", "wheel", "complete":
		n, err := ints(1)
		if err != nil {
			return nil, err
		}
		return map[string]func(int) Constructor{
			"path": Path, "cycle": Cycle, "star": Star, "wheel": Wheel, "complete": Complete,
		}[strings.ToLower(kind)](n[0]), nil
	case "grid":
		rc, err := ints(2)
		if err != nil {
			return nil, err
		}
		return Grid(rc[0], rc[1]), nil
	case "random":
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: random takes N P", ErrUnknownTopology)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("random: argument %q: %w", args[0], err)
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("random: argument %q: %w", args[1], err)
		}
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, kind)
}
