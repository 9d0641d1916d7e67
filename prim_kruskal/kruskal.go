// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"sort"

	"github.com/katalvlaran/dsalab/core"
	"github.com/katalvlaran/dsalab/disjointset"
)

// Kruskal computes the Minimum Spanning Tree (MST) of an undirected graph.
// It uses disjointset.Set with path compression and union by rank.
//
// Error Conditions:
//   - ErrInvalidGraph : graph is nil or has any directed edge.
//   - ErrEmptyGraph   : graph has no nodes.
//   - ErrDisconnected : graph is not connected and WithSpanningForest is not set.
//   - ErrWeightOverflow : total weight does not fit in int64.
//
// Steps:
//  1. Validate the graph.
//  2. Collect all logical edges via graph.Edges(), skip self-loops.
//  3. Stable-sort edges by ascending weight (ties keep insertion order).
//  4. Put every node 1..n in its own set.
//  5. Accept each edge whose endpoints lie in different sets and union them.
//  6. Stop at n-1 edges; fewer means the graph was disconnected.
//
// Complexity: O(E log E + α(V)·E). Memory: O(E + V).
func Kruskal(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := buildOptions(opts)

	// 1. Validate.
	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	nodes := graph.Nodes()

	// 2. Collect edges, skipping self-loops: they cannot be part of a spanning tree.
	all := graph.Edges()
	edges := make([]core.Edge, 0, len(all))
	for _, e := range all {
		if e.From != e.To {
			edges = append(edges, e)
		}
	}

	// 3. Sort by weight.
	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Weight < edges[j].Weight
	})

	// 4. Singletons.
	sets := disjointset.New(nodes...)

	// 5. Greedy selection.
	var (
		mst   = make([]core.Edge, 0, len(nodes)-1)
		total int64
	)
	for _, e := range edges {
		merged, err := sets.Union(e.From, e.To)
		if err != nil {
			return nil, 0, err
		}
		if !merged {
			continue
		}
		if total, err = addWeight(total, e.Weight); err != nil {
			return nil, 0, err
		}
		mst = append(mst, e)
		if len(mst) == len(nodes)-1 {
			break
		}
	}

	// 6. A spanning tree has exactly n-1 edges.
	if len(mst) < len(nodes)-1 && !cfg.Forest {
		return nil, 0, ErrDisconnected
	}

	return mst, total, nil
}
