// SPDX-License-Identifier: MIT

package prim_kruskal

import (
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

// Prim computes the MST by growing a tree from a root (node 1 unless WithRoot).
//
// It is the dense-graph variant: instead of a heap, each of the n rounds scans
// all nodes for the unused one with the smallest key, then lowers the keys of
// its neighbors. With WithSpanningForest, a round that finds no reachable node
// starts a new tree at the lowest-numbered unused node.
//
// Error Conditions:
//   - ErrInvalidGraph, ErrEmptyGraph : as Kruskal.
//   - ErrRootNotFound                : root outside 1..n.
//   - ErrDisconnected                : some node unreachable from root and no forest requested.
//   - ErrWeightOverflow              : total weight does not fit in int64.
//
// Complexity: O(V² + E). Memory: O(V).
func Prim(graph *core.Graph, opts ...Option) ([]core.Edge, int64, error) {
	cfg := buildOptions(opts)

	if err := validate(graph); err != nil {
		return nil, 0, err
	}
	if !graph.HasNode(cfg.Root) {
		return nil, 0, fmt.Errorf("%w: %d", ErrRootNotFound, cfg.Root)
	}

	n := graph.NodeCount()
	var (
		key    = make([]int64, n+1)
		keyed  = make([]bool, n+1) // key[v] holds a real candidate weight
		used   = make([]bool, n+1)
		parent = make([]core.NodeID, n+1)
		mst    = make([]core.Edge, 0, n-1)
		total  int64
		err    error
	)
	keyed[cfg.Root] = true

	for round := 0; round < n; round++ {
		// 1) Pick the unused keyed node with the smallest key.
		var u core.NodeID
		for v := 1; v <= n; v++ {
			if !used[v] && keyed[v] && (u == 0 || key[v] < key[u]) {
				u = core.NodeID(v)
			}
		}

		// 2) Nothing reachable remains: either fail or seed a new tree.
		if u == 0 {
			if !cfg.Forest {
				return nil, 0, ErrDisconnected
			}
			for v := 1; v <= n; v++ {
				if !used[v] {
					u = core.NodeID(v)
					break
				}
			}
		}

		// 3) Commit u and its connecting edge.
		used[u] = true
		if parent[u] != 0 {
			if total, err = addWeight(total, key[u]); err != nil {
				return nil, 0, err
			}
			mst = append(mst, core.Edge{From: parent[u], To: u, Weight: key[u]})
		}

		// 4) Lower neighbor keys.
		arcs, err := graph.Neighbors(u)
		if err != nil {
			return nil, 0, err
		}
		for _, a := range arcs {
			if used[a.To] {
				continue
			}
			if !keyed[a.To] || a.Weight < key[a.To] {
				key[a.To] = a.Weight
				keyed[a.To] = true
				parent[a.To] = u
			}
		}
	}

	return mst, total, nil
}
