// SPDX-License-Identifier: MIT

package dijkstra

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/dsalab/core"
)

// Result holds the outcome of one Dijkstra run. Slices are indexed by
// core.NodeID; index 0 is unused.
type Result struct {
	source  core.NodeID
	dist    []int64
	reached []bool
	prev    []core.NodeID // nil unless WithReturnPath; 0 = no predecessor
}

// Source returns the vertex the distances are measured from.
func (r *Result) Source() core.NodeID { return r.source }

// Distance returns the shortest distance to v. ok is false when v is
// unreachable or not a vertex of the graph.
func (r *Result) Distance(v core.NodeID) (int64, bool) {
	if !r.Reachable(v) {
		return 0, false
	}

	return r.dist[v], true
}

// Reachable reports whether v was reached from the source.
func (r *Result) Reachable(v core.NodeID) bool {
	return v >= 1 && int(v) < len(r.reached) && r.reached[v]
}

// Distances returns the distance of every reachable vertex.
func (r *Result) Distances() map[core.NodeID]int64 {
	out := make(map[core.NodeID]int64)
	for v := 1; v < len(r.reached); v++ {
		if r.reached[v] {
			out[core.NodeID(v)] = r.dist[v]
		}
	}

	return out
}

// PathTo returns the vertices of a shortest path from the source to v,
// both ends included.
//
// Errors:
//   - ErrPathNotTracked if the run did not use WithReturnPath.
//   - ErrNoPath if v is unreachable.
func (r *Result) PathTo(v core.NodeID) ([]core.NodeID, error) {
	if r.prev == nil {
		return nil, ErrPathNotTracked
	}
	if !r.Reachable(v) {
		return nil, fmt.Errorf("%w: %d", ErrNoPath, v)
	}

	path := []core.NodeID{v}
	for cur := v; cur != r.source; {
		cur = r.prev[cur]
		path = append(path, cur)
	}
	slices.Reverse(path)

	return path, nil
}
