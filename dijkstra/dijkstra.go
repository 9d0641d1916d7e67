// SPDX-License-Identifier: MIT

package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/dsalab/core"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. source must be in 1..g.NodeCount() (ErrVertexNotFound).
//  3. No edge in g can have negative weight (ErrNegativeWeight).
//
// Options customization:
//
//   - WithReturnPath(): record predecessors for Result.PathTo.
//   - WithMaxDistance(x): vertices with distance > x stay unreachable (x ≥ 0).
//   - WithInfEdgeThreshold(t): edges with weight ≥ t are skipped (t > 0).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func Dijkstra(g *core.Graph, source core.NodeID, opts ...Option) (*Result, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate graph is non-nil
	if g == nil {
		return nil, ErrNilGraph
	}

	// 3) Validate source exists in the graph
	if !g.HasNode(source) {
		return nil, fmt.Errorf("%w: %d", ErrVertexNotFound, source)
	}

	// 4) Pre-scan all edges to detect negative weights. Fail fast with ErrNegativeWeight.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 5) Prepare per-run state.
	n := g.NodeCount()
	r := &runner{
		g:       g,
		options: cfg,
		res: &Result{
			source:  source,
			dist:    make([]int64, n+1),
			reached: make([]bool, n+1),
		},
		pq: make(nodePQ, 0, n),
	}
	if cfg.ReturnPath {
		r.res.prev = make([]core.NodeID, n+1)
	}

	// 6) Initialize and run the main loop.
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph // The input graph; read-only within Dijkstra.
	options Options
	res     *Result
	pq      nodePQ // Min-heap of *nodeItem for lazy priority queue.
}

// init marks the source as reached at distance 0 and seeds the heap with it.
func (r *runner) init() {
	src := r.res.source
	r.res.dist[src] = 0
	r.res.reached[src] = true

	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: src, dist: 0})
}

// process repeatedly extracts the vertex with the minimum tentative distance and
// relaxes its outgoing arcs until the heap is empty.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item from the heap.
		item := heap.Pop(&r.pq).(*nodeItem)

		// 2) Skip stale entries: a better distance was pushed after this one.
		if item.dist != r.res.dist[item.id] {
			continue
		}

		// 3) Relax all arcs leaving item.id.
		if err := r.relax(item.id, item.dist); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve every neighbor v of u via the arc (u, v, w).
// Arcs at or above InfEdgeThreshold are impassable, and candidates beyond
// MaxDistance are dropped. With the default cap of math.MaxInt64 a path whose
// length would not fit in int64 is treated as unreachable.
func (r *runner) relax(u core.NodeID, du int64) error {
	arcs, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: failed to get neighbors of %d: %w", u, err)
	}

	for _, a := range arcs {
		if a.Weight >= r.options.InfEdgeThreshold {
			continue
		}

		// du <= MaxDistance always holds, so the subtraction cannot overflow
		// and du + a.Weight is only formed when it fits under the cap.
		if a.Weight > r.options.MaxDistance-du {
			continue
		}
		newDist := du + a.Weight
		// Strict improvement only; equal distances do not re-enter the heap.
		if r.res.reached[a.To] && newDist >= r.res.dist[a.To] {
			continue
		}

		r.res.dist[a.To] = newDist
		r.res.reached[a.To] = true
		if r.res.prev != nil {
			r.res.prev[a.To] = u
		}
		heap.Push(&r.pq, &nodeItem{id: a.To, dist: newDist})
	}

	return nil
}

// nodeItem represents a vertex and its tentative distance from the source.
type nodeItem struct {
	id   core.NodeID
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, used with the
// lazy decrease-key approach: outdated entries stay in the heap and are
// recognized on pop because their dist no longer matches the best known one.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int           { return len(pq) }
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

// Push is called by heap.Push; x must be *nodeItem.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop is called by heap.Pop.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
