// Package prim_kruskal provides an implementation of Prim’s Minimum Spanning
// Tree algorithm driven by an indexed priority queue with decrease-key.
package prim_kruskal

import (
	"math"

	"github.com/katalvlaran/mstwalk/core"
	"github.com/katalvlaran/mstwalk/pqueue"
)

// Prim computes the MST of the undirected graph (1..n, edges) by growing a
// tree from the root vertex (DefaultRoot unless WithRoot is given).
//
// Error Conditions:
//   - ErrDisconnected  : n == 0, or fewer than n−1 edges could be accepted.
//   - ErrRootOutOfRange: the root is not in [1,n].
//
// Steps:
//  1. Insert every vertex into an IndexedPQ: the root with priority 0 and
//     parent core.NoVertex, all others with +Inf and core.Unassigned.
//  2. While the queue is non-empty:
//     a. Read (priority, parent) of the minimum and extract it as u.
//     b. If parent is a real vertex, accept edge (u, parent, priority).
//     c. For every j still queued with w(u,j) < priority(j), DecreaseKey(j, w, u).
//  3. A vertex extracted at +Inf has no parent and contributes no edge, so a
//     disconnected input ends with fewer than n−1 edges → ErrDisconnected.
//
// Both weight lookups (see WeightLookup) yield the same total weight; parallel
// edges resolve to the lightest one in either mode.
//
// Complexity:
//
//	LookupAdjacency: O((N + E) log N) time, O(N + E) memory.
//	LookupDense:     O(N² + E log N) time, O(N²) memory.
func Prim(n int, edges []core.Edge, opts ...Option) (Result, error) {
	// 1. Resolve options, Prim being implied.
	cfg := DefaultOptions()
	cfg.Method = MethodPrim
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2. Degenerate sizes.
	if n <= 0 {
		return Result{}, disconnected(0, n)
	}
	if !cfg.Root.Valid(n) {
		return Result{}, ErrRootOutOfRange
	}
	if n == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	// 3. Seed the queue: every vertex present from the start.
	weights := newWeightSource(n, edges, cfg.Lookup)
	pq := pqueue.New(n)
	inf := math.Inf(1)
	for v := core.Vertex(1); int(v) <= n; v++ {
		if v == cfg.Root {
			_, _ = pq.Insert(v, 0, core.NoVertex)
			continue
		}
		_, _ = pq.Insert(v, inf, core.Unassigned)
	}

	// 4. Main loop: one extraction per vertex.
	mst := make([]core.Edge, 0, n-1)
	var total float64
	for !pq.IsEmpty() {
		w, parent, _ := pq.PeekMin()
		u, _ := pq.ExtractMin()

		if parent.Valid(n) {
			mst = append(mst, core.Edge{U: u, V: parent, Weight: w})
			total += w
		}
		weights.relax(u, pq)
	}

	// 5. Fewer than n−1 edges means some vertex was reached only at +Inf.
	if len(mst) < n-1 {
		return Result{}, disconnected(len(mst), n)
	}

	return Result{Edges: mst, TotalWeight: total}, nil
}

// weightSource relaxes the queued neighbors of a freshly extracted vertex.
type weightSource interface {
	relax(u core.Vertex, pq *pqueue.IndexedPQ)
}

// newWeightSource builds the lookup structure selected by l.
func newWeightSource(n int, edges []core.Edge, l WeightLookup) weightSource {
	if l == LookupDense {
		return newDenseWeights(n, edges)
	}

	return adjacencyWeights{adj: core.BuildAdjacency(n, edges, false)}
}

// adjacencyWeights scans only u's neighbors. Vertices that are not adjacent to
// u keep their priority, which is exactly what a +Inf matrix entry would do.
type adjacencyWeights struct {
	adj *core.AdjacencyList
}

func (a adjacencyWeights) relax(u core.Vertex, pq *pqueue.IndexedPQ) {
	for _, nb := range a.adj.Neighbors(u) {
		// DecreaseKey is a no-op for extracted vertices and non-improving weights.
		pq.DecreaseKey(nb.To, nb.Weight, u)
	}
}

// denseWeights is a row-major (n+1)×(n+1) matrix; absent pairs hold +Inf.
type denseWeights struct {
	n int
	w []float64
}

func newDenseWeights(n int, edges []core.Edge) *denseWeights {
	stride := n + 1
	d := &denseWeights{n: n, w: make([]float64, stride*stride)}
	inf := math.Inf(1)
	for i := range d.w {
		d.w[i] = inf
	}
	for _, e := range edges {
		// Keep the lightest of any parallel entries, matching adjacency mode.
		if e.Weight < d.w[int(e.U)*stride+int(e.V)] {
			d.w[int(e.U)*stride+int(e.V)] = e.Weight
			d.w[int(e.V)*stride+int(e.U)] = e.Weight
		}
	}

	return d
}

func (d *denseWeights) relax(u core.Vertex, pq *pqueue.IndexedPQ) {
	row := d.w[int(u)*(d.n+1):]
	for j := 1; j <= d.n; j++ {
		if core.Vertex(j) == u || !pq.Contains(core.Vertex(j)) {
			continue
		}
		pq.DecreaseKey(core.Vertex(j), row[j], u)
	}
}
