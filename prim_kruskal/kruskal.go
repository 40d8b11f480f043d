// Package prim_kruskal provides an implementation of Kruskal’s Minimum
// Spanning Tree algorithm over a weight-sorted edge list and a DisjointSet.
package prim_kruskal

import (
	"math"
	"sort"

	"github.com/katalvlaran/mstwalk/core"
)

// Kruskal computes the MST of the undirected graph (1..n, edges).
//
// Error Conditions:
//   - ErrDisconnected: n == 0, or fewer than n−1 edges were accepted.
//
// Steps:
//  1. n == 1 → trivial MST (empty, weight 0).
//  2. Copy the edges, skipping self-loops and +Inf weights (absent edges, as
//     in Prim), and stable-sort ascending by weight so equal weights keep
//     their input order.
//  3. Scan: accept an edge whose endpoints lie in different sets and union them;
//     skip it otherwise (it would close a cycle). Stop at n−1 edges.
//  4. Fewer than n−1 accepted edges → ErrDisconnected.
//
// The input slice is not modified.
//
// Complexity: O(E log E + α(V)·E) time, O(E + V) memory.
func Kruskal(n int, edges []core.Edge) (Result, error) {
	// 1. Degenerate sizes.
	if n <= 0 {
		return Result{}, disconnected(0, n)
	}
	if n == 1 {
		return Result{Edges: []core.Edge{}}, nil
	}

	// 2. Collect and sort; self-loops and +Inf edges can never be tree edges.
	sorted := make([]core.Edge, 0, len(edges))
	for _, e := range edges {
		if e.U == e.V || math.IsInf(e.Weight, 1) {
			continue
		}
		sorted = append(sorted, e)
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Weight < sorted[j].Weight
	})

	// 3. Scan in weight order.
	ds := NewDisjointSet(n)
	mst := make([]core.Edge, 0, n-1)
	var total float64
	for _, e := range sorted {
		if !ds.Union(e.U, e.V) {
			continue
		}
		mst = append(mst, e)
		total += e.Weight
		if len(mst) == n-1 {
			break
		}
	}

	// 4. Disconnected input leaves more than one set.
	if len(mst) < n-1 {
		return Result{}, disconnected(len(mst), n)
	}

	return Result{Edges: mst, TotalWeight: total}, nil
}
