package prim_kruskal

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mstwalk/core"
)

// weightTolerance bounds the relative drift accepted between TotalWeight and
// the recomputed edge sum.
const weightTolerance = 1e-9

// Validate checks that r is a spanning tree of the vertices 1..n:
// exactly n−1 edges, endpoints in range, no cycle (union-find closure leaves a
// single set), and TotalWeight equal to the edge sum.
//
// Errors: ErrInvalidTree wrapped with the first violation found.
// Complexity: O(n·α(n)).
func (r Result) Validate(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidTree, n)
	}
	if len(r.Edges) != n-1 {
		return fmt.Errorf("%w: %d edges, want %d", ErrInvalidTree, len(r.Edges), n-1)
	}

	ds := NewDisjointSet(n)
	var sum float64
	for _, e := range r.Edges {
		if !e.U.Valid(n) || !e.V.Valid(n) {
			return fmt.Errorf("%w: edge %v out of range", ErrInvalidTree, e)
		}
		if !ds.Union(e.U, e.V) {
			return fmt.Errorf("%w: edge %v closes a cycle", ErrInvalidTree, e)
		}
		sum += e.Weight
	}
	if ds.Sets() != 1 {
		return fmt.Errorf("%w: %d components", ErrInvalidTree, ds.Sets())
	}
	if math.Abs(sum-r.TotalWeight) > weightTolerance*math.Max(1, math.Abs(sum)) {
		return fmt.Errorf("%w: total %g, edge sum %g", ErrInvalidTree, r.TotalWeight, sum)
	}

	return nil
}

// SubsetOf reports whether every edge of r occurs in edges with the same
// weight, in either orientation.
func (r Result) SubsetOf(edges []core.Edge) bool {
	have := make(map[core.Edge]struct{}, len(edges))
	for _, e := range edges {
		have[e.Canonical()] = struct{}{}
	}
	for _, e := range r.Edges {
		if _, ok := have[e.Canonical()]; !ok {
			return false
		}
	}

	return true
}
