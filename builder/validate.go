// SPDX-License-Identifier: MIT
// Package: mstwalk/builder
//
// validate.go: input checks ahead of MST construction.

package builder

import (
	"math"

	"github.com/katalvlaran/mstwalk/core"
)

const methodValidate = "Validate"

// Validate checks an edge list against vertex count n and returns the first
// violation found, in input order:
//
//	ErrTooFewVertices    n < 1
//	ErrVertexOutOfRange  endpoint outside [1,n]
//	ErrSelfLoop          U == V
//	ErrNonFiniteWeight   weight is NaN or ±Inf
//	ErrNegativeWeight    weight < 0
//	ErrDuplicateEdge     unordered pair repeated
//	ErrIncompleteGraph   requireComplete and fewer than n(n−1)/2 pairs
//
// Complexity: O(E) time, O(E) space.
func Validate(n int, edges []core.Edge, requireComplete bool) error {
	if n < 1 {
		return builderErrorf(methodValidate, ErrTooFewVertices, "n=%d", n)
	}
	seen := make(map[[2]core.Vertex]struct{}, len(edges))
	for i, e := range edges {
		if !e.U.Valid(n) || !e.V.Valid(n) {
			return builderErrorf(methodValidate, ErrVertexOutOfRange, "edge %d (%v) with n=%d", i+1, e, n)
		}
		if e.U == e.V {
			return builderErrorf(methodValidate, ErrSelfLoop, "edge %d (%v)", i+1, e)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return builderErrorf(methodValidate, ErrNonFiniteWeight, "edge %d (%v)", i+1, e)
		}
		if e.Weight < 0 {
			return builderErrorf(methodValidate, ErrNegativeWeight, "edge %d (%v)", i+1, e)
		}
		c := e.Canonical()
		key := [2]core.Vertex{c.U, c.V}
		if _, dup := seen[key]; dup {
			return builderErrorf(methodValidate, ErrDuplicateEdge, "edge %d (%v)", i+1, e)
		}
		seen[key] = struct{}{}
	}
	if want := core.CompleteEdgeCount(n); requireComplete && len(seen) != want {
		return builderErrorf(methodValidate, ErrIncompleteGraph, "%d of %d pairs", len(seen), want)
	}

	return nil
}
