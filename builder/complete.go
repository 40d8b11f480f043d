// SPDX-License-Identifier: MIT
// Package: mstwalk/builder
//
// complete.go: Complete(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j} with 1 ≤ i < j ≤ n exactly once,
//     lexicographic by (i,j).
//   • Weight policy from options; stochastic policies need an RNG.
//
// Complexity:
//   • Time: O(n²). Space: O(n²) for the returned slice.

package builder

import (
	"github.com/katalvlaran/mstwalk/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete returns the edges of K_n on vertices 1..n.
func Complete(n int, opts ...BuilderOption) ([]core.Edge, error) {
	if n < minCompleteNodes {
		return nil, builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
	}
	cfg := newBuilderConfig(opts...)
	weight, err := cfg.pairWeights(methodComplete, n)
	if err != nil {
		return nil, err
	}

	edges := make([]core.Edge, 0, core.CompleteEdgeCount(n))
	for i := 1; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			u, v := core.Vertex(i), core.Vertex(j)
			edges = append(edges, core.Edge{U: u, V: v, Weight: weight(u, v)})
		}
	}

	return edges, nil
}
