// SPDX-License-Identifier: MIT
// Package: mstwalk/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); never compare strings.
//   • Context (method, line, pair) is attached with %w at the return site.
//   • Option constructors panic on programmer error; everything else returns.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that n is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic policy was selected without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrVertexOutOfRange indicates an endpoint outside [1,n].
var ErrVertexOutOfRange = errors.New("builder: vertex out of range")

// ErrSelfLoop indicates an edge whose endpoints coincide.
var ErrSelfLoop = errors.New("builder: self-loop")

// ErrNegativeWeight indicates a finite weight below zero.
var ErrNegativeWeight = errors.New("builder: negative weight")

// ErrNonFiniteWeight indicates a NaN or infinite weight. An infinite edge
// means "no edge" to Prim, so it cannot be accepted as input.
var ErrNonFiniteWeight = errors.New("builder: non-finite weight")

// ErrDuplicateEdge indicates the same unordered pair given twice.
var ErrDuplicateEdge = errors.New("builder: duplicate edge")

// ErrIncompleteGraph indicates fewer than n(n-1)/2 distinct pairs where a
// complete graph was required.
var ErrIncompleteGraph = errors.New("builder: graph is not complete")

// ErrBadFormat indicates malformed edge-list text.
var ErrBadFormat = errors.New("builder: malformed edge list")

// ErrPointCount indicates that WithPoints supplied fewer points than vertices.
var ErrPointCount = errors.New("builder: not enough points")

// builderErrorf wraps sentinel with the method context:
// "<method>: <formatted message>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
