// SPDX-License-Identifier: MIT
// Package: mstwalk/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults:
//   • rng       = nil              (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn  (every edge weighs DefaultEdgeWeight)
//   • points    = nil              (no Euclidean policy)

package builder

import (
	"math/rand"

	"github.com/katalvlaran/mstwalk/core"
)

// weightPolicy selects how Complete assigns pair weights.
type weightPolicy uint8

const (
	policyFn           weightPolicy = iota // weightFn(rng) per pair
	policyPoints                           // Euclidean over caller points
	policyRandomPoints                     // Euclidean over RandomPoints(n, rng)
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for policyFn.
	weightFn WeightFn
	// stochastic marks a weightFn that must see a non-nil rng.
	stochastic bool

	policy weightPolicy
	points []Point
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:      nil,
		weightFn: DefaultWeightFn,
		policy:   policyFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// pairWeights resolves the configured policy into a per-pair weight function
// for a graph on n vertices.
func (c builderConfig) pairWeights(method string, n int) (func(u, v core.Vertex) float64, error) {
	switch c.policy {
	case policyRandomPoints:
		if c.rng == nil {
			return nil, builderErrorf(method, ErrNeedRandSource, "WithRandomPoints")
		}
		return euclideanWeights(RandomPoints(n, c.rng)), nil
	case policyPoints:
		if len(c.points) < n {
			return nil, builderErrorf(method, ErrPointCount, "have %d, need %d", len(c.points), n)
		}
		return euclideanWeights(c.points), nil
	default:
		if c.stochastic && c.rng == nil {
			return nil, builderErrorf(method, ErrNeedRandSource, "stochastic weight policy")
		}
		fn, rng := c.weightFn, c.rng
		return func(core.Vertex, core.Vertex) float64 { return fn(rng) }, nil
	}
}

// euclideanWeights maps vertex v to pts[v-1].
func euclideanWeights(pts []Point) func(u, v core.Vertex) float64 {
	return func(u, v core.Vertex) float64 {
		return Euclidean(pts[u-1], pts[v-1])
	}
}
