// SPDX-License-Identifier: MIT
// Package: mstwalk/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • The last weight policy option wins.

package builder

import (
	"math/rand"
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before construction begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic policies.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. The function receives
// the (possibly nil) RNG. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.policy = policyFn
		c.weightFn = fn
		c.stochastic = false
	}
}

// WithPoints weighs pair (u,v) by Euclidean(pts[u-1], pts[v-1]).
// The slice is retained, not copied. Panics on an empty slice.
func WithPoints(pts []Point) BuilderOption {
	if len(pts) == 0 {
		panic("builder: WithPoints(empty)")
	}
	return func(c *builderConfig) {
		c.policy = policyPoints
		c.points = pts
	}
}

// WithRandomPoints places the vertices uniformly in the unit square and
// weighs each pair by distance. Requires WithSeed or WithRand.
func WithRandomPoints() BuilderOption {
	return func(c *builderConfig) {
		c.policy = policyRandomPoints
		c.points = nil
	}
}
