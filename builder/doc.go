// Package builder produces and checks the edge lists consumed by prim_kruskal
// and walk.
//
// The package offers the following key components:
//
//   - Synthetic inputs:
//     – Complete:          every pair i<j of K_n, weights from the configured policy.
//     – RandomPoints:      points uniform in the unit square.
//     – Euclidean:         straight-line distance between two points.
//   - Edge-weight policies (BuilderOption):
//     – WithRandomPoints / WithPoints: Euclidean weights over a point set.
//     – WithUniformWeight, WithConstantWeight, WithWeightFn.
//     – WithSeed / WithRand: the RNG for stochastic policies.
//   - Text I/O in the "N, then u v w per line" format:
//     – ReadEdgeList, WriteEdgeList.
//   - Input validation:
//     – Validate: vertex range, self-loops, NaN/±Inf and negative weights,
//     duplicate pairs and (optionally) completeness.
//
// Guarantees:
//
//   - Deterministic output for a fixed seed: pair order is lexicographic and
//     every random draw comes from the configured *rand.Rand.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime failures are sentinel errors wrapped with context; use errors.Is.
package builder
