// SPDX-License-Identifier: MIT
// Package: mstwalk/builder
//
// points.go: planar point sets behind the Euclidean weight policy.

package builder

import (
	"math"
	"math/rand"
)

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// RandomPoints returns n points drawn uniformly from the unit square.
// Returns nil when n ≤ 0 or rng is nil.
// Complexity: O(n) time and space.
func RandomPoints(n int, rng *rand.Rand) []Point {
	if n <= 0 || rng == nil {
		return nil
	}
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Point{X: rng.Float64(), Y: rng.Float64()}
	}

	return pts
}

// Euclidean returns the straight-line distance between a and b.
func Euclidean(a, b Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}
