// Package core declares Vertex, Edge, Neighbor and the vertex sentinels.
package core

import (
	"fmt"
	"math"
)

// Vertex is a dense integer identifier in 1..N.
type Vertex int

const (
	// NoVertex is the root sentinel: a tree root's parent.
	NoVertex Vertex = 0

	// Unassigned marks a vertex that has no provisional parent yet.
	Unassigned Vertex = -1
)

// Valid reports whether v lies in [1,n].
func (v Vertex) Valid(n int) bool {
	return v >= 1 && int(v) <= n
}

// Edge is an immutable undirected weighted edge.
// (U,V,W) and (V,U,W) denote the same edge.
type Edge struct {
	// U is one endpoint.
	U Vertex

	// V is the other endpoint.
	V Vertex

	// Weight is the non-negative distance or cost of the edge.
	Weight float64
}

// NewEdge is a small constructor for table-driven fixtures.
func NewEdge(u, v Vertex, w float64) Edge {
	return Edge{U: u, V: v, Weight: w}
}

// Canonical returns the same edge with U <= V, so two orientations of one
// undirected edge compare equal.
func (e Edge) Canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U, Weight: e.Weight}
	}

	return e
}

// Other returns the endpoint opposite to v. If v is not an endpoint the result
// is NoVertex.
func (e Edge) Other(v Vertex) Vertex {
	switch v {
	case e.U:
		return e.V
	case e.V:
		return e.U
	default:
		return NoVertex
	}
}

// String renders the edge as "u-v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%g)", e.U, e.V, e.Weight)
}

// Neighbor is one entry of a vertex's adjacency sequence.
type Neighbor struct {
	// To is the adjacent vertex.
	To Vertex

	// Weight is the weight of the connecting edge.
	Weight float64
}

// TotalWeight sums the weights of edges.
// Complexity: O(len(edges)).
func TotalWeight(edges []Edge) float64 {
	var total float64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}

// CompleteEdgeCount returns N(N−1)/2, the number of edges of the complete
// simple graph on n vertices. It returns 0 for n < 2 and saturates at
// math.MaxInt when the count does not fit in an int.
func CompleteEdgeCount(n int) int {
	if n < 2 {
		return 0
	}
	a, b := n, n-1
	if a%2 == 0 {
		a /= 2
	} else {
		b /= 2
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}

	return a * b
}
