package prim_kruskal

import "github.com/katalvlaran/mstwalk/core"

// DisjointSet is a union-find partition of the vertices 1..n with path
// halving and union by rank. Every vertex belongs to exactly one set.
//
// DisjointSet is not safe for concurrent use.
type DisjointSet struct {
	parent []core.Vertex // parent[v] == v for roots; index 0 unused
	rank   []int
	sets   int
}

// NewDisjointSet returns n singleton sets {1},…,{n}.
// Complexity: O(n).
func NewDisjointSet(n int) *DisjointSet {
	if n < 0 {
		n = 0
	}
	ds := &DisjointSet{
		parent: make([]core.Vertex, n+1),
		rank:   make([]int, n+1),
		sets:   n,
	}
	for v := range ds.parent {
		ds.parent[v] = core.Vertex(v)
	}

	return ds
}

// Find returns the representative of v's set.
// Iterative with path halving to avoid deep recursion.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) Find(v core.Vertex) core.Vertex {
	for ds.parent[v] != v {
		// Point v at its grandparent, then step there.
		ds.parent[v] = ds.parent[ds.parent[v]]
		v = ds.parent[v]
	}

	return v
}

// Union merges the sets containing a and b. It reports false, and changes
// nothing, when they are already in the same set.
// Complexity: amortized O(α(n)).
func (ds *DisjointSet) Union(a, b core.Vertex) bool {
	ra, rb := ds.Find(a), ds.Find(b)
	if ra == rb {
		return false
	}
	// Attach the shallower tree under the deeper root.
	switch {
	case ds.rank[ra] < ds.rank[rb]:
		ds.parent[ra] = rb
	case ds.rank[ra] > ds.rank[rb]:
		ds.parent[rb] = ra
	default:
		ds.parent[rb] = ra
		ds.rank[ra]++
	}
	ds.sets--

	return true
}

// Connected reports whether a and b are in the same set.
func (ds *DisjointSet) Connected(a, b core.Vertex) bool {
	return ds.Find(a) == ds.Find(b)
}

// Sets returns the current number of disjoint sets.
func (ds *DisjointSet) Sets() int {
	return ds.sets
}

// Len returns n, the number of elements.
func (ds *DisjointSet) Len() int {
	return len(ds.parent) - 1
}
