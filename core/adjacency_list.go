package core

import "sort"

// AdjacencyList maps each vertex 1..N to an ordered sequence of neighbors.
// Order is insertion order or ascending by weight, fixed at build time.
// Every edge appears in both endpoints' sequences.
type AdjacencyList struct {
	// lists[v] holds the neighbors of v; lists[0] is unused so that vertex
	// ids index the slice directly.
	lists  [][]Neighbor
	edges  int  // number of undirected edges added
	sorted bool // neighbor sequences are sorted ascending by weight
}

// BuildAdjacency turns an edge list into a per-vertex neighbor list sized for
// vertices 1..n. When sortByWeight is set, each sequence is stable-sorted
// ascending by weight so that equal weights keep their insertion order.
//
// Endpoints outside [1,n] are caller error and panic on the index; they are
// not reported as errors.
//
// Complexity: O(N + E) time and memory, plus O(Σ deg·log deg) when sorting.
func BuildAdjacency(n int, edges []Edge, sortByWeight bool) *AdjacencyList {
	if n < 0 {
		n = 0
	}
	adj := &AdjacencyList{
		lists:  make([][]Neighbor, n+1),
		sorted: sortByWeight,
	}

	// First pass: count degrees so each list is allocated exactly once.
	degree := make([]int, n+1)
	for _, e := range edges {
		degree[e.U]++
		degree[e.V]++
	}
	for v := 1; v <= n; v++ {
		adj.lists[v] = make([]Neighbor, 0, degree[v])
	}

	// Second pass: append both directions.
	for _, e := range edges {
		adj.lists[e.U] = append(adj.lists[e.U], Neighbor{To: e.V, Weight: e.Weight})
		adj.lists[e.V] = append(adj.lists[e.V], Neighbor{To: e.U, Weight: e.Weight})
		adj.edges++
	}

	if sortByWeight {
		for v := 1; v <= n; v++ {
			list := adj.lists[v]
			sort.SliceStable(list, func(i, j int) bool {
				return list[i].Weight < list[j].Weight
			})
		}
	}

	return adj
}

// Order returns N, the number of vertices the list was sized for.
func (a *AdjacencyList) Order() int {
	return len(a.lists) - 1
}

// EdgeCount returns the number of undirected edges in the list.
func (a *AdjacencyList) EdgeCount() int {
	return a.edges
}

// Sorted reports whether neighbor sequences are ordered ascending by weight.
func (a *AdjacencyList) Sorted() bool {
	return a.sorted
}

// Neighbors returns the neighbor sequence of v. The returned slice is shared
// with the list and must not be modified. Out-of-range v yields nil.
//
// Complexity: O(1).
func (a *AdjacencyList) Neighbors(v Vertex) []Neighbor {
	if !v.Valid(a.Order()) {
		return nil
	}

	return a.lists[v]
}

// Degree returns the number of neighbors of v, or 0 when v is out of range.
func (a *AdjacencyList) Degree(v Vertex) int {
	return len(a.Neighbors(v))
}

// Weight looks up the weight of the edge between u and v by scanning u's
// neighbors. It reports false if no such edge exists.
//
// Complexity: O(deg(u)).
func (a *AdjacencyList) Weight(u, v Vertex) (float64, bool) {
	for _, nb := range a.Neighbors(u) {
		if nb.To == v {
			return nb.Weight, true
		}
	}

	return 0, false
}

// Edges reconstructs the undirected edge set, each edge once and in canonical
// form (U < V), ordered by the smaller endpoint and then by neighbor position.
//
// Complexity: O(N + E).
func (a *AdjacencyList) Edges() []Edge {
	out := make([]Edge, 0, a.edges)
	for u := 1; u <= a.Order(); u++ {
		for _, nb := range a.lists[u] {
			if Vertex(u) < nb.To {
				out = append(out, Edge{U: Vertex(u), V: nb.To, Weight: nb.Weight})
			}
		}
	}

	return out
}

// Isolated returns the vertices with no neighbors, in ascending order.
func (a *AdjacencyList) Isolated() []Vertex {
	var out []Vertex
	for v := 1; v <= a.Order(); v++ {
		if len(a.lists[v]) == 0 {
			out = append(out, Vertex(v))
		}
	}

	return out
}
