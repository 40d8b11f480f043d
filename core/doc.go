// Package core defines the shared graph vocabulary of mstwalk: dense integer
// vertices, undirected weighted edges, and the immutable adjacency list that
// every MST algorithm and walk heuristic consumes.
//
// A graph is implicit: a vertex count N plus an edge list. Vertices are the
// integers 1..N; the value 0 (NoVertex) is reserved as the "root" sentinel and
// -1 (Unassigned) marks a vertex that has no provisional parent yet.
//
// Adjacency construction:
//
//	adj := core.BuildAdjacency(n, edges, false) // insertion order
//	adj := core.BuildAdjacency(n, edges, true)  // ascending by weight, stable
//
// Each undirected edge (u,v,w) is appended to both u's and v's neighbor list,
// so Degree(u) counts every incident edge once. With sortByWeight the neighbor
// lists are sorted with a stable sort, so equal weights keep insertion order
// and results are reproducible in tests.
//
// Preconditions:
//
//   - every endpoint lies in [1,n];
//   - weights are non-negative;
//   - no duplicate unordered pair.
//
// Violating them is caller error. BuildAdjacency does not validate its input;
// validation lives with the edge-list source (see package builder).
//
// Complexity:
//
//	BuildAdjacency: O(N + E) time, O(N + E) memory; O(E log Δ) extra when sorting
//	Neighbors/Degree: O(1)
//	Weight(u,v):      O(deg(u))
//
// Concurrency: an AdjacencyList is never mutated after BuildAdjacency returns,
// so concurrent readers need no locking.
package core
