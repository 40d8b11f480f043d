// Package prim_kruskal provides two independent algorithms for computing the
// Minimum Spanning Tree (MST) of an undirected weighted graph given as a vertex
// count n and an edge list over the vertices 1..n: Prim’s algorithm and
// Kruskal’s algorithm.
//
// What & Why
//
//   - What is an MST?
//     Given an undirected, connected, weighted graph G = (V, E), an MST is a subset T ⊆ E such that
//     T connects all vertices in V and the sum of weights of edges in T is minimized.
//
//   - Why two algorithms?
//     They share no machinery: Prim relies on an indexed priority queue with
//     decrease-key (package pqueue), Kruskal on sorting plus union-find. Agreement
//     of their total weights is the primary cross-check used by the experiment driver.
//
// Algorithms Provided
//
//   - Prim(n, edges, opts...) (Result, error)
//
//   - Strategy: every vertex starts in an IndexedPQ; the root at priority 0, the
//     rest at +Inf. Each extraction fixes one vertex and relaxes its queued
//     neighbours through DecreaseKey, which never lets a worse candidate replace
//     a better one.
//
//   - Weight lookup: LookupAdjacency (default) scans u's neighbours only.
//     LookupDense keeps an N×N matrix; simpler, but O(N²) memory, so reserve it for small N.
//
//   - Complexity: O((N + E) log N) time with LookupAdjacency.
//
//   - Kruskal(n, edges) (Result, error)
//
//   - Strategy: stable sort by weight, then a DisjointSet scan that accepts edges
//     joining two different components.
//
//   - Complexity: O(E log E + α(V)·E) time, O(V + E) memory.
//
//   - Determinism: the stable sort keeps input order among equal weights.
//
// Error Conditions
//
//   - ErrDisconnected
//
//   - n == 0, OR
//
//   - fewer than n−1 edges could be accepted. A partial forest is never returned.
//
//   - ErrRootOutOfRange (Prim only)
//
//   - the root is not in [1,n].
//
//   - ErrUnknownMethod (Compute only)
//
// Preconditions (caller responsibility, not reported): endpoints in [1,n],
// non-negative weights, no duplicate unordered pairs. A +Inf weight means
// "no edge" to both algorithms.
//
// Result.Validate(n) verifies the spanning-tree contract (n−1 edges, acyclic,
// connected) with a DisjointSet closure; tests and the experiment driver use it
// as a self-check.
//
// For examples of usage, see the example_test.go file in this package.
package prim_kruskal
