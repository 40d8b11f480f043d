// Package mstwalk compares minimum spanning tree algorithms and graph walk
// heuristics on weighted undirected graphs.
//
// What is inside?
//
//	Given N vertices (1..N) and a weighted edge list, mstwalk computes an MST
//	two ways and measures how cheaply three walk strategies cover the graph,
//	both on the raw graph and on each tree:
//		• Prim with an indexed priority queue (decrease-key)
//		• Kruskal with a disjoint-set forest
//		• random, greedy nearest-unvisited and least-visited walks
//
// Under the hood, everything is organized under these subpackages:
//
//	core/           Vertex, Edge, Neighbor and the AdjacencyList builder
//	pqueue/         indexed binary min-heap keyed by vertex
//	prim_kruskal/   Prim, Kruskal, DisjointSet and tree validation
//	walk/           one walk skeleton, pluggable pickers, seedable RNG
//	builder/        synthetic complete graphs, edge-list I/O, input checks
//	experiment/     end-to-end runs, size sweeps, YAML/text reports
//	cmd/mstwalk     command line front end
//
// Quick start:
//
//	edges := []core.Edge{core.NewEdge(1, 2, 1), core.NewEdge(2, 3, 2), core.NewEdge(1, 3, 5)}
//	mst, err := prim_kruskal.Kruskal(3, edges)
//	adj := core.BuildAdjacency(3, mst.Edges, false)
//	res, err := walk.LeastVisited(adj, 1)
//
// A disconnected graph has no spanning tree: both MST functions return an
// error wrapping prim_kruskal.ErrDisconnected.
//
// See examples/ for a runnable scenario.
package mstwalk
