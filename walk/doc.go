// Package walk implements comparative traversal heuristics over an adjacency
// list: a random walk, a greedy nearest-unvisited walk and a least-visited
// "Euler-like" walk.
//
// One skeleton, three pickers
//
//	Run(adj, start, picker, opts...) owns the loop and the counters: markers per
//	vertex, distinct vertices visited, steps taken and weight traversed. A Picker
//	only decides the next neighbor:
//
//	  RandomPick           uniform neighbor, visited state ignored (cover-time experiment)
//	  GreedyUnvisitedPick  first unvisited neighbor in list order; stops when none
//	  LeastVisitedPick     lowest marker first; exhausts vertices it leaves towards visited ones
//
// Stopping
//
//   - every vertex visited (StopCovered);
//   - the picker has no admissible move (StopStuck);
//   - WithMaxSteps bound reached (StopMaxSteps).
//
// Greedy and least-visited walks may stop with Visited < Requested. That is a
// reportable outcome, not an error: check Result.Complete.
//
// Randomness
//
//	The random walk draws from an injected *rand.Rand. With a fixed seed and a
//	fixed adjacency list the walk is exactly reproducible. See NewRand and
//	DeriveRand.
//
// Diagnostics
//
//	WithTrace records every (from, to, weight) step; WithOnStep streams them.
//	Wall-clock timing is left to the caller.
//
// Complexity: O(deg) per step for every picker; O(N) memory for markers.
package walk
