// Package experiment drives the MST-and-walk comparison end to end.
//
// A Runner takes one weighted undirected graph and:
//
//  1. builds its adjacency list twice, in insertion order and weight-sorted;
//  2. computes the MST with Prim and with Kruskal and cross-checks the weights;
//  3. runs the random, greedy and least-visited walks on each of the raw
//     graph, the Prim tree and the Kruskal tree;
//  4. collects steps, weight, coverage and elapsed time into a Report.
//
// A disconnected input is reported, not returned as an error: the MST entries
// carry Connected=false and no tree walks are run.
//
// The algorithm packages never log. Runner logs through the *zap.Logger it is
// given.
package experiment
