// Package prim_kruskal defines configuration options, results and sentinel
// errors for MST computation. It supports selecting between Kruskal and Prim
// via MSTOptions.
package prim_kruskal

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/mstwalk/core"
)

// ErrDisconnected indicates that the graph is not connected, so no spanning
// tree covering all vertices exists. Prim and Kruskal wrap it with the number
// of accepted and required edges. It is also returned for n == 0.
var ErrDisconnected = errors.New("prim_kruskal: graph is disconnected")

// ErrRootOutOfRange indicates that the Prim root is not a vertex in [1,n].
var ErrRootOutOfRange = errors.New("prim_kruskal: root vertex out of range")

// ErrUnknownMethod indicates an MSTOptions.Method other than MethodPrim or
// MethodKruskal, or an unknown weight lookup name.
var ErrUnknownMethod = errors.New("prim_kruskal: unknown method")

// ErrInvalidTree is returned by Result.Validate when an edge set is not a
// spanning tree of 1..n.
var ErrInvalidTree = errors.New("prim_kruskal: edge set is not a spanning tree")

// MethodPrim selects Prim's algorithm (grow from a root using IndexedPQ).
const MethodPrim = "prim"

// MethodKruskal selects Kruskal's algorithm (sort all edges and union-find).
const MethodKruskal = "kruskal"

// DefaultRoot is the vertex Prim grows from unless WithRoot overrides it.
const DefaultRoot core.Vertex = 1

// WeightLookup selects how Prim finds w(u,j) while relaxing.
type WeightLookup int

const (
	// LookupAdjacency scans only u's adjacency list.
	// Memory O(N+E), relaxation O(deg(u)·log N) per extracted vertex.
	LookupAdjacency WeightLookup = iota

	// LookupDense builds an N×N matrix with +Inf for absent pairs.
	// Memory O(N²), relaxation O(N) scan plus O(log N) per successful update.
	LookupDense
)

// String returns the lookup name used in configuration and reports.
func (l WeightLookup) String() string {
	switch l {
	case LookupAdjacency:
		return "adjacency"
	case LookupDense:
		return "dense"
	default:
		return fmt.Sprintf("WeightLookup(%d)", int(l))
	}
}

// ParseWeightLookup maps "adjacency" or "dense" (case-insensitive) to a
// WeightLookup.
func ParseWeightLookup(s string) (WeightLookup, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "adjacency":
		return LookupAdjacency, nil
	case "dense":
		return LookupDense, nil
	default:
		return LookupAdjacency, fmt.Errorf("%w: weight lookup %q", ErrUnknownMethod, s)
	}
}

// Result is a computed spanning tree.
type Result struct {
	// Edges holds the N−1 tree edges in the order the algorithm accepted them.
	Edges []core.Edge

	// TotalWeight is the sum of Edges' weights.
	TotalWeight float64
}

// SortedEdges returns the tree edges in canonical form (U < V), ordered by
// (U, V). Useful for comparing trees produced by different algorithms.
func (r Result) SortedEdges() []core.Edge {
	out := make([]core.Edge, len(r.Edges))
	for i, e := range r.Edges {
		out[i] = e.Canonical()
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].U != out[j].U {
			return out[i].U < out[j].U
		}
		return out[i].V < out[j].V
	})

	return out
}

// MSTOptions configures which MST algorithm to run.
// Use DefaultOptions() to get the default setup (Kruskal).
//
// Fields:
//
//	Method string        one of MethodPrim or MethodKruskal.
//	Root   core.Vertex   start vertex for Prim; ignored by Kruskal.
//	Lookup WeightLookup  Prim's edge-weight lookup; ignored by Kruskal.
//
// Complexity: O(E log V) for Prim, O(E log E + α(V)·E) for Kruskal.
type MSTOptions struct {
	// Method to use: MethodPrim or MethodKruskal.
	Method string

	// Root is the starting vertex for Prim's algorithm.
	Root core.Vertex

	// Lookup selects adjacency-restricted or dense weight lookup for Prim.
	Lookup WeightLookup
}

// Option configures MSTOptions.
type Option func(*MSTOptions)

// WithMethod returns an Option that sets the algorithm Method.
func WithMethod(m string) Option {
	return func(opts *MSTOptions) {
		opts.Method = m
	}
}

// WithRoot sets the starting vertex for Prim's algorithm.
func WithRoot(root core.Vertex) Option {
	return func(opts *MSTOptions) {
		opts.Root = root
	}
}

// WithWeightLookup selects how Prim looks up edge weights.
func WithWeightLookup(l WeightLookup) Option {
	return func(opts *MSTOptions) {
		opts.Lookup = l
	}
}

// DefaultOptions returns MSTOptions initialized for Kruskal:
//
//	– Method = MethodKruskal
//	– Root   = DefaultRoot (1)
//	– Lookup = LookupAdjacency
func DefaultOptions() MSTOptions {
	return MSTOptions{
		Method: MethodKruskal,
		Root:   DefaultRoot,
		Lookup: LookupAdjacency,
	}
}

// Compute selects and runs the MST algorithm based on opts.Method.
//
//	– MethodKruskal: Kruskal(n, edges).
//	– MethodPrim:    Prim(n, edges, WithRoot(opts.Root), WithWeightLookup(opts.Lookup)).
//	– otherwise:     ErrUnknownMethod.
func Compute(n int, edges []core.Edge, opts MSTOptions) (Result, error) {
	switch opts.Method {
	case MethodKruskal:
		return Kruskal(n, edges)
	case MethodPrim:
		return Prim(n, edges, WithRoot(opts.Root), WithWeightLookup(opts.Lookup))
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownMethod, opts.Method)
	}
}

// disconnected wraps ErrDisconnected with how far the algorithm got.
func disconnected(accepted, n int) error {
	return fmt.Errorf("%w: accepted %d of %d edges", ErrDisconnected, accepted, n-1)
}
