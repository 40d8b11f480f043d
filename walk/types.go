// Package walk provides tunable options, result types and error definitions
// for traversal heuristics over a core.AdjacencyList.
package walk

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstwalk/core"
)

// Sentinel errors for walk execution.
var (
	// ErrNilAdjacency is returned if a nil adjacency list is passed.
	ErrNilAdjacency = errors.New("walk: adjacency list is nil")

	// ErrStartOutOfRange is returned when the start vertex is not in [1,N].
	ErrStartOutOfRange = errors.New("walk: start vertex out of range")

	// ErrNilPicker is returned when Run is given no selection strategy.
	ErrNilPicker = errors.New("walk: picker is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("walk: invalid option supplied")

	// ErrUnknownStrategy is returned by NewPicker for an unknown name.
	ErrUnknownStrategy = errors.New("walk: unknown strategy")
)

// Marker is the per-vertex state tracked by a walk.
// The zero value is Unvisited; markers only ever increase.
type Marker uint8

const (
	// Unvisited vertices have not been entered yet.
	Unvisited Marker = iota

	// Visited vertices have been entered at least once.
	Visited

	// Exhausted vertices were left towards an already visited neighbor.
	// Only LeastVisitedPick sets this marker.
	Exhausted
)

// String returns the marker name.
func (m Marker) String() string {
	switch m {
	case Unvisited:
		return "unvisited"
	case Visited:
		return "visited"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("Marker(%d)", uint8(m))
	}
}

// StopReason records which stopping condition ended a walk.
type StopReason uint8

const (
	// StopCovered means every vertex was visited.
	StopCovered StopReason = iota

	// StopStuck means the picker found no admissible next vertex.
	StopStuck

	// StopMaxSteps means the WithMaxSteps bound was reached.
	StopMaxSteps
)

// String returns the reason name used in reports.
func (r StopReason) String() string {
	switch r {
	case StopCovered:
		return "covered"
	case StopStuck:
		return "stuck"
	case StopMaxSteps:
		return "max-steps"
	default:
		return fmt.Sprintf("StopReason(%d)", uint8(r))
	}
}

// Step is one traversed edge of the diagnostic trace.
type Step struct {
	// From is the vertex the walk left.
	From core.Vertex `yaml:"from"`

	// To is the vertex the walk entered.
	To core.Vertex `yaml:"to"`

	// Weight is the weight of the traversed edge.
	Weight float64 `yaml:"weight"`
}

// Result holds the counters of one walk.
//   - Steps:       number of edges traversed.
//   - TotalWeight: sum of the traversed edge weights.
//   - Visited:     distinct vertices entered, start included.
//   - Requested:   N, the vertex count the walk was asked to cover.
//
// Visited < Requested is a normal outcome for the greedy and least-visited
// heuristics; use Complete to tell it apart from full coverage.
type Result struct {
	Steps       int
	TotalWeight float64
	Visited     int
	Requested   int
	Start       core.Vertex
	End         core.Vertex
	Stopped     StopReason

	// Trace is populated only when WithTrace is given.
	Trace []Step
}

// Complete reports whether every requested vertex was visited.
func (r Result) Complete() bool {
	return r.Visited == r.Requested
}

// Option configures walk behavior via functional arguments.
// If an Option is invalid (e.g. negative step bound), it will be recorded
// internally and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a walk.
type Options struct {
	// MaxSteps, if > 0, stops the walk after that many traversed edges.
	// A value of 0 disables the bound; a random walk is then unbounded on a
	// graph it cannot cover.
	MaxSteps int

	// Trace records every traversed edge in Result.Trace.
	Trace bool

	// OnStep is called after each traversed edge.
	OnStep func(from, to core.Vertex, weight float64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with no step bound, no trace and a no-op
// OnStep hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		Trace:    false,
		OnStep:   func(core.Vertex, core.Vertex, float64) {},
	}
}

// WithMaxSteps bounds the number of traversed edges.
//
//	k > 0:  stop after k steps
//	k == 0: explicit no bound
//	k < 0:  invalid option → ErrOptionViolation
func WithMaxSteps(k int) Option {
	return func(o *Options) {
		if k < 0 {
			o.err = fmt.Errorf("%w: MaxSteps cannot be negative (%d)", ErrOptionViolation, k)
			return
		}
		o.MaxSteps = k
	}
}

// WithTrace records the per-step trace.
func WithTrace() Option {
	return func(o *Options) {
		o.Trace = true
	}
}

// WithOnStep registers a callback run after each traversed edge.
func WithOnStep(fn func(from, to core.Vertex, weight float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}
