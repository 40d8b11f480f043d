package walk

import (
	"fmt"

	"github.com/katalvlaran/mstwalk/core"
)

// Picker chooses the next vertex of a walk. It receives the current vertex,
// the walk state and the current vertex's neighbor sequence, and returns the
// neighbor to move to or false to stop the walk.
type Picker interface {
	Pick(current core.Vertex, state *State, neighbors []core.Neighbor) (core.Neighbor, bool)
}

// PickerFunc adapts an ordinary function to the Picker interface.
type PickerFunc func(current core.Vertex, state *State, neighbors []core.Neighbor) (core.Neighbor, bool)

// Pick calls f.
func (f PickerFunc) Pick(current core.Vertex, state *State, neighbors []core.Neighbor) (core.Neighbor, bool) {
	return f(current, state, neighbors)
}

// State is the mutable per-walk marker table.
type State struct {
	markers []Marker // markers[v]; index 0 unused
	visited int
}

func newState(n int) *State {
	return &State{markers: make([]Marker, n+1)}
}

// Marker returns v's marker.
func (s *State) Marker(v core.Vertex) Marker {
	return s.markers[v]
}

// IsVisited reports whether v has been entered.
func (s *State) IsVisited(v core.Vertex) bool {
	return s.markers[v] != Unvisited
}

// Visited returns the number of distinct vertices entered so far.
func (s *State) Visited() int {
	return s.visited
}

// MarkExhausted raises v's marker to Exhausted.
func (s *State) MarkExhausted(v core.Vertex) {
	s.markers[v] = Exhausted
}

// enter records arrival at v.
func (s *State) enter(v core.Vertex) {
	if s.markers[v] == Unvisited {
		s.markers[v] = Visited
		s.visited++
	}
}

// Run walks adj from start, asking p for each move, until every vertex is
// visited, p returns false, or the MaxSteps bound is hit.
//
// Returns ErrNilAdjacency, ErrNilPicker, ErrStartOutOfRange for invalid
// input and ErrOptionViolation for bad options. Incomplete coverage is not an
// error; inspect Result.Complete and Result.Stopped.
func Run(adj *core.AdjacencyList, start core.Vertex, p Picker, opts ...Option) (Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if adj == nil {
		return Result{}, ErrNilAdjacency
	}
	if p == nil {
		return Result{}, ErrNilPicker
	}
	n := adj.Order()
	if !start.Valid(n) {
		return Result{}, fmt.Errorf("%w: %d not in [1,%d]", ErrStartOutOfRange, start, n)
	}

	st := newState(n)
	res := Result{Requested: n, Start: start, Stopped: StopCovered}
	cur := start
	st.enter(cur)

	for st.visited < n {
		if o.MaxSteps > 0 && res.Steps >= o.MaxSteps {
			res.Stopped = StopMaxSteps
			break
		}
		next, ok := p.Pick(cur, st, adj.Neighbors(cur))
		if !ok {
			res.Stopped = StopStuck
			break
		}

		res.Steps++
		res.TotalWeight += next.Weight
		if o.Trace {
			res.Trace = append(res.Trace, Step{From: cur, To: next.To, Weight: next.Weight})
		}
		o.OnStep(cur, next.To, next.Weight)

		cur = next.To
		st.enter(cur)
	}

	res.Visited = st.visited
	res.End = cur

	return res, nil
}
