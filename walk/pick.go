package walk

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/mstwalk/core"
)

// Strategy names accepted by NewPicker.
const (
	StrategyRandom       = "random"
	StrategyGreedy       = "greedy"
	StrategyLeastVisited = "least-visited"
)

// Strategies lists every strategy name in report order.
var Strategies = []string{StrategyRandom, StrategyGreedy, StrategyLeastVisited}

// RandomPick moves to a uniformly random neighbor, with replacement and
// regardless of visited state. A nil Rand is replaced by NewRand(0) on first use.
type RandomPick struct {
	Rand *rand.Rand
}

// Pick implements Picker. A vertex without neighbors stops the walk.
func (p *RandomPick) Pick(_ core.Vertex, _ *State, neighbors []core.Neighbor) (core.Neighbor, bool) {
	if len(neighbors) == 0 {
		return core.Neighbor{}, false
	}
	if p.Rand == nil {
		p.Rand = NewRand(0)
	}

	return neighbors[p.Rand.Intn(len(neighbors))], true
}

// GreedyUnvisitedPick moves to the first unvisited neighbor in list order.
// With a weight-sorted adjacency list that is the nearest unvisited neighbor.
// When every neighbor is visited the walk stops, even if unvisited vertices
// remain elsewhere: this is a local walk, not a graph-wide search.
type GreedyUnvisitedPick struct{}

// Pick implements Picker.
func (GreedyUnvisitedPick) Pick(_ core.Vertex, s *State, neighbors []core.Neighbor) (core.Neighbor, bool) {
	for _, nb := range neighbors {
		if !s.IsVisited(nb.To) {
			return nb, true
		}
	}

	return core.Neighbor{}, false
}

// LeastVisitedPick is the "Euler-like" heuristic: move to the neighbor with
// the lowest marker (Unvisited < Visited < Exhausted), first in list order on
// ties. Leaving towards a Visited neighbor marks the current vertex
// Exhausted. If every neighbor is Exhausted the walk is stuck.
//
// It keeps no per-edge usage and never backtracks, so it is not an Eulerian
// circuit. Every move either enters a new vertex or exhausts the current one,
// so a walk takes at most 2N−1 steps.
type LeastVisitedPick struct{}

// Pick implements Picker.
func (LeastVisitedPick) Pick(current core.Vertex, s *State, neighbors []core.Neighbor) (core.Neighbor, bool) {
	if len(neighbors) == 0 {
		return core.Neighbor{}, false
	}
	best := 0
	for i := 1; i < len(neighbors); i++ {
		if s.Marker(neighbors[i].To) < s.Marker(neighbors[best].To) {
			best = i
		}
	}
	next := neighbors[best]
	switch s.Marker(next.To) {
	case Unvisited:
	case Visited:
		s.MarkExhausted(current)
	default:
		s.MarkExhausted(current)
		return core.Neighbor{}, false
	}

	return next, true
}

// NewPicker returns the Picker for a strategy name. rng is used only by
// StrategyRandom.
func NewPicker(name string, rng *rand.Rand) (Picker, error) {
	switch name {
	case StrategyRandom:
		return &RandomPick{Rand: rng}, nil
	case StrategyGreedy:
		return GreedyUnvisitedPick{}, nil
	case StrategyLeastVisited:
		return LeastVisitedPick{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// Random runs a random walk from start until every vertex is visited.
// It is unbounded when adj is not connected unless WithMaxSteps is given.
func Random(adj *core.AdjacencyList, start core.Vertex, rng *rand.Rand, opts ...Option) (Result, error) {
	return Run(adj, start, &RandomPick{Rand: rng}, opts...)
}

// Greedy runs the nearest-unvisited-neighbor walk. adj should be built with
// sortByWeight so that list order is weight order.
func Greedy(adj *core.AdjacencyList, start core.Vertex, opts ...Option) (Result, error) {
	return Run(adj, start, GreedyUnvisitedPick{}, opts...)
}

// LeastVisited runs the least-visited "Euler-like" heuristic walk.
func LeastVisited(adj *core.AdjacencyList, start core.Vertex, opts ...Option) (Result, error) {
	return Run(adj, start, LeastVisitedPick{}, opts...)
}
