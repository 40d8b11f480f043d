package walk_test

import (
	"fmt"

	"github.com/katalvlaran/mstwalk/core"
	"github.com/katalvlaran/mstwalk/walk"
)

// ExampleGreedy walks the nearest unvisited neighbor on a weight-sorted list.
func ExampleGreedy() {
	adj := core.BuildAdjacency(4, k4(), true)
	res, _ := walk.Greedy(adj, 1)
	fmt.Printf("steps=%d weight=%g visited=%d/%d %s\n",
		res.Steps, res.TotalWeight, res.Visited, res.Requested, res.Stopped)
	// Output: steps=3 weight=4.5 visited=4/4 covered
}

// ExampleLeastVisited shows the heuristic stopping short on a path entered
// from its middle.
func ExampleLeastVisited() {
	// 1 – 2 – 3, start at 2: 2→1, back to 2 exhausts 1, then 2→3.
	edges := []core.Edge{core.NewEdge(1, 2, 1), core.NewEdge(2, 3, 1)}
	adj := core.BuildAdjacency(3, edges, false)
	res, _ := walk.LeastVisited(adj, 2, walk.WithTrace())
	fmt.Println(res.Trace, res.Complete())
	// Output: [{2 1 1} {1 2 1} {2 3 1}] true
}

// ExampleRun plugs a custom Picker into the shared skeleton.
func ExampleRun() {
	adj := core.BuildAdjacency(4, k4(), false)
	heaviest := walk.PickerFunc(func(_ core.Vertex, s *walk.State, nbs []core.Neighbor) (core.Neighbor, bool) {
		var best core.Neighbor
		found := false
		for _, nb := range nbs {
			if !s.IsVisited(nb.To) && (!found || nb.Weight > best.Weight) {
				best, found = nb, true
			}
		}
		return best, found
	})
	res, _ := walk.Run(adj, 1, heaviest)
	fmt.Println(res.Steps, res.TotalWeight, res.End)
	// Output: 3 11 4
}
