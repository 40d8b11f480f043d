package prim_kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstwalk/core"
	"github.com/katalvlaran/mstwalk/prim_kruskal"
)

// ExampleKruskal demonstrates Kruskal’s algorithm on the complete graph K4.
// Accepted edges appear in ascending weight order.
func ExampleKruskal() {
	edges := []core.Edge{
		core.NewEdge(1, 2, 1.0),
		core.NewEdge(1, 3, 5.0),
		core.NewEdge(1, 4, 3.0),
		core.NewEdge(2, 3, 2.0),
		core.NewEdge(2, 4, 4.0),
		core.NewEdge(3, 4, 1.5),
	}

	res, err := prim_kruskal.Kruskal(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: %v\n", res.TotalWeight, res.Edges)
	// Output: Total: 4.5, Edges: [1-2(1) 3-4(1.5) 2-3(2)]
}

// ExamplePrim demonstrates Prim’s algorithm on the same graph. Each edge is
// reported as (vertex, parent, priority at extraction).
func ExamplePrim() {
	edges := []core.Edge{
		core.NewEdge(1, 2, 1.0),
		core.NewEdge(1, 3, 5.0),
		core.NewEdge(1, 4, 3.0),
		core.NewEdge(2, 3, 2.0),
		core.NewEdge(2, 4, 4.0),
		core.NewEdge(3, 4, 1.5),
	}

	res, err := prim_kruskal.Prim(4, edges)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Total: %g, Edges: %v\n", res.TotalWeight, res.Edges)
	// Output: Total: 4.5, Edges: [2-1(1) 3-2(2) 4-3(1.5)]
}

// ExamplePrim_disconnected shows the distinct outcome for two components.
func ExamplePrim_disconnected() {
	edges := []core.Edge{
		core.NewEdge(1, 2, 1.0),
		core.NewEdge(3, 4, 1.0),
	}

	_, err := prim_kruskal.Prim(4, edges)
	fmt.Println(err)
	// Output: prim_kruskal: graph is disconnected: accepted 2 of 3 edges
}

// ExampleCompute selects the algorithm by name.
func ExampleCompute() {
	edges := []core.Edge{
		core.NewEdge(1, 2, 2),
		core.NewEdge(2, 3, 1),
		core.NewEdge(1, 3, 4),
	}

	opts := prim_kruskal.DefaultOptions()
	opts.Method = prim_kruskal.MethodPrim
	opts.Lookup = prim_kruskal.LookupDense

	res, err := prim_kruskal.Compute(3, edges, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.TotalWeight, res.SortedEdges())
	// Output: 3 [1-2(2) 2-3(1)]
}
