package walk_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mstwalk/core"
	"github.com/katalvlaran/mstwalk/walk"
)

// k4 is the complete four-vertex graph used across the module's tests.
func k4() []core.Edge {
	return []core.Edge{
		core.NewEdge(1, 2, 1.0),
		core.NewEdge(1, 3, 5.0),
		core.NewEdge(1, 4, 3.0),
		core.NewEdge(2, 3, 2.0),
		core.NewEdge(2, 4, 4.0),
		core.NewEdge(3, 4, 1.5),
	}
}

// star has centre 1 and leaves 2..n.
func star(n int) []core.Edge {
	edges := make([]core.Edge, 0, n-1)
	for v := 2; v <= n; v++ {
		edges = append(edges, core.NewEdge(1, core.Vertex(v), float64(v)))
	}

	return edges
}

// randomTree attaches each vertex v>1 to a random earlier vertex.
func randomTree(n int, r *rand.Rand) []core.Edge {
	edges := make([]core.Edge, 0, n-1)
	for v := 2; v <= n; v++ {
		edges = append(edges, core.NewEdge(core.Vertex(1+r.Intn(v-1)), core.Vertex(v), r.Float64()))
	}

	return edges
}

// TestRun_Errors verifies that invalid inputs and options are rejected.
func TestRun_Errors(t *testing.T) {
	adj := core.BuildAdjacency(4, k4(), false)

	_, err := walk.Run(nil, 1, walk.GreedyUnvisitedPick{})
	assert.ErrorIs(t, err, walk.ErrNilAdjacency)
	_, err = walk.Run(adj, 1, nil)
	assert.ErrorIs(t, err, walk.ErrNilPicker)
	_, err = walk.Run(adj, 0, walk.GreedyUnvisitedPick{})
	assert.ErrorIs(t, err, walk.ErrStartOutOfRange)
	_, err = walk.Run(adj, 5, walk.GreedyUnvisitedPick{})
	assert.ErrorIs(t, err, walk.ErrStartOutOfRange)
	_, err = walk.Run(adj, 1, walk.GreedyUnvisitedPick{}, walk.WithMaxSteps(-1))
	assert.ErrorIs(t, err, walk.ErrOptionViolation)
}

// TestRun_SingleVertex is covered before any step.
func TestRun_SingleVertex(t *testing.T) {
	adj := core.BuildAdjacency(1, nil, false)
	res, err := walk.Random(adj, 1, nil)
	require.NoError(t, err)
	assert.Zero(t, res.Steps)
	assert.True(t, res.Complete())
	assert.Equal(t, walk.StopCovered, res.Stopped)
	assert.Equal(t, core.Vertex(1), res.End)
}

// TestGreedy_K4 follows the nearest unvisited neighbor on sorted K4:
// 1 →(1.0) 2 →(2.0) 3 →(1.5) 4.
func TestGreedy_K4(t *testing.T) {
	adj := core.BuildAdjacency(4, k4(), true)
	res, err := walk.Greedy(adj, 1, walk.WithTrace())
	require.NoError(t, err)

	assert.Equal(t, []walk.Step{
		{From: 1, To: 2, Weight: 1.0},
		{From: 2, To: 3, Weight: 2.0},
		{From: 3, To: 4, Weight: 1.5},
	}, res.Trace)
	assert.Equal(t, 3, res.Steps)
	assert.InDelta(t, 4.5, res.TotalWeight, 1e-12)
	assert.Equal(t, 4, res.Visited)
	assert.Equal(t, 4, res.Requested)
	assert.True(t, res.Complete())
	assert.Equal(t, walk.StopCovered, res.Stopped)
}

// TestStep_YAML pins the lower-case keys a trace is reported under.
func TestStep_YAML(t *testing.T) {
	adj := core.BuildAdjacency(4, k4(), true)
	res, err := walk.Greedy(adj, 1, walk.WithTrace())
	require.NoError(t, err)

	out, err := yaml.Marshal(res.Trace[:2])
	require.NoError(t, err)
	var raw []map[string]interface{}
	require.NoError(t, yaml.Unmarshal(out, &raw))
	assert.Equal(t, []map[string]interface{}{
		{"from": 1, "to": 2, "weight": 1},
		{"from": 2, "to": 3, "weight": 2},
	}, raw)

	var back []walk.Step
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, res.Trace[:2], back)
}

// TestGreedy_StopsLocally shows intentional incompleteness: from a leaf of a
// star, the walk reaches the centre, one more leaf, and is stuck.
func TestGreedy_StopsLocally(t *testing.T) {
	adj := core.BuildAdjacency(5, star(5), true)
	res, err := walk.Greedy(adj, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Steps)              // 2 → 1 → 3
	assert.Equal(t, 3, res.Visited)            // {2,1,3}
	assert.Equal(t, 5, res.Requested)          // 4 and 5 unreached
	assert.InDelta(t, 5.0, res.TotalWeight, 0) // 2 + 3
	assert.False(t, res.Complete())
	assert.Equal(t, walk.StopStuck, res.Stopped)
	assert.Equal(t, core.Vertex(3), res.End)
}

// TestGreedy_PicksMinimumUnvisited checks, at every step on random complete
// graphs, that the chosen edge is the lightest edge to an unvisited neighbor.
func TestGreedy_PicksMinimumUnvisited(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	for trial := 0; trial < 10; trial++ {
		n := 3 + r.Intn(30)
		var edges []core.Edge
		for u := 1; u <= n; u++ {
			for v := u + 1; v <= n; v++ {
				edges = append(edges, core.NewEdge(core.Vertex(u), core.Vertex(v), float64(r.Intn(20))))
			}
		}
		adj := core.BuildAdjacency(n, edges, true)
		visited := map[core.Vertex]bool{1: true}
		res, err := walk.Greedy(adj, 1, walk.WithOnStep(func(from, to core.Vertex, w float64) {
			require.False(t, visited[to], "stepped onto visited vertex %d", to)
			for _, nb := range adj.Neighbors(from) {
				if !visited[nb.To] {
					require.LessOrEqual(t, w, nb.Weight, "a lighter unvisited neighbor existed")
				}
			}
			visited[to] = true
		}))
		require.NoError(t, err)
		// On a complete graph the greedy walk can never get stuck.
		assert.True(t, res.Complete(), "n=%d", n)
		assert.Equal(t, n-1, res.Steps)
	}
}

// TestRandom_Reproducible runs the same seed twice and compares traces.
func TestRandom_Reproducible(t *testing.T) {
	adj := core.BuildAdjacency(4, k4(), false)

	first, err := walk.Random(adj, 1, walk.NewRand(42), walk.WithTrace())
	require.NoError(t, err)
	second, err := walk.Random(adj, 1, walk.NewRand(42), walk.WithTrace())
	require.NoError(t, err)

	assert.Equal(t, first.Trace, second.Trace)
	assert.Equal(t, first.Steps, second.Steps)
	assert.Equal(t, first.TotalWeight, second.TotalWeight)
	assert.True(t, first.Complete())
	assert.GreaterOrEqual(t, first.Steps, 3)
	assert.Len(t, first.Trace, first.Steps)

	var sum float64
	for i, s := range first.Trace {
		w, ok := adj.Weight(s.From, s.To)
		require.True(t, ok, "step %d uses a non-edge", i)
		assert.Equal(t, w, s.Weight)
		if i > 0 {
			assert.Equal(t, first.Trace[i-1].To, s.From, "trace must be contiguous")
		}
		sum += s.Weight
	}
	assert.InDelta(t, first.TotalWeight, sum, 1e-9)
}

// TestRandom_NilRandIsDeterministic falls back to the default seed.
func TestRandom_NilRandIsDeterministic(t *testing.T) {
	adj := core.BuildAdjacency(4, k4(), false)
	a, err := walk.Random(adj, 1, nil, walk.WithTrace())
	require.NoError(t, err)
	b, err := walk.Random(adj, 1, walk.NewRand(walk.DefaultSeed), walk.WithTrace())
	require.NoError(t, err)
	assert.Equal(t, a.Trace, b.Trace)
}

// TestRandom_MaxSteps bounds a walk that cannot cover a disconnected graph.
func TestRandom_MaxSteps(t *testing.T) {
	adj := core.BuildAdjacency(4, []core.Edge{core.NewEdge(1, 2, 1), core.NewEdge(3, 4, 1)}, false)
	res, err := walk.Random(adj, 1, walk.NewRand(5), walk.WithMaxSteps(50))
	require.NoError(t, err)
	assert.Equal(t, 50, res.Steps)
	assert.Equal(t, 2, res.Visited)
	assert.Equal(t, walk.StopMaxSteps, res.Stopped)
	assert.InDelta(t, 50.0, res.TotalWeight, 1e-12)
}

// TestRandom_IsolatedStart stops immediately.
func TestRandom_IsolatedStart(t *testing.T) {
	adj := core.BuildAdjacency(3, []core.Edge{core.NewEdge(2, 3, 1)}, false)
	res, err := walk.Random(adj, 1, walk.NewRand(1))
	require.NoError(t, err)
	assert.Zero(t, res.Steps)
	assert.Equal(t, 1, res.Visited)
	assert.Equal(t, walk.StopStuck, res.Stopped)
}

// TestLeastVisited_Star goes back through the centre, exhausting leaves.
func TestLeastVisited_Star(t *testing.T) {
	adj := core.BuildAdjacency(4, star(4), false)
	res, err := walk.LeastVisited(adj, 2, walk.WithTrace())
	require.NoError(t, err)

	assert.Equal(t, []walk.Step{
		{From: 2, To: 1, Weight: 2},
		{From: 1, To: 3, Weight: 3},
		{From: 3, To: 1, Weight: 3},
		{From: 1, To: 4, Weight: 4},
	}, res.Trace)
	assert.True(t, res.Complete())
}

// TestLeastVisited_Stuck ends when every neighbor is exhausted.
func TestLeastVisited_Stuck(t *testing.T) {
	// Path 1–2 plus an unreachable 3: after 1→2→1 both are exhausted.
	adj := core.BuildAdjacency(3, []core.Edge{core.NewEdge(1, 2, 1)}, false)
	var markers []walk.Marker
	picker := walk.PickerFunc(func(cur core.Vertex, s *walk.State, nbs []core.Neighbor) (core.Neighbor, bool) {
		next, ok := walk.LeastVisitedPick{}.Pick(cur, s, nbs)
		markers = append(markers, s.Marker(cur))
		return next, ok
	})
	res, err := walk.Run(adj, 1, picker)
	require.NoError(t, err)

	assert.Equal(t, 2, res.Steps) // 1→2, 2→1
	assert.Equal(t, 2, res.Visited)
	assert.False(t, res.Complete())
	assert.Equal(t, walk.StopStuck, res.Stopped)
	assert.Equal(t, []walk.Marker{walk.Visited, walk.Exhausted, walk.Exhausted}, markers)
}

// TestLeastVisited_TreesTerminate runs on random trees (MST-shaped inputs) and
// checks the 2N−1 step bound. Coverage is not guaranteed on trees.
func TestLeastVisited_TreesTerminate(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	for trial := 0; trial < 50; trial++ {
		n := 2 + r.Intn(60)
		adj := core.BuildAdjacency(n, randomTree(n, r), false)
		start := core.Vertex(1 + r.Intn(n))
		res, err := walk.LeastVisited(adj, start)
		require.NoError(t, err)
		assert.LessOrEqual(t, res.Steps, 2*n-1)
		assert.GreaterOrEqual(t, res.Visited, 2, "a tree start always has a neighbor")
		if !res.Complete() {
			assert.Equal(t, walk.StopStuck, res.Stopped)
		}
	}
}

// TestNewPicker maps names to strategies.
func TestNewPicker(t *testing.T) {
	for _, name := range walk.Strategies {
		p, err := walk.NewPicker(name, walk.NewRand(1))
		require.NoError(t, err, name)
		assert.NotNil(t, p)
	}
	_, err := walk.NewPicker("hierholzer", nil)
	assert.True(t, errors.Is(err, walk.ErrUnknownStrategy))
}

// TestDeriveRand gives distinct, reproducible streams.
func TestDeriveRand(t *testing.T) {
	a := walk.DeriveRand(7, 1).Int63()
	b := walk.DeriveRand(7, 1).Int63()
	c := walk.DeriveRand(7, 2).Int63()
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, walk.DeriveRand(0, 3).Int63(), walk.DeriveRand(walk.DefaultSeed, 3).Int63())
}

// TestStringers pins the names used in reports.
func TestStringers(t *testing.T) {
	assert.Equal(t, "unvisited", walk.Unvisited.String())
	assert.Equal(t, "exhausted", walk.Exhausted.String())
	assert.Equal(t, "Marker(9)", walk.Marker(9).String())
	assert.Equal(t, "max-steps", walk.StopMaxSteps.String())
	assert.Equal(t, "covered", walk.StopCovered.String())
}
