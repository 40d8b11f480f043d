package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mstwalk/core"
)

// fourVertexEdges is the complete K4 used throughout the module's tests.
func fourVertexEdges() []core.Edge {
	return []core.Edge{
		core.NewEdge(1, 2, 1.0),
		core.NewEdge(1, 3, 5.0),
		core.NewEdge(1, 4, 3.0),
		core.NewEdge(2, 3, 2.0),
		core.NewEdge(2, 4, 4.0),
		core.NewEdge(3, 4, 1.5),
	}
}

type AdjacencySuite struct {
	suite.Suite
	edges []core.Edge
}

func (s *AdjacencySuite) SetupTest() {
	s.edges = fourVertexEdges()
}

func (s *AdjacencySuite) TestSymmetry() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(4, s.edges, false)

	require.Equal(4, adj.Order())
	require.Equal(len(s.edges), adj.EdgeCount())
	// Every edge appears in both endpoint lists with the same weight.
	for _, e := range s.edges {
		wu, ok := adj.Weight(e.U, e.V)
		require.True(ok, "edge %v missing from %d", e, e.U)
		wv, ok := adj.Weight(e.V, e.U)
		require.True(ok, "edge %v missing from %d", e, e.V)
		require.Equal(e.Weight, wu)
		require.Equal(e.Weight, wv)
	}
	for v := core.Vertex(1); v <= 4; v++ {
		require.Equal(3, adj.Degree(v), "K4 vertex %d has degree 3", v)
	}
}

func (s *AdjacencySuite) TestInsertionOrder() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(4, s.edges, false)

	require.False(adj.Sorted())
	require.Equal([]core.Neighbor{
		{To: 2, Weight: 1.0},
		{To: 3, Weight: 5.0},
		{To: 4, Weight: 3.0},
	}, adj.Neighbors(1))
	require.Equal([]core.Neighbor{
		{To: 1, Weight: 3.0},
		{To: 2, Weight: 4.0},
		{To: 3, Weight: 1.5},
	}, adj.Neighbors(4))
}

func (s *AdjacencySuite) TestSortedByWeight() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(4, s.edges, true)

	require.True(adj.Sorted())
	require.Equal([]core.Neighbor{
		{To: 2, Weight: 1.0},
		{To: 4, Weight: 3.0},
		{To: 3, Weight: 5.0},
	}, adj.Neighbors(1))
	for v := core.Vertex(1); v <= 4; v++ {
		list := adj.Neighbors(v)
		for i := 1; i < len(list); i++ {
			require.LessOrEqual(list[i-1].Weight, list[i].Weight, "vertex %d not sorted", v)
		}
	}
}

func (s *AdjacencySuite) TestStableTies() {
	require := require.New(s.T())
	// Three equal-weight edges out of vertex 1, inserted 4, 2, 3.
	edges := []core.Edge{
		core.NewEdge(1, 4, 2.0),
		core.NewEdge(1, 2, 2.0),
		core.NewEdge(1, 5, 9.0),
		core.NewEdge(3, 1, 2.0),
	}
	adj := core.BuildAdjacency(5, edges, true)

	got := make([]core.Vertex, 0, 4)
	for _, nb := range adj.Neighbors(1) {
		got = append(got, nb.To)
	}
	require.Equal([]core.Vertex{4, 2, 3, 5}, got, "equal weights keep insertion order")
}

func (s *AdjacencySuite) TestEdgesRoundTrip() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(4, s.edges, true)

	got := adj.Edges()
	require.Len(got, len(s.edges))
	want := make(map[core.Edge]bool, len(s.edges))
	for _, e := range s.edges {
		want[e.Canonical()] = true
	}
	for _, e := range got {
		require.Less(e.U, e.V, "Edges returns canonical form")
		require.True(want[e], "unexpected edge %v", e)
	}
}

func (s *AdjacencySuite) TestOutOfRangeAndIsolated() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(5, []core.Edge{core.NewEdge(1, 2, 1)}, false)

	require.Nil(adj.Neighbors(0))
	require.Nil(adj.Neighbors(6))
	require.Zero(adj.Degree(-1))
	_, ok := adj.Weight(1, 3)
	require.False(ok)
	require.Equal([]core.Vertex{3, 4, 5}, adj.Isolated())
}

func (s *AdjacencySuite) TestEmpty() {
	require := require.New(s.T())
	adj := core.BuildAdjacency(0, nil, true)

	require.Zero(adj.Order())
	require.Zero(adj.EdgeCount())
	require.Empty(adj.Edges())
}

func TestAdjacencySuite(t *testing.T) {
	suite.Run(t, new(AdjacencySuite))
}
