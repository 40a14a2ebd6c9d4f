package graphs_test

import (
	"testing"

	"github.com/dominikbraun/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proconlib/go-procon/pkg/graphs"
)

func TestFromGraphDirected(t *testing.T) {
	t.Parallel()

	src := graph.New(graph.StringHash, graph.Directed(), graph.Weighted())
	for _, v := range []string{"a", "b", "c", "d"} {
		require.NoError(t, src.AddVertex(v))
	}
	require.NoError(t, src.AddEdge("a", "b", graph.EdgeWeight(2)))
	require.NoError(t, src.AddEdge("b", "c", graph.EdgeWeight(3)))
	require.NoError(t, src.AddEdge("d", "a", graph.EdgeWeight(1)))

	g, keys, err := graphs.FromGraph(src)
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b", "c", "d"}, keys)
	assert.True(t, g.Directed())
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 3, g.EdgeCount())

	p, err := graphs.Dijkstra(g, 0)
	require.NoError(t, err)

	d, ok := p.Dist(2) // "c"
	require.True(t, ok)
	assert.Equal(t, 5, d)
	assert.False(t, p.Reachable(3)) // "d"
}

func TestFromGraphUndirected(t *testing.T) {
	t.Parallel()

	src := graph.New(graph.IntHash, graph.Weighted())
	for v := 0; v < 3; v++ {
		require.NoError(t, src.AddVertex(v))
	}
	require.NoError(t, src.AddEdge(0, 1, graph.EdgeWeight(1)))
	require.NoError(t, src.AddEdge(1, 2, graph.EdgeWeight(1)))

	g, keys, err := graphs.FromGraph(src)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2}, keys)
	assert.False(t, g.Directed())
	// each undirected edge flattens once even though the adjacency map
	// lists it from both endpoints
	assert.Equal(t, 2, g.EdgeCount())

	l, err := graphs.NewLowLink(g)
	require.NoError(t, err)
	assert.Len(t, l.Bridges(), 2)
}

func TestFromGraphEmpty(t *testing.T) {
	t.Parallel()

	g, keys, err := graphs.FromGraph(graph.New(graph.IntHash, graph.Directed()))
	require.NoError(t, err)

	assert.Empty(t, keys)
	assert.Zero(t, g.Len())
}
