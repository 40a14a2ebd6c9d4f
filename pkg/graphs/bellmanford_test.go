package graphs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proconlib/go-procon/pkg/graphs"
)

func TestBellmanFordMatchesDijkstraOnNonNegative(t *testing.T) {
	t.Parallel()

	p, err := graphs.BellmanFord(sampleDigraph(t), 0)
	require.NoError(t, err)

	assert.False(t, p.HasNegativeCycle())

	wantDist := map[int]int{0: 0, 1: 2, 2: 5, 4: 9}
	for v := 0; v < 5; v++ {
		d, ok := p.Dist(v)
		want, reach := wantDist[v]
		require.Equal(t, reach, ok, "v=%d", v)
		if reach {
			assert.Equal(t, want, d, "v=%d", v)
		}
	}
}

func TestBellmanFordNegativeEdge(t *testing.T) {
	t.Parallel()

	g := graphs.NewDirected[int](3)
	require.NoError(t, g.AddEdge(0, 1, 4))
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddEdge(1, 2, -2))

	p, err := graphs.BellmanFord(g, 0)
	require.NoError(t, err)

	assert.False(t, p.HasNegativeCycle())

	d, ok := p.Dist(2)
	require.True(t, ok)
	assert.Equal(t, 2, d)
	assert.Equal(t, []int{0, 1, 2}, p.PathTo(2))
}

func TestBellmanFordNegativeCycle(t *testing.T) {
	t.Parallel()

	// 1 -> 2 -> 3 -> 1 sums to -1; vertex 4 hangs off the cycle, vertex 5
	// is reached before it
	g := graphs.NewDirected[int](6)
	require.NoError(t, g.AddEdge(0, 5, 10))
	require.NoError(t, g.AddEdge(5, 1, 1))
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(2, 3, 1))
	require.NoError(t, g.AddEdge(3, 1, -3))
	require.NoError(t, g.AddEdge(3, 4, 0))

	p, err := graphs.BellmanFord(g, 0)
	require.NoError(t, err)

	assert.True(t, p.HasNegativeCycle())

	assert.False(t, p.Poisoned(0))
	assert.False(t, p.Poisoned(5))
	assert.True(t, p.Poisoned(1))
	assert.True(t, p.Poisoned(2))
	assert.True(t, p.Poisoned(3))
	assert.True(t, p.Poisoned(4))
}

func TestBellmanFordUnreachableCycleIsHarmless(t *testing.T) {
	t.Parallel()

	g := graphs.NewDirected[int](4)
	require.NoError(t, g.AddEdge(0, 1, 1))
	require.NoError(t, g.AddEdge(2, 3, -1))
	require.NoError(t, g.AddEdge(3, 2, -1))

	p, err := graphs.BellmanFord(g, 0)
	require.NoError(t, err)

	assert.False(t, p.HasNegativeCycle())
	assert.False(t, p.Reachable(2))
}

func TestBellmanFordBadSource(t *testing.T) {
	t.Parallel()

	g := graphs.NewDirected[int](1)

	_, err := graphs.BellmanFord(g, 1)
	assert.ErrorIs(t, err, graphs.ErrVertexOutOfRange)
}
