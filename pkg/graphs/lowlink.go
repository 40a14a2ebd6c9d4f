package graphs

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// LowLink finds the bridges and articulation points of an undirected
// graph with one depth-first search. Parallel edges are handled: two
// edges between the same pair mean neither is a bridge.
type LowLink[W algebra.Number] struct {
	g             *Graph[W]
	order         []int
	low           []int
	bridges       []Edge[W]
	articulations []int
}

// NewLowLink analyzes g, which must be undirected.
func NewLowLink[W algebra.Number](g *Graph[W]) (*LowLink[W], error) {
	if g.Directed() {
		return nil, errors.Wrap(ErrDirectedGraph, "lowlink")
	}

	n := g.Len()
	l := &LowLink[W]{
		g:     g,
		order: make([]int, n),
		low:   make([]int, n),
	}

	visited := make([]bool, n)
	k := 0

	var dfs func(v, parentEdge int, isRoot bool)
	dfs = func(v, parentEdge int, isRoot bool) {
		visited[v] = true
		l.order[v] = k
		l.low[v] = k
		k++

		children := 0
		isArticulation := false

		for _, a := range g.Neighbors(v) {
			switch {
			case !visited[a.To]:
				children++
				dfs(a.To, a.Edge, false)
				l.low[v] = min(l.low[v], l.low[a.To])
				if !isRoot && l.order[v] <= l.low[a.To] {
					isArticulation = true
				}
				if l.order[v] < l.low[a.To] {
					l.bridges = append(l.bridges, g.Edges()[a.Edge])
				}
			case a.Edge != parentEdge:
				l.low[v] = min(l.low[v], l.order[a.To])
			}
		}

		if isRoot && children > 1 {
			isArticulation = true
		}
		if isArticulation {
			l.articulations = append(l.articulations, v)
		}
	}

	for v := 0; v < n; v++ {
		if !visited[v] {
			dfs(v, -1, true)
		}
	}

	sort.Ints(l.articulations)
	sort.Slice(l.bridges, func(i, j int) bool {
		a, b := l.bridges[i], l.bridges[j]
		if a.From != b.From {
			return a.From < b.From
		}
		return a.To < b.To
	})

	return l, nil
}

// Bridges returns the edges whose removal disconnects the graph,
// ordered by endpoints.
func (l *LowLink[W]) Bridges() []Edge[W] {
	return l.bridges
}

// Articulations returns the vertices whose removal disconnects the
// graph, in increasing order.
func (l *LowLink[W]) Articulations() []int {
	return l.articulations
}

// IsBridge reports whether the edge with the given id is a bridge.
func (l *LowLink[W]) IsBridge(edge int) bool {
	e := l.g.Edges()[edge]
	u, v := e.From, e.To
	if l.order[u] > l.order[v] {
		u, v = v, u
	}

	return l.order[u] < l.low[v]
}
