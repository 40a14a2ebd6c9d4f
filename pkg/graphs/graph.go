package graphs

import (
	"github.com/pkg/errors"

	"github.com/proconlib/go-procon/pkg/algebra"
)

var (
	ErrVertexOutOfRange = errors.New("vertex out of range")
	ErrDirectedGraph    = errors.New("graph must be undirected")
	ErrUndirectedGraph  = errors.New("graph must be directed")
	ErrWeightNotBinary  = errors.New("edge weight must be 0 or 1")
	ErrNegativeCycle    = errors.New("graph has a negative cycle")
	ErrCyclic           = errors.New("graph has a cycle")
)

// Arc is one directed adjacency entry. Edge identifies the undirected
// edge it came from, so both arcs of an undirected edge share it.
type Arc[W algebra.Number] struct {
	To     int
	Weight W
	Edge   int
}

// Edge is an edge as it was added.
type Edge[W algebra.Number] struct {
	From, To int
	Weight   W
}

// Graph is a weighted graph over vertices 0..n-1 backed by adjacency
// lists. Parallel edges and self loops are allowed.
type Graph[W algebra.Number] struct {
	directed bool
	adj      [][]Arc[W]
	edges    []Edge[W]
}

// NewDirected creates a directed graph with n vertices and no edges.
func NewDirected[W algebra.Number](n int) *Graph[W] {
	return &Graph[W]{directed: true, adj: make([][]Arc[W], n)}
}

// NewUndirected creates an undirected graph with n vertices and no edges.
func NewUndirected[W algebra.Number](n int) *Graph[W] {
	return &Graph[W]{adj: make([][]Arc[W], n)}
}

// Len returns the number of vertices.
func (g *Graph[W]) Len() int {
	return len(g.adj)
}

// Directed reports whether edges are one-way.
func (g *Graph[W]) Directed() bool {
	return g.directed
}

// AddEdge adds an edge from u to v. On an undirected graph the reverse
// arc is added as well, sharing the edge id.
func (g *Graph[W]) AddEdge(u, v int, w W) error {
	if u < 0 || u >= g.Len() || v < 0 || v >= g.Len() {
		return errors.Wrapf(ErrVertexOutOfRange, "edge (%d, %d) on %d vertices", u, v, g.Len())
	}

	id := len(g.edges)
	g.edges = append(g.edges, Edge[W]{From: u, To: v, Weight: w})
	g.adj[u] = append(g.adj[u], Arc[W]{To: v, Weight: w, Edge: id})
	if !g.directed {
		g.adj[v] = append(g.adj[v], Arc[W]{To: u, Weight: w, Edge: id})
	}

	return nil
}

// Neighbors returns the arcs leaving v. The slice is shared, not copied.
func (g *Graph[W]) Neighbors(v int) []Arc[W] {
	return g.adj[v]
}

// Edges returns the edges in insertion order. The slice is shared.
func (g *Graph[W]) Edges() []Edge[W] {
	return g.edges
}

// EdgeCount returns the number of added edges. An undirected edge
// counts once.
func (g *Graph[W]) EdgeCount() int {
	return len(g.edges)
}

func (g *Graph[W]) checkSource(src int) error {
	if src < 0 || src >= g.Len() {
		return errors.Wrapf(ErrVertexOutOfRange, "source %d on %d vertices", src, g.Len())
	}

	return nil
}
