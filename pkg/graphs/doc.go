// Package graphs implements shortest paths, topological ordering,
// strongly connected components, and bridge detection over a compact
// adjacency-list graph, plus DOT export and an adapter for
// github.com/dominikbraun/graph graphs.
package graphs
