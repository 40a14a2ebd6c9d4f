package dsu

import "github.com/proconlib/go-procon/pkg/algebra"

// Aggregated is a union-find structure that folds a monoid product over each
// component: merging two components combines their products, and Fold
// answers the product for the component containing any element.
type Aggregated[T any] struct {
	parents []int
	sizes   []int
	states  []T
	count   int
	op      algebra.Monoid[T]
}

// NewAggregated creates an aggregated DSU with one element per initial
// state.
func NewAggregated[T any](states []T, op algebra.Monoid[T]) *Aggregated[T] {
	n := len(states)

	parents := make([]int, n)
	sizes := make([]int, n)
	for i := range parents {
		parents[i] = i
		sizes[i] = 1
	}

	owned := make([]T, n)
	copy(owned, states)

	return &Aggregated[T]{
		parents: parents,
		sizes:   sizes,
		states:  owned,
		count:   n,
		op:      op,
	}
}

// Find returns the representative of the component containing v.
func (d *Aggregated[T]) Find(v int) int {
	if d.parents[v] == v {
		return v
	}

	root := d.Find(d.parents[v])
	d.parents[v] = root

	return root
}

// Merge joins the components containing u and v, combining their folded
// products. It reports whether the two were previously separate.
func (d *Aggregated[T]) Merge(u, v int) bool {
	u = d.Find(u)
	v = d.Find(v)

	if u == v {
		return false
	}

	if d.sizes[u] < d.sizes[v] {
		u, v = v, u
	}

	d.parents[v] = u
	d.sizes[u] += d.sizes[v]
	d.states[u] = d.op.Combine(d.states[u], d.states[v])
	d.count--

	return true
}

// Fold returns the product over the component containing v.
func (d *Aggregated[T]) Fold(v int) T {
	return d.states[d.Find(v)]
}

// Connected reports whether u and v are in the same component.
func (d *Aggregated[T]) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Size returns the number of elements in the component containing v.
func (d *Aggregated[T]) Size(v int) int {
	return d.sizes[d.Find(v)]
}

// CountComponents returns the number of components.
func (d *Aggregated[T]) CountComponents() int {
	return d.count
}
