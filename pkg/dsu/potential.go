package dsu

import "github.com/proconlib/go-procon/pkg/algebra"

// Potential is a union-find structure that additionally maintains, for each
// element, a potential relative to its component representative under a
// group. Merging with a declared difference lets Diff answer
// potential(v) - potential(u) for any connected pair and detect
// contradicting declarations.
type Potential[T comparable] struct {
	parents    []int
	sizes      []int
	potentials []T
	count      int
	op         algebra.Group[T]
}

// NewPotential creates a potentialised DSU over n singleton elements, each
// with the identity potential.
func NewPotential[T comparable](n int, op algebra.Group[T]) *Potential[T] {
	parents := make([]int, n)
	sizes := make([]int, n)
	potentials := make([]T, n)
	for i := range parents {
		parents[i] = i
		sizes[i] = 1
		potentials[i] = op.Identity()
	}

	return &Potential[T]{
		parents:    parents,
		sizes:      sizes,
		potentials: potentials,
		count:      n,
		op:         op,
	}
}

// Find returns the representative of the component containing v, compressing
// the path and accumulating potentials along it.
func (d *Potential[T]) Find(v int) int {
	if d.parents[v] == v {
		return v
	}

	root := d.Find(d.parents[v])
	d.potentials[v] = d.op.Combine(d.potentials[v], d.potentials[d.parents[v]])
	d.parents[v] = root

	return root
}

// MergeWith joins the components of u and v, declaring
// potential(v) - potential(u) = diff. If u and v are already connected it
// merges nothing and reports whether the declaration is consistent with the
// existing potentials.
func (d *Potential[T]) MergeWith(u, v int, diff T) bool {
	d.Find(u)
	d.Find(v)
	w := d.op.Combine(d.op.Combine(diff, d.potentials[u]), d.op.Inverse(d.potentials[v]))

	ru := d.Find(u)
	rv := d.Find(v)

	if ru == rv {
		return w == d.op.Identity()
	}

	if d.sizes[ru] < d.sizes[rv] {
		ru, rv = rv, ru
		w = d.op.Inverse(w)
	}

	d.sizes[ru] += d.sizes[rv]
	d.parents[rv] = ru
	d.potentials[rv] = w
	d.count--

	return true
}

// Diff returns potential(v) - potential(u), or false when u and v are not
// connected.
func (d *Potential[T]) Diff(u, v int) (T, bool) {
	if d.Find(u) != d.Find(v) {
		var zero T
		return zero, false
	}

	return d.op.Combine(d.potentials[v], d.op.Inverse(d.potentials[u])), true
}

// Connected reports whether u and v are in the same component.
func (d *Potential[T]) Connected(u, v int) bool {
	return d.Find(u) == d.Find(v)
}

// Size returns the number of elements in the component containing v.
func (d *Potential[T]) Size(v int) int {
	return d.sizes[d.Find(v)]
}

// CountComponents returns the number of components.
func (d *Potential[T]) CountComponents() int {
	return d.count
}
