// Package fenwick provides a Fenwick tree (binary indexed tree) over a
// group: point updates and range folds in O(log n).
package fenwick

import (
	"fmt"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Tree maintains a sequence under a group. The inverse is what lets it
// answer an arbitrary range fold as the difference of two prefix folds.
type Tree[T any] struct {
	nodes []T
	op    algebra.Group[T]
}

// New creates a tree of length n with every element set to the identity.
func New[T any](n int, op algebra.Group[T]) *Tree[T] {
	nodes := make([]T, n)
	for i := range nodes {
		nodes[i] = op.Identity()
	}

	return &Tree[T]{nodes: nodes, op: op}
}

// FromSlice creates a tree initialised with v.
func FromSlice[T any](v []T, op algebra.Group[T]) *Tree[T] {
	t := New(len(v), op)
	for i, x := range v {
		t.Add(i, x)
	}

	return t
}

// Len returns the length of the underlying sequence.
func (t *Tree[T]) Len() int {
	return len(t.nodes)
}

// Add combines v into the element at index i: v[i] <- v[i] * v.
func (t *Tree[T]) Add(i int, v T) {
	t.checkIndex(i)

	for i++; i <= len(t.nodes); i += i & (-i) {
		t.nodes[i-1] = t.op.Combine(t.nodes[i-1], v)
	}
}

// Set replaces the element at index i with v.
func (t *Tree[T]) Set(i int, v T) {
	t.Add(i, t.op.Combine(v, t.op.Inverse(t.Get(i))))
}

// Get returns the element at index i.
func (t *Tree[T]) Get(i int) T {
	return t.Fold(i, i+1)
}

// Prefix returns the product of the elements in [0, r).
func (t *Tree[T]) Prefix(r int) T {
	if r < 0 || r > len(t.nodes) {
		panic(fmt.Sprintf("fenwick: prefix end %d out of range [0, %d]", r, len(t.nodes)))
	}

	res := t.op.Identity()
	for ; r > 0; r -= r & (-r) {
		res = t.op.Combine(res, t.nodes[r-1])
	}

	return res
}

// Fold returns the product of the elements in [l, r). An empty range yields
// the identity.
func (t *Tree[T]) Fold(l, r int) T {
	if l < 0 || l > r || r > len(t.nodes) {
		panic(fmt.Sprintf("fenwick: range [%d, %d) invalid for length %d", l, r, len(t.nodes)))
	}

	return t.op.Combine(t.Prefix(r), t.op.Inverse(t.Prefix(l)))
}

func (t *Tree[T]) checkIndex(i int) {
	if i < 0 || i >= len(t.nodes) {
		panic(fmt.Sprintf("fenwick: index %d out of range [0, %d)", i, len(t.nodes)))
	}
}
