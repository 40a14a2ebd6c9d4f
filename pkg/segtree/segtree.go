package segtree

import (
	"fmt"
	"math/bits"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Tree maintains a sequence under a monoid, supporting point updates and
// range folds. Ranges are half-open; indices out of range panic.
type Tree[T any] struct {
	len    int
	offset int
	nodes  []T
	op     algebra.Monoid[T]
}

// New creates a tree of length n with every element set to the identity.
func New[T any](n int, op algebra.Monoid[T]) *Tree[T] {
	offset := nextPow2(n)
	nodes := make([]T, 2*offset)
	for i := range nodes {
		nodes[i] = op.Identity()
	}

	return &Tree[T]{
		len:    n,
		offset: offset,
		nodes:  nodes,
		op:     op,
	}
}

// FromSlice creates a tree initialised with v in O(n).
func FromSlice[T any](v []T, op algebra.Monoid[T]) *Tree[T] {
	t := New(len(v), op)
	copy(t.nodes[t.offset:], v)
	for i := t.offset - 1; i >= 1; i-- {
		t.nodes[i] = op.Combine(t.nodes[2*i], t.nodes[2*i+1])
	}

	return t
}

// Len returns the length of the underlying sequence.
func (t *Tree[T]) Len() int {
	return t.len
}

// Get returns the element at index i.
func (t *Tree[T]) Get(i int) T {
	t.checkIndex(i)

	return t.nodes[i+t.offset]
}

// Set replaces the element at index i with v.
func (t *Tree[T]) Set(i int, v T) {
	t.checkIndex(i)

	i += t.offset
	t.nodes[i] = v
	for i >>= 1; i >= 1; i >>= 1 {
		t.nodes[i] = t.op.Combine(t.nodes[2*i], t.nodes[2*i+1])
	}
}

// Update combines v into the element at index i: v[i] <- v[i] * v.
func (t *Tree[T]) Update(i int, v T) {
	t.checkIndex(i)
	t.Set(i, t.op.Combine(t.nodes[i+t.offset], v))
}

// Fold returns the product of the elements in [l, r). An empty range yields
// the identity.
func (t *Tree[T]) Fold(l, r int) T {
	t.checkRange(l, r)

	resL := t.op.Identity()
	resR := t.op.Identity()

	l += t.offset
	r += t.offset
	for l < r {
		if l&1 == 1 {
			resL = t.op.Combine(resL, t.nodes[l])
			l++
		}
		if r&1 == 1 {
			r--
			resR = t.op.Combine(t.nodes[r], resR)
		}
		l >>= 1
		r >>= 1
	}

	return t.op.Combine(resL, resR)
}

// FoldAll returns the product of the whole sequence.
func (t *Tree[T]) FoldAll() T {
	return t.Fold(0, t.len)
}

func (t *Tree[T]) checkIndex(i int) {
	if i < 0 || i >= t.len {
		panic(fmt.Sprintf("segtree: index %d out of range [0, %d)", i, t.len))
	}
}

func (t *Tree[T]) checkRange(l, r int) {
	if l < 0 || l > r || r > t.len {
		panic(fmt.Sprintf("segtree: range [%d, %d) invalid for length %d", l, r, t.len))
	}
}

func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}

	return 1 << bits.Len(uint(n-1))
}
