// Package sparsetable provides static range-fold structures: Table answers
// idempotent-monoid folds in O(1) after an O(n log n) build, and Disjoint
// answers folds of any monoid in O(1).
package sparsetable

import (
	"fmt"
	"math/bits"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Table answers range folds of an idempotent monoid (Min, Max, GCD, ...)
// over a static sequence. The O(1) query folds two overlapping power-of-two
// blocks, which is only correct when folding an element twice is harmless.
type Table[T any] struct {
	len   int
	nodes [][]T
	op    algebra.Monoid[T]
}

// New builds a table over v. The sequence must not be empty.
func New[T any](v []T, op algebra.Monoid[T]) *Table[T] {
	if len(v) == 0 {
		panic("sparsetable: empty sequence")
	}

	levels := bits.Len(uint(len(v)))
	nodes := make([][]T, 0, levels)
	nodes = append(nodes, v)

	for k := 1; k < levels; k++ {
		span := 1 << k
		row := make([]T, len(v)-span+1)
		for i := range row {
			row[i] = op.Combine(nodes[k-1][i], nodes[k-1][i+span/2])
		}
		nodes = append(nodes, row)
	}

	return &Table[T]{len: len(v), nodes: nodes, op: op}
}

// Len returns the length of the underlying sequence.
func (t *Table[T]) Len() int {
	return t.len
}

// Fold returns the product of the elements in [l, r). An empty range yields
// the identity.
func (t *Table[T]) Fold(l, r int) T {
	t.checkRange(l, r)
	if l == r {
		return t.op.Identity()
	}

	k := bits.Len(uint(r-l)) - 1

	return t.op.Combine(t.nodes[k][l], t.nodes[k][r-(1<<k)])
}

func (t *Table[T]) checkRange(l, r int) {
	if l < 0 || l > r || r > t.len {
		panic(fmt.Sprintf("sparsetable: range [%d, %d) invalid for length %d", l, r, t.len))
	}
}
