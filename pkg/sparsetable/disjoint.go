package sparsetable

import (
	"fmt"
	"math/bits"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Disjoint is a disjoint sparse table: O(1) range folds of an arbitrary
// monoid over a static sequence. Each level splits the sequence into blocks
// and stores folds running outward from the block centres, so a query folds
// exactly two non-overlapping pieces and never needs idempotency.
type Disjoint[T any] struct {
	len  int
	rows [][]T
	op   algebra.Monoid[T]
}

// NewDisjoint builds a disjoint sparse table over v. The sequence must not
// be empty.
func NewDisjoint[T any](v []T, op algebra.Monoid[T]) *Disjoint[T] {
	if len(v) == 0 {
		panic("sparsetable: empty sequence")
	}

	n := len(v)
	levels := bits.Len(uint(n - 1))

	rows := make([][]T, levels+1)
	rows[0] = v

	for k := 1; k <= levels; k++ {
		span := 1 << k
		row := make([]T, n)

		for m := span / 2; m < n+span/2; m += span {
			// fold outward to the left of the centre: row[i] = v[i] * ... * v[m-1]
			hi := min(m, n)
			row[hi-1] = v[hi-1]
			for i := hi - 2; i >= m-span/2; i-- {
				row[i] = op.Combine(v[i], row[i+1])
			}

			// fold outward to the right: row[i] = v[m] * ... * v[i]
			if m < n {
				row[m] = v[m]
				for i := m + 1; i < min(n, m+span/2); i++ {
					row[i] = op.Combine(row[i-1], v[i])
				}
			}
		}

		rows[k] = row
	}

	return &Disjoint[T]{len: n, rows: rows, op: op}
}

// Len returns the length of the underlying sequence.
func (t *Disjoint[T]) Len() int {
	return t.len
}

// Fold returns the product of the elements in [l, r). An empty range yields
// the identity.
func (t *Disjoint[T]) Fold(l, r int) T {
	if l < 0 || l > r || r > t.len {
		panic(fmt.Sprintf("sparsetable: range [%d, %d) invalid for length %d", l, r, t.len))
	}

	if l == r {
		return t.op.Identity()
	}

	r--
	if l == r {
		return t.rows[0][l]
	}

	k := bits.Len(uint(l ^ r))

	return t.op.Combine(t.rows[k][l], t.rows[k][r])
}
