package seq

import (
	"cmp"

	"github.com/proconlib/go-procon/pkg/algebra"
	"github.com/proconlib/go-procon/pkg/fenwick"
)

// Inversions counts the pairs i < j with v[i] > v[j]. Values are
// compressed first, so it runs in O(n log n) regardless of magnitude.
func Inversions[T cmp.Ordered](v []T) int64 {
	ranks, values := Compress(v)

	var res int64
	counts := fenwick.New[int64](len(values), algebra.Sum[int64]{})
	for _, r := range ranks {
		res += counts.Fold(r+1, counts.Len())
		counts.Add(r, 1)
	}

	return res
}
