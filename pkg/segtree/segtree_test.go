package segtree_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proconlib/go-procon/pkg/algebra"
	"github.com/proconlib/go-procon/pkg/segtree"
)

func TestTreeRangeSum(t *testing.T) {
	t.Parallel()

	seg := segtree.FromSlice([]int64{1, 3, 5, 7, 9, 11}, algebra.Sum[int64]{})

	assert.Equal(t, int64(9), seg.Fold(0, 3))
	assert.Equal(t, int64(24), seg.Fold(1, 5))
	assert.Equal(t, int64(36), seg.FoldAll())

	seg.Set(2, 6)
	assert.Equal(t, int64(10), seg.Fold(0, 3))
	assert.Equal(t, int64(11), seg.Get(5))

	seg.Update(0, 4)
	assert.Equal(t, int64(5), seg.Get(0))
}

func TestTreeEmptyRange(t *testing.T) {
	t.Parallel()

	seg := segtree.New[int](5, algebra.Sum[int]{})
	assert.Equal(t, 0, seg.Fold(2, 2))
	assert.Equal(t, 5, seg.Len())
}

func TestTreeOutOfRange(t *testing.T) {
	t.Parallel()

	seg := segtree.New[int](3, algebra.Sum[int]{})
	assert.Panics(t, func() { seg.Get(3) })
	assert.Panics(t, func() { seg.Set(-1, 0) })
	assert.Panics(t, func() { seg.Fold(2, 1) })
	assert.Panics(t, func() { seg.Fold(0, 4) })
}

func TestTreeAgainstNaive(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		n int
	}{
		"tiny":         {n: 1},
		"power of two": {n: 64},
		"odd length":   {n: 37},
		"large":        {n: 300},
	}

	for name, tc := range tcs {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			rng := rand.New(rand.NewSource(42))

			naive := make([]int, tc.n)
			for i := range naive {
				naive[i] = rng.Intn(2000) - 1000
			}

			op := algebra.Min[int]{Top: math.MaxInt}
			seg := segtree.FromSlice(naive, op)

			for q := 0; q < 500; q++ {
				if rng.Intn(2) == 0 {
					i := rng.Intn(tc.n)
					v := rng.Intn(2000) - 1000
					naive[i] = v
					seg.Set(i, v)

					continue
				}

				l := rng.Intn(tc.n + 1)
				r := l + rng.Intn(tc.n+1-l)

				want := op.Identity()
				for _, v := range naive[l:r] {
					want = op.Combine(want, v)
				}
				require.Equal(t, want, seg.Fold(l, r), "fold [%d, %d)", l, r)
			}
		})
	}
}
