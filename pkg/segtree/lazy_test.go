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

func TestLazyRangeAddRangeMax(t *testing.T) {
	t.Parallel()

	op := algebra.Max[int]{Bottom: math.MinInt}
	seg := segtree.LazyFromSlice[int, int]([]int{4, 4, 4, 4, 4}, op, algebra.AddAction[int]{})

	seg.Apply(1, 4, 2)
	assert.Equal(t, []int{4, 6, 6, 6, 4}, collect(seg))
	assert.Equal(t, 6, seg.Fold(0, 3))

	seg.Apply(0, 5, -1)
	assert.Equal(t, []int{3, 5, 5, 5, 3}, collect(seg))
	assert.Equal(t, 5, seg.FoldAll())
}

func TestLazySetAndGet(t *testing.T) {
	t.Parallel()

	op := algebra.Max[int]{Bottom: math.MinInt}
	seg := segtree.NewLazy[int, int](4, op, algebra.AddAction[int]{})

	seg.Set(0, 7)
	seg.Apply(0, 4, 3)
	seg.Set(2, 1)

	assert.Equal(t, 10, seg.Get(0))
	assert.Equal(t, 1, seg.Get(2))
	assert.Equal(t, 10, seg.FoldAll())
}

func TestLazyAffineRangeSum(t *testing.T) {
	t.Parallel()

	vs := make([]algebra.Weighted[int64], 6)
	naive := []int64{1, 2, 3, 4, 5, 6}
	for i, v := range naive {
		vs[i] = algebra.One(v)
	}

	seg := segtree.LazyFromSlice[algebra.Weighted[int64], algebra.Affine[int64]](
		vs, algebra.SumLen[int64]{}, algebra.AffineAction[int64]{},
	)

	// v <- 2*v + 1 on [1, 4): [1, 5, 7, 9, 5, 6]
	seg.Apply(1, 4, algebra.Affine[int64]{A: 2, B: 1})
	assert.Equal(t, int64(22), seg.Fold(0, 4).Value)
	assert.Equal(t, int64(33), seg.FoldAll().Value)
	assert.Equal(t, int64(6), seg.FoldAll().Len)
}

func TestLazyAgainstNaive(t *testing.T) {
	t.Parallel()

	const n = 73

	rng := rand.New(rand.NewSource(7))

	naive := make([]int64, n)
	vs := make([]algebra.Weighted[int64], n)
	for i := range naive {
		naive[i] = int64(rng.Intn(100))
		vs[i] = algebra.One(naive[i])
	}

	seg := segtree.LazyFromSlice[algebra.Weighted[int64], algebra.Affine[int64]](
		vs, algebra.SumLen[int64]{}, algebra.AffineAction[int64]{},
	)

	for q := 0; q < 1000; q++ {
		l := rng.Intn(n + 1)
		r := l + rng.Intn(n+1-l)

		switch rng.Intn(3) {
		case 0:
			f := algebra.Affine[int64]{A: int64(rng.Intn(3)), B: int64(rng.Intn(50)) - 25}
			seg.Apply(l, r, f)
			for i := l; i < r; i++ {
				naive[i] = f.A*naive[i] + f.B
			}
		case 1:
			i := rng.Intn(n)
			v := int64(rng.Intn(100))
			seg.Set(i, algebra.One(v))
			naive[i] = v
		default:
			var want int64
			for _, v := range naive[l:r] {
				want += v
			}
			got := seg.Fold(l, r)
			require.Equal(t, want, got.Value, "fold [%d, %d)", l, r)
			require.Equal(t, int64(r-l), got.Len)
		}
	}

	for i, want := range naive {
		require.Equal(t, want, seg.Get(i).Value, "element %d", i)
	}
}

func collect(seg *segtree.Lazy[int, int]) []int {
	out := make([]int, seg.Len())
	for i := range out {
		out[i] = seg.Get(i)
	}

	return out
}
