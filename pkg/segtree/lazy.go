package segtree

import (
	"fmt"
	"math/bits"

	"github.com/proconlib/go-procon/pkg/algebra"
)

// Lazy maintains a sequence under a monoid together with a monoid action,
// supporting range updates and range folds with lazy propagation. Ranges are
// half-open; indices out of range panic.
type Lazy[T, F any] struct {
	len    int
	offset int
	log    int
	nodes  []T
	lazies []F
	op     algebra.Monoid[T]
	act    algebra.Action[F, T]
}

// NewLazy creates a lazy tree of length n with every element set to the
// identity.
func NewLazy[T, F any](n int, op algebra.Monoid[T], act algebra.Action[F, T]) *Lazy[T, F] {
	offset := nextPow2(n)

	nodes := make([]T, 2*offset)
	for i := range nodes {
		nodes[i] = op.Identity()
	}

	lazies := make([]F, offset)
	for i := range lazies {
		lazies[i] = act.Identity()
	}

	return &Lazy[T, F]{
		len:    n,
		offset: offset,
		log:    bits.TrailingZeros(uint(offset)),
		nodes:  nodes,
		lazies: lazies,
		op:     op,
		act:    act,
	}
}

// LazyFromSlice creates a lazy tree initialised with v in O(n).
func LazyFromSlice[T, F any](v []T, op algebra.Monoid[T], act algebra.Action[F, T]) *Lazy[T, F] {
	t := NewLazy(len(v), op, act)
	copy(t.nodes[t.offset:], v)
	for i := t.offset - 1; i >= 1; i-- {
		t.nodes[i] = op.Combine(t.nodes[2*i], t.nodes[2*i+1])
	}

	return t
}

// Len returns the length of the underlying sequence.
func (t *Lazy[T, F]) Len() int {
	return t.len
}

// Get returns the element at index i.
func (t *Lazy[T, F]) Get(i int) T {
	t.checkIndex(i)

	i += t.offset
	for k := t.log; k >= 1; k-- {
		t.propagate(i >> k)
	}

	return t.nodes[i]
}

// Set replaces the element at index i with v.
func (t *Lazy[T, F]) Set(i int, v T) {
	t.checkIndex(i)

	i += t.offset
	for k := t.log; k >= 1; k-- {
		t.propagate(i >> k)
	}
	t.nodes[i] = v
	for k := 1; k <= t.log; k++ {
		t.pull(i >> k)
	}
}

// Apply acts with f on every element in [l, r).
func (t *Lazy[T, F]) Apply(l, r int, f F) {
	t.checkRange(l, r)
	if l == r {
		return
	}

	l += t.offset
	r += t.offset

	for k := t.log; k >= 1; k-- {
		if (l>>k)<<k != l {
			t.propagate(l >> k)
		}
		if (r>>k)<<k != r {
			t.propagate((r - 1) >> k)
		}
	}

	for li, ri := l, r; li < ri; {
		if li&1 == 1 {
			t.applyAll(li, f)
			li++
		}
		if ri&1 == 1 {
			ri--
			t.applyAll(ri, f)
		}
		li >>= 1
		ri >>= 1
	}

	for k := 1; k <= t.log; k++ {
		if (l>>k)<<k != l {
			t.pull(l >> k)
		}
		if (r>>k)<<k != r {
			t.pull((r - 1) >> k)
		}
	}
}

// Fold returns the product of the elements in [l, r). An empty range yields
// the identity.
func (t *Lazy[T, F]) Fold(l, r int) T {
	t.checkRange(l, r)
	if l == r {
		return t.op.Identity()
	}

	l += t.offset
	r += t.offset

	for k := t.log; k >= 1; k-- {
		if (l>>k)<<k != l {
			t.propagate(l >> k)
		}
		if (r>>k)<<k != r {
			t.propagate((r - 1) >> k)
		}
	}

	resL := t.op.Identity()
	resR := t.op.Identity()
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
func (t *Lazy[T, F]) FoldAll() T {
	return t.Fold(0, t.len)
}

func (t *Lazy[T, F]) pull(k int) {
	t.nodes[k] = t.op.Combine(t.nodes[2*k], t.nodes[2*k+1])
}

func (t *Lazy[T, F]) applyAll(k int, f F) {
	t.nodes[k] = t.act.Apply(f, t.nodes[k])
	if k < t.offset {
		t.lazies[k] = t.act.Combine(f, t.lazies[k])
	}
}

func (t *Lazy[T, F]) propagate(k int) {
	t.applyAll(2*k, t.lazies[k])
	t.applyAll(2*k+1, t.lazies[k])
	t.lazies[k] = t.act.Identity()
}

func (t *Lazy[T, F]) checkIndex(i int) {
	if i < 0 || i >= t.len {
		panic(fmt.Sprintf("segtree: index %d out of range [0, %d)", i, t.len))
	}
}

func (t *Lazy[T, F]) checkRange(l, r int) {
	if l < 0 || l > r || r > t.len {
		panic(fmt.Sprintf("segtree: range [%d, %d) invalid for length %d", l, r, t.len))
	}
}
