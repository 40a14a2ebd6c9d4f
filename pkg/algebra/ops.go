package algebra

import "cmp"

// Sum folds by addition. It is a group: the inverse of x is -x, with the
// usual wraparound on unsigned types.
type Sum[T Number] struct{}

func (Sum[T]) Identity() T      { return 0 }
func (Sum[T]) Combine(a, b T) T { return a + b }
func (Sum[T]) Inverse(x T) T    { return -x }

// Min folds to the smaller value. Top is the identity and must compare
// greater than or equal to every folded value (math.MaxInt for int, and so
// on). Min is idempotent, so it is valid for sparse tables.
type Min[T cmp.Ordered] struct {
	Top T
}

func (m Min[T]) Identity() T    { return m.Top }
func (Min[T]) Combine(a, b T) T { return min(a, b) }

// Max folds to the larger value. Bottom is the identity and must compare
// less than or equal to every folded value. Max is idempotent.
type Max[T cmp.Ordered] struct {
	Bottom T
}

func (m Max[T]) Identity() T    { return m.Bottom }
func (Max[T]) Combine(a, b T) T { return max(a, b) }

// GCD folds by greatest common divisor, with 0 as the identity. Negative
// inputs are folded by absolute value. GCD is idempotent.
type GCD[T Integer] struct{}

func (GCD[T]) Identity() T { return 0 }

func (GCD[T]) Combine(a, b T) T {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Xor folds by bitwise exclusive or. Every element is its own inverse, so
// Xor is a group.
type Xor[T Integer] struct{}

func (Xor[T]) Identity() T      { return 0 }
func (Xor[T]) Combine(a, b T) T { return a ^ b }
func (Xor[T]) Inverse(x T) T    { return x }

// Weighted pairs a folded value with the length of the range it covers.
// Length-aware actions such as AddSumAction and AffineAction need it to turn
// a per-element update into an update of the range sum.
type Weighted[T Number] struct {
	Value T
	Len   T
}

// One wraps a single element as a Weighted of length 1, the shape expected
// by FromSlice on structures folded with SumLen.
func One[T Number](v T) Weighted[T] {
	return Weighted[T]{Value: v, Len: 1}
}

// SumLen folds Weighted values by summing both the value and the length.
type SumLen[T Number] struct{}

func (SumLen[T]) Identity() Weighted[T] { return Weighted[T]{} }

func (SumLen[T]) Combine(a, b Weighted[T]) Weighted[T] {
	return Weighted[T]{Value: a.Value + b.Value, Len: a.Len + b.Len}
}

var (
	_ Group[int]            = Sum[int]{}
	_ Group[uint]           = Xor[uint]{}
	_ Monoid[int]           = Min[int]{}
	_ Monoid[int]           = Max[int]{}
	_ Monoid[int]           = GCD[int]{}
	_ Monoid[Weighted[int]] = SumLen[int]{}
)
