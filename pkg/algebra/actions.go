package algebra

// AddAction shifts every value in the acted range by the operator. It pairs
// with order-based monoids (Min, Max): adding a constant commutes with taking
// a minimum or maximum. It must not be paired with Sum, which needs the range
// length to stay correct; use AddSumAction for that.
type AddAction[T Number] struct{}

func (AddAction[T]) Identity() T      { return 0 }
func (AddAction[T]) Combine(g, f T) T { return g + f }
func (AddAction[T]) Apply(f, x T) T   { return x + f }

// AddSumAction adds the operator to every element of a range folded with
// SumLen: the sum grows by the operator times the range length.
type AddSumAction[T Number] struct{}

func (AddSumAction[T]) Identity() T      { return 0 }
func (AddSumAction[T]) Combine(g, f T) T { return g + f }

func (AddSumAction[T]) Apply(f T, x Weighted[T]) Weighted[T] {
	return Weighted[T]{Value: x.Value + f*x.Len, Len: x.Len}
}

// Affine is the operator f(x) = A*x + B.
type Affine[T Number] struct {
	A T
	B T
}

// AffineAction applies an affine transform to every element of a range
// folded with SumLen: sum' = A*sum + B*len. Composition applies the right
// operand first: Combine(g, f)(x) = g(f(x)).
type AffineAction[T Number] struct{}

func (AffineAction[T]) Identity() Affine[T] { return Affine[T]{A: 1} }

func (AffineAction[T]) Combine(g, f Affine[T]) Affine[T] {
	return Affine[T]{A: g.A * f.A, B: g.A*f.B + g.B}
}

func (AffineAction[T]) Apply(f Affine[T], x Weighted[T]) Weighted[T] {
	return Weighted[T]{Value: f.A*x.Value + f.B*x.Len, Len: x.Len}
}

// Assign is the operator that overwrites a value. The zero Assign is the
// identity operator and leaves values untouched.
type Assign[T any] struct {
	Value T
	Valid bool
}

// AssignWith builds an assigning operator.
func AssignWith[T any](v T) Assign[T] {
	return Assign[T]{Value: v, Valid: true}
}

// AssignAction overwrites every value in the acted range. A later assignment
// wins over an earlier one.
type AssignAction[T any] struct{}

func (AssignAction[T]) Identity() Assign[T] { return Assign[T]{} }

func (AssignAction[T]) Combine(g, f Assign[T]) Assign[T] {
	if g.Valid {
		return g
	}
	return f
}

func (AssignAction[T]) Apply(f Assign[T], x T) T {
	if f.Valid {
		return f.Value
	}
	return x
}

var (
	_ Action[int, int]                   = AddAction[int]{}
	_ Action[int, Weighted[int]]         = AddSumAction[int]{}
	_ Action[Affine[int], Weighted[int]] = AffineAction[int]{}
	_ Action[Assign[string], string]     = AssignAction[string]{}
)
