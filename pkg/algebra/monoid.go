package algebra

// Monoid is an associative operation with an identity element.
//
// Implementations must satisfy, for all a, b, c:
//
//	Combine(Identity(), a) == Combine(a, Identity()) == a
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
type Monoid[T any] interface {
	Identity() T
	Combine(a, b T) T
}

// Group is a monoid where every element has an inverse:
// Combine(a, Inverse(a)) == Identity().
type Group[T any] interface {
	Monoid[T]
	Inverse(x T) T
}

// Action is a monoid of operators F together with a rule for applying an
// operator to a value X. Combine(g, f) is the composition that applies f
// first and g second, so implementations must satisfy:
//
//	Apply(Identity(), x) == x
//	Apply(Combine(g, f), x) == Apply(g, Apply(f, x))
type Action[F, X any] interface {
	Monoid[F]
	Apply(f F, x X) X
}

// Integer covers the built-in integer types.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Number covers the built-in numeric types.
type Number interface {
	Integer | ~float32 | ~float64
}
