package mathx

// Binomial answers binomial coefficients and permutation counts modulo a
// prime from precomputed factorial and inverse-factorial tables.
type Binomial struct {
	md      Mod
	fact    []uint64
	invFact []uint64
}

// NewBinomial precomputes tables for arguments up to and including n.
// mod must be a prime larger than n.
func NewBinomial(n int, mod uint64) *Binomial {
	md := NewMod(mod)

	fact := make([]uint64, n+1)
	fact[0] = 1 % mod
	for i := 1; i <= n; i++ {
		fact[i] = md.Mul(fact[i-1], uint64(i))
	}

	invFact := make([]uint64, n+1)
	invFact[n] = md.Inv(fact[n])
	for i := n; i >= 1; i-- {
		invFact[i-1] = md.Mul(invFact[i], uint64(i))
	}

	return &Binomial{md: md, fact: fact, invFact: invFact}
}

// Factorial returns n! modulo the modulus.
func (b *Binomial) Factorial(n int) uint64 {
	return b.fact[n]
}

// C returns C(n, k) modulo the modulus, or 0 when k is outside [0, n].
func (b *Binomial) C(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}

	return b.md.Mul(b.fact[n], b.md.Mul(b.invFact[k], b.invFact[n-k]))
}

// P returns P(n, k) = n! / (n-k)! modulo the modulus, or 0 when k is
// outside [0, n].
func (b *Binomial) P(n, k int) uint64 {
	if k < 0 || k > n {
		return 0
	}

	return b.md.Mul(b.fact[n], b.invFact[n-k])
}
