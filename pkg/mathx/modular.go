package mathx

import (
	"fmt"
	"math/bits"
)

// Common contest moduli.
const (
	Mod998244353  uint64 = 998244353
	Mod1000000007 uint64 = 1000000007
)

// Mod performs arithmetic modulo a fixed modulus. All methods accept
// unreduced operands and return values in [0, m). Go has no const generics,
// so the modulus is a runtime value carried by the receiver.
type Mod struct {
	m uint64
}

// NewMod creates modular arithmetic for modulus m. It panics when m is 0.
func NewMod(m uint64) Mod {
	if m == 0 {
		panic("mathx: modulus must be positive")
	}

	return Mod{m: m}
}

// Modulus returns the modulus.
func (md Mod) Modulus() uint64 {
	return md.m
}

// Add returns (a + b) mod m.
func (md Mod) Add(a, b uint64) uint64 {
	s, carry := bits.Add64(a%md.m, b%md.m, 0)
	if carry == 1 || s >= md.m {
		// wraparound subtraction is exact even when the sum overflowed
		s -= md.m
	}

	return s
}

// Sub returns (a - b) mod m.
func (md Mod) Sub(a, b uint64) uint64 {
	return md.Add(a, md.Neg(b))
}

// Neg returns (-a) mod m.
func (md Mod) Neg(a uint64) uint64 {
	a %= md.m
	if a == 0 {
		return 0
	}

	return md.m - a
}

// Mul returns (a * b) mod m using a full 128-bit intermediate product.
func (md Mod) Mul(a, b uint64) uint64 {
	hi, lo := bits.Mul64(a%md.m, b%md.m)
	_, rem := bits.Div64(hi, lo, md.m)

	return rem
}

// Pow returns base**exp mod m by binary exponentiation. Pow(0, 0) is 1 for
// any modulus greater than 1.
func (md Mod) Pow(base, exp uint64) uint64 {
	if md.m == 1 {
		return 0
	}

	res := uint64(1)
	base %= md.m
	for exp > 0 {
		if exp&1 == 1 {
			res = md.Mul(res, base)
		}
		base = md.Mul(base, base)
		exp >>= 1
	}

	return res
}

// Inv returns the multiplicative inverse of a modulo m via the extended
// Euclidean algorithm. It panics when a and m are not coprime or when the
// modulus exceeds the int64 range.
func (md Mod) Inv(a uint64) uint64 {
	if md.m >= uint64(1)<<63 {
		panic("mathx: modulus too large for inversion")
	}

	g, x, _ := ExtGCD(int64(a%md.m), int64(md.m))
	if g != 1 {
		panic(fmt.Sprintf("mathx: %d is not invertible modulo %d", a, md.m))
	}

	m := int64(md.m)

	return uint64(((x % m) + m) % m)
}

// Div returns (a / b) mod m, i.e. a times the inverse of b.
func (md Mod) Div(a, b uint64) uint64 {
	return md.Mul(a, md.Inv(b))
}

// PowMod returns base**exp mod m.
func PowMod(base, exp, m uint64) uint64 {
	return NewMod(m).Pow(base, exp)
}

// InvMod returns the multiplicative inverse of a modulo m.
func InvMod(a, m uint64) uint64 {
	return NewMod(m).Inv(a)
}
