package stringx

import (
	"fmt"
	"math/rand"

	"github.com/proconlib/go-procon/pkg/mathx"
)

// RollingHash precomputes polynomial hashes of every prefix of a byte
// sequence, answering the hash of any substring in O(1). Two substrings
// with equal hashes are equal with high probability when the base is drawn
// at random; callers comparing across texts must share base and modulus.
type RollingHash struct {
	md   mathx.Mod
	base uint64
	hash []uint64
	pow  []uint64
}

// NewRollingHash prepares hashes of s under the given base and modulus.
// The base must be in (0, mod).
func NewRollingHash(s []byte, base, mod uint64) *RollingHash {
	if base == 0 || base >= mod {
		panic(fmt.Sprintf("stringx: base %d outside (0, %d)", base, mod))
	}

	md := mathx.NewMod(mod)

	n := len(s)
	hash := make([]uint64, n+1)
	pow := make([]uint64, n+1)
	pow[0] = 1 % mod
	for i := 0; i < n; i++ {
		hash[i+1] = md.Add(md.Mul(hash[i], base), uint64(s[i]))
		pow[i+1] = md.Mul(pow[i], base)
	}

	return &RollingHash{md: md, base: base, hash: hash, pow: pow}
}

// NewRollingHashRandom prepares hashes of s with a base drawn from rng,
// using the 2^61-1 Mersenne prime modulus.
func NewRollingHashRandom(s []byte, rng *rand.Rand) *RollingHash {
	const mod = 1<<61 - 1

	base := uint64(rng.Int63n(mod-2)) + 2

	return NewRollingHash(s, base, mod)
}

// Len returns the length of the hashed sequence.
func (rh *RollingHash) Len() int {
	return len(rh.hash) - 1
}

// Base returns the hashing base.
func (rh *RollingHash) Base() uint64 {
	return rh.base
}

// Hash returns the hash of the substring [l, r).
func (rh *RollingHash) Hash(l, r int) uint64 {
	if l < 0 || l > r || r > rh.Len() {
		panic(fmt.Sprintf("stringx: range [%d, %d) invalid for length %d", l, r, rh.Len()))
	}

	return rh.md.Sub(rh.hash[r], rh.md.Mul(rh.hash[l], rh.pow[r-l]))
}

// Concat returns the hash of the concatenation of two substrings given
// their hashes and the length of the right one.
func (rh *RollingHash) Concat(left, right uint64, rightLen int) uint64 {
	return rh.md.Add(rh.md.Mul(left, rh.pow[rightLen]), right)
}
