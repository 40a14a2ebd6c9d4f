package stringx_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/proconlib/go-procon/pkg/stringx"
)

func TestRollingHashMatchesSubstringEquality(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"repeated block": "abcabc",
		"abracadabra":    "abracadabra",
		"banana":         "banana",
		"uniform":        "aaaaaaaa",
	}

	rng := rand.New(rand.NewSource(7))
	for name, text := range tests {
		text := text
		rh := stringx.NewRollingHashRandom([]byte(text), rng)

		t.Run(name, func(t *testing.T) {
			n := len(text)
			for l1 := 0; l1 <= n; l1++ {
				for r1 := l1; r1 <= n; r1++ {
					for l2 := 0; l2 <= n; l2++ {
						r2 := l2 + (r1 - l1)
						if r2 > n {
							continue
						}

						same := text[l1:r1] == text[l2:r2]
						require.Equal(t, same, rh.Hash(l1, r1) == rh.Hash(l2, r2),
							"text=%q [%d,%d) vs [%d,%d)", text, l1, r1, l2, r2)
					}
				}
			}
		})
	}
}

func TestRollingHashConcat(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(11))
	text := []byte("mississippi")
	rh := stringx.NewRollingHashRandom(text, rng)

	for l := 0; l <= len(text); l++ {
		for r := l; r <= len(text); r++ {
			for m := l; m <= r; m++ {
				got := rh.Concat(rh.Hash(l, m), rh.Hash(m, r), r-m)
				require.Equal(t, rh.Hash(l, r), got, "[%d,%d) split at %d", l, r, m)
			}
		}
	}
}

func TestRollingHashSharedBaseAcrossTexts(t *testing.T) {
	t.Parallel()

	const (
		base = 1_000_003
		mod  = 1<<61 - 1
	)

	a := []byte("xyzzyx")
	b := []byte("azzyb")
	ha := stringx.NewRollingHash(a, base, mod)
	hb := stringx.NewRollingHash(b, base, mod)

	for la := 0; la <= len(a); la++ {
		for ra := la; ra <= len(a); ra++ {
			for lb := 0; lb <= len(b); lb++ {
				rb := lb + (ra - la)
				if rb > len(b) {
					continue
				}

				same := bytes.Equal(a[la:ra], b[lb:rb])
				require.Equal(t, same, ha.Hash(la, ra) == hb.Hash(lb, rb))
			}
		}
	}
}

func TestRollingHashEmpty(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(13))
	rh := stringx.NewRollingHashRandom(nil, rng)

	assert.Equal(t, 0, rh.Len())
	assert.Equal(t, uint64(0), rh.Hash(0, 0))
}

func TestRollingHashRejectsBadBase(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { stringx.NewRollingHash([]byte("a"), 0, 97) })
	assert.Panics(t, func() { stringx.NewRollingHash([]byte("a"), 97, 97) })
	assert.Panics(t, func() {
		rh := stringx.NewRollingHash([]byte("ab"), 31, 97)
		rh.Hash(1, 3)
	})
}
