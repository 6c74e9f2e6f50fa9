package selftest

import (
	"math/rand"

	"peano/internal/bignum"
)

// gen produces deterministic pseudo-random values for law checking. The
// stream mixes multi-limb magnitudes with boundary values so carry,
// borrow and limb-edge paths all get exercised.
type gen struct {
	rng      *rand.Rand
	maxLimbs int
}

func newGen(seed uint64, maxBits int) *gen {
	maxLimbs := maxBits / 32
	if maxLimbs < 1 {
		maxLimbs = 1
	}
	return &gen{
		rng:      rand.New(rand.NewSource(int64(seed))), //nolint:gosec // G404: deterministic stream, not cryptographic.
		maxLimbs: maxLimbs,
	}
}

var edgeMagnitudes = []uint64{
	0, 1, 2, 3,
	1<<32 - 1, 1 << 32, 1<<32 + 1,
	1<<63 - 1, 1 << 63,
	^uint64(0),
}

func (g *gen) nat() bignum.Nat {
	// One draw in four lands on a boundary value.
	if g.rng.Intn(4) == 0 {
		return bignum.NatFromUint64(edgeMagnitudes[g.rng.Intn(len(edgeMagnitudes))])
	}
	n := g.rng.Intn(g.maxLimbs + 1)
	if n == 0 {
		return bignum.Nat{}
	}
	limbs := make([]uint32, n)
	for i := range limbs {
		limbs[i] = g.rng.Uint32()
	}
	// Keep the top limb nonzero most of the time.
	if limbs[n-1] == 0 {
		limbs[n-1] = 1
	}
	return bignum.Nat{Limbs: limbs}
}

func (g *gen) int() bignum.Int {
	v := bignum.IntFromNat(g.nat())
	if g.rng.Intn(2) == 0 {
		return v.Negated()
	}
	return v
}

// divisor returns an Int that is zero roughly once in eight draws, so the
// zero-divisor paths of all three families stay covered.
func (g *gen) divisor() bignum.Int {
	if g.rng.Intn(8) == 0 {
		return bignum.IntZero()
	}
	return g.int()
}
