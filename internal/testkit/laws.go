// Package testkit holds reusable invariant checkers shared by the unit
// tests and the selftest engine. Each checker returns nil or an error
// naming the law that broke and the operands that broke it.
package testkit

import (
	"fmt"

	"peano/internal/bignum"
)

// CheckEmbedding verifies the magnitude embedding identities:
// abs(embed(n)) = n, sign(embed(n)) = 0 iff n = 0, and clamping is the
// identity on embedded values.
func CheckEmbedding(n bignum.Nat) error {
	e := bignum.IntFromNat(n)
	if !e.Abs().Eq(n) {
		return fmt.Errorf("abs(embed(%v)) = %v, want %v", n, e.Abs(), n)
	}
	if (e.Sign() == 0) != n.IsZero() {
		return fmt.Errorf("sign(embed(%v)) = %d", n, e.Sign())
	}
	if e.Sign() < 0 {
		return fmt.Errorf("embed(%v) is negative", n)
	}
	if !e.ToNatClamped().Eq(n) {
		return fmt.Errorf("clamp(embed(%v)) = %v", n, e.ToNatClamped())
	}
	return nil
}

// CheckEmbeddingHom verifies embed(m+n) = embed(m)+embed(n) and the same
// for multiplication.
func CheckEmbeddingHom(m, n bignum.Nat) error {
	sum := bignum.IntFromNat(bignum.NatAdd(m, n))
	if got := bignum.IntAdd(bignum.IntFromNat(m), bignum.IntFromNat(n)); !got.Eq(sum) {
		return fmt.Errorf("embed(%v+%v): got %v, want %v", m, n, got, sum)
	}
	prod := bignum.IntFromNat(bignum.NatMul(m, n))
	if got := bignum.IntMul(bignum.IntFromNat(m), bignum.IntFromNat(n)); !got.Eq(prod) {
		return fmt.Errorf("embed(%v*%v): got %v, want %v", m, n, got, prod)
	}
	return nil
}

// CheckRingLaws verifies the commutative-ring laws over a triple:
// commutativity and associativity of add and mul, the additive identity
// and inverse, and distributivity.
func CheckRingLaws(a, b, c bignum.Int) error {
	zero := bignum.IntZero()

	if x, y := bignum.IntAdd(a, b), bignum.IntAdd(b, a); !x.Eq(y) {
		return fmt.Errorf("add not commutative: %v+%v: %v vs %v", a, b, x, y)
	}
	if x, y := bignum.IntMul(a, b), bignum.IntMul(b, a); !x.Eq(y) {
		return fmt.Errorf("mul not commutative: %v*%v: %v vs %v", a, b, x, y)
	}
	if x, y := bignum.IntAdd(bignum.IntAdd(a, b), c), bignum.IntAdd(a, bignum.IntAdd(b, c)); !x.Eq(y) {
		return fmt.Errorf("add not associative: (%v,%v,%v): %v vs %v", a, b, c, x, y)
	}
	if x, y := bignum.IntMul(bignum.IntMul(a, b), c), bignum.IntMul(a, bignum.IntMul(b, c)); !x.Eq(y) {
		return fmt.Errorf("mul not associative: (%v,%v,%v): %v vs %v", a, b, c, x, y)
	}
	if x := bignum.IntAdd(a, zero); !x.Eq(a) {
		return fmt.Errorf("add identity: %v+0 = %v", a, x)
	}
	if x := bignum.IntAdd(a, a.Negated()); !x.Eq(zero) {
		return fmt.Errorf("add inverse: %v+(-%v) = %v", a, a, x)
	}
	lhs := bignum.IntMul(a, bignum.IntAdd(b, c))
	rhs := bignum.IntAdd(bignum.IntMul(a, b), bignum.IntMul(a, c))
	if !lhs.Eq(rhs) {
		return fmt.Errorf("distributivity: %v*(%v+%v): %v vs %v", a, b, c, lhs, rhs)
	}
	if x := bignum.IntSub(a, b); !x.Eq(bignum.IntAdd(a, b.Negated())) {
		return fmt.Errorf("sub != add of negation: %v-%v = %v", a, b, x)
	}
	return nil
}

// CheckDivisionLaws verifies, for one dividend/divisor pair, the defining
// identity q*b+r = a of all three families, the remainder sign rule of the
// truncated and floored families, and zero-divisor totality.
func CheckDivisionLaws(a, b bignum.Int) error {
	type family struct {
		name string
		div  func(bignum.Int, bignum.Int) (bignum.Int, bignum.Int)
	}
	families := []family{
		{"quot/rem", bignum.IntQuotRem},
		{"fdiv/fmod", bignum.IntFDivMod},
		{"div/mod", bignum.IntDivMod},
	}
	for _, f := range families {
		q, r := f.div(a, b)
		back := bignum.IntAdd(bignum.IntMul(q, b), r)
		if !back.Eq(a) {
			return fmt.Errorf("%s identity: q=%v r=%v for a=%v b=%v (got back %v)", f.name, q, r, a, b, back)
		}
		if b.IsZero() {
			if !q.IsZero() {
				return fmt.Errorf("%s: zero divisor quotient %v for a=%v", f.name, q, a)
			}
			if !r.Eq(a) {
				return fmt.Errorf("%s: zero divisor remainder %v for a=%v", f.name, r, a)
			}
		}
	}

	if _, r := bignum.IntQuotRem(a, b); !r.IsZero() && r.Sign() != a.Sign() {
		return fmt.Errorf("rem sign: rem(%v,%v) = %v, dividend sign %d", a, b, r, a.Sign())
	}
	if _, r := bignum.IntFDivMod(a, b); !b.IsZero() && !r.IsZero() && r.Sign() != b.Sign() {
		return fmt.Errorf("fmod sign: fmod(%v,%v) = %v, divisor sign %d", a, b, r, b.Sign())
	}
	if r := bignum.IntMod(a, b); !b.IsZero() && r.Sign() < 0 {
		return fmt.Errorf("mod sign: mod(%v,%v) = %v is negative", a, b, r)
	}

	// gcd is symmetric, non-negative, and insensitive to sign.
	g := bignum.IntGcd(a, b)
	if !g.Eq(bignum.IntGcd(b, a)) {
		return fmt.Errorf("gcd not symmetric for %v, %v", a, b)
	}
	if !g.Eq(bignum.IntGcd(a.Negated(), b.Negated())) {
		return fmt.Errorf("gcd sign-sensitive for %v, %v", a, b)
	}
	return nil
}

// CheckCodecRoundTrip verifies that a value survives the wire form.
func CheckCodecRoundTrip(a bignum.Int, encode func(bignum.Int) ([]byte, error), decode func([]byte) (bignum.Int, error)) error {
	raw, err := encode(a)
	if err != nil {
		return fmt.Errorf("encode %v: %w", a, err)
	}
	back, err := decode(raw)
	if err != nil {
		return fmt.Errorf("decode %v: %w", a, err)
	}
	if !back.Eq(a) {
		return fmt.Errorf("round trip: %v came back as %v", a, back)
	}
	return nil
}
