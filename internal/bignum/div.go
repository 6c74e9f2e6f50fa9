package bignum

// Three division conventions live side by side and are not interchangeable:
//
//	IntQuotRem — truncated: quotient rounds toward zero, remainder carries
//	             the dividend's sign.
//	IntFDivMod — floored: quotient rounds toward negative infinity,
//	             remainder carries the divisor's sign.
//	IntDivMod  — legacy: a historical convention kept for compatibility
//	             with old callers; its remainder is never negative when the
//	             divisor is nonzero. It agrees with IntQuotRem for a
//	             non-negative dividend and negative divisor, and with
//	             IntFDivMod for a negative dividend and positive divisor.
//
// All six operators are total. A zero divisor is an ordinary input: the
// quotient is zero and the remainder is the dividend, in every family.
// Each case below special-cases or structurally avoids the zero divisor
// before any magnitude division whose convention would not propagate it.

// IntQuotRem returns the truncated quotient and remainder of a and b.
// Case table over the two forms (da = am+1, db = bm+1):
//
//	NonNeg(a)   / NonNeg(b)   ->  (a/b),    (a%b)
//	NonNeg(a)   / NegSucc(bm) -> -(a/db),   (a%db)
//	NegSucc(am) / NonNeg(b)   -> -(da/b),  -(da%b)
//	NegSucc(am) / NegSucc(bm) ->  (da/db), -(da%db)
func IntQuotRem(a, b Int) (q, r Int) {
	switch {
	case !a.negSucc && !b.negSucc:
		qm, rm := NatDivMod(a.mag, b.mag)
		return Int{mag: qm}, Int{mag: rm}
	case !a.negSucc && b.negSucc:
		qm, rm := NatDivMod(a.mag, NatAddSmall(b.mag, 1))
		return IntFromNat(qm).Negated(), Int{mag: rm}
	case a.negSucc && !b.negSucc:
		qm, rm := NatDivMod(NatAddSmall(a.mag, 1), b.mag)
		return IntFromNat(qm).Negated(), IntFromNat(rm).Negated()
	default:
		qm, rm := NatDivMod(NatAddSmall(a.mag, 1), NatAddSmall(b.mag, 1))
		return Int{mag: qm}, IntFromNat(rm).Negated()
	}
}

// IntQuot returns the truncated quotient of a and b.
func IntQuot(a, b Int) Int {
	q, _ := IntQuotRem(a, b)
	return q
}

// IntRem returns the truncated remainder of a and b. Whenever nonzero it
// has the sign of the dividend, and IntQuot(a,b)*b + IntRem(a,b) = a.
func IntRem(a, b Int) Int {
	_, r := IntQuotRem(a, b)
	return r
}

// IntFDivMod returns the floored quotient and remainder of a and b. The
// same-sign cases coincide with IntQuotRem; a mixed-sign case with a
// nonzero magnitude remainder takes one more step down and recomputes the
// remainder through the borrow-subtract primitive, so that the remainder
// always carries the divisor's sign.
func IntFDivMod(a, b Int) (q, r Int) {
	switch {
	case !a.negSucc && !b.negSucc:
		qm, rm := NatDivMod(a.mag, b.mag)
		return Int{mag: qm}, Int{mag: rm}
	case !a.negSucc && b.negSucc:
		db := NatAddSmall(b.mag, 1)
		qm, rm := NatDivMod(a.mag, db)
		if rm.IsZero() {
			return IntFromNat(qm).Negated(), Int{}
		}
		return intNegSucc(qm), subNat(rm, db)
	case a.negSucc && !b.negSucc && b.mag.IsZero():
		// Zero divisor: quotient 0, remainder the dividend.
		return Int{}, a
	case a.negSucc && !b.negSucc:
		qm, rm := NatDivMod(NatAddSmall(a.mag, 1), b.mag)
		if rm.IsZero() {
			return IntFromNat(qm).Negated(), Int{}
		}
		return intNegSucc(qm), subNat(b.mag, rm)
	default:
		qm, rm := NatDivMod(NatAddSmall(a.mag, 1), NatAddSmall(b.mag, 1))
		return Int{mag: qm}, IntFromNat(rm).Negated()
	}
}

// IntFDiv returns the floored quotient of a and b.
func IntFDiv(a, b Int) Int {
	q, _ := IntFDivMod(a, b)
	return q
}

// IntFMod returns the floored remainder of a and b. Whenever nonzero it
// has the sign of the divisor, and IntFDiv(a,b)*b + IntFMod(a,b) = a.
func IntFMod(a, b Int) Int {
	_, r := IntFDivMod(a, b)
	return r
}

// IntDivMod returns the legacy quotient and remainder of a and b. The
// quotient case table is reproduced exactly as historical callers rely on
// it; do not reshape it toward either of the other two conventions:
//
//	NonNeg(a)   / NonNeg(b)   ->  (a/b)
//	NonNeg(a)   / NegSucc(bm) -> -(a/db)
//	NegSucc(am) / NonNeg(0)   ->  0
//	NegSucc(am) / NonNeg(b)   -> NegSucc(am/b)    for b >= 1
//	NegSucc(am) / NegSucc(bm) ->  (am/db)+1
//
// The remainder is whatever makes q*b + r = a hold; that identity is its
// definition here, not a derived property.
func IntDivMod(a, b Int) (q, r Int) {
	q = legacyDiv(a, b)
	return q, IntSub(a, IntMul(q, b))
}

func legacyDiv(a, b Int) Int {
	switch {
	case !a.negSucc && !b.negSucc:
		return Int{mag: NatQuo(a.mag, b.mag)}
	case !a.negSucc && b.negSucc:
		return IntFromNat(NatQuo(a.mag, NatAddSmall(b.mag, 1))).Negated()
	case a.negSucc && !b.negSucc:
		if b.mag.IsZero() {
			return Int{}
		}
		return intNegSucc(NatQuo(a.mag, b.mag))
	default:
		return Int{mag: NatAddSmall(NatQuo(a.mag, NatAddSmall(b.mag, 1)), 1)}
	}
}

// IntDiv returns the legacy quotient of a and b.
func IntDiv(a, b Int) Int {
	return legacyDiv(a, b)
}

// IntMod returns the legacy remainder of a and b.
func IntMod(a, b Int) Int {
	_, r := IntDivMod(a, b)
	return r
}

// IntGcd returns the greatest common divisor of two Int values as a
// magnitude, always non-negative: NatGcd of the absolute values.
func IntGcd(a, b Int) Nat {
	return NatGcd(a.Abs(), b.Abs())
}
