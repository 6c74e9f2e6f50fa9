package bignum

// Int represents a signed integer built from the Nat substrate.
//
// Every integer has exactly one of two forms:
//
//	NonNeg(n):  negSucc=false, mag=n, value n
//	NegSucc(n): negSucc=true,  mag=n, value -(n+1)
//
// The encoding is a bijection with the integers: the constructor plus the
// magnitude determines the value, there is no second zero and no
// non-canonical negative. All operations are pure and total; results are
// freshly constructed values.
type Int struct {
	negSucc bool
	mag     Nat
}

// IntZero returns a zero Int.
func IntZero() Int { return Int{} }

// IntOne returns an Int with value one.
func IntOne() Int { return Int{mag: NatOne()} }

// IntFromNat embeds a magnitude into the signed layer. The embedding is
// always the NonNeg form, so IntFromNat(NatAdd(m, n)) equals
// IntAdd(IntFromNat(m), IntFromNat(n)).
func IntFromNat(n Nat) Int {
	return Int{mag: Nat{Limbs: trimLimbs(n.Limbs)}}
}

// intNegSucc constructs the NegSucc form, value -(n+1).
func intNegSucc(n Nat) Int {
	return Int{negSucc: true, mag: Nat{Limbs: trimLimbs(n.Limbs)}}
}

// IntFromUint64 creates an Int from a uint64.
func IntFromUint64(v uint64) Int {
	return Int{mag: NatFromUint64(v)}
}

// IntFromInt64 creates an Int from an int64.
func IntFromInt64(v int64) Int {
	if v >= 0 {
		return Int{mag: NatFromUint64(uint64(v))}
	}
	// v < 0: the NegSucc magnitude is -(v+1), which never overflows.
	return intNegSucc(NatFromUint64(uint64(-(v + 1)))) //nolint:gosec // G115: -(v+1) is non-negative here.
}

// subNat returns the signed difference a - b of two magnitudes. This is
// the borrow-subtract primitive: the single place where a borrow turns a
// magnitude computation into a negative value. Negation-free subtraction,
// addition of mixed signs and the floored remainder all reduce to it.
func subNat(a, b Nat) Int {
	d := NatSub(b, a)
	if d.IsZero() {
		return Int{mag: NatSub(a, b)}
	}
	return intNegSucc(NatSub(d, NatOne()))
}

// IsZero reports whether the integer is zero.
func (i Int) IsZero() bool {
	return !i.negSucc && i.mag.IsZero()
}

// IsNeg reports whether the integer is negative.
func (i Int) IsNeg() bool { return i.negSucc }

// Sign returns -1 for negative values, 0 for zero and 1 for positive values.
func (i Int) Sign() int {
	switch {
	case i.negSucc:
		return -1
	case i.mag.IsZero():
		return 0
	default:
		return 1
	}
}

// Abs returns the absolute value as a Nat: n for NonNeg(n), n+1 for NegSucc(n).
func (i Int) Abs() Nat {
	if i.negSucc {
		return NatAddSmall(i.mag, 1)
	}
	return Nat{Limbs: trimLimbs(i.mag.Limbs)}
}

// ToNatClamped converts to a magnitude, clamping negative values to zero.
func (i Int) ToNatClamped() Nat {
	if i.negSucc {
		return Nat{}
	}
	return Nat{Limbs: trimLimbs(i.mag.Limbs)}
}

// Negated returns the negated value.
func (i Int) Negated() Int {
	if i.negSucc {
		// -(n+1) -> n+1
		return Int{mag: NatAddSmall(i.mag, 1)}
	}
	if i.mag.IsZero() {
		return Int{}
	}
	// n+1 -> -(n+1)
	return intNegSucc(NatSub(i.mag, NatOne()))
}

// Eq reports structural equality: same form and equal magnitude.
func (i Int) Eq(j Int) bool {
	return i.negSucc == j.negSucc && i.mag.Eq(j.mag)
}

// Cmp compares two Int values.
func (i Int) Cmp(j Int) int {
	switch {
	case i.negSucc && !j.negSucc:
		return -1
	case !i.negSucc && j.negSucc:
		return 1
	case i.negSucc:
		// Both negative: the larger magnitude is the smaller value.
		return j.mag.Cmp(i.mag)
	default:
		return i.mag.Cmp(j.mag)
	}
}

// Int64 converts Int to int64 if possible.
func (i Int) Int64() (int64, bool) {
	const maxPos = uint64(^uint64(0) >> 1)
	mag, ok := i.Abs().Uint64()
	if !ok {
		return 0, false
	}
	if !i.negSucc {
		if mag > maxPos {
			return 0, false
		}
		return int64(mag), true
	}
	// Negative: allow magnitude up to 2^63.
	if mag > maxPos+1 {
		return 0, false
	}
	if mag == maxPos+1 {
		return -1 << 63, true
	}
	return -int64(mag), true
}

// IntAdd adds two Int values. Case table over the two forms:
//
//	NonNeg(a)  + NonNeg(b)  = NonNeg(a+b)
//	NonNeg(a)  + NegSucc(b) = subNat(a, b+1)
//	NegSucc(a) + NonNeg(b)  = subNat(b, a+1)
//	NegSucc(a) + NegSucc(b) = NegSucc(a+b+1)
func IntAdd(a, b Int) Int {
	switch {
	case !a.negSucc && !b.negSucc:
		return Int{mag: NatAdd(a.mag, b.mag)}
	case !a.negSucc && b.negSucc:
		return subNat(a.mag, NatAddSmall(b.mag, 1))
	case a.negSucc && !b.negSucc:
		return subNat(b.mag, NatAddSmall(a.mag, 1))
	default:
		return intNegSucc(NatAddSmall(NatAdd(a.mag, b.mag), 1))
	}
}

// IntSub subtracts two Int values.
func IntSub(a, b Int) Int {
	return IntAdd(a, b.Negated())
}

// IntMul multiplies two Int values. The sign of a NegSucc operand rides on
// its absolute value a+1, so each mixed case multiplies magnitudes and
// negates the embedded product.
func IntMul(a, b Int) Int {
	switch {
	case !a.negSucc && !b.negSucc:
		return Int{mag: NatMul(a.mag, b.mag)}
	case !a.negSucc && b.negSucc:
		return IntFromNat(NatMul(a.mag, NatAddSmall(b.mag, 1))).Negated()
	case a.negSucc && !b.negSucc:
		return IntFromNat(NatMul(NatAddSmall(a.mag, 1), b.mag)).Negated()
	default:
		return Int{mag: NatMul(NatAddSmall(a.mag, 1), NatAddSmall(b.mag, 1))}
	}
}
