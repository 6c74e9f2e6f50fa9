package bignum

import (
	"math/bits"

	"fortio.org/safecast"
)

// Nat represents an unsigned natural number, the magnitude substrate the
// signed layer is built from. Every operation on Nat is total: subtraction
// truncates at zero and division by zero yields a zero quotient.
type Nat struct {
	// Limbs are base-2^32 little-endian (Limbs[0] is least significant).
	//
	// Canonical zero is represented as nil/empty slice.
	Limbs []uint32
}

// NatZero returns a zero Nat.
func NatZero() Nat { return Nat{} }

// NatOne returns a Nat with value one.
func NatOne() Nat { return Nat{Limbs: []uint32{1}} }

// NatFromUint64 creates a Nat from a uint64.
func NatFromUint64(v uint64) Nat {
	if v == 0 {
		return Nat{}
	}
	lo := uint32(v)       //nolint:gosec // G115: truncation is intentional (low limb).
	hi := uint32(v >> 32) //nolint:gosec // G115: truncation is intentional (high limb).
	if hi == 0 {
		return Nat{Limbs: []uint32{lo}}
	}
	return Nat{Limbs: []uint32{lo, hi}}
}

// NatFromUint32 creates a Nat from a uint32.
func NatFromUint32(v uint32) Nat {
	if v == 0 {
		return Nat{}
	}
	return Nat{Limbs: []uint32{v}}
}

// NatFromInt creates a Nat from an int, rejecting negative values.
func NatFromInt(v int) (Nat, error) {
	u, err := safecast.Conv[uint64](v)
	if err != nil {
		return Nat{}, err
	}
	return NatFromUint64(u), nil
}

// IsZero reports whether the natural is zero.
func (u Nat) IsZero() bool {
	return len(trimLimbs(u.Limbs)) == 0
}

// IsOdd reports whether the natural is odd.
func (u Nat) IsOdd() bool {
	limbs := trimLimbs(u.Limbs)
	return len(limbs) > 0 && (limbs[0]&1) == 1
}

func (u Nat) BitLen() int {
	return bitLenLimbs(u.Limbs)
}

// TrailingZeros returns the number of trailing zero bits.
func (u Nat) TrailingZeros() int {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return 0
	}
	n := 0
	for _, limb := range limbs {
		if limb == 0 {
			n += 32
			continue
		}
		n += bits.TrailingZeros32(limb)
		break
	}
	return n
}

// Cmp compares two Nat values and returns -1, 0, or 1.
func (u Nat) Cmp(v Nat) int {
	return cmpLimbs(u.Limbs, v.Limbs)
}

// Eq reports structural equality of two Nat values.
func (u Nat) Eq(v Nat) bool {
	return cmpLimbs(u.Limbs, v.Limbs) == 0
}

// Uint64 converts Nat to uint64 if possible.
func (u Nat) Uint64() (uint64, bool) {
	limbs := trimLimbs(u.Limbs)
	switch len(limbs) {
	case 0:
		return 0, true
	case 1:
		return uint64(limbs[0]), true
	case 2:
		return uint64(limbs[0]) | (uint64(limbs[1]) << 32), true
	default:
		return 0, false
	}
}

// Bytes returns the magnitude as a big-endian byte slice without leading
// zero bytes. Zero yields an empty slice.
func (u Nat) Bytes() []byte {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return nil
	}
	out := make([]byte, 0, len(limbs)*4)
	ms := limbs[len(limbs)-1]
	for shift := 24; shift >= 0; shift -= 8 {
		b := byte(ms >> shift) //nolint:gosec // G115: truncation is intentional (byte extraction).
		if len(out) == 0 && b == 0 {
			continue
		}
		out = append(out, b)
	}
	for i := len(limbs) - 2; i >= 0; i-- {
		v := limbs[i]
		out = append(out, byte(v>>24), byte(v>>16), byte(v>>8), byte(v)) //nolint:gosec // G115: truncation is intentional.
		if i == 0 {
			break
		}
	}
	return out
}

// NatFromBytes builds a Nat from a big-endian byte slice.
func NatFromBytes(b []byte) Nat {
	for len(b) > 0 && b[0] == 0 {
		b = b[1:]
	}
	if len(b) == 0 {
		return Nat{}
	}
	limbs := make([]uint32, (len(b)+3)/4)
	for i := range limbs {
		var v uint32
		// Limb i covers bytes [len(b)-4(i+1), len(b)-4i) of the big-endian form.
		hi := len(b) - i*4
		lo := hi - 4
		if lo < 0 {
			lo = 0
		}
		for _, by := range b[lo:hi] {
			v = v<<8 | uint32(by)
		}
		limbs[i] = v
	}
	return Nat{Limbs: trimLimbs(limbs)}
}

// NatAdd adds two Nat values.
func NatAdd(a, b Nat) Nat {
	al := trimLimbs(a.Limbs)
	bl := trimLimbs(b.Limbs)
	n := len(al)
	if len(bl) > n {
		n = len(bl)
	}
	if n == 0 {
		return Nat{}
	}

	out := make([]uint32, n+1)
	var carry uint64
	for i := range n {
		var av, bv uint64
		if i < len(al) {
			av = uint64(al[i])
		}
		if i < len(bl) {
			bv = uint64(bl[i])
		}
		sum := av + bv + carry
		out[i] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		carry = sum >> 32
	}
	out[n] = uint32(carry) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
	return Nat{Limbs: trimLimbs(out)}
}

// NatAddSmall adds a uint32 to a Nat.
func NatAddSmall(u Nat, v uint32) Nat {
	if v == 0 {
		return Nat{Limbs: trimLimbs(u.Limbs)}
	}
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return Nat{Limbs: []uint32{v}}
	}
	out := make([]uint32, len(limbs)+1)
	copy(out, limbs)

	var carry uint64
	sum := uint64(out[0]) + uint64(v)
	out[0] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
	carry = sum >> 32
	for i := 1; carry != 0 && i < len(out); i++ {
		sum = uint64(out[i]) + carry
		out[i] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		carry = sum >> 32
	}
	return Nat{Limbs: trimLimbs(out)}
}

// NatSub subtracts b from a, truncating at zero: the result is zero
// whenever b >= a. This is the substrate form the signed layer's
// borrow-subtract is written against.
func NatSub(a, b Nat) Nat {
	if cmpLimbs(a.Limbs, b.Limbs) <= 0 {
		return Nat{}
	}
	al := trimLimbs(a.Limbs)
	bl := trimLimbs(b.Limbs)
	if len(bl) == 0 {
		return Nat{Limbs: al}
	}
	out := make([]uint32, len(al))
	copy(out, al)
	subInPlace(out, bl)
	return Nat{Limbs: trimLimbs(out)}
}

// NatMul multiplies two Nat values.
func NatMul(a, b Nat) Nat {
	al := trimLimbs(a.Limbs)
	bl := trimLimbs(b.Limbs)
	if len(al) == 0 || len(bl) == 0 {
		return Nat{}
	}

	out := make([]uint32, len(al)+len(bl))
	for i := range al {
		ai := uint64(al[i])
		var carry uint64
		for j := range bl {
			k := i + j
			sum := uint64(out[k]) + ai*uint64(bl[j]) + carry
			out[k] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
			carry = sum >> 32
		}
		k := i + len(bl)
		for carry != 0 {
			sum := uint64(out[k]) + carry
			out[k] = uint32(sum) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
			carry = sum >> 32
			k++
		}
	}
	return Nat{Limbs: trimLimbs(out)}
}

// NatMulSmall multiplies a Nat by a uint32.
func NatMulSmall(u Nat, m uint32) Nat {
	if m == 0 || u.IsZero() {
		return Nat{}
	}
	if m == 1 {
		return Nat{Limbs: trimLimbs(u.Limbs)}
	}
	limbs := trimLimbs(u.Limbs)
	out := make([]uint32, len(limbs)+1)
	var carry uint64
	for i := range limbs {
		prod := uint64(limbs[i])*uint64(m) + carry
		out[i] = uint32(prod) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		carry = prod >> 32
	}
	out[len(limbs)] = uint32(carry) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
	return Nat{Limbs: trimLimbs(out)}
}

// NatDivModSmall performs division with remainder on a Nat by a uint32.
// A zero divisor yields a zero quotient; the remainder is then not
// meaningful as a uint32, so callers special-case it (NatDivMod does).
func NatDivModSmall(u Nat, d uint32) (q Nat, r uint32) {
	if d == 0 {
		return Nat{}, 0
	}
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return Nat{}, 0
	}

	out := make([]uint32, len(limbs))
	var rem uint64
	for i := len(limbs) - 1; i >= 0; i-- {
		cur := (rem << 32) | uint64(limbs[i])
		out[i] = uint32(cur / uint64(d)) //nolint:gosec // G115: quotient fits in uint32.
		rem = cur % uint64(d)
		if i == 0 {
			break
		}
	}
	return Nat{Limbs: trimLimbs(out)}, uint32(rem) //nolint:gosec // G115: remainder fits in uint32.
}

// NatShl performs a left bit shift on a Nat.
func NatShl(u Nat, bitsCount int) Nat {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 || bitsCount <= 0 {
		return Nat{Limbs: limbs}
	}
	wordShift := bitsCount / 32
	bitShift := bitsCount % 32

	out := make([]uint32, len(limbs)+wordShift+1)
	if bitShift == 0 {
		copy(out[wordShift:], limbs)
		return Nat{Limbs: trimLimbs(out)}
	}

	var carry uint32
	for i := range limbs {
		v := limbs[i]
		out[i+wordShift] = (v << bitShift) | carry
		carry = v >> (32 - bitShift)
	}
	out[len(limbs)+wordShift] = carry
	return Nat{Limbs: trimLimbs(out)}
}

// NatShr performs a right bit shift on a Nat.
func NatShr(u Nat, bitsCount int) Nat {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 || bitsCount <= 0 {
		return Nat{Limbs: limbs}
	}
	wordShift := bitsCount / 32
	bitShift := bitsCount % 32
	if wordShift >= len(limbs) {
		return Nat{}
	}
	outLen := len(limbs) - wordShift
	out := make([]uint32, outLen)
	if bitShift == 0 {
		copy(out, limbs[wordShift:])
		return Nat{Limbs: trimLimbs(out)}
	}

	var carry uint32
	for i := len(limbs) - 1; i >= wordShift; i-- {
		v := limbs[i]
		out[i-wordShift] = (v >> bitShift) | (carry << (32 - bitShift))
		carry = v & (uint32(1<<bitShift) - 1)
		if i == wordShift {
			break
		}
	}
	return Nat{Limbs: trimLimbs(out)}
}

// NatDivMod performs floor division with remainder on two Nat values.
// Division is total: a zero divisor yields a zero quotient and the
// dividend as remainder, the convention every signed family propagates.
func NatDivMod(a, b Nat) (q, r Nat) {
	al := trimLimbs(a.Limbs)
	bl := trimLimbs(b.Limbs)
	if len(bl) == 0 {
		return Nat{}, Nat{Limbs: al}
	}
	if len(al) == 0 {
		return Nat{}, Nat{}
	}
	if cmpLimbs(al, bl) < 0 {
		return Nat{}, Nat{Limbs: al}
	}

	shift := bitLenLimbs(al) - bitLenLimbs(bl)
	denomShifted := NatShl(Nat{Limbs: bl}, shift)
	denom := make([]uint32, len(denomShifted.Limbs))
	copy(denom, denomShifted.Limbs)

	rem := make([]uint32, len(al))
	copy(rem, al)

	quot := make([]uint32, shift/32+1)
	for i := shift; i >= 0; i-- {
		if cmpLimbs(rem, denom) >= 0 {
			subInPlace(rem, denom)
			quot[i/32] |= uint32(1) << (i % 32)
		}
		shr1InPlace(denom)
		if i == 0 {
			break
		}
	}

	return Nat{Limbs: trimLimbs(quot)}, Nat{Limbs: trimLimbs(rem)}
}

// NatQuo returns the floor quotient of two Nat values (zero on a zero divisor).
func NatQuo(a, b Nat) Nat {
	q, _ := NatDivMod(a, b)
	return q
}

// NatRem returns the remainder of two Nat values (the dividend on a zero divisor).
func NatRem(a, b Nat) Nat {
	_, r := NatDivMod(a, b)
	return r
}

// NatGcd returns the greatest common divisor of two Nat values.
// Binary GCD: halve out common powers of two, then subtract.
// NatGcd(a, 0) = a and NatGcd(0, b) = b.
func NatGcd(a, b Nat) Nat {
	x := Nat{Limbs: trimLimbs(a.Limbs)}
	y := Nat{Limbs: trimLimbs(b.Limbs)}
	if x.IsZero() {
		return y
	}
	if y.IsZero() {
		return x
	}

	shift := x.TrailingZeros()
	if s := y.TrailingZeros(); s < shift {
		shift = s
	}
	x = NatShr(x, x.TrailingZeros())
	for {
		y = NatShr(y, y.TrailingZeros())
		if x.Cmp(y) > 0 {
			x, y = y, x
		}
		y = NatSub(y, x)
		if y.IsZero() {
			return NatShl(x, shift)
		}
	}
}

func trimLimbs(limbs []uint32) []uint32 {
	for len(limbs) > 0 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	if len(limbs) == 0 {
		return nil
	}
	return limbs
}

func bitLenLimbs(limbs []uint32) int {
	limbs = trimLimbs(limbs)
	if len(limbs) == 0 {
		return 0
	}
	ms := limbs[len(limbs)-1]
	return (len(limbs)-1)*32 + (32 - bits.LeadingZeros32(ms))
}

func cmpLimbs(a, b []uint32) int {
	a = trimLimbs(a)
	b = trimLimbs(b)
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	for i := len(a) - 1; i >= 0; i-- {
		av := a[i]
		bv := b[i]
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		if i == 0 {
			break
		}
	}
	return 0
}

func subInPlace(dst, sub []uint32) {
	var borrow uint64
	for i := 0; i < len(dst); i++ {
		av := uint64(dst[i])
		bv := uint64(0)
		if i < len(sub) {
			bv = uint64(sub[i])
		}
		tmp := av - bv - borrow
		dst[i] = uint32(tmp) //nolint:gosec // G115: truncation is intentional (limb arithmetic).
		if av < bv+borrow {
			borrow = 1
		} else {
			borrow = 0
		}
	}
}

func shr1InPlace(limbs []uint32) {
	var carry uint32
	for i := len(limbs) - 1; i >= 0; i-- {
		v := limbs[i]
		limbs[i] = (v >> 1) | (carry << 31)
		carry = v & 1
		if i == 0 {
			break
		}
	}
}
