package bignum

import (
	"testing"
)

func natFromDecimal(t *testing.T, s string) Nat {
	t.Helper()
	n, err := ParseNat(s)
	if err != nil {
		t.Fatalf("ParseNat(%q) failed: %v", s, err)
	}
	return n
}

func TestNatAddCarriesAcrossLimbs(t *testing.T) {
	a := NatFromUint64(1<<32 - 1)
	b := NatFromUint64(1)
	sum := NatAdd(a, b)
	if got, ok := sum.Uint64(); !ok || got != 1<<32 {
		t.Fatalf("NatAdd carry: got %v (ok=%v), want %d", got, ok, uint64(1)<<32)
	}

	big := NatFromUint64(^uint64(0))
	sum = NatAdd(big, NatOne())
	want := natFromDecimal(t, "18446744073709551616") // 2^64
	if sum.Cmp(want) != 0 {
		t.Fatalf("NatAdd 2^64-1 + 1 = %s, want %s", sum, want)
	}
}

func TestNatSubTruncatesAtZero(t *testing.T) {
	a := NatFromUint64(5)
	b := NatFromUint64(9)
	if d := NatSub(a, b); !d.IsZero() {
		t.Fatalf("NatSub(5, 9) = %s, want 0", d)
	}
	if d := NatSub(a, a); !d.IsZero() {
		t.Fatalf("NatSub(5, 5) = %s, want 0", d)
	}
	if d := NatSub(b, a); d.Cmp(NatFromUint64(4)) != 0 {
		t.Fatalf("NatSub(9, 5) = %s, want 4", d)
	}

	// Borrow across a limb boundary.
	top := natFromDecimal(t, "18446744073709551616") // 2^64
	d := NatSub(top, NatOne())
	if got, ok := d.Uint64(); !ok || got != ^uint64(0) {
		t.Fatalf("NatSub(2^64, 1) = %s", d)
	}
}

func TestNatMul(t *testing.T) {
	a := NatFromUint64(^uint64(0))
	sq := NatMul(a, a)
	want := natFromDecimal(t, "340282366920938463426481119284349108225") // (2^64-1)^2
	if sq.Cmp(want) != 0 {
		t.Fatalf("NatMul((2^64-1)^2) = %s, want %s", sq, want)
	}
	if !NatMul(a, Nat{}).IsZero() {
		t.Fatalf("NatMul by zero not zero")
	}
}

func TestNatDivModTotal(t *testing.T) {
	cases := []struct {
		a, b, q, r string
	}{
		{"0", "0", "0", "0"},
		{"7", "0", "0", "7"},
		{"7", "2", "3", "1"},
		{"6", "2", "3", "0"},
		{"5", "9", "0", "5"},
		{"18446744073709551621", "4294967296", "4294967296", "5"},
		{"340282366920938463426481119284349108225", "18446744073709551615", "18446744073709551615", "0"},
	}
	for _, tc := range cases {
		a := natFromDecimal(t, tc.a)
		b := natFromDecimal(t, tc.b)
		q, r := NatDivMod(a, b)
		if q.Cmp(natFromDecimal(t, tc.q)) != 0 || r.Cmp(natFromDecimal(t, tc.r)) != 0 {
			t.Fatalf("NatDivMod(%s, %s) = (%s, %s), want (%s, %s)", tc.a, tc.b, q, r, tc.q, tc.r)
		}
		// q*b + r = a must hold in all cases, including b = 0.
		back := NatAdd(NatMul(q, b), r)
		if back.Cmp(a) != 0 {
			t.Fatalf("NatDivMod(%s, %s): q*b+r = %s", tc.a, tc.b, back)
		}
	}
}

func TestNatGcd(t *testing.T) {
	cases := []struct {
		a, b, want string
	}{
		{"0", "0", "0"},
		{"0", "9", "9"},
		{"9", "0", "9"},
		{"12", "18", "6"},
		{"17", "5", "1"},
		{"48", "18", "6"},
		{"18446744073709551616", "4294967296", "4294967296"}, // 2^64, 2^32
		{"1000000007", "998244353", "1"},
	}
	for _, tc := range cases {
		got := NatGcd(natFromDecimal(t, tc.a), natFromDecimal(t, tc.b))
		if got.Cmp(natFromDecimal(t, tc.want)) != 0 {
			t.Fatalf("NatGcd(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestNatShifts(t *testing.T) {
	one := NatOne()
	shifted := NatShl(one, 100)
	if got := shifted.BitLen(); got != 101 {
		t.Fatalf("NatShl(1, 100).BitLen() = %d", got)
	}
	back := NatShr(shifted, 100)
	if back.Cmp(one) != 0 {
		t.Fatalf("NatShr round trip = %s", back)
	}
	if got := shifted.TrailingZeros(); got != 100 {
		t.Fatalf("TrailingZeros = %d", got)
	}
	if !NatShr(one, 1).IsZero() {
		t.Fatalf("NatShr(1, 1) not zero")
	}
}

func TestNatBytesRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"255",
		"256",
		"4294967295",
		"4294967296",
		"18446744073709551621",
		"340282366920938463426481119284349108225",
	}
	for _, s := range cases {
		n := natFromDecimal(t, s)
		back := NatFromBytes(n.Bytes())
		if back.Cmp(n) != 0 {
			t.Fatalf("bytes round trip for %s: got %s", s, back)
		}
	}
	if NatFromBytes(nil).Cmp(Nat{}) != 0 {
		t.Fatalf("NatFromBytes(nil) not zero")
	}
	if NatFromBytes([]byte{0, 0, 1}).Cmp(NatOne()) != 0 {
		t.Fatalf("NatFromBytes leading zeros mishandled")
	}
	// Big-endian layout: 0x01_0000_0002.
	n := NatFromBytes([]byte{1, 0, 0, 0, 2})
	if got, ok := n.Uint64(); !ok || got != (1<<32)+2 {
		t.Fatalf("NatFromBytes big-endian: got %d", got)
	}
}

func TestNatFromIntRejectsNegative(t *testing.T) {
	if _, err := NatFromInt(-1); err == nil {
		t.Fatalf("NatFromInt(-1) did not fail")
	}
	n, err := NatFromInt(42)
	if err != nil {
		t.Fatalf("NatFromInt(42) failed: %v", err)
	}
	if got, _ := n.Uint64(); got != 42 {
		t.Fatalf("NatFromInt(42) = %s", n)
	}
}

func TestNatUint64Bounds(t *testing.T) {
	if _, ok := natFromDecimal(t, "18446744073709551616").Uint64(); ok {
		t.Fatalf("2^64 should not fit in uint64")
	}
	if got, ok := natFromDecimal(t, "18446744073709551615").Uint64(); !ok || got != ^uint64(0) {
		t.Fatalf("2^64-1 = %d (ok=%v)", got, ok)
	}
}
