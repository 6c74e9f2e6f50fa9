package bignum

import (
	"math"
	"testing"
)

func intFromDecimal(t *testing.T, s string) Int {
	t.Helper()
	i, err := ParseInt(s)
	if err != nil {
		t.Fatalf("ParseInt(%q) failed: %v", s, err)
	}
	return i
}

func TestIntEmbedding(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 1<<32 - 1, 1 << 32, ^uint64(0)} {
		i := IntFromNat(NatFromUint64(v))
		if i.IsNeg() {
			t.Fatalf("IntFromNat(%d) is negative", v)
		}
		if got, _ := i.Abs().Uint64(); got != v {
			t.Fatalf("IntFromNat(%d).Abs() = %d", v, got)
		}
	}
}

func TestIntNegated(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"1", "-1"},
		{"-1", "1"},
		{"5", "-5"},
		{"-5", "5"},
		{"18446744073709551616", "-18446744073709551616"},
	}
	for _, tc := range cases {
		got := intFromDecimal(t, tc.in).Negated()
		if !got.Eq(intFromDecimal(t, tc.want)) {
			t.Fatalf("Negated(%s) = %s, want %s", tc.in, got, tc.want)
		}
		// Negation is an involution.
		if back := got.Negated(); !back.Eq(intFromDecimal(t, tc.in)) {
			t.Fatalf("Negated(Negated(%s)) = %s", tc.in, back)
		}
	}
}

func TestIntAddSubMul(t *testing.T) {
	cases := []struct {
		op, a, b, want string
	}{
		{"add", "3", "-5", "-2"},
		{"add", "-3", "5", "2"},
		{"add", "-3", "-5", "-8"},
		{"add", "3", "5", "8"},
		{"add", "-3", "3", "0"},
		{"sub", "3", "5", "-2"},
		{"sub", "-3", "-5", "2"},
		{"sub", "0", "7", "-7"},
		{"mul", "3", "-5", "-15"},
		{"mul", "-3", "-5", "15"},
		{"mul", "-3", "0", "0"},
		{"mul", "0", "-5", "0"},
		{"mul", "-4294967296", "4294967296", "-18446744073709551616"},
	}
	for _, tc := range cases {
		a := intFromDecimal(t, tc.a)
		b := intFromDecimal(t, tc.b)
		var got Int
		switch tc.op {
		case "add":
			got = IntAdd(a, b)
		case "sub":
			got = IntSub(a, b)
		case "mul":
			got = IntMul(a, b)
		}
		if !got.Eq(intFromDecimal(t, tc.want)) {
			t.Fatalf("%s(%s, %s) = %s, want %s", tc.op, tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIntSignAbsClamp(t *testing.T) {
	cases := []struct {
		in    string
		sign  int
		abs   string
		clamp string
	}{
		{"0", 0, "0", "0"},
		{"7", 1, "7", "7"},
		{"-7", -1, "7", "0"},
		{"-1", -1, "1", "0"},
		{"18446744073709551616", 1, "18446744073709551616", "18446744073709551616"},
	}
	for _, tc := range cases {
		i := intFromDecimal(t, tc.in)
		if got := i.Sign(); got != tc.sign {
			t.Fatalf("Sign(%s) = %d, want %d", tc.in, got, tc.sign)
		}
		if got := i.Abs(); got.Cmp(natFromDecimal(t, tc.abs)) != 0 {
			t.Fatalf("Abs(%s) = %s, want %s", tc.in, got, tc.abs)
		}
		if got := i.ToNatClamped(); got.Cmp(natFromDecimal(t, tc.clamp)) != 0 {
			t.Fatalf("ToNatClamped(%s) = %s, want %s", tc.in, got, tc.clamp)
		}
	}
}

func TestIntCmp(t *testing.T) {
	order := []string{"-18446744073709551616", "-5", "-1", "0", "1", "5", "18446744073709551616"}
	for x, sx := range order {
		for y, sy := range order {
			want := 0
			if x < y {
				want = -1
			} else if x > y {
				want = 1
			}
			got := intFromDecimal(t, sx).Cmp(intFromDecimal(t, sy))
			if got != want {
				t.Fatalf("Cmp(%s, %s) = %d, want %d", sx, sy, got, want)
			}
		}
	}
}

func TestIntInt64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 42, -42, math.MaxInt64, math.MinInt64, math.MinInt64 + 1} {
		i := IntFromInt64(v)
		got, ok := i.Int64()
		if !ok || got != v {
			t.Fatalf("Int64 round trip for %d: got %d (ok=%v)", v, got, ok)
		}
	}
	// One past either bound does not fit.
	over := IntAdd(IntFromInt64(math.MaxInt64), IntOne())
	if _, ok := over.Int64(); ok {
		t.Fatalf("2^63 reported as fitting int64")
	}
	under := IntSub(IntFromInt64(math.MinInt64), IntOne())
	if _, ok := under.Int64(); ok {
		t.Fatalf("-2^63-1 reported as fitting int64")
	}
}

func TestIntMixedSignIdentities(t *testing.T) {
	vals := []string{"-9", "-5", "-1", "0", "1", "4", "9", "-4294967296", "4294967297"}
	for _, sa := range vals {
		a := intFromDecimal(t, sa)
		if got := IntAdd(a, a.Negated()); !got.IsZero() {
			t.Fatalf("a + (-a) for a=%s: %s", sa, got)
		}
		if got := IntSub(a, a); !got.IsZero() {
			t.Fatalf("a - a for a=%s: %s", sa, got)
		}
		for _, sb := range vals {
			b := intFromDecimal(t, sb)
			// a - b = a + (-b)
			if !IntSub(a, b).Eq(IntAdd(a, b.Negated())) {
				t.Fatalf("sub identity failed for (%s, %s)", sa, sb)
			}
			// (-a)*b = -(a*b)
			if !IntMul(a.Negated(), b).Eq(IntMul(a, b).Negated()) {
				t.Fatalf("mul negation failed for (%s, %s)", sa, sb)
			}
		}
	}
}
