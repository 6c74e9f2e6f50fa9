package bignum

import (
	"errors"
	"testing"
)

func TestParseNat(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"007", "7"},
		{"1_000_000", "1000000"},
		{"0xff", "255"},
		{"0XFF", "255"},
		{"0o17", "15"},
		{"0b1010", "10"},
		{"  42  ", "42"},
		{"+42", "42"},
		{"18446744073709551616", "18446744073709551616"},
	}
	for _, tc := range cases {
		got, err := ParseNat(tc.in)
		if err != nil {
			t.Fatalf("ParseNat(%q) failed: %v", tc.in, err)
		}
		if got.Cmp(natFromDecimal(t, tc.want)) != 0 {
			t.Fatalf("ParseNat(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestParseNatErrors(t *testing.T) {
	for _, in := range []string{"", "  ", "-1", "12a", "0x", "0b102", "0o8", "+"} {
		if _, err := ParseNat(in); !errors.Is(err, ErrParse) {
			t.Fatalf("ParseNat(%q): got %v, want ErrParse", in, err)
		}
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"+7", "7"},
		{"-7", "-7"},
		{"-0x10", "-16"},
		{"-1_000", "-1000"},
		{"-18446744073709551621", "-18446744073709551621"},
	}
	for _, tc := range cases {
		got, err := ParseInt(tc.in)
		if err != nil {
			t.Fatalf("ParseInt(%q) failed: %v", tc.in, err)
		}
		if !got.Eq(intFromDecimal(t, tc.want)) {
			t.Fatalf("ParseInt(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	for _, in := range []string{"", "-", "+", "--1", "1-"} {
		if _, err := ParseInt(in); !errors.Is(err, ErrParse) {
			t.Fatalf("ParseInt(%q): got %v, want ErrParse", in, err)
		}
	}
}

func TestFormatRoundTrip(t *testing.T) {
	cases := []string{
		"0",
		"1",
		"-1",
		"999999999",
		"1000000000",
		"-123456789012345678901234567890",
		"340282366920938463426481119284349108225",
	}
	for _, s := range cases {
		i := intFromDecimal(t, s)
		if got := FormatInt(i); got != s {
			t.Fatalf("FormatInt(%s) = %q", s, got)
		}
		if got := i.String(); got != s {
			t.Fatalf("String(%s) = %q", s, got)
		}
	}
	if got := FormatNat(Nat{}); got != "0" {
		t.Fatalf("FormatNat(zero) = %q", got)
	}
}
