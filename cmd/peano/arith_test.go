package main

import (
	"testing"

	"peano/internal/bignum"
)

func TestParseIntArg(t *testing.T) {
	v, err := parseIntArg("-1_000")
	if err != nil {
		t.Fatalf("parseIntArg failed: %v", err)
	}
	if !v.Eq(bignum.IntFromInt64(-1000)) {
		t.Fatalf("parseIntArg(-1_000) = %s", v)
	}
	if _, err := parseIntArg("nope"); err == nil {
		t.Fatalf("parseIntArg accepted garbage")
	}
}

func TestFamilyFunc(t *testing.T) {
	a := bignum.IntFromInt64(-7)
	b := bignum.IntFromInt64(2)
	cases := []struct {
		family string
		q, r   int64
	}{
		{"trunc", -3, -1},
		{"floor", -4, 1},
		{"legacy", -4, 1},
	}
	for _, tc := range cases {
		divide, err := familyFunc(tc.family)
		if err != nil {
			t.Fatalf("familyFunc(%q): %v", tc.family, err)
		}
		q, r := divide(a, b)
		if !q.Eq(bignum.IntFromInt64(tc.q)) || !r.Eq(bignum.IntFromInt64(tc.r)) {
			t.Fatalf("%s(-7, 2) = (%s, %s), want (%d, %d)", tc.family, q, r, tc.q, tc.r)
		}
	}
	if _, err := familyFunc("ceiling"); err == nil {
		t.Fatalf("familyFunc accepted an unknown family")
	}
}
