package bignum

import (
	"fmt"
	"strings"
)

// FormatNat renders a magnitude in decimal, peeling nine digits per
// division step.
func FormatNat(u Nat) string {
	limbs := trimLimbs(u.Limbs)
	if len(limbs) == 0 {
		return "0"
	}

	const base = uint32(1_000_000_000)

	cur := Nat{Limbs: limbs}
	var parts []uint32
	for !cur.IsZero() {
		q, r := NatDivModSmall(cur, base)
		parts = append(parts, r)
		cur = q
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", parts[i])
	}
	return sb.String()
}

// FormatInt renders a signed integer in decimal.
func FormatInt(i Int) string {
	s := FormatNat(i.Abs())
	if i.negSucc {
		return "-" + s
	}
	return s
}

func (u Nat) String() string { return FormatNat(u) }

func (i Int) String() string { return FormatInt(i) }
