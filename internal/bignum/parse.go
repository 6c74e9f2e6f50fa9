package bignum

import (
	"errors"
	"fmt"
	"strings"
)

var ErrParse = errors.New("invalid numeric format")

// ParseNat parses an unsigned decimal string. Underscore separators are
// allowed, as are 0x/0o/0b base prefixes.
func ParseNat(s string) (Nat, error) {
	return parseNatString(s, true, true)
}

// ParseInt parses a signed decimal string with an optional leading sign.
func ParseInt(s string) (Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Int{}, ErrParse
	}
	neg := false
	switch s[0] {
	case '+':
		s = s[1:]
	case '-':
		neg = true
		s = s[1:]
	}
	u, err := parseNatString(s, false, true)
	if err != nil {
		return Int{}, err
	}
	i := IntFromNat(u)
	if neg {
		return i.Negated(), nil
	}
	return i, nil
}

func parseNatString(s string, allowLeadingPlus, allowBasePrefix bool) (Nat, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Nat{}, ErrParse
	}
	if allowLeadingPlus && s[0] == '+' {
		s = s[1:]
	}
	if s == "" {
		return Nat{}, ErrParse
	}

	// Strip underscores.
	if strings.IndexByte(s, '_') >= 0 {
		var b strings.Builder
		b.Grow(len(s))
		for i := range len(s) {
			ch := s[i]
			if ch == '_' {
				continue
			}
			b.WriteByte(ch)
		}
		s = b.String()
	}

	base := uint32(10)
	if allowBasePrefix && len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base = 16
			s = s[2:]
		case 'b', 'B':
			base = 2
			s = s[2:]
		case 'o', 'O':
			base = 8
			s = s[2:]
		default:
		}
	}
	if s == "" {
		return Nat{}, ErrParse
	}

	var out Nat
	for i := range len(s) {
		d, ok := digitValue(s[i], base)
		if !ok {
			return Nat{}, fmt.Errorf("%w: %q", ErrParse, s)
		}
		out = NatMulSmall(out, base)
		out = NatAddSmall(out, d)
	}
	return out, nil
}

func digitValue(ch byte, base uint32) (uint32, bool) {
	switch {
	case ch >= '0' && ch <= '9':
		d := uint32(ch - '0')
		return d, d < base
	case base == 16 && ch >= 'a' && ch <= 'f':
		return 10 + uint32(ch-'a'), true
	case base == 16 && ch >= 'A' && ch <= 'F':
		return 10 + uint32(ch-'A'), true
	default:
		return 0, false
	}
}
