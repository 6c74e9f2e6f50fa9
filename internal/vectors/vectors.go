// Package vectors runs declarative arithmetic test vectors. A suite is a
// TOML file of cases, each naming an operation, its operands and the
// expected result; both `go test` and `peano selftest --vectors` consume
// the same files.
package vectors

import (
	"fmt"
	"strconv"

	"github.com/BurntSushi/toml"

	"peano/internal/bignum"
)

// Case is a single vector. Operands and expected values are decimal
// strings so that suites stay readable for multi-limb magnitudes.
type Case struct {
	Op   string `toml:"op"`
	A    string `toml:"a"`
	B    string `toml:"b"`
	Want string `toml:"want"`
}

// Suite is a named collection of cases.
type Suite struct {
	Name  string `toml:"name"`
	Cases []Case `toml:"case"`
}

// Load reads a suite from a TOML file.
func Load(path string) (*Suite, error) {
	var s Suite
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return nil, fmt.Errorf("load vector suite %s: %w", path, err)
	}
	return &s, nil
}

// Run evaluates every case and returns one error per failing case.
func (s *Suite) Run() []error {
	var failures []error
	for i, c := range s.Cases {
		if err := runCase(c); err != nil {
			failures = append(failures, fmt.Errorf("%s[%d]: %w", s.Name, i, err))
		}
	}
	return failures
}

func runCase(c Case) error {
	a, err := bignum.ParseInt(c.A)
	if err != nil {
		return fmt.Errorf("operand a %q: %w", c.A, err)
	}

	// Unary operations and sign inspection need no second operand.
	switch c.Op {
	case "neg":
		return wantInt(c, a.Negated())
	case "sign":
		want, err := strconv.Atoi(c.Want)
		if err != nil {
			return fmt.Errorf("want %q: %w", c.Want, err)
		}
		if got := a.Sign(); got != want {
			return fmt.Errorf("sign(%s) = %d, want %d", c.A, got, want)
		}
		return nil
	case "abs":
		return wantNat(c, a.Abs())
	case "clamp":
		return wantNat(c, a.ToNatClamped())
	}

	b, err := bignum.ParseInt(c.B)
	if err != nil {
		return fmt.Errorf("operand b %q: %w", c.B, err)
	}

	switch c.Op {
	case "add":
		return wantInt(c, bignum.IntAdd(a, b))
	case "sub":
		return wantInt(c, bignum.IntSub(a, b))
	case "mul":
		return wantInt(c, bignum.IntMul(a, b))
	case "quot":
		return wantInt(c, bignum.IntQuot(a, b))
	case "rem":
		return wantInt(c, bignum.IntRem(a, b))
	case "fdiv":
		return wantInt(c, bignum.IntFDiv(a, b))
	case "fmod":
		return wantInt(c, bignum.IntFMod(a, b))
	case "div":
		return wantInt(c, bignum.IntDiv(a, b))
	case "mod":
		return wantInt(c, bignum.IntMod(a, b))
	case "gcd":
		return wantNat(c, bignum.IntGcd(a, b))
	default:
		return fmt.Errorf("unknown op %q", c.Op)
	}
}

func wantInt(c Case, got bignum.Int) error {
	want, err := bignum.ParseInt(c.Want)
	if err != nil {
		return fmt.Errorf("want %q: %w", c.Want, err)
	}
	if !got.Eq(want) {
		return fmt.Errorf("%s(%s, %s) = %s, want %s", c.Op, c.A, c.B, got, want)
	}
	return nil
}

func wantNat(c Case, got bignum.Nat) error {
	want, err := bignum.ParseNat(c.Want)
	if err != nil {
		return fmt.Errorf("want %q: %w", c.Want, err)
	}
	if !got.Eq(want) {
		return fmt.Errorf("%s(%s, %s) = %s, want %s", c.Op, c.A, c.B, got, want)
	}
	return nil
}
