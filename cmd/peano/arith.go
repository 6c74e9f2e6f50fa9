package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"peano/internal/bignum"
)

// The arithmetic commands accept decimal operands, with optional sign,
// underscore separators and 0x/0o/0b prefixes. Negative operands need
// `--` before them so cobra does not read them as flags.

func parseIntArg(s string) (bignum.Int, error) {
	v, err := bignum.ParseInt(s)
	if err != nil {
		return bignum.Int{}, fmt.Errorf("bad integer %q: %w", s, err)
	}
	return v, nil
}

func parseIntArgs(args []string) (a, b bignum.Int, err error) {
	a, err = parseIntArg(args[0])
	if err != nil {
		return bignum.Int{}, bignum.Int{}, err
	}
	b, err = parseIntArg(args[1])
	if err != nil {
		return bignum.Int{}, bignum.Int{}, err
	}
	return a, b, nil
}

func binaryCmd(use, short string, op func(a, b bignum.Int) bignum.Int) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b, err := parseIntArgs(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), op(a, b))
			return nil
		},
	}
}

var addCmd = binaryCmd("add a b", "Add two integers", bignum.IntAdd)
var subCmd = binaryCmd("sub a b", "Subtract b from a", bignum.IntSub)
var mulCmd = binaryCmd("mul a b", "Multiply two integers", bignum.IntMul)

var negCmd = &cobra.Command{
	Use:   "neg a",
	Short: "Negate an integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseIntArg(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Negated())
		return nil
	},
}

var signCmd = &cobra.Command{
	Use:   "sign a",
	Short: "Print -1, 0 or 1 for the sign of an integer",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseIntArg(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Sign())
		return nil
	},
}

var absCmd = &cobra.Command{
	Use:   "abs a",
	Short: "Print the absolute value of an integer as a magnitude",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseIntArg(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Abs())
		return nil
	},
}

var clampCmd = &cobra.Command{
	Use:   "clamp a",
	Short: "Convert an integer to a magnitude, clamping negatives to zero",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseIntArg(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.ToNatClamped())
		return nil
	},
}

var cmpCmd = &cobra.Command{
	Use:   "cmp a b",
	Short: "Compare two integers (-1, 0 or 1)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseIntArgs(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), a.Cmp(b))
		return nil
	},
}

var gcdCmd = &cobra.Command{
	Use:   "gcd a b",
	Short: "Greatest common divisor of two integers (as a magnitude)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, b, err := parseIntArgs(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), bignum.IntGcd(a, b))
		return nil
	},
}
