package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"peano/internal/bignum"
)

var divmodFamily string

func init() {
	divmodCmd.Flags().StringVar(&divmodFamily, "family", "trunc", "division convention (trunc|floor|legacy)")
}

var divmodCmd = &cobra.Command{
	Use:   "divmod a b",
	Short: "Quotient and remainder under a chosen division convention",
	Long: `Divmod divides a by b and prints the quotient and remainder.

Conventions:
  trunc   quotient rounds toward zero; remainder has the dividend's sign
  floor   quotient rounds toward negative infinity; remainder has the divisor's sign
  legacy  the historical convention; remainder is never negative for a nonzero divisor

Division is total: with b = 0 the quotient is 0 and the remainder is a.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		divide, err := familyFunc(divmodFamily)
		if err != nil {
			return err
		}
		a, b, err := parseIntArgs(args)
		if err != nil {
			return err
		}
		q, r := divide(a, b)
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", q, r)
		return nil
	},
}

func familyFunc(name string) (func(a, b bignum.Int) (bignum.Int, bignum.Int), error) {
	switch name {
	case "trunc":
		return bignum.IntQuotRem, nil
	case "floor":
		return bignum.IntFDivMod, nil
	case "legacy":
		return bignum.IntDivMod, nil
	default:
		return nil, fmt.Errorf("unknown division family %q (must be trunc, floor or legacy)", name)
	}
}
