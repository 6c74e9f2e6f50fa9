package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"peano/internal/selftest"
)

var (
	selftestSamples int
	selftestJobs    int
	selftestSeed    uint64
	selftestMaxBits int
	selftestVectors string
	selftestUIMode  string
)

func init() {
	selftestCmd.Flags().IntVar(&selftestSamples, "samples", 0, "randomized samples per batch (0 = default)")
	selftestCmd.Flags().IntVar(&selftestJobs, "jobs", 0, "parallel workers (0 = NumCPU)")
	selftestCmd.Flags().Uint64Var(&selftestSeed, "seed", 1, "base seed for the deterministic value streams")
	selftestCmd.Flags().IntVar(&selftestMaxBits, "max-bits", 0, "magnitude width cap in bits (0 = default)")
	selftestCmd.Flags().StringVar(&selftestVectors, "vectors", "", "also run a TOML vector suite")
	selftestCmd.Flags().StringVar(&selftestUIMode, "ui", "auto", "progress display (auto|on|off)")
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Re-check the arithmetic laws over randomized inputs",
	Long: `Selftest re-derives the embedding identities, the ring laws, the
defining identities and sign rules of all three division conventions, and
the wire-codec round trip, over deterministic pseudo-random value streams.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		req := &selftest.Request{
			Samples: selftestSamples,
			Jobs:    selftestJobs,
			Seed:    selftestSeed,
			MaxBits: selftestMaxBits,
			Vectors: selftestVectors,
		}

		useUI := false
		switch selftestUIMode {
		case "on":
			useUI = true
		case "auto":
			useUI = isTerminal(os.Stdout)
		case "off":
		default:
			return fmt.Errorf("unknown ui mode %q (must be auto, on or off)", selftestUIMode)
		}

		var (
			result selftest.Result
			err    error
		)
		if useUI {
			result, err = runSelftestWithUI(cmd.Context(), "peano selftest", req)
		} else {
			result, err = selftest.Run(cmd.Context(), req)
		}
		if err != nil {
			return err
		}

		quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
		if len(result.Failures) == 0 {
			if !quiet {
				fmt.Fprintf(cmd.OutOrStdout(), "ok: %d samples per law, no violations\n", result.Checked)
			}
			return nil
		}
		for _, f := range result.Failures {
			fmt.Fprintf(cmd.ErrOrStderr(), "violation: %v\n", f)
		}
		return fmt.Errorf("%d law violations", len(result.Failures))
	},
}
