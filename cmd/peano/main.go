package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"peano/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "peano",
	Short: "Peano arbitrary-precision integer toolkit",
	Long:  `Peano is a signed-integer layer built from an unsigned-natural substrate, with three division conventions`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(subCmd)
	rootCmd.AddCommand(mulCmd)
	rootCmd.AddCommand(negCmd)
	rootCmd.AddCommand(signCmd)
	rootCmd.AddCommand(absCmd)
	rootCmd.AddCommand(clampCmd)
	rootCmd.AddCommand(cmpCmd)
	rootCmd.AddCommand(gcdCmd)
	rootCmd.AddCommand(divmodCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(selftestCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
