package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/vmihailenco/msgpack/v5"

	"peano/internal/bignum"
)

var encodeOut string

func init() {
	encodeCmd.Flags().StringVarP(&encodeOut, "out", "o", "", "write the wire form to a file instead of printing hex")
}

var encodeCmd = &cobra.Command{
	Use:   "encode a",
	Short: "Encode an integer into its msgpack wire form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := parseIntArg(args[0])
		if err != nil {
			return err
		}
		raw, err := msgpack.Marshal(&a)
		if err != nil {
			return fmt.Errorf("encode %s: %w", a, err)
		}
		if encodeOut == "" {
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(raw))
			return nil
		}
		if err := os.WriteFile(encodeOut, raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", encodeOut, err)
		}
		return nil
	},
}

var decodeCmd = &cobra.Command{
	Use:   "decode file",
	Short: "Decode an integer from its msgpack wire form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var v bignum.Int
		if err := msgpack.Unmarshal(raw, &v); err != nil {
			return fmt.Errorf("decode %s: %w", args[0], err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), v)
		return nil
	},
}
