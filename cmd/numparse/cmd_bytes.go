package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/numparse"
)

func newBytesCmd() *cobra.Command {
	var (
		minVal, maxVal uint64
		unit           string
	)
	cmd := &cobra.Command{
		Use:   "bytes <text>",
		Short: "Parse a byte-size quantity like 1.5kB",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			def := cfg.defaultUnit()
			if unit != "" {
				m, ok := numparse.ParseMagnitude(unit)
				if !ok {
					return fmt.Errorf("unknown byte unit %q", unit)
				}
				def = m
			}
			v, cursor, code := numparse.ParseByteSize(args[0], minVal, maxVal, def)
			if err := report("bytes", args[0], cursor, code); err != nil {
				return err
			}
			fmt.Printf("Memory = %d bytes\n", v)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&minVal, "min", 0, "inclusive minimum in bytes")
	cmd.Flags().Uint64Var(&maxVal, "max", math.MaxUint64, "inclusive maximum in bytes")
	cmd.Flags().StringVar(&unit, "unit", "", "magnitude applied when no suffix is present (default from config)")
	return cmd
}
