package main

import (
	"fmt"
	"math"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/numparse"
	"github.com/lukaszgryglicki/numparse/mp"
)

// addBackendFlags adds the precision-backend selection flags shared by the
// real, part and complex commands.
func addBackendFlags(cmd *cobra.Command, backend *string, prec *uint, round *string, base *int) {
	cmd.Flags().StringVar(backend, "backend", "native", "numeric backend: native, extended or mp")
	cmd.Flags().UintVar(prec, "prec", 0, "precision in bits (mp backend; 0 = config value)")
	cmd.Flags().StringVar(round, "round", "", "rounding mode (mp backend; empty = config value)")
	cmd.Flags().IntVar(base, "base", 0, "conversion radix (mp backend; 0 = auto-detect)")
}

func mpBackend(prec uint, round string, base int) (mp.Backend, error) {
	if prec == 0 {
		prec = cfg.Precision
	}
	rnd := cfg.rounding()
	if round != "" {
		var ok bool
		rnd, ok = mp.ParseRounding(round)
		if !ok {
			return mp.Backend{}, fmt.Errorf("unknown rounding mode %q", round)
		}
	}
	return mp.Backend{Prec: prec, Rnd: rnd, Base: base}, nil
}

// mpDigits picks a significant-digit count for printing from the precision.
func mpDigits(prec uint) int {
	d := int(float64(prec) * math.Log10(2))
	if d < 1 {
		d = 1
	}
	return d
}

func newUintCmd() *cobra.Command {
	var (
		minVal, maxVal uint64
		base           int
	)
	cmd := &cobra.Command{
		Use:   "uint <text>",
		Short: "Parse an unsigned integer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("base") {
				base = cfg.Base
			}
			v, cursor, code := numparse.ParseUint(args[0], minVal, maxVal, base)
			if err := report("uint", args[0], cursor, code); err != nil {
				return err
			}
			fmt.Printf("Unsigned integer = %d\n", v)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&minVal, "min", 0, "inclusive minimum")
	cmd.Flags().Uint64Var(&maxVal, "max", math.MaxUint64, "inclusive maximum")
	cmd.Flags().IntVar(&base, "base", 10, "conversion radix (0 = auto-detect)")
	return cmd
}

func newRealCmd() *cobra.Command {
	var (
		minVal, maxVal float64
		backend, round string
		prec           uint
		base           int
	)
	cmd := &cobra.Command{
		Use:   "real <text>",
		Short: "Parse a floating-point real",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			switch backend {
			case "native":
				v, cursor, code := numparse.ParseFloat64(text, minVal, maxVal)
				if err := report("real", text, cursor, code); err != nil {
					return err
				}
				fmt.Printf("Real = %g\n", v)

			case "extended":
				b := numparse.Extended{}
				lo, hi := b.FullRange()
				if cmd.Flags().Changed("min") {
					lo = big.NewFloat(minVal).SetPrec(64)
				}
				if cmd.Flags().Changed("max") {
					hi = big.NewFloat(maxVal).SetPrec(64)
				}
				v, cursor, code := numparse.ParseReal[*big.Float, *numparse.BigComplex](b, text, lo, hi)
				if err := report("real", text, cursor, code); err != nil {
					return err
				}
				fmt.Printf("Real = %s\n", v.Text('g', -1))

			case "mp":
				b, err := mpBackend(prec, round, base)
				if err != nil {
					return err
				}
				var lo, hi *mp.Real
				if cmd.Flags().Changed("min") {
					lo = b.RealFromFloat(minVal)
					defer lo.Close()
				}
				if cmd.Flags().Changed("max") {
					hi = b.RealFromFloat(maxVal)
					defer hi.Close()
				}
				v, cursor, code := numparse.ParseReal[*mp.Real, *mp.Complex](b, text, lo, hi)
				defer v.Close()
				if err := report("real", text, cursor, code); err != nil {
					return err
				}
				fmt.Printf("Real = %s\n", v.Text(mpDigits(b.Prec)))

			default:
				return fmt.Errorf("unknown backend %q", backend)
			}
			return nil
		},
	}
	cmd.Flags().Float64Var(&minVal, "min", -math.MaxFloat64, "inclusive minimum")
	cmd.Flags().Float64Var(&maxVal, "max", math.MaxFloat64, "inclusive maximum")
	addBackendFlags(cmd, &backend, &prec, &round, &base)
	return cmd
}
