package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/numparse"
)

func newPartCmd() *cobra.Command {
	var (
		backend, round string
		prec           uint
		base           int
	)
	cmd := &cobra.Command{
		Use:   "part <text>",
		Short: "Parse a single real-or-imaginary term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			switch backend {
			case "native":
				b := numparse.Float64{}
				min, max := numparse.FullComplexRange[float64, complex128](b)
				z, axis, cursor, code := numparse.ParseComplexPart[float64, complex128](b, text, min, max)
				if err := report("part", text, cursor, code); err != nil {
					return err
				}
				if axis == numparse.AxisImaginary {
					fmt.Printf("Complex part = %gi\n", imag(z))
				} else {
					fmt.Printf("Complex part = %g\n", real(z))
				}

			case "extended":
				b := numparse.Extended{}
				min, max := numparse.FullComplexRange[*big.Float, *numparse.BigComplex](b)
				z, axis, cursor, code := numparse.ParseComplexPart[*big.Float, *numparse.BigComplex](b, text, min, max)
				if err := report("part", text, cursor, code); err != nil {
					return err
				}
				if axis == numparse.AxisImaginary {
					fmt.Printf("Complex part = %si\n", z.Im.Text('g', -1))
				} else {
					fmt.Printf("Complex part = %s\n", z.Re.Text('g', -1))
				}

			case "mp":
				b, err := mpBackend(prec, round, base)
				if err != nil {
					return err
				}
				z, axis, cursor, code := b.ParsePart(text)
				defer z.Close()
				if err := report("part", text, cursor, code); err != nil {
					return err
				}
				digits := mpDigits(b.Prec)
				if axis == numparse.AxisImaginary {
					fmt.Printf("Complex part = %si\n", z.ImagText(digits))
				} else {
					fmt.Printf("Complex part = %s\n", z.RealText(digits))
				}

			default:
				return fmt.Errorf("unknown backend %q", backend)
			}
			return nil
		},
	}
	addBackendFlags(cmd, &backend, &prec, &round, &base)
	return cmd
}

func newComplexCmd() *cobra.Command {
	var (
		backend, round string
		prec           uint
		base           int
	)
	cmd := &cobra.Command{
		Use:   "complex <text>",
		Short: "Parse a complex number (a+bi or bi+a)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			switch backend {
			case "native":
				b := numparse.Float64{}
				min, max := numparse.FullComplexRange[float64, complex128](b)
				z, cursor, code := numparse.ParseComplex[float64, complex128](b, text, min, max)
				if err := report("complex", text, cursor, code); err != nil {
					return err
				}
				fmt.Printf("Complex = %g + %gi\n", real(z), imag(z))

			case "extended":
				b := numparse.Extended{}
				min, max := numparse.FullComplexRange[*big.Float, *numparse.BigComplex](b)
				z, cursor, code := numparse.ParseComplex[*big.Float, *numparse.BigComplex](b, text, min, max)
				if err := report("complex", text, cursor, code); err != nil {
					return err
				}
				fmt.Printf("Complex = %s + %si\n", z.Re.Text('g', -1), z.Im.Text('g', -1))

			case "mp":
				b, err := mpBackend(prec, round, base)
				if err != nil {
					return err
				}
				z, cursor, code := b.Parse(text)
				defer z.Close()
				if err := report("complex", text, cursor, code); err != nil {
					return err
				}
				fmt.Printf("Complex = %s\n", z.Text(mpDigits(b.Prec)))

			default:
				return fmt.Errorf("unknown backend %q", backend)
			}
			return nil
		},
	}
	addBackendFlags(cmd, &backend, &prec, &round, &base)
	return cmd
}
