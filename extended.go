package numparse

import "math/big"

// extendedPrec is the significand width of the x87 extended format the
// extended backend models.
const extendedPrec = 64

// BigComplex is an ordered pair of extended-precision parts.
type BigComplex struct {
	Re, Im *big.Float
}

// Extended is the extended-precision backend: scalars are big.Float values
// with a 64-bit significand and to-nearest-even rounding. Unlike the native
// backend its range is unbounded, so infinities convert in-range. The
// representation has no NaN; a nan literal reports ErrRange.
type Extended struct{}

func newExtFloat() *big.Float { return new(big.Float).SetPrec(extendedPrec) }

func (Extended) Zero() *big.Float { return newExtFloat() }
func (Extended) One() *big.Float  { return newExtFloat().SetInt64(1) }

func (Extended) FullRange() (*big.Float, *big.Float) {
	return newExtFloat().SetInf(true), newExtFloat().SetInf(false)
}

func (Extended) ParseScalar(s string, min, max *big.Float) (*big.Float, int, Code) {
	start, end, bareHex := scanFloat(s, 0)
	if end == start {
		return nil, 0, ErrSyntax
	}

	p := start
	neg := false
	if s[p] == '+' || s[p] == '-' {
		neg = s[p] == '-'
		p++
	}

	var f *big.Float
	switch {
	case foldPrefix(s, p, "inf"):
		f = newExtFloat().SetInf(neg)
	case foldPrefix(s, p, "nan"):
		return nil, end, ErrRange
	default:
		lit := s[start:end]
		if bareHex {
			lit += "p0"
		}
		var err error
		f, _, err = newExtFloat().Parse(lit, 0)
		if err != nil {
			// The scanner validated the syntax, so the exponent did not fit.
			return nil, end, ErrRange
		}
	}

	if f.Cmp(min) < 0 {
		return f, end, ErrBelowMin
	}
	if f.Cmp(max) > 0 {
		return f, end, ErrAboveMax
	}

	if end == len(s) {
		return f, end, OK
	}
	return f, end, ErrTrailing
}

func (Extended) Cmp(a, b *big.Float) int     { return a.Cmp(b) }
func (Extended) Neg(x *big.Float) *big.Float { return x.Neg(x) }

func (Extended) ZeroComplex() *BigComplex {
	return &BigComplex{Re: newExtFloat(), Im: newExtFloat()}
}

func (Extended) Real(z *BigComplex) *big.Float { return z.Re }
func (Extended) Imag(z *BigComplex) *big.Float { return z.Im }

func (Extended) SetReal(z *BigComplex, x *big.Float) *BigComplex {
	z.Re.Set(x)
	return z
}

func (Extended) SetImag(z *BigComplex, x *big.Float) *BigComplex {
	z.Im.Set(x)
	return z
}

func (Extended) ReleaseScalar(*big.Float) {}
func (Extended) Release(*BigComplex)      {}
