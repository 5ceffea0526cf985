package numparse

import "math"

// Float64 is the native double-precision backend: scalars are float64 and
// complex values are complex128. Its full range is the finite double range,
// so an explicit "inf" literal reports a bound violation rather than
// converting.
type Float64 struct{}

func (Float64) Zero() float64 { return 0 }
func (Float64) One() float64  { return 1 }

func (Float64) FullRange() (float64, float64) {
	return -math.MaxFloat64, math.MaxFloat64
}

func (Float64) ParseScalar(s string, min, max float64) (float64, int, Code) {
	return ParseFloat64(s, min, max)
}

func (Float64) Cmp(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func (Float64) Neg(x float64) float64 { return -x }

func (Float64) ZeroComplex() complex128   { return 0 }
func (Float64) Real(z complex128) float64 { return real(z) }
func (Float64) Imag(z complex128) float64 { return imag(z) }

func (Float64) SetReal(z complex128, x float64) complex128 {
	return complex(x, imag(z))
}

func (Float64) SetImag(z complex128, x float64) complex128 {
	return complex(real(z), x)
}

func (Float64) ReleaseScalar(float64) {}
func (Float64) Release(complex128)    {}
