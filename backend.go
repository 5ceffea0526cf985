package numparse

// Axis tags which half of a complex value a parsed term contributes to.
type Axis int

const (
	AxisNone Axis = iota
	AxisReal
	AxisImaginary
)

func (a Axis) String() string {
	switch a {
	case AxisReal:
		return "real"
	case AxisImaginary:
		return "imaginary"
	}
	return "none"
}

// Backend is the capability set a numeric representation provides so the
// complex-number grammar can run over it unchanged. S is the scalar type and
// Z the complex type of the representation.
//
// ParseScalar converts the longest valid scalar prefix of the input,
// returning the value, the count of consumed bytes, and a Code; min and max
// are inclusive and expressed in the backend's own scalar type. FullRange
// returns the widest bounds the representation accepts, for conversions whose
// axis bounds are applied only after sign and axis are known.
//
// Representations whose values hold foreign resources release them through
// ReleaseScalar and Release; for the others both are no-ops. Callers must
// release every scalar and complex they obtain, on every exit path.
type Backend[S, Z any] interface {
	Zero() S
	One() S
	FullRange() (min, max S)
	ParseScalar(s string, min, max S) (S, int, Code)
	Cmp(a, b S) int
	Neg(x S) S

	ZeroComplex() Z
	Real(z Z) S
	Imag(z Z) S
	SetReal(z Z, x S) Z
	SetImag(z Z, x S) Z

	ReleaseScalar(x S)
	Release(z Z)
}

// ParseReal converts the longest valid real-number prefix of s under the
// given backend, with inclusive bounds in the backend's scalar type.
func ParseReal[S, Z any](b Backend[S, Z], s string, min, max S) (S, int, Code) {
	return b.ParseScalar(s, min, max)
}
