package numparse

// The complex-number grammar:
//
//	complex := part (sign part)?
//	part    := sign? real unit?
//
// where each part contributes to one axis (the imaginary one when the unit
// marker follows), at most one contribution per axis, and either axis may be
// omitted and defaults to zero. The grammar is written once against Backend
// and instantiated per numeric representation.

// ParseComplexPart parses one signed real-or-imaginary term. It returns a
// complex value with the parsed axis set and the other axis zero, the axis
// tag, the cursor, and a Code. An input of just the imaginary unit carries an
// implicit coefficient of one. min and max bound the term per axis.
func ParseComplexPart[S, Z any](b Backend[S, Z], s string, min, max Z) (Z, Axis, int, Code) {
	return parsePartInto(b, s, 0, min, max, b.ZeroComplex())
}

// parsePartInto parses a term starting at pos and writes it into one axis of
// z, leaving the other axis untouched. The updated z is returned: complex
// representations with value semantics cannot be written in place.
func parsePartInto[S, Z any](b Backend[S, Z], s string, pos int, min, max Z, z Z) (Z, Axis, int, Code) {
	pos = skipSpace(s, pos)

	// The sign is taken by hand so that a unit without a coefficient may
	// still carry one, and so that a second sign is caught: the scalar
	// conversion below would otherwise accept it as its own.
	sign, pos := matchSign(s, pos)
	if sign == 0 {
		sign = 1
	}
	if extra, p := matchSign(s, pos); extra != 0 {
		return z, AxisNone, p, ErrMalformed
	}

	lo, hi := b.FullRange()
	x, n, code := b.ParseScalar(s[pos:], lo, hi)
	b.ReleaseScalar(lo)
	b.ReleaseScalar(hi)
	defer func() { b.ReleaseScalar(x) }()
	switch {
	case code == ErrSyntax:
		// A failed conversion is only legal directly before the unit
		// marker: the term is the bare imaginary unit.
		if pos >= len(s) || lower(s[pos]) != imaginaryUnit {
			return z, AxisNone, pos, ErrMalformed
		}
		x = b.One()
	case code != OK && code != ErrTrailing:
		return z, AxisNone, pos + n, code
	default:
		pos += n
	}

	if sign < 0 {
		x = b.Neg(x)
	}

	isImag, pos := matchImaginaryUnit(s, pos)

	axis := AxisReal
	var blo, bhi S
	if isImag {
		axis = AxisImaginary
		blo, bhi = b.Imag(min), b.Imag(max)
	} else {
		blo, bhi = b.Real(min), b.Real(max)
	}
	defer func() {
		b.ReleaseScalar(blo)
		b.ReleaseScalar(bhi)
	}()
	if b.Cmp(x, blo) < 0 {
		return z, axis, pos, ErrBelowMin
	}
	if b.Cmp(x, bhi) > 0 {
		return z, axis, pos, ErrAboveMax
	}

	if isImag {
		z = b.SetImag(z, x)
	} else {
		z = b.SetReal(z, x)
	}

	if pos == len(s) {
		return z, axis, pos, OK
	}
	return z, axis, pos, ErrTrailing
}

// ParseComplex parses a full complex literal of at most two terms, one per
// axis, in either order. A missing axis is zero.
//
// If the input continues past a valid first term but cannot be completed
// (no operator sign, an unparseable second term, or a second contribution to
// an already parsed axis), the result is ErrMalformed with the cursor rewound
// to the end of the first term, so callers know exactly how much of the input
// formed a valid value.
func ParseComplex[S, Z any](b Backend[S, Z], s string, min, max Z) (Z, int, Code) {
	pos := skipSpace(s, 0)

	z, first, pos, code := parsePartInto(b, s, pos, min, max, b.ZeroComplex())
	if code == OK {
		return z, pos, OK
	}
	if code != ErrTrailing {
		return z, pos, code
	}

	// End of the first valid term: the rewind target for every grammar
	// failure below.
	checkpoint := pos

	op, pos := matchSign(s, pos)
	if op == 0 {
		return z, checkpoint, ErrMalformed
	}

	second, axis, pos, code := parsePartInto(b, s, pos, min, max, b.ZeroComplex())
	defer b.Release(second)
	if code != OK && code != ErrTrailing {
		return z, checkpoint, ErrMalformed
	}
	if axis == first {
		return z, checkpoint, ErrMalformed
	}

	switch axis {
	case AxisReal:
		x := b.Real(second)
		if op < 0 {
			x = b.Neg(x)
		}
		z = b.SetReal(z, x)
		b.ReleaseScalar(x)
	case AxisImaginary:
		x := b.Imag(second)
		if op < 0 {
			x = b.Neg(x)
		}
		z = b.SetImag(z, x)
		b.ReleaseScalar(x)
	}

	if pos == len(s) {
		return z, pos, OK
	}
	return z, pos, ErrTrailing
}

// FullComplexRange returns per-axis bounds admitting every value the backend
// can represent.
func FullComplexRange[S, Z any](b Backend[S, Z]) (min, max Z) {
	lo, hi := b.FullRange()
	min = b.ZeroComplex()
	min = b.SetReal(min, lo)
	min = b.SetImag(min, lo)
	max = b.ZeroComplex()
	max = b.SetReal(max, hi)
	max = b.SetImag(max, hi)
	b.ReleaseScalar(lo)
	b.ReleaseScalar(hi)
	return min, max
}

// ParseComplexPart128 is ParseComplexPart over the native backend.
func ParseComplexPart128(s string, min, max complex128) (complex128, Axis, int, Code) {
	return ParseComplexPart[float64, complex128](Float64{}, s, min, max)
}

// ParseComplex128 is ParseComplex over the native backend.
func ParseComplex128(s string, min, max complex128) (complex128, int, Code) {
	return ParseComplex[float64, complex128](Float64{}, s, min, max)
}
