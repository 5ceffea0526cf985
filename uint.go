package numparse

import (
	"math"
	"strconv"
)

// digitVal returns the numeric value of b as a digit, or 99 when b is not a
// digit in any supported base.
func digitVal(b byte) int {
	switch {
	case '0' <= b && b <= '9':
		return int(b - '0')
	case 'a' <= b && b <= 'z':
		return int(b-'a') + 10
	case 'A' <= b && b <= 'Z':
		return int(b-'A') + 10
	}
	return 99
}

// ParseUint converts the longest valid unsigned-integer prefix of s in the
// given base, with strtoul semantics: leading whitespace and an optional sign
// are accepted, base 0 auto-detects a 0x/0X hex or leading-zero octal prefix,
// and a 0x prefix not followed by a hex digit consumes only the zero.
//
// Overflow of uint64 yields math.MaxUint64 and ErrRange. A '-' sign with a
// nonzero magnitude is ErrBelowMin. min and max are inclusive.
func ParseUint(s string, min, max uint64, base int) (uint64, int, Code) {
	if (base < 2 && base != 0) || base > 36 {
		return 0, 0, ErrBase
	}

	pos := skipSpace(s, 0)
	p := pos

	var signChar byte
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		signChar = s[p]
		p++
	}

	effBase := base
	if base == 0 || base == 16 {
		// Take the 0x prefix only when a hex digit follows; otherwise the
		// zero alone is the number, like strtoul.
		if p+2 < len(s) && s[p] == '0' && (s[p+1] == 'x' || s[p+1] == 'X') && digitVal(s[p+2]) < 16 {
			p += 2
			effBase = 16
		} else if base == 0 {
			if p < len(s) && s[p] == '0' {
				effBase = 8
			} else {
				effBase = 10
			}
		}
	}

	q := p
	for q < len(s) && digitVal(s[q]) < effBase {
		q++
	}
	if q == p {
		// No digits at all; the cursor stays at the start of the number.
		return 0, pos, ErrSyntax
	}

	v, err := strconv.ParseUint(s[p:q], effBase, 64)
	if err != nil {
		// The digit run is syntactically valid, so only overflow remains.
		return math.MaxUint64, q, ErrRange
	}

	switch {
	case v < min:
		return v, q, ErrBelowMin
	case v > max:
		return v, q, ErrAboveMax
	case signChar == '-' && v != 0:
		return v, q, ErrBelowMin
	}

	if q == len(s) {
		return v, q, OK
	}
	return v, q, ErrTrailing
}
