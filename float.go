package numparse

import (
	"errors"
	"strconv"
)

// foldPrefix reports whether s[pos:] starts with word, ASCII case-insensitive.
func foldPrefix(s string, pos int, word string) bool {
	if len(s)-pos < len(word) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if lower(s[pos+i]) != word[i] {
			return false
		}
	}
	return true
}

// scanFloat finds the longest prefix of s at pos, after optional whitespace,
// that forms a floating-point literal in strtod's grammar: decimal with
// optional exponent, hexadecimal with optional binary exponent, or
// inf/infinity/nan. start==end means no literal. bareHex marks a hexadecimal
// literal without a p-exponent, which strconv.ParseFloat cannot take as-is.
func scanFloat(s string, pos int) (start, end int, bareHex bool) {
	start = skipSpace(s, pos)
	p := start

	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		p++
	}

	switch {
	case foldPrefix(s, p, "infinity"):
		return start, p + len("infinity"), false
	case foldPrefix(s, p, "inf"):
		return start, p + len("inf"), false
	case foldPrefix(s, p, "nan"):
		return start, p + len("nan"), false
	}

	if p+1 < len(s) && s[p] == '0' && (s[p+1] == 'x' || s[p+1] == 'X') {
		q := p + 2
		digits := 0
		dot := false
		for q < len(s) {
			if digitVal(s[q]) < 16 {
				digits++
				q++
			} else if s[q] == '.' && !dot {
				dot = true
				q++
			} else {
				break
			}
		}
		if digits == 0 {
			// "0x" with no hex digit: the zero alone converts, like strtod.
			return start, p + 1, false
		}
		p = q
		if p < len(s) && (s[p] == 'p' || s[p] == 'P') {
			if r, ok := scanExpDigits(s, p+1); ok {
				return start, r, false
			}
		}
		return start, p, true
	}

	digits := 0
	for p < len(s) && digitVal(s[p]) < 10 {
		digits++
		p++
	}
	if p < len(s) && s[p] == '.' {
		p++
		for p < len(s) && digitVal(s[p]) < 10 {
			digits++
			p++
		}
	}
	if digits == 0 {
		return start, start, false
	}
	if p < len(s) && (s[p] == 'e' || s[p] == 'E') {
		if r, ok := scanExpDigits(s, p+1); ok {
			p = r
		}
	}
	return start, p, false
}

// nonzeroMantissa reports whether the significand of the scanned literal has
// a digit other than zero, distinguishing a written zero from a value that
// underflowed to one.
func nonzeroMantissa(lit string) bool {
	p := 0
	if p < len(lit) && (lit[p] == '+' || lit[p] == '-') {
		p++
	}
	hex := p+1 < len(lit) && lit[p] == '0' && (lit[p+1] == 'x' || lit[p+1] == 'X')
	if hex {
		p += 2
	}
	for ; p < len(lit); p++ {
		c := lit[p]
		if c == '.' {
			continue
		}
		if hex && (c == 'p' || c == 'P') {
			break
		}
		if !hex && (c == 'e' || c == 'E') {
			break
		}
		if digitVal(c) > 0 {
			return true
		}
	}
	return false
}

// scanExpDigits consumes an optionally signed decimal digit run at pos,
// reporting failure when there is no digit (the exponent marker then stays
// unconsumed).
func scanExpDigits(s string, pos int) (int, bool) {
	p := pos
	if p < len(s) && (s[p] == '+' || s[p] == '-') {
		p++
	}
	q := p
	for q < len(s) && digitVal(s[q]) < 10 {
		q++
	}
	if q == p {
		return pos, false
	}
	return q, true
}

// ParseFloat64 converts the longest valid floating-point prefix of s, with
// strtod semantics: leading whitespace, decimal or hexadecimal form, optional
// exponent, and inf/nan. Values the double representation cannot hold report
// ErrRange; caller bounds report ErrBelowMin/ErrAboveMax. min and max are
// inclusive.
func ParseFloat64(s string, min, max float64) (float64, int, Code) {
	start, end, bareHex := scanFloat(s, 0)
	if end == start {
		return 0, 0, ErrSyntax
	}

	lit := s[start:end]
	if bareHex {
		lit += "p0"
	}
	// "nan(...)" payloads are not scanned, so remaining parentheses stay
	// unconsumed, same as a strtod without n-char-seq support.
	v, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return v, end, ErrRange
		}
		return 0, 0, ErrSyntax
	}
	// strconv reports overflow but rounds an underflow to zero without
	// complaint; strtod sets ERANGE for both. A zero result from a literal
	// with a nonzero significand can only be underflow.
	if v == 0 && nonzeroMantissa(lit) {
		return v, end, ErrRange
	}

	if v < min {
		return v, end, ErrBelowMin
	}
	if v > max {
		return v, end, ErrAboveMax
	}

	if end == len(s) {
		return v, end, OK
	}
	return v, end, ErrTrailing
}
