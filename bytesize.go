package numparse

import "math"

// Magnitude is the decimal exponent of a byte-size unit prefix.
type Magnitude int

const (
	B  Magnitude = 0
	KB Magnitude = 3
	MB Magnitude = 6
	GB Magnitude = 9
	TB Magnitude = 12
	PB Magnitude = 15
	EB Magnitude = 18
	ZB Magnitude = 21
	YB Magnitude = 24
)

// magnitudePrefixes is ordered by exponent; the prefix at index i means a
// decimal exponent of (i+1)*3. Matching is case-insensitive, first match
// wins.
const magnitudePrefixes = "kMGTPEZY"

// byteUnit is the mandatory unit letter closing a size suffix.
const byteUnit = 'b'

func (m Magnitude) String() string {
	if m == B {
		return "B"
	}
	i := int(m)/3 - 1
	if i < 0 || i >= len(magnitudePrefixes) {
		return "?B"
	}
	return string(magnitudePrefixes[i]) + "B"
}

// matchMagnitude matches a size suffix (optional prefix letter plus the
// mandatory unit letter) after optional whitespace. On failure the cursor is
// left at the first non-whitespace byte.
func matchMagnitude(s string, pos int) (Magnitude, int, bool) {
	pos = skipSpace(s, pos)
	p := pos
	mag := B
	for i := 0; i < len(magnitudePrefixes); i++ {
		if p < len(s) && lower(s[p]) == lower(magnitudePrefixes[i]) {
			mag = Magnitude((i + 1) * 3)
			p++
			break
		}
	}
	if p >= len(s) || lower(s[p]) != byteUnit {
		return B, pos, false
	}
	return mag, p + 1, true
}

// ParseMagnitude interprets s in its entirety as a size suffix such as "B",
// "kB" or "MB", case-insensitively.
func ParseMagnitude(s string) (Magnitude, bool) {
	m, pos, ok := matchMagnitude(s, 0)
	if !ok || skipSpace(s, pos) != len(s) {
		return B, false
	}
	return m, true
}

// ParseByteSize converts a non-negative real with an optional size suffix
// into a byte count. When the number is followed by nothing, or only by
// whitespace, the magnitude defaults to def; an unrecognized suffix is
// ErrMalformed with the cursor at the start of the suffix. Results outside
// the uint64 range are ErrRange before the caller's inclusive bounds apply.
func ParseByteSize(s string, min, max uint64, def Magnitude) (uint64, int, Code) {
	pos := skipSpace(s, 0)

	x, n, code := ParseFloat64(s[pos:], 0, math.MaxFloat64)
	mag := def
	switch code {
	case OK:
		pos += n
	case ErrTrailing:
		pos += n
		if m, p, ok := matchMagnitude(s, pos); ok {
			mag = m
			pos = p
		} else if skipSpace(s, pos) != len(s) {
			return 0, pos, ErrMalformed
		}
	default:
		return 0, pos + n, code
	}

	// NaN fails both comparisons, so the guard must be written to admit
	// only values the uint64 conversion is defined for.
	scaled := x * math.Pow(10, float64(mag))
	if !(scaled >= 0 && scaled < 1<<64) {
		return 0, pos, ErrRange
	}
	bytes := uint64(scaled)

	if bytes < min {
		return bytes, pos, ErrBelowMin
	}
	if bytes > max {
		return bytes, pos, ErrAboveMax
	}

	if pos == len(s) {
		return bytes, pos, OK
	}
	return bytes, pos, ErrTrailing
}
