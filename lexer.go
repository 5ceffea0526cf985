package numparse

// imaginaryUnit is the symbol denoting the imaginary axis (case-insensitive).
const imaginaryUnit = 'i'

// isSpace reports whether b is ASCII whitespace, matching the C locale's
// isspace set that the underlying conversion routines use.
func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func lower(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// skipSpace returns the offset of the first non-whitespace byte at or after
// pos.
func skipSpace(s string, pos int) int {
	for pos < len(s) && isSpace(s[pos]) {
		pos++
	}
	return pos
}

// matchSign consumes one leading '+' or '-' after optional whitespace and
// returns +1 or -1 with the cursor past the sign. If no sign is present it
// returns 0 with the cursor at the first non-whitespace byte.
func matchSign(s string, pos int) (int, int) {
	pos = skipSpace(s, pos)
	if pos < len(s) {
		switch s[pos] {
		case '+':
			return 1, pos + 1
		case '-':
			return -1, pos + 1
		}
	}
	return 0, pos
}

// matchImaginaryUnit consumes the imaginary-unit symbol after optional
// whitespace. If the symbol is absent it reports false and leaves the cursor
// at the first non-whitespace byte; whitespace already skipped is not
// rewound.
func matchImaginaryUnit(s string, pos int) (bool, int) {
	pos = skipSpace(s, pos)
	if pos < len(s) && lower(s[pos]) == imaginaryUnit {
		return true, pos + 1
	}
	return false, pos
}
