package numparse

// Code classifies the outcome of a conversion. Every parsing function in this
// package returns exactly one Code together with a cursor marking the first
// unconsumed byte of the input.
//
// OK and ErrTrailing are the only codes paired with a fully valid result;
// ErrTrailing means the value and cursor are usable but input remains past the
// cursor, so callers may treat it as a warning rather than a failure.
type Code int

const (
	// OK means the whole input was converted.
	OK Code = iota
	// ErrSyntax means no conversion could be performed.
	ErrSyntax
	// ErrRange means the value is not representable in the target type,
	// before any caller-supplied bounds are considered.
	ErrRange
	// ErrBelowMin means the value is below the caller's minimum.
	ErrBelowMin
	// ErrAboveMax means the value is above the caller's maximum.
	ErrAboveMax
	// ErrTrailing means a valid value was converted but unparsed input
	// remains at the returned cursor.
	ErrTrailing
	// ErrBase means the conversion radix is unsupported.
	ErrBase
	// ErrMalformed means the input violates the expression grammar. For
	// two-term complex expressions the cursor is rewound to the end of the
	// first successfully parsed term.
	ErrMalformed
)

func (c Code) String() string {
	switch c {
	case OK:
		return "success"
	case ErrSyntax:
		return "unknown parse error"
	case ErrRange:
		return "argument out of range"
	case ErrBelowMin:
		return "argument too small"
	case ErrAboveMax:
		return "argument too large"
	case ErrTrailing:
		return "argument not fully parsed"
	case ErrBase:
		return "invalid conversion radix"
	case ErrMalformed:
		return "incorrect argument format"
	}
	return "unknown parse error"
}

// Error makes Code usable as an error value, in the manner of syscall.Errno.
// OK is still a valid Code; callers deciding success should compare against
// OK (and possibly ErrTrailing) rather than test for nil.
func (c Code) Error() string { return c.String() }

// Fatal reports whether the code must be treated as a hard failure. OK is
// success and ErrTrailing is success-with-caveat; everything else is fatal.
func (c Code) Fatal() bool { return c != OK && c != ErrTrailing }
