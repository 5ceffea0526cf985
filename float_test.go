package numparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloat64(t *testing.T) {
	full := math.MaxFloat64
	tests := []struct {
		name   string
		in     string
		min    float64
		max    float64
		value  float64
		cursor int
		code   Code
	}{
		{"integer", "42", -full, full, 42, 2, OK},
		{"fraction", "3.5", -full, full, 3.5, 3, OK},
		{"leading dot", ".5", -full, full, 0.5, 2, OK},
		{"trailing dot", "5.", -full, full, 5, 2, OK},
		{"negative exponent form", "-2.5e3", -full, full, -2500, 6, OK},
		{"leading whitespace", "  1.25", -full, full, 1.25, 6, OK},
		{"trailing characters", "3.5x", -full, full, 3.5, 3, ErrTrailing},
		{"exponent marker without digits", "1e", -full, full, 1, 1, ErrTrailing},
		{"exponent sign without digits", "1e+", -full, full, 1, 1, ErrTrailing},

		{"hex", "0x1A", -full, full, 26, 4, OK},
		{"hex binary exponent", "0x1p4", -full, full, 16, 5, OK},
		{"hex fraction", "0x.8p1", -full, full, 1, 6, OK},
		{"bare 0x consumes only the zero", "0x", -full, full, 0, 1, ErrTrailing},

		{"below min", "5", 10, 100, 5, 1, ErrBelowMin},
		{"above max", "500", 10, 100, 500, 3, ErrAboveMax},
		{"inf exceeds the double range", "inf", -full, full, math.Inf(1), 3, ErrAboveMax},
		{"negative infinity", "-infinity", -full, full, math.Inf(-1), 9, ErrBelowMin},
		{"inf within infinite bounds", "inf", math.Inf(-1), math.Inf(1), math.Inf(1), 3, OK},

		{"empty", "", -full, full, 0, 0, ErrSyntax},
		{"garbage", "xyz", -full, full, 0, 0, ErrSyntax},
		{"garbage after spaces", "  xyz", -full, full, 0, 0, ErrSyntax},
		{"lone dot", ".", -full, full, 0, 0, ErrSyntax},
		{"lone sign", "-", -full, full, 0, 0, ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, cursor, code := ParseFloat64(tt.in, tt.min, tt.max)
			assert.Equal(t, tt.code, code, "code")
			assert.Equal(t, tt.cursor, cursor, "cursor")
			assert.Equal(t, tt.value, v, "value")
		})
	}
}

func TestParseFloat64NaN(t *testing.T) {
	v, cursor, code := ParseFloat64("NaN", -math.MaxFloat64, math.MaxFloat64)
	assert.Equal(t, OK, code)
	assert.Equal(t, 3, cursor)
	assert.True(t, math.IsNaN(v))
}

func TestParseFloat64Overflow(t *testing.T) {
	v, cursor, code := ParseFloat64("1e999", -math.MaxFloat64, math.MaxFloat64)
	assert.Equal(t, ErrRange, code)
	assert.Equal(t, 5, cursor)
	assert.True(t, math.IsInf(v, 1))

	_, _, code = ParseFloat64("1e-999", -math.MaxFloat64, math.MaxFloat64)
	assert.Equal(t, ErrRange, code)
}

// An underflow that rounds to zero must still be out of range; a written zero
// must not.
func TestParseFloat64Underflow(t *testing.T) {
	full := math.MaxFloat64
	for _, in := range []string{"1e-999", "-1e-999", "0x1p-99999", "0.0001e-999"} {
		v, _, code := ParseFloat64(in, -full, full)
		assert.Equal(t, ErrRange, code, in)
		assert.Zero(t, v, in)
	}
	for _, in := range []string{"0", "-0", "0.0", "0e-999", "0x0p-5"} {
		_, _, code := ParseFloat64(in, -full, full)
		assert.Equal(t, OK, code, in)
	}
}
