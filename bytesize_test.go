package numparse

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseByteSize(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		min    uint64
		max    uint64
		def    Magnitude
		value  uint64
		cursor int
		code   Code
	}{
		{"bare number takes the default", "1.5", 0, math.MaxUint64, MB, 1500000, 3, OK},
		{"kilobytes", "2kB", 0, math.MaxUint64, B, 2000, 3, OK},
		{"upper-case prefix", "2KB", 0, math.MaxUint64, B, 2000, 3, OK},
		{"bytes", "2B", 0, math.MaxUint64, MB, 2, 2, OK},
		{"gigabytes", "2gB", 0, math.MaxUint64, B, 2000000000, 3, OK},
		{"space before suffix", "2 kB", 0, math.MaxUint64, B, 2000, 4, OK},
		{"fractional with suffix", "1.5kB", 0, math.MaxUint64, B, 1500, 5, OK},
		{"fraction of a byte truncates", "0.5B", 0, math.MaxUint64, MB, 0, 4, OK},
		{"exabytes", "18EB", 0, math.MaxUint64, B, 18000000000000000000, 4, OK},

		{"whitespace tail takes the default", "1.5 ", 0, math.MaxUint64, MB, 1500000, 3, ErrTrailing},
		{"text after suffix", "2kB x", 0, math.MaxUint64, B, 2000, 3, ErrTrailing},

		{"unrecognized suffix", "2XB", 0, math.MaxUint64, B, 0, 1, ErrMalformed},
		{"prefix without unit letter", "2k", 0, math.MaxUint64, B, 0, 1, ErrMalformed},
		{"text after whitespace", "1.5 x", 0, math.MaxUint64, MB, 0, 3, ErrMalformed},

		{"scaled beyond uint64", "1e30", 0, math.MaxUint64, B, 0, 4, ErrRange},
		{"nan is not a byte count", "nan", 0, math.MaxUint64, B, 0, 3, ErrRange},
		{"nan with suffix", "nanB", 0, math.MaxUint64, B, 0, 4, ErrRange},
		{"prefix scales beyond uint64", "20EB", 0, math.MaxUint64, B, 0, 4, ErrRange},
		{"negative", "-1", 0, math.MaxUint64, B, 0, 2, ErrBelowMin},
		{"below min", "5", 10, 100, B, 5, 1, ErrBelowMin},
		{"above max", "500", 10, 100, B, 500, 3, ErrAboveMax},

		{"empty", "", 0, math.MaxUint64, B, 0, 0, ErrSyntax},
		{"garbage", "xB", 0, math.MaxUint64, B, 0, 0, ErrSyntax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, cursor, code := ParseByteSize(tt.in, tt.min, tt.max, tt.def)
			assert.Equal(t, tt.code, code, "code")
			assert.Equal(t, tt.cursor, cursor, "cursor")
			assert.Equal(t, tt.value, v, "value")
		})
	}
}

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		in  string
		mag Magnitude
		ok  bool
	}{
		{"B", B, true},
		{"kB", KB, true},
		{"kb", KB, true},
		{"MB", MB, true},
		{"YB", YB, true},
		{"MB ", MB, true},
		{"M", B, false},
		{"xB", B, false},
		{"", B, false},
		{"MBx", B, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			m, ok := ParseMagnitude(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.mag, m)
		})
	}
}

func TestMagnitudeString(t *testing.T) {
	assert.Equal(t, "B", B.String())
	assert.Equal(t, "kB", KB.String())
	assert.Equal(t, "MB", MB.String())
	assert.Equal(t, "YB", YB.String())
}
