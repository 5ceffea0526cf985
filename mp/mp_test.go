package mp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszgryglicki/numparse"
)

func TestBackendParse(t *testing.T) {
	b := Backend{Prec: 128}
	tests := []struct {
		name   string
		in     string
		text   string
		cursor int
		code   numparse.Code
	}{
		{"real then imaginary", "3+4i", "3+4i", 4, numparse.OK},
		{"imaginary then real", "4i+3", "3+4i", 4, numparse.OK},
		{"bare unit", "i", "0+1i", 1, numparse.OK},
		{"negative pair", "-3-4i", "-3-4i", 5, numparse.OK},
		{"real only", "2.5", "2.5+0i", 3, numparse.OK},
		{"trailing characters", "3+4i!", "3+4i", 4, numparse.ErrTrailing},
		{"second imaginary term rewinds", "3i+4i", "0+3i", 2, numparse.ErrMalformed},
		{"third term rewinds", "3+4+5i", "3+0i", 1, numparse.ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z, cursor, code := b.Parse(tt.in)
			defer z.Close()
			assert.Equal(t, tt.code, code, "code")
			assert.Equal(t, tt.cursor, cursor, "cursor")
			assert.Equal(t, tt.text, z.Text(10))
		})
	}
}

func TestBackendParsePart(t *testing.T) {
	b := Backend{Prec: 64}

	z, axis, cursor, code := b.ParsePart("5i")
	defer z.Close()
	require.Equal(t, numparse.OK, code)
	assert.Equal(t, numparse.AxisImaginary, axis)
	assert.Equal(t, 2, cursor)
	assert.Equal(t, "5", z.ImagText(10))

	z2, axis, cursor, code := b.ParsePart("-7.5")
	defer z2.Close()
	require.Equal(t, numparse.OK, code)
	assert.Equal(t, numparse.AxisReal, axis)
	assert.Equal(t, 4, cursor)
	assert.Equal(t, "-7.5", z2.RealText(10))
}

// Values that do not fit a double still parse at a wide precision.
func TestBackendBeyondDoubleRange(t *testing.T) {
	b := Backend{Prec: 256}

	z, _, code := b.Parse("1e1000+1e-1000i")
	defer z.Close()
	require.Equal(t, numparse.OK, code)
	assert.Equal(t, "1e+1000", z.RealText(10))
	assert.Equal(t, "1e-1000", z.ImagText(10))
}

func TestParseScalar(t *testing.T) {
	b := Backend{Prec: 64}

	t.Run("unbounded", func(t *testing.T) {
		x, cursor, code := b.ParseScalar("42", nil, nil)
		defer x.Close()
		require.Equal(t, numparse.OK, code)
		assert.Equal(t, 2, cursor)
		assert.Equal(t, "42", x.Text(10))
	})

	t.Run("below min", func(t *testing.T) {
		lo, hi := b.RealFromFloat(10), b.RealFromFloat(100)
		defer lo.Close()
		defer hi.Close()
		x, cursor, code := b.ParseScalar("5", lo, hi)
		defer x.Close()
		assert.Equal(t, numparse.ErrBelowMin, code)
		assert.Equal(t, 1, cursor)
	})

	t.Run("above max", func(t *testing.T) {
		lo, hi := b.RealFromFloat(10), b.RealFromFloat(100)
		defer lo.Close()
		defer hi.Close()
		x, cursor, code := b.ParseScalar("500", lo, hi)
		defer x.Close()
		assert.Equal(t, numparse.ErrAboveMax, code)
		assert.Equal(t, 3, cursor)
	})

	t.Run("syntax", func(t *testing.T) {
		x, cursor, code := b.ParseScalar("xyz", nil, nil)
		assert.Nil(t, x)
		assert.Equal(t, 0, cursor)
		assert.Equal(t, numparse.ErrSyntax, code)
	})

	t.Run("exponent overflow", func(t *testing.T) {
		x, _, code := b.ParseScalar("1e9999999999999999999", nil, nil)
		assert.Nil(t, x)
		assert.Equal(t, numparse.ErrRange, code)
	})

	t.Run("trailing", func(t *testing.T) {
		x, cursor, code := b.ParseScalar("2.5 apples", nil, nil)
		defer x.Close()
		assert.Equal(t, numparse.ErrTrailing, code)
		assert.Equal(t, 3, cursor)
	})
}

func TestParseScalarRadix(t *testing.T) {
	t.Run("hex", func(t *testing.T) {
		b := Backend{Prec: 64, Base: 16}
		x, _, code := b.ParseScalar("ff", nil, nil)
		defer x.Close()
		require.Equal(t, numparse.OK, code)
		assert.Equal(t, "255", x.Text(10))
	})

	t.Run("binary", func(t *testing.T) {
		b := Backend{Prec: 64, Base: 2}
		x, _, code := b.ParseScalar("1010", nil, nil)
		defer x.Close()
		require.Equal(t, numparse.OK, code)
		assert.Equal(t, "10", x.Text(10))
	})

	t.Run("invalid radix", func(t *testing.T) {
		for _, base := range []int{1, -2, 63} {
			b := Backend{Prec: 64, Base: base}
			x, cursor, code := b.ParseScalar("1", nil, nil)
			assert.Nil(t, x)
			assert.Equal(t, 0, cursor)
			assert.Equal(t, numparse.ErrBase, code, "base %d", base)
		}
	})
}

func TestRoundingModes(t *testing.T) {
	// 0.1 has no finite binary expansion, so up and down must differ.
	up, _, code := Backend{Prec: 8, Rnd: Up}.ParseScalar("0.1", nil, nil)
	defer up.Close()
	require.Equal(t, numparse.OK, code)

	down, _, code := Backend{Prec: 8, Rnd: Down}.ParseScalar("0.1", nil, nil)
	defer down.Close()
	require.Equal(t, numparse.OK, code)

	assert.Positive(t, Backend{Prec: 8}.Cmp(up, down))
}

func TestParseRounding(t *testing.T) {
	for _, name := range []string{"nearest", "zero", "up", "down"} {
		r, ok := ParseRounding(name)
		require.True(t, ok, name)
		assert.Equal(t, name, r.String())
	}
	_, ok := ParseRounding("sideways")
	assert.False(t, ok)
	r, ok := ParseRounding("")
	assert.True(t, ok)
	assert.Equal(t, ToNearest, r)
}

func TestCloseIsIdempotent(t *testing.T) {
	x := NewReal(64)
	x.Close()
	x.Close()
	assert.Equal(t, "(invalid)", x.Text(10))

	z := NewComplex(64)
	z.Close()
	z.Close()
	assert.Equal(t, "(invalid)", z.RealText(10))

	var nilReal *Real
	nilReal.Close()
	var nilComplex *Complex
	nilComplex.Close()
}
