// Package mp provides the arbitrary-precision backend for numparse, wrapping
// the GNU MPFR/MPC libraries via cgo. Scalars are MPFR floating-point values
// with caller-configurable precision, rounding mode and conversion radix;
// complex values are MPC pairs.
//
// Build requirements:
//   - libmpc, libmpfr, libgmp (headers + libs)
//     Debian/Ubuntu: sudo apt-get install -y libmpc-dev libmpfr-dev libgmp-dev build-essential
//     macOS/Homebrew: brew install mpc mpfr gmp
//
// Values hold C resources and must be released with Close; a finalizer
// backstops forgotten ones. The generic grammar in numparse releases every
// value it acquires on every exit path, so callers only own what they are
// returned.
//
// SPDX-License-Identifier: MIT
package mp

/*
#cgo CFLAGS: -O2
#cgo LDFLAGS: -lmpc -lmpfr -lgmp
#include <stdlib.h>
#include <mpc.h>
#include <mpfr.h>

// mpfr_strtofr with the consumed byte count and the sticky flags returned
// explicitly, so no Go caller ever observes MPFR's process-wide status
// channel: it is read and cleared before the call returns.
static int np_strtofr(mpfr_ptr x, const char *s, size_t *consumed, int base, mpfr_rnd_t rnd) {
    char *end = NULL;
    mpfr_clear_flags();
    mpfr_strtofr(x, s, &end, base, rnd);
    // Inexactness is not an error.
    mpfr_clear_inexflag();
    *consumed = (size_t)(end - s);
    return (int)mpfr_flags_save();
}

// Helpers so Go code doesn't reference MPC macros directly (cgo can't see macros).
static void np_mpc_set_re(mpc_ptr z, mpfr_srcptr x, mpc_rnd_t rnd) {
    mpc_set_fr_fr(z, x, mpc_imagref(z), rnd);
}
static void np_mpc_set_im(mpc_ptr z, mpfr_srcptr x, mpc_rnd_t rnd) {
    mpc_set_fr_fr(z, mpc_realref(z), x, rnd);
}
static void np_mpc_get_re(mpfr_ptr x, mpc_srcptr z, mpfr_rnd_t rnd) {
    mpfr_set(x, mpc_realref(z), rnd);
}
static void np_mpc_get_im(mpfr_ptr x, mpc_srcptr z, mpfr_rnd_t rnd) {
    mpfr_set(x, mpc_imagref(z), rnd);
}

static char* np_mpfr_to_str(mpfr_srcptr x, int digits) {
    if (digits < 1) digits = 1;
    int n = mpfr_snprintf(NULL, 0, "%.*Rg", digits, x);
    if (n < 0) return NULL;
    char *buf = (char*)malloc((size_t)n + 1);
    if (!buf) return NULL;
    if (mpfr_snprintf(buf, (size_t)n + 1, "%.*Rg", digits, x) < 0) {
        free(buf);
        return NULL;
    }
    return buf;
}
*/
import "C"

import (
	"runtime"
	"unsafe"

	"github.com/lukaszgryglicki/numparse"
)

// Rounding selects the MPFR rounding mode a Backend applies to every scalar
// operation, on both axes.
type Rounding int

const (
	ToNearest Rounding = iota
	TowardZero
	Up
	Down
)

func (r Rounding) String() string {
	switch r {
	case TowardZero:
		return "zero"
	case Up:
		return "up"
	case Down:
		return "down"
	}
	return "nearest"
}

func (r Rounding) mpfr() C.mpfr_rnd_t {
	switch r {
	case TowardZero:
		return C.MPFR_RNDZ
	case Up:
		return C.MPFR_RNDU
	case Down:
		return C.MPFR_RNDD
	}
	return C.MPFR_RNDN
}

func (r Rounding) mpc() C.mpc_rnd_t {
	switch r {
	case TowardZero:
		return C.mpc_rnd_t(C.MPC_RNDZZ)
	case Up:
		return C.mpc_rnd_t(C.MPC_RNDUU)
	case Down:
		return C.mpc_rnd_t(C.MPC_RNDDD)
	}
	return C.mpc_rnd_t(C.MPC_RNDNN)
}

// ParseRounding interprets a rounding-mode name as used on command lines and
// in config files.
func ParseRounding(s string) (Rounding, bool) {
	switch s {
	case "nearest", "":
		return ToNearest, true
	case "zero":
		return TowardZero, true
	case "up":
		return Up, true
	case "down":
		return Down, true
	}
	return ToNearest, false
}

// Real is an arbitrary-precision floating-point value backed by MPFR.
// Use NewReal or a Backend; the zero value is not usable.
type Real struct {
	x    C.mpfr_t
	init bool
}

// NewReal allocates a zero value with the given precision in bits (like
// MPFR). If bits==0, 53 is used.
func NewReal(bits uint) *Real {
	if bits == 0 {
		bits = 53
	}
	r := &Real{}
	C.mpfr_init2(&r.x[0], C.mpfr_prec_t(bits))
	C.mpfr_set_zero(&r.x[0], 1)
	r.init = true
	runtime.SetFinalizer(r, func(rr *Real) { rr.Close() })
	return r
}

// Close frees C resources. Safe on nil and after a previous Close.
func (r *Real) Close() {
	if r != nil && r.init {
		C.mpfr_clear(&r.x[0])
		r.init = false
	}
}

// SetInf sets r to an infinity of the given sign and returns r.
func (r *Real) SetInf(negative bool) *Real {
	sign := C.int(1)
	if negative {
		sign = -1
	}
	C.mpfr_set_inf(&r.x[0], sign)
	return r
}

// Text formats r with the given number of significant digits.
func (r *Real) Text(digits int) string {
	if r == nil || !r.init {
		return "(invalid)"
	}
	p := C.np_mpfr_to_str(&r.x[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

// Complex is an arbitrary-precision complex value backed by MPC.
// Use NewComplex or a Backend; the zero value is not usable.
type Complex struct {
	z    C.mpc_t
	prec uint
	init bool
}

// NewComplex allocates 0+0i with the given precision in bits on both axes.
// If bits==0, 53 is used.
func NewComplex(bits uint) *Complex {
	if bits == 0 {
		bits = 53
	}
	c := &Complex{prec: bits}
	C.mpc_init2(&c.z[0], C.mpfr_prec_t(bits))
	C.mpc_set_ui_ui(&c.z[0], 0, 0, C.mpc_rnd_t(C.MPC_RNDNN))
	c.init = true
	runtime.SetFinalizer(c, func(cc *Complex) { cc.Close() })
	return c
}

// Close frees C resources. Safe on nil and after a previous Close.
func (c *Complex) Close() {
	if c != nil && c.init {
		C.mpc_clear(&c.z[0])
		c.init = false
	}
}

// Prec returns precision in bits.
func (c *Complex) Prec() uint { return c.prec }

// RealText formats the real part with the given number of significant digits.
func (c *Complex) RealText(digits int) string {
	return c.partText(digits, false)
}

// ImagText formats the imaginary part with the given number of significant
// digits.
func (c *Complex) ImagText(digits int) string {
	return c.partText(digits, true)
}

func (c *Complex) partText(digits int, imag bool) string {
	if c == nil || !c.init {
		return "(invalid)"
	}
	var t C.mpfr_t
	C.mpfr_init2(&t[0], C.mpfr_prec_t(c.prec))
	defer C.mpfr_clear(&t[0])
	if imag {
		C.np_mpc_get_im(&t[0], &c.z[0], C.MPFR_RNDN)
	} else {
		C.np_mpc_get_re(&t[0], &c.z[0], C.MPFR_RNDN)
	}
	p := C.np_mpfr_to_str(&t[0], C.int(digits))
	if p == nil {
		return "<oom>"
	}
	defer C.free(unsafe.Pointer(p))
	return C.GoString(p)
}

// Text formats c as "a+bi".
func (c *Complex) Text(digits int) string {
	rs := c.RealText(digits)
	is := c.ImagText(digits)
	if len(is) > 0 && is[0] == '-' {
		return rs + is + "i"
	}
	return rs + "+" + is + "i"
}

// Backend implements numparse.Backend over MPFR scalars and MPC complex
// values. The zero Backend parses at 53 bits, rounding to nearest, with
// radix auto-detection.
type Backend struct {
	Prec uint     // significand bits; 0 means 53
	Rnd  Rounding // rounding mode for both axes
	Base int      // conversion radix: 0 auto-detects, else 2 through 62
}

func (b Backend) bits() uint {
	if b.Prec == 0 {
		return 53
	}
	return b.Prec
}

func (b Backend) Zero() *Real { return NewReal(b.bits()) }

// RealFromFloat allocates a Real holding v at the backend's precision.
func (b Backend) RealFromFloat(v float64) *Real {
	r := NewReal(b.bits())
	C.mpfr_set_d(&r.x[0], C.double(v), b.Rnd.mpfr())
	return r
}

func (b Backend) One() *Real {
	r := NewReal(b.bits())
	C.mpfr_set_ui(&r.x[0], 1, b.Rnd.mpfr())
	return r
}

func (b Backend) FullRange() (*Real, *Real) {
	return NewReal(b.bits()).SetInf(true), NewReal(b.bits()).SetInf(false)
}

// ParseScalar converts the longest valid prefix of s in the backend's radix.
// min and max are inclusive; either may be nil to leave that side unbounded.
func (b Backend) ParseScalar(s string, min, max *Real) (*Real, int, numparse.Code) {
	if (b.Base < 2 && b.Base != 0) || b.Base > 62 {
		return nil, 0, numparse.ErrBase
	}

	x := NewReal(b.bits())
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))

	var consumed C.size_t
	flags := C.np_strtofr(&x.x[0], cs, &consumed, C.int(b.Base), b.Rnd.mpfr())
	n := int(consumed)

	if flags&(C.MPFR_FLAGS_UNDERFLOW|C.MPFR_FLAGS_OVERFLOW|C.MPFR_FLAGS_ERANGE) != 0 {
		x.Close()
		return nil, n, numparse.ErrRange
	}
	if n == 0 {
		x.Close()
		return nil, 0, numparse.ErrSyntax
	}

	if min != nil && C.mpfr_cmp(&x.x[0], &min.x[0]) < 0 {
		return x, n, numparse.ErrBelowMin
	}
	if max != nil && C.mpfr_cmp(&x.x[0], &max.x[0]) > 0 {
		return x, n, numparse.ErrAboveMax
	}

	if n == len(s) {
		return x, n, numparse.OK
	}
	return x, n, numparse.ErrTrailing
}

func (b Backend) Cmp(x, y *Real) int {
	return int(C.mpfr_cmp(&x.x[0], &y.x[0]))
}

func (b Backend) Neg(x *Real) *Real {
	C.mpfr_neg(&x.x[0], &x.x[0], b.Rnd.mpfr())
	return x
}

func (b Backend) ZeroComplex() *Complex { return NewComplex(b.bits()) }

func (b Backend) Real(z *Complex) *Real {
	r := NewReal(b.bits())
	C.np_mpc_get_re(&r.x[0], &z.z[0], b.Rnd.mpfr())
	return r
}

func (b Backend) Imag(z *Complex) *Real {
	r := NewReal(b.bits())
	C.np_mpc_get_im(&r.x[0], &z.z[0], b.Rnd.mpfr())
	return r
}

func (b Backend) SetReal(z *Complex, x *Real) *Complex {
	C.np_mpc_set_re(&z.z[0], &x.x[0], b.Rnd.mpc())
	return z
}

func (b Backend) SetImag(z *Complex, x *Real) *Complex {
	C.np_mpc_set_im(&z.z[0], &x.x[0], b.Rnd.mpc())
	return z
}

func (b Backend) ReleaseScalar(x *Real) { x.Close() }
func (b Backend) Release(z *Complex)    { z.Close() }

// Parse converts s as a complex literal over the backend's full representable
// range. The caller owns the returned Complex.
func (b Backend) Parse(s string) (*Complex, int, numparse.Code) {
	min, max := numparse.FullComplexRange[*Real, *Complex](b)
	defer b.Release(min)
	defer b.Release(max)
	return numparse.ParseComplex[*Real, *Complex](b, s, min, max)
}

// ParsePart converts s as a single real-or-imaginary term over the backend's
// full representable range.
func (b Backend) ParsePart(s string) (*Complex, numparse.Axis, int, numparse.Code) {
	min, max := numparse.FullComplexRange[*Real, *Complex](b)
	defer b.Release(min)
	defer b.Release(max)
	return numparse.ParseComplexPart[*Real, *Complex](b, s, min, max)
}
