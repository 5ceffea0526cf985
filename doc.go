// Package numparse converts textual representations of numbers into
// validated typed values: unsigned integers, floating-point reals, complex
// numbers, and byte-size quantities, with uniform, locale-independent,
// bounds-checked semantics and a precise error classification.
//
// Every conversion returns a value, a cursor marking the first unconsumed
// byte of the input, and a Code; errors are values, never panics, and no
// global status channel is involved. The complex-number grammar
//
//	complex := part (sign part)?
//	part    := sign? real i?
//
// is written once against the Backend capability set and runs identically
// over native float64 values (Float64), extended-precision values backed by
// math/big (Extended), and arbitrary-precision MPFR/MPC values (the mp
// subpackage, which requires cgo).
//
// Minimal usage:
//
//	min := complex(-math.MaxFloat64, -math.MaxFloat64)
//	max := complex(math.MaxFloat64, math.MaxFloat64)
//	z, _, code := numparse.ParseComplex128("3+4i", min, max)
//
//	bytes, _, code := numparse.ParseByteSize("1.5kB", 0, math.MaxUint64, numparse.MB)
//
// SPDX-License-Identifier: MIT
package numparse
