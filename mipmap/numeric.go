// SPDX-License-Identifier: MIT

package mipmap

import (
	"math"
	"unsafe"
)

// numericDomain describes how a float64 intermediate maps back into T.
// It is resolved once per build so the averaging loop only compares floats.
type numericDomain struct {
	float  bool    // T is float32/float64 (or a named type over them)
	maxAbs float64 // floats: largest finite magnitude of T
	lo     float64 // integers: smallest value of T (inclusive)
	limit  float64 // integers: 2^bits or 2^(bits-1), exclusive upper bound
}

// domainOf inspects T through its size and conversions, so named types such as
// `type Celsius int16` resolve like their underlying type.
//
// Bounds are powers of two, which float64 represents exactly; comparing
// against an exclusive 2^63 avoids the rounding of float64(math.MaxInt64).
func domainOf[T Number]() numericDomain {
	var zero T
	bits := int(unsafe.Sizeof(zero)) * 8

	// Integer conversion truncates the fraction, float conversion keeps it.
	half := 0.5
	if T(half) != zero {
		if bits == 32 {
			return numericDomain{float: true, maxAbs: math.MaxFloat32}
		}

		return numericDomain{float: true, maxAbs: math.MaxFloat64}
	}

	// Unsigned types wrap zero-1 around to their maximum.
	if zero-1 > zero {
		return numericDomain{lo: 0, limit: math.Ldexp(1, bits)}
	}

	return numericDomain{
		lo:    -math.Ldexp(1, bits-1),
		limit: math.Ldexp(1, bits-1),
	}
}

// average returns the mean of a and b computed through float64, converted
// back to T with round-to-nearest. ok is false when the result does not fit T.
//
// Integers round half away from zero (math.Round): avg(1, 2) == 2,
// avg(-1, -2) == -2. Non-finite float inputs propagate as IEEE values; a
// non-finite mean of finite inputs is an overflow.
func average[T Number](d numericDomain, a, b T) (v T, ok bool) {
	fa, fb := float64(a), float64(b)
	mid := (fa + fb) / 2.0

	if d.float {
		if !isFinite(fa) || !isFinite(fb) {
			return T(mid), true
		}
		if !isFinite(mid) || math.Abs(mid) > d.maxAbs {
			return v, false
		}

		return T(mid), true
	}

	r := math.Round(mid)
	if r < d.lo || r >= d.limit {
		return v, false
	}

	return T(r), true
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
