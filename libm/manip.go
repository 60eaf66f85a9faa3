// Copyright 2025 go-libm Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package libm

import (
	"math"
	mbits "math/bits"
)

// Sentinel returns for Ilogbf and Ilogb.
const (
	IlogbZero = math.MinInt32
	IlogbNaN  = math.MaxInt32
)

// Logbf returns the unbiased exponent of x as a float32, using
// [Default].
//
// Special cases are:
//
//	Logbf(±0) = -Inf with ERANGE and the div-by-zero flag
//	Logbf(±Inf) = +Inf
//	Logbf(NaN) = NaN
func Logbf(x float32) float32 { return Default.Logbf(x) }

// Logbf returns the unbiased exponent of x as a float32. Subnormals
// report their true exponent.
func (e *Env) Logbf(x float32) float32 {
	b := Float32Bits(x)
	switch {
	case b.IsNaN():
		return b.Quiet().Value()
	case b.IsInf():
		return Inf32.Value()
	case b.IsZero():
		e.SetErrno(ERANGE)
		e.Raise(ExDivByZero)
		return (signMask32 | Inf32).Value()
	case b.IsSubnormal():
		nb := Float32Bits(x * 0x1p23) // exact
		return float32(nb.Exponent() - 23)
	}
	return float32(b.Exponent())
}

// Logb returns the unbiased exponent of x as a float64, using
// [Default]. Special cases are the same as Logbf.
func Logb(x float64) float64 { return Default.Logb(x) }

// Logb returns the unbiased exponent of x as a float64. Subnormals
// report their true exponent.
func (e *Env) Logb(x float64) float64 {
	b := Float64Bits(x)
	switch {
	case b.IsNaN():
		return b.Quiet().Value()
	case b.IsInf():
		return Inf64.Value()
	case b.IsZero():
		e.SetErrno(ERANGE)
		e.Raise(ExDivByZero)
		return (signMask64 | Inf64).Value()
	case b.IsSubnormal():
		nb := Float64Bits(x * 0x1p52) // exact
		return float64(nb.Exponent() - 52)
	}
	return float64(b.Exponent())
}

// Ilogbf returns the unbiased exponent of x as an int, using [Default].
//
// Special cases are:
//
//	Ilogbf(±0) = IlogbZero with EDOM and the invalid flag
//	Ilogbf(±Inf) = math.MaxInt32 with EDOM and the invalid flag
//	Ilogbf(NaN) = IlogbNaN with EDOM and the invalid flag
func Ilogbf(x float32) int { return Default.Ilogbf(x) }

// Ilogbf returns the unbiased exponent of x as an int.
func (e *Env) Ilogbf(x float32) int {
	b := Float32Bits(x)
	switch {
	case b.IsNaN():
		e.reportDomain()
		return IlogbNaN
	case b.IsInf():
		e.reportDomain()
		return math.MaxInt32
	case b.IsZero():
		e.reportDomain()
		return IlogbZero
	case b.IsSubnormal():
		nb := Float32Bits(x * 0x1p23)
		return nb.Exponent() - 23
	}
	return b.Exponent()
}

// Ilogb returns the unbiased exponent of x as an int, using [Default].
// Special cases are the same as Ilogbf.
func Ilogb(x float64) int { return Default.Ilogb(x) }

// Ilogb returns the unbiased exponent of x as an int.
func (e *Env) Ilogb(x float64) int {
	b := Float64Bits(x)
	switch {
	case b.IsNaN():
		e.reportDomain()
		return IlogbNaN
	case b.IsInf():
		e.reportDomain()
		return math.MaxInt32
	case b.IsZero():
		e.reportDomain()
		return IlogbZero
	case b.IsSubnormal():
		nb := Float64Bits(x * 0x1p52)
		return nb.Exponent() - 52
	}
	return b.Exponent()
}

// fmodNorm32 decomposes |a| into an exponent and a significand with the
// leading bit at position mantissaBits32, so that the value is
// m * 2^(ex - bias - mantissaBits). Subnormals get a negative ex.
func fmodNorm32(a Bits32) (ex int, m uint32) {
	ex = a.BiasedExponent()
	m = a.Mantissa()
	if ex == 0 {
		shift := mbits.LeadingZeros32(m) - 8
		m <<= uint(shift)
		ex = 1 - shift
	} else {
		m |= 1 << mantissaBits32
	}
	return ex, m
}

func fmodNorm64(a Bits64) (ex int, m uint64) {
	ex = a.BiasedExponent()
	m = a.Mantissa()
	if ex == 0 {
		shift := mbits.LeadingZeros64(m) - 11
		m <<= uint(shift)
		ex = 1 - shift
	} else {
		m |= 1 << mantissaBits64
	}
	return ex, m
}

// Fmodf returns the floating-point remainder x - Truncf(x/y)*y, exactly,
// using [Default].
//
// Special cases are:
//
//	Fmodf(±Inf, y) = NaN with EDOM and the invalid flag
//	Fmodf(x, ±0) = NaN with EDOM and the invalid flag
//	Fmodf(x, ±Inf) = x for finite x
//	Fmodf(NaN, y) = NaN
//	Fmodf(x, NaN) = NaN
func Fmodf(x, y float32) float32 { return Default.Fmodf(x, y) }

// Fmodf returns the floating-point remainder of x/y. The result is
// exact and carries the sign of x.
func (e *Env) Fmodf(x, y float32) float32 {
	xb, yb := Float32Bits(x), Float32Bits(y)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case yb.IsNaN():
		return yb.Quiet().Value()
	case yb.IsZero() || xb.IsInf():
		e.reportDomain()
		return QuietNaN32(0).Value()
	case yb.IsInf() || xb.IsZero():
		return x
	}

	ax, ay := xb.Abs(), yb.Abs()
	if ax < ay {
		return x
	}
	sign := xb & signMask32

	// Long division on the significands: bring x's significand down one
	// exponent step at a time, reducing mod y's significand. Every value
	// stays below 2^25, so this is exact.
	ex, mx := fmodNorm32(ax)
	ey, my := fmodNorm32(ay)
	for ; ex > ey; ex-- {
		if mx >= my {
			mx -= my
			if mx == 0 {
				return sign.Value()
			}
		}
		mx <<= 1
	}
	if mx >= my {
		mx -= my
		if mx == 0 {
			return sign.Value()
		}
	}
	for mx>>mantissaBits32 == 0 {
		mx <<= 1
		ex--
	}

	var rb Bits32
	if ex > 0 {
		rb = Bits32(mx)&mantissaMask32 | Bits32(ex)<<mantissaBits32
	} else {
		// Subnormal result: the shifted-out bits are the zeros the
		// normalization loop shifted in.
		rb = Bits32(mx >> uint(1-ex))
	}
	return (rb | sign).Value()
}

// Fmod returns the floating-point remainder x - Trunc(x/y)*y, exactly,
// using [Default]. Special cases are the same as Fmodf.
func Fmod(x, y float64) float64 { return Default.Fmod(x, y) }

// Fmod returns the floating-point remainder of x/y. The result is
// exact and carries the sign of x.
func (e *Env) Fmod(x, y float64) float64 {
	xb, yb := Float64Bits(x), Float64Bits(y)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case yb.IsNaN():
		return yb.Quiet().Value()
	case yb.IsZero() || xb.IsInf():
		e.reportDomain()
		return QuietNaN64(0).Value()
	case yb.IsInf() || xb.IsZero():
		return x
	}

	ax, ay := xb.Abs(), yb.Abs()
	if ax < ay {
		return x
	}
	sign := xb & signMask64

	ex, mx := fmodNorm64(ax)
	ey, my := fmodNorm64(ay)
	for ; ex > ey; ex-- {
		if mx >= my {
			mx -= my
			if mx == 0 {
				return sign.Value()
			}
		}
		mx <<= 1
	}
	if mx >= my {
		mx -= my
		if mx == 0 {
			return sign.Value()
		}
	}
	for mx>>mantissaBits64 == 0 {
		mx <<= 1
		ex--
	}

	var rb Bits64
	if ex > 0 {
		rb = Bits64(mx)&mantissaMask64 | Bits64(ex)<<mantissaBits64
	} else {
		rb = Bits64(mx >> uint(1-ex))
	}
	return (rb | sign).Value()
}
