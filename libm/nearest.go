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

import "math"

// trunc32 clears the fraction bits of b. Infinities pass through
// because their exponent field is saturated; NaNs come out quieted.
func trunc32(b Bits32) Bits32 {
	ex := b.BiasedExponent() - exponentBias32
	if ex >= mantissaBits32 {
		if b.IsNaN() {
			return b.Quiet()
		}
		return b
	}
	if ex < 0 {
		return b & signMask32
	}
	return b &^ (mantissaMask32 >> uint(ex))
}

func trunc64(b Bits64) Bits64 {
	ex := b.BiasedExponent() - exponentBias64
	if ex >= mantissaBits64 {
		if b.IsNaN() {
			return b.Quiet()
		}
		return b
	}
	if ex < 0 {
		return b & signMask64
	}
	return b &^ (mantissaMask64 >> uint(ex))
}

// Truncf returns the integer value of x rounded toward zero.
func Truncf(x float32) float32 { return trunc32(Float32Bits(x)).Value() }

// Trunc returns the integer value of x rounded toward zero.
func Trunc(x float64) float64 { return trunc64(Float64Bits(x)).Value() }

// Floorf returns the greatest integer value less than or equal to x.
func Floorf(x float32) float32 {
	b := Float32Bits(x)
	t := trunc32(b)
	if t != b && b.Sign() && !b.IsNaN() {
		return t.Value() - 1
	}
	return t.Value()
}

// Floor returns the greatest integer value less than or equal to x.
func Floor(x float64) float64 {
	b := Float64Bits(x)
	t := trunc64(b)
	if t != b && b.Sign() && !b.IsNaN() {
		return t.Value() - 1
	}
	return t.Value()
}

// Ceilf returns the least integer value greater than or equal to x.
func Ceilf(x float32) float32 {
	b := Float32Bits(x)
	t := trunc32(b)
	if t != b && !b.Sign() && !b.IsNaN() {
		return t.Value() + 1
	}
	return t.Value()
}

// Ceil returns the least integer value greater than or equal to x.
func Ceil(x float64) float64 {
	b := Float64Bits(x)
	t := trunc64(b)
	if t != b && !b.Sign() && !b.IsNaN() {
		return t.Value() + 1
	}
	return t.Value()
}

// Roundf returns x rounded to the nearest integer, ties away from zero.
func Roundf(x float32) float32 {
	b := Float32Bits(x)
	ex := b.BiasedExponent() - exponentBias32
	switch {
	case ex >= mantissaBits32:
		return trunc32(b).Value() // integral, Inf, or a quieted NaN
	case ex < -1:
		return (b & signMask32).Value()
	case ex == -1: // 0.5 <= |x| < 1
		return (b&signMask32 | oneBits32).Value()
	}
	trailing := mantissaMask32 >> uint(ex)
	half := Bits32(1) << uint(mantissaBits32-1-ex)
	v := (b &^ trailing).Value()
	if b&trailing >= half {
		// Both v and v+-1 are integers below 2^24, so this is exact.
		if b.Sign() {
			v--
		} else {
			v++
		}
	}
	return v
}

// Round returns x rounded to the nearest integer, ties away from zero.
func Round(x float64) float64 {
	b := Float64Bits(x)
	ex := b.BiasedExponent() - exponentBias64
	switch {
	case ex >= mantissaBits64:
		return trunc64(b).Value() // integral, Inf, or a quieted NaN
	case ex < -1:
		return (b & signMask64).Value()
	case ex == -1:
		return (b&signMask64 | oneBits64).Value()
	}
	trailing := mantissaMask64 >> uint(ex)
	half := Bits64(1) << uint(mantissaBits64-1-ex)
	v := (b &^ trailing).Value()
	if b&trailing >= half {
		if b.Sign() {
			v--
		} else {
			v++
		}
	}
	return v
}

// Rintf returns x rounded to the nearest integer under [Default]'s
// rounding mode, raising the inexact flag when the result differs
// from x.
func Rintf(x float32) float32 { return Default.Rintf(x) }

// Rintf returns x rounded to the nearest integer under e's rounding
// mode, raising the inexact flag when the result differs from x.
func (e *Env) Rintf(x float32) float32 {
	b := Float32Bits(x)
	ex := b.BiasedExponent() - exponentBias32
	if ex >= mantissaBits32 { // integral, Inf, or NaN
		return trunc32(b).Value()
	}

	var above, halfway, odd bool
	if ex < 0 {
		if b.Abs() == 0 {
			return x
		}
		const halfBits = 0x3f00_0000
		above = b.Abs() > halfBits
		halfway = b.Abs() == halfBits
		odd = false // truncation gives 0
	} else {
		trailing := mantissaMask32 >> uint(ex)
		frac := b & trailing
		if frac == 0 {
			return x
		}
		half := Bits32(1) << uint(mantissaBits32-1-ex)
		above = frac > half
		halfway = frac == half
		intLSB := (b.Mantissa() | 1<<mantissaBits32) >> uint(mantissaBits32-ex)
		odd = intLSB&1 == 1
	}

	e.Raise(ExInexact)
	v := trunc32(b).Value()
	switch e.Rounding() {
	case ToNearest:
		if above || (halfway && odd) {
			if b.Sign() {
				v--
			} else {
				v++
			}
		}
	case Downward:
		if b.Sign() {
			v--
		}
	case Upward:
		if !b.Sign() {
			v++
		}
	}
	return v
}

// Rint returns x rounded to the nearest integer under [Default]'s
// rounding mode, raising the inexact flag when the result differs
// from x.
func Rint(x float64) float64 { return Default.Rint(x) }

// Rint returns x rounded to the nearest integer under e's rounding
// mode, raising the inexact flag when the result differs from x.
func (e *Env) Rint(x float64) float64 {
	b := Float64Bits(x)
	ex := b.BiasedExponent() - exponentBias64
	if ex >= mantissaBits64 {
		return trunc64(b).Value()
	}

	var above, halfway, odd bool
	if ex < 0 {
		if b.Abs() == 0 {
			return x
		}
		const halfBits = 0x3fe0_0000_0000_0000
		above = b.Abs() > halfBits
		halfway = b.Abs() == halfBits
		odd = false
	} else {
		trailing := mantissaMask64 >> uint(ex)
		frac := b & trailing
		if frac == 0 {
			return x
		}
		half := Bits64(1) << uint(mantissaBits64-1-ex)
		above = frac > half
		halfway = frac == half
		intLSB := (b.Mantissa() | 1<<mantissaBits64) >> uint(mantissaBits64-ex)
		odd = intLSB&1 == 1
	}

	e.Raise(ExInexact)
	v := trunc64(b).Value()
	switch e.Rounding() {
	case ToNearest:
		if above || (halfway && odd) {
			if b.Sign() {
				v--
			} else {
				v++
			}
		}
	case Downward:
		if b.Sign() {
			v--
		}
	case Upward:
		if !b.Sign() {
			v++
		}
	}
	return v
}

// Lroundf returns x rounded to the nearest int64, ties away from zero,
// using [Default]. NaNs and values outside the int64 range report a
// domain error and return math.MinInt64.
func Lroundf(x float32) int64 { return Default.Lroundf(x) }

// Lroundf returns x rounded to the nearest int64, ties away from zero.
func (e *Env) Lroundf(x float32) int64 {
	b := Float32Bits(x)
	if b.IsInfOrNaN() {
		e.reportDomain()
		return math.MinInt64
	}
	v := Roundf(x)
	// -2^63 itself is representable and in range.
	if v >= 0x1p63 || v < -0x1p63 {
		e.reportDomain()
		return math.MinInt64
	}
	return int64(v)
}

// Lround returns x rounded to the nearest int64, ties away from zero,
// using [Default]. NaNs and values outside the int64 range report a
// domain error and return math.MinInt64.
func Lround(x float64) int64 { return Default.Lround(x) }

// Lround returns x rounded to the nearest int64, ties away from zero.
func (e *Env) Lround(x float64) int64 {
	b := Float64Bits(x)
	if b.IsInfOrNaN() {
		e.reportDomain()
		return math.MinInt64
	}
	v := Round(x)
	if v >= 0x1p63 || v < -0x1p63 {
		e.reportDomain()
		return math.MinInt64
	}
	return int64(v)
}
