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

// Expm1f returns e**x - 1, correctly rounded, using [Default]. It is
// accurate even when x is near zero, where Expf(x)-1 would cancel.
func Expm1f(x float32) float32 { return Default.Expm1f(x) }

// Expm1f returns e**x - 1, correctly rounded under e's rounding mode.
func (e *Env) Expm1f(x float32) float32 {
	xb := Float32Bits(x)

	// x < log(2^-25), -Inf, or a negative NaN: the result rounds to -1.
	if xb >= 0xc18a_a123 {
		if xb.IsInf() {
			return -1
		}
		if xb.IsNaN() {
			return xb.Quiet().Value()
		}
		if r := e.Rounding(); r == Upward || r == TowardZero {
			return Bits32(0xbf7f_ffff).Value() // -1 + 2^-24
		}
		return -1
	}
	// x >= 89, +Inf, or NaN.
	if !xb.Sign() && xb >= 0x42b2_0000 {
		if xb.IsInfOrNaN() {
			if xb.IsNaN() {
				return xb.Quiet().Value()
			}
			return x
		}
		if r := e.Rounding(); r == Downward || r == TowardZero {
			e.Raise(ExOverflow | ExInexact)
			return MaxNormal32.Value()
		}
		e.reportOverflow()
		return Inf32.Value()
	}

	// |x| < 2^-4
	if xb.BiasedExponent() < 123 {
		// |x| < 2^-25: 0 < |expm1(x) - x| < x^2/2 < eps(x)/4, so the
		// result is x except when the mode rounds away from zero on
		// the positive side of x.
		if xb.BiasedExponent() < 102 {
			if xb.IsZero() { // expm1(+-0) is exactly +-0
				return x
			}
			if r := e.Rounding(); r == Upward || (r == TowardZero && xb.Sign()) {
				if xb.Sign() {
					return (xb - 1).Value()
				}
				return (xb + 1).Value()
			}
			return x
		}
		// 2^-25 <= |x| < 2^-4: the Taylor series applied as
		// x + x^2 * P(x), so the dominant term stays exact and only the
		// correction goes through the polynomial.
		xd := float64(x)
		xsq := xd * xd
		r := Horner(xd,
			expm1SmallCoef[1], expm1SmallCoef[2], expm1SmallCoef[3],
			expm1SmallCoef[4], expm1SmallCoef[5], expm1SmallCoef[6],
			expm1SmallCoef[7], expm1SmallCoef[8], expm1SmallCoef[9],
			expm1SmallCoef[10])
		return float32(r*xsq + xd)
	}

	// Hard-to-round input.
	if xb == 0xbdc1_c6cb { // x = -0x1.838d96p-4
		if r := e.Rounding(); r == ToNearest || r == Downward {
			return Bits32(0xbdb8_e442).Value() // -0x1.71c884p-4
		}
		return Bits32(0xbdb8_e441).Value() // -0x1.71c882p-4
	}

	// For -18 < x < 89, reduce as in Expf: x = hi + mid + lo. The
	// truncating split can leave lo outside [-2^-8, 2^-8), so nudge the
	// index until it is back in range.
	xd := float64(x)
	xHi := int(xd * 0x1p7)
	xd -= float64(xHi) * 0x1p-7 // exact
	if xd >= 0x1p-8 {
		xHi++
		xd -= 0x1p-7
	}
	if xd < -0x1p-8 {
		xHi--
		xd += 0x1p-7
	}
	xHi += 104 << 7
	expHiMid := expM1[xHi>>7] * expM2[xHi&0x7f]
	// Degree-7 minimax polynomial for exp(lo).
	expLo := Horner7(xd, 0x1p0, 0x1p0, 0x1p-1,
		0x1.5555555555555p-3, 0x1.55555555553ap-5,
		0x1.1111111204dfcp-7, 0x1.6c16cb2da593ap-10,
		0x1.9ff1648996d2ep-13)
	return float32(math.FMA(expHiMid, expLo, -1.0))
}
