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

// Expf returns e**x, correctly rounded, using [Default].
//
// Special cases are:
//
//	Expf(+Inf) = +Inf
//	Expf(NaN) = NaN
//	Expf(x) = +Inf with ERANGE and the overflow flag for x >= 89
//	Expf(x) = 0 with ERANGE and the underflow flag for x < log(2^-150)
func Expf(x float32) float32 { return Default.Expf(x) }

// Expf returns e**x, correctly rounded under e's rounding mode.
func (e *Env) Expf(x float32) float32 {
	xb := Float32Bits(x)
	xAbs := xb.Abs()

	// Hard-to-round input: the infinitely precise result sits almost
	// exactly halfway between two representable values.
	if xb == 0xc236_bd8c { // x = -0x1.6d7b18p+5
		if r := e.Rounding(); r == ToNearest || r == Upward {
			return Bits32(0x1e88_452d).Value() // 0x1.108a5ap-66
		}
		return Bits32(0x1e88_452c).Value() // 0x1.108a58p-66
	}

	// |x| >= 89, |x| < 2^-25, or x is inf/nan.
	if xAbs >= 0x42b2_0000 || xAbs <= 0x3280_0000 {
		// |x| <= 2^-26: exp(x) = 1 + x + x^2/2 with x^2/2 below 2^-53,
		// so to nearest the result is 1 and the directed modes take the
		// neighbor of 1 on the side of x.
		if xAbs <= 0x3280_0000 {
			if xAbs == 0 {
				return 1
			}
			switch e.Rounding() {
			case Upward:
				if !xb.Sign() {
					return (oneBits32 + 1).Value() // 1 + 2^-23
				}
			case Downward, TowardZero:
				if xb.Sign() {
					return (oneBits32 - 1).Value() // 1 - 2^-24
				}
			}
			return 1
		}
		// x < log(2^-150): the result underflows to zero.
		if xb >= 0xc2cf_f1b5 {
			if xb.IsInf() {
				return 0
			}
			if xb.IsNaN() {
				return xb.Quiet().Value()
			}
			if e.Rounding() == Upward {
				e.Raise(ExUnderflow | ExInexact)
				return MinSubnormal32.Value()
			}
			e.reportUnderflow()
			return 0
		}
		// x >= 89, +Inf, or NaN.
		if !xb.Sign() {
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
	}

	// For -104 < x < 89, split x = hi + mid + lo with hi an integer,
	// mid a multiple of 2^-7, and |lo| <= 2^-8. Then
	//   exp(x) = exp(hi) * exp(mid) * exp(lo)
	// with exp(hi) and exp(mid) taken from the lookup tables and exp(lo)
	// from a degree-4 minimax polynomial on [-2^-8, 2^-8].
	xd := float64(x)
	kf := math.RoundToEven(xd * 0x1p7)
	lo := xd - kf*0x1p-7 // exact
	k := int(kf) + 104<<7
	expHi := expM1[k>>7]
	expMid := expM2[k&0x7f]
	expLo := Horner4(lo, 0x1p0,
		0x1.ffffffffff777p-1, 0x1.000000000071cp-1,
		0x1.555566668e5e7p-3, 0x1.55555555ef243p-5)
	return float32(expHi * expMid * expLo)
}

// Exp10f returns 10**x using [Default]. The result is within 1 ULP of the
// infinitely precise value.
func Exp10f(x float32) float32 { return Default.Exp10f(x) }

// Exp10f returns 10**x, within 1 ULP.
func (e *Env) Exp10f(x float32) float32 {
	xb := Float32Bits(x)
	if xb.IsInfOrNaN() {
		if xb.IsNaN() {
			return xb.Quiet().Value()
		}
		if !xb.Sign() {
			return x
		}
		return 0 // 10^-Inf
	}

	// 10^x = 2^(x*log2(10)). The product is accurate to about 2^-46
	// absolute, far below the float32 rounding threshold.
	t := float64(x) * log2Of10
	if t >= 128 {
		if r := e.Rounding(); r == Downward || r == TowardZero {
			e.Raise(ExOverflow | ExInexact)
			return MaxNormal32.Value()
		}
		e.reportOverflow()
		return Inf32.Value()
	}
	if t < -150 {
		if e.Rounding() == Upward {
			e.Raise(ExUnderflow | ExInexact)
			return MinSubnormal32.Value()
		}
		e.reportUnderflow()
		return 0
	}
	return float32(exp2Core(t))
}
