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

// Exp2f returns 2**x, correctly rounded, using [Default].
func Exp2f(x float32) float32 { return Default.Exp2f(x) }

// Exp2f returns 2**x, correctly rounded under e's rounding mode.
func (e *Env) Exp2f(x float32) float32 {
	xb := Float32Bits(x)
	xAbs := xb.Abs()

	// Hard-to-round inputs.
	switch xb {
	case 0x3b42_9d37: // x = 0x1.853a6ep-9
		if e.Rounding() == ToNearest {
			return Bits32(0x3f80_4385).Value() // 0x1.00870ap+0
		}
	case 0x3c02_a9ad: // x = 0x1.05535ap-7
		if e.Rounding() == ToNearest {
			return Bits32(0x3f80_b5a3).Value() // 0x1.016b46p+0
		}
	case 0x3ca6_6e26: // x = 0x1.4cdc4cp-6
		if r := e.Rounding(); r == ToNearest || r == Upward {
			return Bits32(0x3f81_d0b5).Value() // 0x1.03a16ap+0
		}
		return Bits32(0x3f81_d0b4).Value() // 0x1.03a168p+0
	case 0x3d92_a282: // x = 0x1.254504p-4
		if e.Rounding() == Upward {
			return Bits32(0x3f86_8344).Value() // 0x1.0d0688p+0
		}
		return Bits32(0x3f86_8343).Value() // 0x1.0d0686p+0
	case 0xbcf3_a937: // x = -0x1.e7526ep-6
		if e.Rounding() == ToNearest {
			return Bits32(0x3f7a_c6b1).Value() // 0x1.f58d62p-1
		}
	case 0xb8d3_d026: // x = -0x1.a7a04cp-14
		if e.Rounding() == ToNearest {
			return Bits32(0x3f7f_fb69).Value() // 0x1.fff6d2p-1
		}
	}

	// |x| >= 128, |x| < 2^-25, or x is inf/nan.
	if xAbs >= 0x4300_0000 || xAbs <= 0x3280_0000 {
		// |x| <= 2^-26: 2^x = 1 + x*ln2 + ... with |x*ln2| below the
		// half-ULP threshold of 1 on either side, so to nearest the
		// result is 1 and the directed modes take the neighbor of 1 on
		// the side of x.
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
		// x >= 128, +Inf, or NaN.
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
		// x < -150: the result underflows to zero.
		if xb >= 0xc316_0000 {
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
	}

	return float32(exp2Core(float64(x)))
}

// exp2Core returns 2**t for -151 < t < 128, accurate to well under a
// float32 ULP. Split t = hi + mid + lo with hi an integer, mid a multiple
// of 2^-6, and |lo| <= 2^-7. Multiplying by 2^hi is an exponent-field
// addition; 2^mid comes from the 2^(j/64) table; 2^lo from a degree-4
// minimax polynomial on [-2^-7, 2^-7].
func exp2Core(t float64) float64 {
	kf := math.RoundToEven(t * 0x1p6)
	lo := t - kf*0x1p-6 // exact
	k := int64(kf)
	eHi := (k >> 6) + exponentBias64
	exp2Hi := Bits64(uint64(eHi) << mantissaBits64).Value()
	exp2HiMid := exp2Hi * exp2Mid64[k&0x3f]
	exp2Lo := Horner4(lo, 0x1p0,
		0x1.62e42fefa2417p-1, 0x1.ebfbdff82f809p-3,
		0x1.c6b0b92131c47p-5, 0x1.3b2ab6fb568a3p-7)
	return exp2HiMid * exp2Lo
}
