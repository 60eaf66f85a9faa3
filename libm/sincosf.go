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

// Hard-to-round inputs shared by Sinf, Cosf, and Sincosf, keyed by the
// absolute bit pattern. Each output row holds the toward-zero result and
// the increments to apply for upward, downward, and to-nearest rounding.
// sin(-x) = -sin(x), so the sin rows are sign-mirrored: for negative x
// the upward and downward increments swap.
var sincosfExceptInputs = [10]Bits32{
	0x3b5637f5, // x = 0x1.ac6feap-9
	0x3fa7832a, // x = 0x1.4f0654p0
	0x46199998, // x = 0x1.33333p13
	0x55325019, // x = 0x1.64a032p43
	0x55cafb2a, // x = 0x1.95f654p44
	0x5922aa80, // x = 0x1.4555p51
	0x5aa4542c, // x = 0x1.48a858p54
	0x5f18b878, // x = 0x1.3170fp63
	0x6115cb11, // x = 0x1.2b9622p67
	0x7beef5ef, // x = 0x1.ddebdep120
}

var sincosfExceptSin = [10][4]uint32{
	{0x3b5637dc, 1, 0, 0}, // sin(0x1.ac6feap-9) = 0x1.ac6fb8p-9 (RZ)
	{0x3f7741b5, 1, 0, 1}, // sin(0x1.4f0654p0) = 0x1.ee836ap-1 (RZ)
	{0xbeb1fa5d, 0, 1, 0}, // sin(0x1.33333p13) = -0x1.63f4bap-2 (RZ)
	{0xbf171adf, 0, 1, 1}, // sin(0x1.64a032p43) = -0x1.2e35bep-1 (RZ)
	{0xbf7e7a16, 0, 1, 1}, // sin(0x1.95f654p44) = -0x1.fcf42cp-1 (RZ)
	{0xbf587521, 0, 1, 1}, // sin(0x1.4555p51) = -0x1.b0ea42p-1 (RZ)
	{0x3f5f5646, 1, 0, 0}, // sin(0x1.48a858p54) = 0x1.beac8cp-1 (RZ)
	{0x3dad60f6, 1, 0, 1}, // sin(0x1.3170fp63) = 0x1.5ac1ecp-4 (RZ)
	{0xbe7cc1e0, 0, 1, 1}, // sin(0x1.2b9622p67) = -0x1.f983cp-3 (RZ)
	{0xbf587d1b, 0, 1, 1}, // sin(0x1.ddebdep120) = -0x1.b0fa36p-1 (RZ)
}

var sincosfExceptCos = [10][4]uint32{
	{0x3f7fffa6, 1, 0, 0}, // cos(0x1.ac6feap-9) = 0x1.ffff4cp-1 (RZ)
	{0x3e84aabf, 1, 0, 1}, // cos(0x1.4f0654p0) = 0x1.09557ep-2 (RZ)
	{0xbf70090b, 0, 1, 0}, // cos(0x1.33333p13) = -0x1.e01216p-1 (RZ)
	{0x3f4ea5d2, 1, 0, 0}, // cos(0x1.64a032p43) = 0x1.9d4ba4p-1 (RZ)
	{0x3ddf11f3, 1, 0, 1}, // cos(0x1.95f654p44) = 0x1.be23e6p-4 (RZ)
	{0x3f08aebe, 1, 0, 1}, // cos(0x1.4555p51) = 0x1.115d7cp-1 (RZ)
	{0x3efa40a4, 1, 0, 0}, // cos(0x1.48a858p54) = 0x1.f48148p-2 (RZ)
	{0x3f7f14bb, 1, 0, 0}, // cos(0x1.3170fp63) = 0x1.fe2976p-1 (RZ)
	{0x3f78142e, 1, 0, 1}, // cos(0x1.2b9622p67) = 0x1.f0285cp-1 (RZ)
	{0x3f08a21c, 1, 0, 0}, // cos(0x1.ddebdep120) = 0x1.114438p-1 (RZ)
}

// Sincosf returns sin(x) and cos(x), correctly rounded, using [Default].
//
// Special cases are:
//
//	Sincosf(±0) = ±0, 1
//	Sincosf(±Inf) = NaN, NaN with EDOM and the invalid flag
//	Sincosf(NaN) = NaN, NaN
func Sincosf(x float32) (sin, cos float32) { return Default.Sincosf(x) }

// Sincosf returns sin(x) and cos(x), correctly rounded under e's
// rounding mode.
func (e *Env) Sincosf(x float32) (sin, cos float32) {
	xb := Float32Bits(x)
	xAbs := xb.Abs()
	xd := float64(x)

	// |x| < 2^-12: sin(x) rounds like x - x^3/6 with |x^3/6| below a
	// quarter ULP, cos(x) like 1 - x^2/2 with the deficit below a half
	// ULP of 1. Only directed modes see the difference.
	if xAbs < 0x3980_0000 {
		if xAbs == 0 {
			return x, 1
		}
		r := e.Rounding()
		sin = x
		if r == TowardZero || (r == Downward && !xb.Sign()) || (r == Upward && xb.Sign()) {
			sin = (xb - 1).Value() // one step toward zero
		}
		cos = 1
		if r == TowardZero || r == Downward {
			cos = Bits32(0x3f7f_ffff).Value() // 1 - 2^-24
		}
		return sin, cos
	}

	// Inf and NaN.
	if xAbs >= Inf32 {
		if xAbs == Inf32 {
			e.reportDomain()
			nan := QuietNaN32(0).Value()
			return nan, nan
		}
		qnan := xb.Quiet().Value()
		return qnan, qnan
	}

	for i, in := range sincosfExceptInputs {
		if xAbs != in {
			continue
		}
		s := sincosfExceptSin[i][0]
		c := sincosfExceptCos[i][0]
		switch e.Rounding() {
		case Upward:
			if xb.Sign() {
				s += sincosfExceptSin[i][2]
			} else {
				s += sincosfExceptSin[i][1]
			}
			c += sincosfExceptCos[i][1]
		case Downward:
			if xb.Sign() {
				s += sincosfExceptSin[i][1]
			} else {
				s += sincosfExceptSin[i][2]
			}
			c += sincosfExceptCos[i][2]
		case ToNearest:
			s += sincosfExceptSin[i][3]
			c += sincosfExceptCos[i][3]
		}
		sin = Bits32(s).Value()
		if xb.Sign() {
			sin = -sin
		}
		return sin, Bits32(c).Value()
	}

	sinK, cosK, sinY, cosm1Y := sincosfEval(xd)

	// Angle addition, fused so the small cosm1Y correction lands on the
	// table values without an intermediate rounding:
	//   sin(x) = sin_y*cos_k + (cosm1_y*sin_k + sin_k)
	//   cos(x) = sin_y*(-sin_k) + (cosm1_y*cos_k + cos_k)
	sin = float32(math.FMA(sinY, cosK, math.FMA(cosm1Y, sinK, sinK)))
	cos = float32(math.FMA(sinY, -sinK, math.FMA(cosm1Y, cosK, cosK)))
	return sin, cos
}

// Sinf returns sin(x), correctly rounded, using [Default].
func Sinf(x float32) float32 { return Default.Sinf(x) }

// Sinf returns sin(x), correctly rounded under e's rounding mode.
func (e *Env) Sinf(x float32) float32 {
	sin, _ := e.Sincosf(x)
	return sin
}

// Cosf returns cos(x), correctly rounded, using [Default].
func Cosf(x float32) float32 { return Default.Cosf(x) }

// Cosf returns cos(x), correctly rounded under e's rounding mode.
func (e *Env) Cosf(x float32) float32 {
	_, cos := e.Sincosf(x)
	return cos
}

// sincosfEval reduces x to (k + y)*pi/16 and returns sin(k*pi/16),
// cos(k*pi/16), sin(y*pi/16), and cos(y*pi/16)-1.
func sincosfEval(xd float64) (sinK, cosK, sinY, cosm1Y float64) {
	k, y := sincosfReduce(xd)
	kk := int(k & 31)
	sinK = sinKPi16[kk]
	cosK = sinKPi16[(kk+8)&31]
	ysq := y * y
	sinY = y * Horner4(ysq, sinYCoef[0], sinYCoef[1], sinYCoef[2], sinYCoef[3], sinYCoef[4])
	cosm1Y = ysq * Horner4(ysq, cosm1YCoef[0], cosm1YCoef[1], cosm1YCoef[2], cosm1YCoef[3], cosm1YCoef[4])
	return sinK, cosK, sinY, cosm1Y
}
