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

// Bits32 is the raw IEEE-754 binary32 encoding of a float32. It gives
// bit-exact access to the sign, exponent, and mantissa fields without any
// floating-point arithmetic.
type Bits32 uint32

// Bits64 is the raw IEEE-754 binary64 encoding of a float64.
type Bits64 uint64

const (
	signMask32     Bits32 = 0x8000_0000
	exponentMask32 Bits32 = 0x7f80_0000
	mantissaMask32 Bits32 = 0x007f_ffff
	quietMask32    Bits32 = 0x0040_0000
	exponentBias32        = 127
	mantissaBits32        = 23

	signMask64     Bits64 = 0x8000_0000_0000_0000
	exponentMask64 Bits64 = 0x7ff0_0000_0000_0000
	mantissaMask64 Bits64 = 0x000f_ffff_ffff_ffff
	quietMask64    Bits64 = 0x0008_0000_0000_0000
	exponentBias64        = 1023
	mantissaBits64        = 52
)

// Canned encodings.
const (
	Inf32          Bits32 = 0x7f80_0000
	MaxNormal32    Bits32 = 0x7f7f_ffff
	MinNormal32    Bits32 = 0x0080_0000
	MaxSubnormal32 Bits32 = 0x007f_ffff
	MinSubnormal32 Bits32 = 0x0000_0001

	Inf64          Bits64 = 0x7ff0_0000_0000_0000
	MaxNormal64    Bits64 = 0x7fef_ffff_ffff_ffff
	MinNormal64    Bits64 = 0x0010_0000_0000_0000
	MaxSubnormal64 Bits64 = 0x000f_ffff_ffff_ffff
	MinSubnormal64 Bits64 = 0x0000_0000_0000_0001

	oneBits32 Bits32 = 0x3f80_0000
	oneBits64 Bits64 = 0x3ff0_0000_0000_0000
)

// Float32Bits returns the encoding of x.
func Float32Bits(x float32) Bits32 { return Bits32(math.Float32bits(x)) }

// Float64Bits returns the encoding of x.
func Float64Bits(x float64) Bits64 { return Bits64(math.Float64bits(x)) }

// QuietNaN32 returns a quiet NaN carrying the low bits of payload in its
// mantissa field.
func QuietNaN32(payload uint32) Bits32 {
	return exponentMask32 | quietMask32 | (Bits32(payload) & (mantissaMask32 &^ quietMask32))
}

// QuietNaN64 returns a quiet NaN carrying the low bits of payload.
func QuietNaN64(payload uint64) Bits64 {
	return exponentMask64 | quietMask64 | (Bits64(payload) & (mantissaMask64 &^ quietMask64))
}

// Value reconstructs the float32 this encoding represents. The round trip
// Float32Bits(b.Value()) == b holds for every bit pattern, NaNs included.
func (b Bits32) Value() float32 { return math.Float32frombits(uint32(b)) }

// Sign reports whether the sign bit is set.
func (b Bits32) Sign() bool { return b&signMask32 != 0 }

// BiasedExponent returns the raw exponent field, 0..255.
func (b Bits32) BiasedExponent() int { return int(b >> mantissaBits32 & 0xff) }

// Exponent returns the unbiased exponent. Subnormals and zeros report the
// minimum exponent, 1-bias, matching the value 2^e * 0.mantissa.
func (b Bits32) Exponent() int {
	e := b.BiasedExponent()
	if e == 0 {
		return 1 - exponentBias32
	}
	return e - exponentBias32
}

// Mantissa returns the 23-bit trailing significand field.
func (b Bits32) Mantissa() uint32 { return uint32(b & mantissaMask32) }

// Abs clears the sign bit.
func (b Bits32) Abs() Bits32 { return b &^ signMask32 }

// Quiet sets the quiet bit, turning a signaling NaN into a quiet one
// with the sign and payload preserved.
func (b Bits32) Quiet() Bits32 { return b | quietMask32 }

func (b Bits32) IsNaN() bool { return b.Abs() > Inf32 }

func (b Bits32) IsInf() bool { return b.Abs() == Inf32 }

func (b Bits32) IsInfOrNaN() bool { return b&exponentMask32 == exponentMask32 }

func (b Bits32) IsZero() bool { return b.Abs() == 0 }

func (b Bits32) IsSubnormal() bool {
	return b&exponentMask32 == 0 && b&mantissaMask32 != 0
}

// Value reconstructs the float64 this encoding represents.
func (b Bits64) Value() float64 { return math.Float64frombits(uint64(b)) }

// Sign reports whether the sign bit is set.
func (b Bits64) Sign() bool { return b&signMask64 != 0 }

// BiasedExponent returns the raw exponent field, 0..2047.
func (b Bits64) BiasedExponent() int { return int(b >> mantissaBits64 & 0x7ff) }

// Exponent returns the unbiased exponent, with subnormals and zeros
// reporting the minimum exponent 1-bias.
func (b Bits64) Exponent() int {
	e := b.BiasedExponent()
	if e == 0 {
		return 1 - exponentBias64
	}
	return e - exponentBias64
}

// Mantissa returns the 52-bit trailing significand field.
func (b Bits64) Mantissa() uint64 { return uint64(b & mantissaMask64) }

// Abs clears the sign bit.
func (b Bits64) Abs() Bits64 { return b &^ signMask64 }

// Quiet sets the quiet bit, turning a signaling NaN into a quiet one
// with the sign and payload preserved.
func (b Bits64) Quiet() Bits64 { return b | quietMask64 }

func (b Bits64) IsNaN() bool { return b.Abs() > Inf64 }

func (b Bits64) IsInf() bool { return b.Abs() == Inf64 }

func (b Bits64) IsInfOrNaN() bool { return b&exponentMask64 == exponentMask64 }

func (b Bits64) IsZero() bool { return b.Abs() == 0 }

func (b Bits64) IsSubnormal() bool {
	return b&exponentMask64 == 0 && b&mantissaMask64 != 0
}
