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

// Trigonometric range reduction: find k and y such that
//
//	x = (k + y) * pi/16, k integer, |y| <= 0.5.
//
// Adding 32 to k adds 2*pi to x, so only k mod 32 matters.
//
// sincosfReduce is the reducer for the float32 entry points, selected at
// package init: cores with hardware FMA get a two-limb multiply-add fast
// path for moderate arguments, everything else goes through the exact
// chunked reduction.
var sincosfReduce = reduceChunked32

// reductionPath names the selected float32 reducer, for diagnostics.
var reductionPath = "chunked"

// ReductionPath reports which trigonometric range-reduction strategy was
// selected at startup.
func ReductionPath() string { return reductionPath }

// reduceFMA is the fast path for |x| < 32. The first fused step rounds
// once at the scale of its own result, so cancellation near multiples of
// pi/16 loses no accuracy; the limbs beyond the third contribute less
// than 2^-155.
func reduceFMA(xd float64) (int64, float64) {
	kd := math.Round(xd * sixteenOverPiHi)
	y := math.FMA(xd, sixteenOverPiHi, -kd)
	y = math.FMA(xd, sixteenOverPiLo, math.FMA(xd, sixteenOverPiMid, y))
	return int64(kd), y
}

// reduceHybrid uses the two-limb path for moderate arguments and the
// exact chunked path beyond. The 2^5 cutoff keeps the two-limb error
// provably below a quarter of the worst-case reduced argument.
func reduceHybrid(xd float64) (int64, float64) {
	if math.Abs(xd) < 32 {
		return reduceFMA(xd)
	}
	return reduceChunked32(xd)
}

// reduceChunked32 reduces a float32-valued argument of any magnitude
// using 28-bit chunks of 16/pi. Every product xd*chunk is exact (24-bit
// mantissa times 28-bit chunk fits in a float64), so the only rounding
// happens in the compensated accumulation, keeping the total error below
// 2^-100.
func reduceChunked32(xd float64) (int64, float64) {
	return chunkReduce(xd, sixteenOverPi28[:], 0x1p57)
}

// reduceChunked64 reduces a float64 argument exactly. The mantissa is
// split into a 27-bit high half and a low half so that products with the
// 26-bit chunks of 16/pi stay exact. Both halves feed a single
// compensated accumulation: rounding each half on its own would lose the
// tiny residual before the halves cancel near multiples of pi/16.
func reduceChunked64(xd float64) (int64, float64) {
	b := Float64Bits(xd)
	hi := (b &^ 0x3ff_ffff).Value() // top 27 mantissa bits
	lo := xd - hi                   // exact
	sum, comp := chunkAccum(hi, sixteenOverPi26[:], 0x1p58, 0, 0)
	sum, comp = chunkAccum(lo, sixteenOverPi26[:], 0x1p58, sum, comp)
	return chunkCollapse(sum, comp)
}

func chunkReduce(x float64, chunks []float64, skip float64) (int64, float64) {
	sum, comp := chunkAccum(x, chunks, skip, 0, 0)
	return chunkCollapse(sum, comp)
}

// chunkAccum adds x times each chunk of 16/pi, reduced mod 32, into the
// compensated pair (sum, comp). A product at or above skip carries fewer
// significant bits than its magnitude has integer bits, so it is an
// exact multiple of 32 (one full period) and is dropped. Kept products
// are reduced mod 32 exactly and summed with Neumaier compensation,
// which preserves the tiny fractional part even when the leading
// contributions cancel.
func chunkAccum(x float64, chunks []float64, skip, sum, comp float64) (float64, float64) {
	for _, c := range chunks {
		p := x * c // exact by construction
		if a := math.Abs(p); a >= skip {
			continue
		}
		// Reduce p mod 32: p/32 and the final subtraction are exact
		// because both operands share the lsb scale of p.
		q := math.Trunc(p * (1.0 / 32))
		r := p - 32*q
		// Two-sum step: t is the rounded sum, the branch recovers
		// the exact rounding error.
		t := sum + r
		if math.Abs(sum) >= math.Abs(r) {
			comp += (sum - t) + r
		} else {
			comp += (r - t) + sum
		}
		sum = t
	}
	return sum, comp
}

// chunkCollapse splits the compensated sum into its nearest integer and
// the full-precision residual.
func chunkCollapse(sum, comp float64) (int64, float64) {
	n := math.Round(sum)
	return int64(n), (sum - n) + comp // sum - n is exact
}
