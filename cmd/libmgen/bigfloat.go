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

package main

import "math/big"

// Working precision in bits. The 26-bit chunk table consumes about 1150
// bits of 16/pi; everything else needs far less.
const prec = 1280

func newFloat() *big.Float { return new(big.Float).SetPrec(prec) }

func intFloat(n int64) *big.Float { return newFloat().SetInt64(n) }

func pow2(n int) *big.Float { return newFloat().SetMantExp(intFloat(1), n) }

// smallEnough reports whether a series term no longer affects the sum
// at working precision.
func smallEnough(term, sum *big.Float) bool {
	if term.Sign() == 0 {
		return true
	}
	e := term.MantExp(nil)
	if e < -2*prec {
		return true
	}
	return e < sum.MantExp(nil)-prec-16
}

// atanInv returns atan(1/m) by the alternating Taylor series.
func atanInv(m int64) *big.Float {
	x := newFloat().Quo(intFloat(1), intFloat(m))
	x2 := newFloat().Mul(x, x)
	term := newFloat().Set(x)
	sum := newFloat().Set(x)
	for n := int64(3); ; n += 2 {
		term.Mul(term, x2)
		t := newFloat().Quo(term, intFloat(n))
		if (n/2)%2 == 1 {
			sum.Sub(sum, t)
		} else {
			sum.Add(sum, t)
		}
		if smallEnough(t, sum) {
			break
		}
	}
	return sum
}

var piCache *big.Float

// bigPi returns pi by Machin's formula, 16*atan(1/5) - 4*atan(1/239).
func bigPi() *big.Float {
	if piCache == nil {
		a := newFloat().Mul(intFloat(16), atanInv(5))
		b := newFloat().Mul(intFloat(4), atanInv(239))
		piCache = newFloat().Sub(a, b)
	}
	return newFloat().Set(piCache)
}

// bigExp returns e**x. The argument is scaled below 1/2, summed by the
// Taylor series, and squared back up.
func bigExp(x *big.Float) *big.Float {
	t := newFloat().Set(x)
	k := 0
	if e := t.MantExp(nil); t.Sign() != 0 && e > -1 {
		k = e + 1
		t.Quo(t, pow2(k))
	}
	sum := intFloat(1)
	term := intFloat(1)
	for n := int64(1); ; n++ {
		term.Mul(term, t)
		term.Quo(term, intFloat(n))
		sum.Add(sum, term)
		if smallEnough(term, sum) {
			break
		}
	}
	for ; k > 0; k-- {
		sum.Mul(sum, sum)
	}
	return sum
}

// bigLog returns log(y) for y > 0 via log y = 2*atanh((y-1)/(y+1)).
func bigLog(y *big.Float) *big.Float {
	num := newFloat().Sub(y, intFloat(1))
	den := newFloat().Add(y, intFloat(1))
	z := newFloat().Quo(num, den)
	z2 := newFloat().Mul(z, z)
	term := newFloat().Set(z)
	sum := newFloat().Set(z)
	for n := int64(3); ; n += 2 {
		term.Mul(term, z2)
		t := newFloat().Quo(term, intFloat(n))
		sum.Add(sum, t)
		if smallEnough(t, sum) {
			break
		}
	}
	return sum.Mul(sum, intFloat(2))
}

// bigSin returns sin(x) for |x| < 8 by the Taylor series.
func bigSin(x *big.Float) *big.Float {
	x2 := newFloat().Mul(x, x)
	term := newFloat().Set(x)
	sum := newFloat().Set(x)
	for n := int64(3); ; n += 2 {
		term.Mul(term, x2)
		term.Quo(term, intFloat(n*(n-1)))
		term.Neg(term)
		sum.Add(sum, term)
		if smallEnough(term, sum) {
			break
		}
	}
	return sum
}

func factorial(n int64) *big.Float {
	f := intFloat(1)
	for i := int64(2); i <= n; i++ {
		f.Mul(f, intFloat(i))
	}
	return f
}

// rn rounds x to the nearest float64, once.
func rn(x *big.Float) float64 {
	v, _ := x.Float64()
	return v
}
