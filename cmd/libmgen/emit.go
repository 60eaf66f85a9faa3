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

import (
	"bytes"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// hex formats v as a hexadecimal float64 literal. Subnormals keep the
// denormalized p-1022 form so their bit layout stays visible.
func hex(v float64) string {
	if v == 0 {
		return "0x0p+0"
	}
	b := math.Float64bits(v)
	if b&0x7ff0_0000_0000_0000 == 0 {
		sign := ""
		if v < 0 {
			sign = "-"
		}
		return fmt.Sprintf("%s0x0.%013xp-1022", sign, b&0xf_ffff_ffff_ffff)
	}
	s := strconv.FormatFloat(v, 'x', 13, 64)
	// strconv pads single-digit exponents to two digits; drop the zero.
	if i := strings.IndexByte(s, 'p'); len(s)-i == 4 && s[i+2] == '0' {
		s = s[:i+2] + s[i+3:]
	}
	return s
}

// emitTable writes one table declaration, four values per line.
func emitTable(buf *bytes.Buffer, doc, name string, vals []float64) {
	for _, line := range strings.Split(doc, "\n") {
		fmt.Fprintf(buf, "// %s\n", line)
	}
	fmt.Fprintf(buf, "var %s = [%d]float64{\n", name, len(vals))
	for i := 0; i < len(vals); i += 4 {
		row := vals[i:min(i+4, len(vals))]
		lits := make([]string, len(row))
		for j, v := range row {
			lits[j] = hex(v)
		}
		fmt.Fprintf(buf, "\t%s,\n", strings.Join(lits, ", "))
	}
	fmt.Fprintf(buf, "}\n\n")
}

// inverseFactorials returns 1/(k+1)! for k in [0, n).
func inverseFactorials(n int) []float64 {
	vals := make([]float64, n)
	for k := range vals {
		vals[k] = rn(newFloat().Quo(intFloat(1), factorial(int64(k)+1)))
	}
	return vals
}

func emitExpTables(buf *bytes.Buffer) {
	vals := make([]float64, 194)
	for i := range vals {
		vals[i] = rn(bigExp(intFloat(int64(i) - 104)))
	}
	emitTable(buf, "expM1[i] holds exp(i-104) for i in [0, 193], covering integer\narguments across the whole float32 exp range.",
		"expM1", vals)

	vals = make([]float64, 128)
	for j := range vals {
		x := newFloat().Quo(intFloat(int64(j)), intFloat(128))
		vals[j] = rn(bigExp(x))
	}
	emitTable(buf, "expM2[j] holds exp(j/128) for j in [0, 127].", "expM2", vals)

	emitTable(buf, "expm1SmallCoef[k] = 1/(k+1)!, the expm1 series with the leading x\nfactored out.",
		"expm1SmallCoef", inverseFactorials(11))
	emitTable(buf, "expKernelCoef[k] = 1/(k+1)!, the exp(r)-1 series with the leading r\nfactored out.",
		"expKernelCoef", inverseFactorials(7))
}

func emitExp2Tables(buf *bytes.Buffer) {
	ln2 := bigLog(intFloat(2))
	for _, t := range []struct {
		name string
		n    int
	}{
		{"exp2Mid64", 64},
		{"exp2Mid128", 128},
	} {
		vals := make([]float64, t.n)
		for j := range vals {
			x := newFloat().Quo(intFloat(int64(j)), intFloat(int64(t.n)))
			vals[j] = rn(bigExp(x.Mul(x, ln2)))
		}
		doc := fmt.Sprintf("%s[j] holds 2^(j/%d) for j in [0, %d].", t.name, t.n, t.n-1)
		emitTable(buf, doc, t.name, vals)
	}
}

func emitLogTables(buf *bytes.Buffer) {
	recip := make([]float64, 128)
	for i := range recip {
		m := 1 + float64(2*i+1)/256 // exact
		recip[i] = math.Round(512/m) / 512
	}
	emitTable(buf, "logRecip[i] is 1/(1+(2i+1)/256) rounded to 9 significand bits, so the\nproduct with a 24-bit mantissa is exact.",
		"logRecip", recip)

	ln2 := bigLog(intFloat(2))
	logR := make([]float64, 128)
	log2R := make([]float64, 128)
	for i, r := range recip {
		l := bigLog(newFloat().SetFloat64(r))
		logR[i] = rn(newFloat().Neg(l))
		log2R[i] = rn(newFloat().Neg(newFloat().Quo(l, ln2)))
	}
	emitTable(buf, "logRTable[i] holds -log(logRecip[i]).", "logRTable", logR)
	emitTable(buf, "log2RTable[i] holds -log2(logRecip[i]).", "log2RTable", log2R)
}

// chunkTable slices 16/pi into consecutive floating chunks: the first
// keeps shift0 fractional bits, each later one adds step more. The
// chunks are exact in float64 until the exponent range runs out.
func chunkTable(n, shift0, step int) []float64 {
	r := newFloat().Quo(intFloat(16), bigPi())
	vals := make([]float64, n)
	shift := shift0
	for i := range vals {
		scaled := newFloat().Mul(r, pow2(shift))
		ipart, _ := scaled.Int(nil)
		c := newFloat().SetInt(ipart)
		c.Quo(c, pow2(shift))
		vals[i] = rn(c)
		r.Sub(r, c)
		shift += step
	}
	return vals
}

func emitTrigTables(buf *bytes.Buffer) {
	pi := bigPi()

	vals := make([]float64, 32)
	for k := range vals {
		x := newFloat().Mul(pi, intFloat(int64(k)))
		vals[k] = rn(bigSin(x.Quo(x, intFloat(16))))
	}
	emitTable(buf, "sinKPi16[k] holds sin(k*pi/16) for k in [0, 31].", "sinKPi16", vals)

	emitTable(buf, "sixteenOverPi28 holds 16/pi split into consecutive chunks of at most\n28 significant bits. Each chunk times a 24-bit float32 mantissa is\nexact in a float64.",
		"sixteenOverPi28", chunkTable(8, 25, 28))
	emitTable(buf, "sixteenOverPi26 holds 16/pi split into consecutive chunks of at most\n26 significant bits, enough of them to reduce any float64 with 80\nguard bits to spare. Each chunk times a 27-bit half of a float64\nmantissa is exact.",
		"sixteenOverPi26", chunkTable(44, 23, 26))

	p := newFloat().Quo(pi, intFloat(16))
	sinCoef := make([]float64, 5)
	cosCoef := make([]float64, 5)
	for k := range sinCoef {
		n := int64(2*k + 1)
		pw := powBig(p, n)
		c := pw.Quo(pw, factorial(n))
		if k%2 == 1 {
			c.Neg(c)
		}
		sinCoef[k] = rn(c)

		n = int64(2*k + 2)
		pw = powBig(p, n)
		c = pw.Quo(pw, factorial(n))
		if k%2 == 0 {
			c.Neg(c)
		}
		cosCoef[k] = rn(c)
	}
	emitTable(buf, "sinYCoef holds the Taylor coefficients of sin(y*pi/16) in odd powers of y.",
		"sinYCoef", sinCoef)
	emitTable(buf, "cosm1YCoef holds the Taylor coefficients of cos(y*pi/16)-1 in even\npowers of y, starting at y^2.",
		"cosm1YCoef", cosCoef)
}

func powBig(x *big.Float, n int64) *big.Float {
	out := intFloat(1)
	for i := int64(0); i < n; i++ {
		out.Mul(out, x)
	}
	return out
}

func emitConsts(buf *bytes.Buffer) {
	pi := bigPi()
	sixteenOverPi := newFloat().Quo(intFloat(16), pi)
	hi := rn(sixteenOverPi)
	rem := newFloat().Sub(sixteenOverPi, newFloat().SetFloat64(hi))
	mid := rn(rem)
	rem.Sub(rem, newFloat().SetFloat64(mid))
	lo := rn(rem)

	ln2 := bigLog(intFloat(2))
	ln10 := bigLog(intFloat(10))

	// ln2/128 split so kf*ln2Over128Hi is exact for every reduction
	// multiple: the hi part keeps 33 significand bits.
	l128 := newFloat().Quo(ln2, intFloat(128))
	l128Hi := math.Float64frombits(math.Float64bits(rn(l128)) &^ 0xf_ffff)
	l128Lo := rn(newFloat().Sub(l128, newFloat().SetFloat64(l128Hi)))

	fmt.Fprintf(buf, "const (\n")
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"sixteenOverPiHi", hi},
		{"sixteenOverPiMid", mid},
		{"sixteenOverPiLo", lo},
		{"invLn2Scaled128", rn(newFloat().Quo(intFloat(128), ln2))},
		{"ln2Over128Hi", l128Hi},
		{"ln2Over128Lo", l128Lo},
		{"ln2", rn(ln2)},
		{"ln10", rn(ln10)},
		{"log2OfE", rn(newFloat().Quo(intFloat(1), ln2))},
		{"log2Of10", rn(newFloat().Quo(ln10, ln2))},
		{"piOver16", rn(newFloat().Quo(pi, intFloat(16)))},
	} {
		fmt.Fprintf(buf, "\t%s = %s\n", c.name, hex(c.v))
	}
	fmt.Fprintf(buf, ")\n")
}
