package libm

import "math"

// Sincos returns sin(x) and cos(x), within about 2 ULP, using [Default].
//
// Special cases are:
//
//	Sincos(±0) = ±0, 1
//	Sincos(±Inf) = NaN, NaN with EDOM and the invalid flag
//	Sincos(NaN) = NaN, NaN
func Sincos(x float64) (sin, cos float64) { return Default.Sincos(x) }

// Sincos returns sin(x) and cos(x), within about 2 ULP.
func (e *Env) Sincos(x float64) (sin, cos float64) {
	xb := Float64Bits(x)
	xAbs := xb.Abs()

	// |x| < 2^-27: sin(x) rounds like x - x^3/6, cos(x) like 1 - x^2/2,
	// both within a quarter ULP of x and 1.
	if xAbs < 0x3e40_0000_0000_0000 {
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
			cos = Bits64(0x3fef_ffff_ffff_ffff).Value() // 1 - 2^-53
		}
		return sin, cos
	}

	if xAbs >= Inf64 {
		if xAbs == Inf64 {
			e.reportDomain()
			nan := QuietNaN64(0).Value()
			return nan, nan
		}
		qnan := xb.Quiet().Value()
		return qnan, qnan
	}

	// Reduce x = (k + y)*pi/16 with |y| <= 0.5, then recombine with the
	// angle-addition identities against the sin(k*pi/16) table.
	var k int64
	var y float64
	if xAbs < 0x4040_0000_0000_0000 { // |x| < 32
		k, y = reduceFMA(x)
	} else {
		k, y = reduceChunked64(x)
	}
	kk := int(k & 31)
	sinK := sinKPi16[kk]
	cosK := sinKPi16[(kk+8)&31]
	ysq := y * y
	sinY := y * Horner4(ysq, sinYCoef[0], sinYCoef[1], sinYCoef[2], sinYCoef[3], sinYCoef[4])
	cosm1Y := ysq * Horner4(ysq, cosm1YCoef[0], cosm1YCoef[1], cosm1YCoef[2], cosm1YCoef[3], cosm1YCoef[4])

	sin = math.FMA(sinY, cosK, math.FMA(cosm1Y, sinK, sinK))
	cos = math.FMA(sinY, -sinK, math.FMA(cosm1Y, cosK, cosK))
	return sin, cos
}

// Sin returns sin(x), within about 2 ULP, using [Default].
func Sin(x float64) float64 { return Default.Sin(x) }

// Sin returns sin(x), within about 2 ULP.
func (e *Env) Sin(x float64) float64 {
	sin, _ := e.Sincos(x)
	return sin
}

// Cos returns cos(x), within about 2 ULP, using [Default].
func Cos(x float64) float64 { return Default.Cos(x) }

// Cos returns cos(x), within about 2 ULP.
func (e *Env) Cos(x float64) float64 {
	_, cos := e.Sincos(x)
	return cos
}
