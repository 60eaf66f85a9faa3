package libm

import "math"

// FDLIBM coefficients for log(1+f)/f on [sqrt(2)/2-1, sqrt(2)-1],
// evaluated through s = f/(2+f).
const (
	logL1 = 6.666666666666735130e-01
	logL2 = 3.999999999940941908e-01
	logL3 = 2.857142874366239149e-01
	logL4 = 2.222219843214978396e-01
	logL5 = 1.818357216161805012e-01
	logL6 = 1.531383769920937332e-01
	logL7 = 1.479819860511658591e-01
)

// Log returns the natural logarithm of x, within about 1 ULP, using
// [Default].
//
// Special cases are:
//
//	Log(+Inf) = +Inf
//	Log(0) = -Inf with ERANGE and the div-by-zero flag
//	Log(x < 0) = NaN with EDOM and the invalid flag
//	Log(NaN) = NaN
func Log(x float64) float64 { return Default.Log(x) }

// Log returns the natural logarithm of x, within about 1 ULP.
func (e *Env) Log(x float64) float64 {
	xb := Float64Bits(x)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case xb.IsZero():
		e.SetErrno(ERANGE)
		e.Raise(ExDivByZero)
		return math.Inf(-1)
	case xb.Sign():
		e.reportDomain()
		return QuietNaN64(0).Value()
	case xb.IsInf():
		return x
	}
	return logCore(x)
}

// logCore is the FDLIBM natural logarithm for finite positive x:
// x = 2^k * (1+f) with sqrt(2)/2 < 1+f < sqrt(2), then log(1+f) via a
// degree-7 polynomial in s^2 where s = f/(2+f).
func logCore(x float64) float64 {
	f1, ki := math.Frexp(x)
	if f1 < math.Sqrt2/2 {
		f1 *= 2
		ki--
	}
	f := f1 - 1
	k := float64(ki)

	s := f / (2 + f)
	s2 := s * s
	s4 := s2 * s2
	t1 := s2 * (logL1 + s4*(logL3+s4*(logL5+s4*logL7)))
	t2 := s4 * (logL2 + s4*(logL4+s4*logL6))
	R := t1 + t2
	hfsq := 0.5 * f * f
	return k*ln2Hi - ((hfsq - (s*(hfsq+R) + k*ln2Lo)) - f)
}

// Log2 returns the base-2 logarithm of x, within about 1 ULP, using
// [Default]. Special cases are the same as Log. Powers of two are exact.
func Log2(x float64) float64 { return Default.Log2(x) }

// Log2 returns the base-2 logarithm of x, within about 1 ULP.
func (e *Env) Log2(x float64) float64 {
	xb := Float64Bits(x)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case xb.IsZero():
		e.SetErrno(ERANGE)
		e.Raise(ExDivByZero)
		return math.Inf(-1)
	case xb.Sign():
		e.reportDomain()
		return QuietNaN64(0).Value()
	case xb.IsInf():
		return x
	}
	frac, ex := math.Frexp(x)
	if frac == 0.5 {
		return float64(ex - 1)
	}
	return logCore(frac)*log2OfE + float64(ex)
}

// Log1p returns the natural logarithm of 1+x, within about 1 ULP, using
// [Default]. It is accurate even when x is near zero, where Log(1+x)
// would cancel.
//
// Special cases are:
//
//	Log1p(+Inf) = +Inf
//	Log1p(-1) = -Inf with ERANGE and the div-by-zero flag
//	Log1p(x < -1) = NaN with EDOM and the invalid flag
//	Log1p(NaN) = NaN
func Log1p(x float64) float64 { return Default.Log1p(x) }

// Log1p returns the natural logarithm of 1+x, within about 1 ULP.
func (e *Env) Log1p(x float64) float64 {
	const (
		sqrt2M1     = 4.142135623730950488017e-01  // sqrt(2)-1
		sqrt2HalfM1 = -2.928932188134524755992e-01 // sqrt(2)/2-1
	)

	xb := Float64Bits(x)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case x == -1:
		e.SetErrno(ERANGE)
		e.Raise(ExDivByZero)
		return math.Inf(-1)
	case x < -1:
		e.reportDomain()
		return QuietNaN64(0).Value()
	case xb.IsInf():
		return x
	}

	absx := math.Abs(x)

	var f float64
	var iu uint64
	k := 1
	if absx < sqrt2M1 {
		if absx < 0x1p-29 {
			if absx < 0x1p-54 {
				return x
			}
			return x - x*x*0.5
		}
		if x > sqrt2HalfM1 { // sqrt(2)/2-1 < x < sqrt(2)-1
			k = 0
			f = x
			iu = 1
		}
	}
	var c float64
	if k != 0 {
		var u float64
		if absx < 1<<53 {
			u = 1.0 + x
			iu = math.Float64bits(u)
			k = int((iu >> 52) - 1023)
			// Correction term for the rounding in 1+x.
			if k > 0 {
				c = 1.0 - (u - x)
			} else {
				c = x - (u - 1.0)
				c /= u
			}
		} else {
			u = x
			iu = math.Float64bits(u)
			k = int((iu >> 52) - 1023)
			c = 0
		}
		iu &= 0x000fffffffffffff
		if iu < 0x0006a09e667f3bcd { // mantissa of sqrt(2)
			u = math.Float64frombits(iu | 0x3ff0000000000000) // normalize u
		} else {
			k++
			u = math.Float64frombits(iu | 0x3fe0000000000000) // normalize u/2
			iu = (0x0010000000000000 - iu) >> 2
		}
		f = u - 1.0 // sqrt(2)/2 < u < sqrt(2)
	}
	hfsq := 0.5 * f * f
	if iu == 0 { // |f| < 2^-20
		if f == 0 {
			if k == 0 {
				return 0
			}
			c += float64(k) * ln2Lo
			return float64(k)*ln2Hi + c
		}
		R := hfsq * (1.0 - 0.66666666666666666*f) // avoid division
		if k == 0 {
			return f - R
		}
		return float64(k)*ln2Hi - ((R - (float64(k)*ln2Lo + c)) - f)
	}
	s := f / (2.0 + f)
	z := s * s
	R := z * (logL1 + z*(logL2+z*(logL3+z*(logL4+z*(logL5+z*(logL6+z*logL7))))))
	if k == 0 {
		return f - (hfsq - s*(hfsq+R))
	}
	return float64(k)*ln2Hi - ((hfsq - (s*(hfsq+R) + (float64(k)*ln2Lo + c))) - f)
}
