package libm

// log1pTaylor evaluates log(1+u) for |u| <= 2^-4 + 2^-7. The truncation
// error is below 2^-43 relative, well under the float32 rounding
// threshold after the table corrections are added.
func log1pTaylor(u float64) float64 {
	return u * Horner(u, 1,
		-1.0/2, 1.0/3, -1.0/4, 1.0/5, -1.0/6,
		1.0/7, -1.0/8, 1.0/9, -1.0/10, 1.0/11)
}

// logfBreak splits x into an unbiased exponent, a reciprocal-bucket
// index, and the exact residual u = m*recip[i] - 1 with |u| < 2^-7.2.
// The product is exact because the bucket reciprocals carry only 9
// significand bits, and the subtraction is exact by Sterbenz.
func logfBreak(x float32) (ex int, i uint32, u float64) {
	xb := Float32Bits(x)
	ex = xb.Exponent()
	mant := xb.Mantissa()
	if xb.IsSubnormal() {
		nb := Float32Bits(x * 0x1p23) // exact
		ex = nb.Exponent() - 23
		mant = nb.Mantissa()
	}
	i = mant >> 16
	m := Bits32(Bits32(mant) | 0x3f80_0000).Value() // m in [1, 2)
	u = float64(m)*logRecip[i] - 1
	return ex, i, u
}

// Logf returns the natural logarithm of x, within 1 ULP, using [Default].
//
// Special cases are:
//
//	Logf(+Inf) = +Inf
//	Logf(0) = -Inf with ERANGE and the div-by-zero flag
//	Logf(x < 0) = NaN with EDOM and the invalid flag
//	Logf(NaN) = NaN
func Logf(x float32) float32 { return Default.Logf(x) }

// Logf returns the natural logarithm of x, within 1 ULP.
func (e *Env) Logf(x float32) float32 {
	xb := Float32Bits(x)
	switch {
	case xb.IsZero():
		e.SetErrno(ERANGE)
		e.Raise(ExDivByZero)
		return (signMask32 | Inf32).Value()
	case xb.Sign():
		if xb.IsNaN() {
			return xb.Quiet().Value()
		}
		e.reportDomain()
		return QuietNaN32(0).Value()
	case xb.IsInfOrNaN():
		if xb.IsNaN() {
			return xb.Quiet().Value()
		}
		return x
	}

	// Near 1 the exponent and table terms cancel, so evaluate
	// log1p(x-1) directly. x-1 is exact on [0.9375, 1.0625].
	if xb >= 0x3f70_0000 && xb <= 0x3f88_0000 {
		return float32(log1pTaylor(float64(x) - 1))
	}

	ex, i, u := logfBreak(x)
	// log(x) = e*log(2) - log(recip[i]) + log(1+u)
	return float32(float64(ex)*ln2 + (logRTable[i] + log1pTaylor(u)))
}

// Log2f returns the base-2 logarithm of x, within 1 ULP, using [Default].
// Special cases are the same as Logf. Powers of two are exact.
func Log2f(x float32) float32 { return Default.Log2f(x) }

// Log2f returns the base-2 logarithm of x, within 1 ULP.
func (e *Env) Log2f(x float32) float32 {
	xb := Float32Bits(x)
	switch {
	case xb.IsZero():
		e.SetErrno(ERANGE)
		e.Raise(ExDivByZero)
		return (signMask32 | Inf32).Value()
	case xb.Sign():
		if xb.IsNaN() {
			return xb.Quiet().Value()
		}
		e.reportDomain()
		return QuietNaN32(0).Value()
	case xb.IsInfOrNaN():
		if xb.IsNaN() {
			return xb.Quiet().Value()
		}
		return x
	}

	if xb >= 0x3f70_0000 && xb <= 0x3f88_0000 {
		return float32(log2OfE * log1pTaylor(float64(x)-1))
	}

	ex, i, u := logfBreak(x)
	// log2(x) = e - log2(recip[i]) + log2(e)*log(1+u)
	return float32(float64(ex) + (log2RTable[i] + log2OfE*log1pTaylor(u)))
}
