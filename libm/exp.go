package libm

import "math"

// FDLIBM reduction constants for the float64 exponential: ln2 split so
// that k*ln2Hi is exact for every |k| < 2^11.
const (
	ln2Hi    = 6.93147180369123816490e-01
	ln2Lo    = 1.90821492927058770002e-10
	expLog2E = 1.44269504088896338700e+00

	expOverflow  = 7.09782712893383973096e+02
	expUnderflow = -7.45133219101941108420e+02

	exp2Overflow  = 1.0239999999999999e+03
	exp2Underflow = -1.0740e+03

	// RN(ln(10)) and the residual ln(10) - RN(ln(10)).
	ln10Err = -0x1.f48ad494ea3e9p-53
)

// Exp returns e**x, within about 1 ULP, using [Default].
//
// Special cases are:
//
//	Exp(+Inf) = +Inf
//	Exp(NaN) = NaN
//	Exp(x) = +Inf with ERANGE and the overflow flag for x > 709.78...
//	Exp(x) = 0 with ERANGE and the underflow flag for x < -745.13...
func Exp(x float64) float64 { return Default.Exp(x) }

// Exp returns e**x, within about 1 ULP.
func (e *Env) Exp(x float64) float64 {
	xb := Float64Bits(x)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case xb.IsInf():
		if xb.Sign() {
			return 0
		}
		return x
	case x > expOverflow:
		if r := e.Rounding(); r == Downward || r == TowardZero {
			e.Raise(ExOverflow | ExInexact)
			return MaxNormal64.Value()
		}
		e.reportOverflow()
		return math.Inf(1)
	case x < expUnderflow:
		if e.Rounding() == Upward {
			e.Raise(ExUnderflow | ExInexact)
			return MinSubnormal64.Value()
		}
		e.reportUnderflow()
		return 0
	case -0x1p-28 < x && x < 0x1p-28:
		return 1 + x
	}
	return expReduce(x)
}

// expReduce computes e**x for arguments inside the finite range by the
// FDLIBM reduction x = k*ln2 + r, |r| <= ln2/2, with r carried as hi-lo.
func expReduce(x float64) float64 {
	var k int
	switch {
	case x < 0:
		k = int(expLog2E*x - 0.5)
	case x > 0:
		k = int(expLog2E*x + 0.5)
	}
	hi := x - float64(k)*ln2Hi
	lo := float64(k) * ln2Lo
	return expMulti(hi, lo, k)
}

// expMulti returns e**r * 2**k where r = hi - lo and |r| <= ln2/2, using
// the FDLIBM degree-5 rational approximation of r*(exp(r)+1)/(exp(r)-1).
func expMulti(hi, lo float64, k int) float64 {
	const (
		P1 = 1.66666666666666019037e-01
		P2 = -2.77777777770155933842e-03
		P3 = 6.61375632143793436117e-05
		P4 = -1.65339022054652515390e-06
		P5 = 4.13813679705723846039e-08
	)
	r := hi - lo
	t := r * r
	c := r - t*(P1+t*(P2+t*(P3+t*(P4+t*P5))))
	y := 1 - ((lo - (r*c)/(2-c)) - hi)
	return math.Ldexp(y, k)
}

// Exp2 returns 2**x, within about 1 ULP, using [Default]. Special cases
// are the same as Exp with the thresholds moved to 1024 and -1074.
func Exp2(x float64) float64 { return Default.Exp2(x) }

// Exp2 returns 2**x, within about 1 ULP.
func (e *Env) Exp2(x float64) float64 {
	xb := Float64Bits(x)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case xb.IsInf():
		if xb.Sign() {
			return 0
		}
		return x
	case x > exp2Overflow:
		if r := e.Rounding(); r == Downward || r == TowardZero {
			e.Raise(ExOverflow | ExInexact)
			return MaxNormal64.Value()
		}
		e.reportOverflow()
		return math.Inf(1)
	case x < exp2Underflow:
		if e.Rounding() == Upward {
			e.Raise(ExUnderflow | ExInexact)
			return MinSubnormal64.Value()
		}
		e.reportUnderflow()
		return 0
	}

	// Split x = k/128 + r exactly, then
	//   2^x = 2^(k>>7) * 2^((k&127)/128) * exp(r*ln2)
	// with the middle factor from the 2^(j/128) table.
	kf := math.RoundToEven(x * 128)
	r := x - kf*(1.0/128) // exact
	k := int(kf)
	z := r * ln2
	p := z * HornerFMA(z, expKernelCoef[0], expKernelCoef[1], expKernelCoef[2],
		expKernelCoef[3], expKernelCoef[4], expKernelCoef[5], expKernelCoef[6])
	mid := exp2Mid128[k&127]
	return math.Ldexp(math.FMA(mid, p, mid), k>>7)
}

// Exp10 returns 10**x, within about 1 ULP, using [Default].
func Exp10(x float64) float64 { return Default.Exp10(x) }

// Exp10 returns 10**x, within about 1 ULP.
func (e *Env) Exp10(x float64) float64 {
	xb := Float64Bits(x)
	switch {
	case xb.IsNaN():
		return xb.Quiet().Value()
	case xb.IsInf():
		if xb.Sign() {
			return 0
		}
		return x
	}

	// x*ln10 as a double-double s1 + s2: the fused step recovers the
	// product residual, and ln10Err accounts for the constant's own
	// rounding. s1 drives the range checks; s2 is folded into the
	// reduced argument below, so no precision is lost recombining.
	s1 := x * ln10
	s2 := math.FMA(x, ln10, -s1)
	s2 = math.FMA(x, ln10Err, s2)

	if s1 > expOverflow {
		if r := e.Rounding(); r == Downward || r == TowardZero {
			e.Raise(ExOverflow | ExInexact)
			return MaxNormal64.Value()
		}
		e.reportOverflow()
		return math.Inf(1)
	}
	if s1 < expUnderflow {
		if e.Rounding() == Upward {
			e.Raise(ExUnderflow | ExInexact)
			return MinSubnormal64.Value()
		}
		e.reportUnderflow()
		return 0
	}
	// Reduce s1 = k*ln2/128 + r with the high product exact, fold in
	// the s2 limb, and recombine against the 2^(j/128) table.
	kf := math.RoundToEven(s1 * invLn2Scaled128)
	k := int(kf)
	r := (s1 - kf*ln2Over128Hi) - (kf*ln2Over128Lo - s2)
	p := r * HornerFMA(r, expKernelCoef[0], expKernelCoef[1], expKernelCoef[2],
		expKernelCoef[3], expKernelCoef[4], expKernelCoef[5], expKernelCoef[6])
	mid := exp2Mid128[k&127]
	return math.Ldexp(math.FMA(mid, p, mid), k>>7)
}

// Expm1 returns e**x - 1, within about 1 ULP, using [Default]. It is
// accurate even when x is near zero.
func Expm1(x float64) float64 { return Default.Expm1(x) }

// Expm1 returns e**x - 1, within about 1 ULP.
func (e *Env) Expm1(x float64) float64 {
	xb := Float64Bits(x)

	// x < log(2^-54): the result rounds to -1.
	if x < -37.42994775023705 || (xb.Sign() && xb.IsInfOrNaN()) {
		if xb.IsNaN() {
			return xb.Quiet().Value()
		}
		if xb.IsInf() {
			return -1
		}
		if r := e.Rounding(); r == Upward || r == TowardZero {
			return Bits64(0xbfef_ffff_ffff_ffff).Value() // -1 + 2^-53
		}
		return -1
	}
	if !xb.Sign() && (xb.IsInfOrNaN() || x > expOverflow) {
		if xb.IsInfOrNaN() {
			if xb.IsNaN() {
				return xb.Quiet().Value()
			}
			return x
		}
		if r := e.Rounding(); r == Downward || r == TowardZero {
			e.Raise(ExOverflow | ExInexact)
			return MaxNormal64.Value()
		}
		e.reportOverflow()
		return math.Inf(1)
	}

	// |x| < 2^-54: expm1(x) differs from x by under a quarter ULP.
	if xb.BiasedExponent() < exponentBias64-54 {
		if xb.IsZero() { // expm1(+-0) is exactly +-0
			return x
		}
		if r := e.Rounding(); r == Upward || (r == TowardZero && xb.Sign()) {
			if xb.Sign() {
				return (xb - 1).Value()
			}
			return (xb + 1).Value()
		}
		return x
	}

	// Reduce x = k*ln2/128 + r exactly in the high part, then
	//   expm1(x) = t*exp(r) - 1 = fma(t, exp(r)-1, t-1)
	// with t = 2^(k/128) assembled from the table. t-1 is exact in the
	// cancellation region around k = 0.
	kf := math.RoundToEven(x * invLn2Scaled128)
	k := int(kf)
	r := (x - kf*ln2Over128Hi) - kf*ln2Over128Lo
	p := r * HornerFMA(r, expKernelCoef[0], expKernelCoef[1], expKernelCoef[2],
		expKernelCoef[3], expKernelCoef[4], expKernelCoef[5], expKernelCoef[6])
	t := math.Ldexp(exp2Mid128[k&127], k>>7)
	return math.FMA(t, p, t-1)
}
