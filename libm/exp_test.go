package libm

import (
	"math"
	"testing"
)

func TestExp_Accuracy(t *testing.T) {
	testCases := []float64{
		0, 1, -1, 0.5, -0.5, 2, -2,
		10, -10, 100, -100, 700, -700,
		709.7, -745.1,
		math.Ln2, -math.Ln2, math.Pi,
		0x1p-30, -0x1p-30,
	}
	for _, x := range testCases {
		got := Exp(x)
		want := math.Exp(x)
		if ulp := ulpDistance64(got, want); ulp > 2 {
			t.Errorf("Exp(%v) = %v, want %v (ULP error: %v)", x, got, want, ulp)
		}
	}
}

func TestExp_SpecialValues(t *testing.T) {
	if got := Exp(0); got != 1 {
		t.Errorf("Exp(0) = %v, want 1", got)
	}
	if got := Exp(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Exp(+Inf) = %v, want +Inf", got)
	}
	if got := Exp(math.Inf(-1)); got != 0 {
		t.Errorf("Exp(-Inf) = %v, want 0", got)
	}
	if got := Exp(math.NaN()); !math.IsNaN(got) {
		t.Errorf("Exp(NaN) = %v, want NaN", got)
	}
}

func TestExp_Limits(t *testing.T) {
	e := NewEnv()
	if got := e.Exp(710); !math.IsInf(got, 1) || e.Errno() != ERANGE {
		t.Errorf("Exp(710) = %v errno %v, want +Inf ERANGE", got, e.Errno())
	}
	if e.Test(ExOverflow) == 0 {
		t.Errorf("Exp(710) did not raise overflow")
	}

	e = NewEnv()
	e.SetRounding(TowardZero)
	if got := e.Exp(710); got != MaxNormal64.Value() {
		t.Errorf("Exp(710) toward-zero = %v, want MaxNormal64", got)
	}
	if e.Errno() != 0 {
		t.Errorf("Exp(710) toward-zero errno = %v, want 0", e.Errno())
	}

	e = NewEnv()
	if got := e.Exp(-746); got != 0 || e.Errno() != ERANGE || e.Test(ExUnderflow) == 0 {
		t.Errorf("Exp(-746) = %v errno %v flags %v, want 0 ERANGE underflow", got, e.Errno(), e.Test(ExAll))
	}

	e = NewEnv()
	e.SetRounding(Upward)
	if got := e.Exp(-746); got != MinSubnormal64.Value() {
		t.Errorf("Exp(-746) upward = %v, want MinSubnormal64", got)
	}
}

func TestExp2_Exact(t *testing.T) {
	for _, k := range []int{-1074, -1022, -52, -1, 0, 1, 10, 52, 1023} {
		got := Exp2(float64(k))
		want := math.Ldexp(1, k)
		if got != want {
			t.Errorf("Exp2(%d) = %v, want %v", k, got, want)
		}
	}
}

func TestExp2_Accuracy(t *testing.T) {
	testCases := []float64{
		0.5, -0.5, 1.5, -1.5, 0.1, -0.1,
		10.3, -10.3, 100.7, -100.7,
		1000.1, -1000.1, 1023.9, -1073.9,
		0x1.8p-5,
	}
	for _, x := range testCases {
		got := Exp2(x)
		want := math.Exp2(x)
		if ulp := ulpDistance64(got, want); ulp > 2 {
			t.Errorf("Exp2(%v) = %v, want %v (ULP error: %v)", x, got, want, ulp)
		}
	}
}

func TestExp2_Limits(t *testing.T) {
	e := NewEnv()
	if got := e.Exp2(1025); !math.IsInf(got, 1) || e.Errno() != ERANGE {
		t.Errorf("Exp2(1025) = %v errno %v, want +Inf ERANGE", got, e.Errno())
	}
	e = NewEnv()
	if got := e.Exp2(-1075); got != 0 || e.Test(ExUnderflow) == 0 {
		t.Errorf("Exp2(-1075) = %v flags %v, want 0 with underflow", got, e.Test(ExAll))
	}
	e = NewEnv()
	e.SetRounding(Downward)
	if got := e.Exp2(1025); got != MaxNormal64.Value() {
		t.Errorf("Exp2(1025) downward = %v, want MaxNormal64", got)
	}
}

func TestExp10_Accuracy(t *testing.T) {
	for _, k := range []int{0, 1, 2, 5, 10, 15} {
		got := Exp10(float64(k))
		want := math.Pow(10, float64(k))
		if ulp := ulpDistance64(got, want); ulp > 1 {
			t.Errorf("Exp10(%d) = %v, want %v (ULP error: %v)", k, got, want, ulp)
		}
	}
	testCases := []float64{0.5, -0.5, 3.3, -3.3, 100.1, -100.1, 300.7, -300.7}
	for _, x := range testCases {
		got := Exp10(x)
		want := math.Pow(10, x)
		if ulp := ulpDistance64(got, want); ulp > 2 {
			t.Errorf("Exp10(%v) = %v, want %v (ULP error: %v)", x, got, want, ulp)
		}
	}
}

func TestExp10_Limits(t *testing.T) {
	e := NewEnv()
	if got := e.Exp10(309); !math.IsInf(got, 1) || e.Errno() != ERANGE {
		t.Errorf("Exp10(309) = %v errno %v, want +Inf ERANGE", got, e.Errno())
	}
	e = NewEnv()
	if got := e.Exp10(-324); got != 0 || e.Test(ExUnderflow) == 0 {
		t.Errorf("Exp10(-324) = %v flags %v, want 0 with underflow", got, e.Test(ExAll))
	}
	if got := Exp10(math.Inf(-1)); got != 0 {
		t.Errorf("Exp10(-Inf) = %v, want 0", got)
	}
	if got := Exp10(math.Inf(1)); !math.IsInf(got, 1) {
		t.Errorf("Exp10(+Inf) = %v, want +Inf", got)
	}
}

func TestExpm1_Accuracy(t *testing.T) {
	testCases := []float64{
		0, 1, -1, 0.5, -0.5, 2, -2,
		0x1p-10, -0x1p-10, 0x1p-30, -0x1p-30,
		10, -10, 30, -37, 700,
		math.Ln2, -math.Ln2,
	}
	for _, x := range testCases {
		got := Expm1(x)
		want := math.Expm1(x)
		if ulp := ulpDistance64(got, want); ulp > 2 {
			t.Errorf("Expm1(%v) = %v, want %v (ULP error: %v)", x, got, want, ulp)
		}
	}
}

func TestExpm1_NegativeZero(t *testing.T) {
	got := Expm1(math.Copysign(0, -1))
	if Float64Bits(got) != signMask64 {
		t.Errorf("Expm1(-0) = %#016x, want -0", Float64Bits(got))
	}
}

func TestExpm1_ZeroAllModes(t *testing.T) {
	negZero := math.Copysign(0, -1)
	for _, m := range []RoundingMode{ToNearest, TowardZero, Downward, Upward} {
		e := NewEnv()
		e.SetRounding(m)
		if got := e.Expm1(0); Float64Bits(got) != 0 {
			t.Errorf("Expm1(+0) %v = %#016x, want +0", m, Float64Bits(got))
		}
		if got := e.Expm1(negZero); Float64Bits(got) != signMask64 {
			t.Errorf("Expm1(-0) %v = %#016x, want -0", m, Float64Bits(got))
		}
	}
}

func TestExpm1_TinyDirected(t *testing.T) {
	x := 0x1p-60
	xb := Float64Bits(x)

	e := NewEnv()
	if got := e.Expm1(x); got != x {
		t.Errorf("Expm1(2^-60) nearest = %v, want %v", got, x)
	}
	e.SetRounding(Upward)
	if got := e.Expm1(x); Float64Bits(got) != xb+1 {
		t.Errorf("Expm1(2^-60) upward = %#016x, want %#016x", Float64Bits(got), xb+1)
	}
	e.SetRounding(TowardZero)
	if got := e.Expm1(x); got != x {
		t.Errorf("Expm1(2^-60) toward-zero = %v, want %v", got, x)
	}

	nb := xb | signMask64
	n := nb.Value()
	e.SetRounding(TowardZero)
	if got := e.Expm1(n); Float64Bits(got) != nb-1 {
		t.Errorf("Expm1(-2^-60) toward-zero = %#016x, want %#016x", Float64Bits(got), nb-1)
	}
	e.SetRounding(Upward)
	if got := e.Expm1(n); Float64Bits(got) != nb-1 {
		t.Errorf("Expm1(-2^-60) upward = %#016x, want %#016x", Float64Bits(got), nb-1)
	}
}

func TestExpm1_SaturatesAtMinusOne(t *testing.T) {
	if got := Expm1(-38); got != -1 {
		t.Errorf("Expm1(-38) = %v, want -1", got)
	}
	if got := Expm1(math.Inf(-1)); got != -1 {
		t.Errorf("Expm1(-Inf) = %v, want -1", got)
	}
	e := NewEnv()
	e.SetRounding(Upward)
	if got := e.Expm1(-38); Float64Bits(got) != 0xbfef_ffff_ffff_ffff {
		t.Errorf("Expm1(-38) upward = %#016x, want -1+2^-53", Float64Bits(got))
	}
}

func TestExpm1_Overflow(t *testing.T) {
	e := NewEnv()
	if got := e.Expm1(710); !math.IsInf(got, 1) || e.Errno() != ERANGE {
		t.Errorf("Expm1(710) = %v errno %v, want +Inf ERANGE", got, e.Errno())
	}
}
