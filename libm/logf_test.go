package libm

import (
	"math"
	"testing"
)

func TestLogf_Accuracy(t *testing.T) {
	testCases := []float32{
		1, 2, 4, 10, 100, 1e10, 3e38,
		0.5, 0.1, 0.01, 1e-10, 1e-38, 1e-44,
		0.9375, 0.97, 1.03, 1.0625,
		math.E, math.Pi,
	}
	for _, x := range testCases {
		got := Logf(x)
		want := float32(math.Log(float64(x)))
		if ulp := ulpDistance32(got, want); ulp > 1 {
			t.Errorf("Logf(%v) = %v, want %v (ULP error: %v)", x, got, want, ulp)
		}
	}
}

func TestLogf_SpecialValues(t *testing.T) {
	if got := Logf(1); got != 0 {
		t.Errorf("Logf(1) = %v, want 0", got)
	}
	if got := Logf(float32(math.Inf(1))); !math.IsInf(float64(got), 1) {
		t.Errorf("Logf(+Inf) = %v, want +Inf", got)
	}
	if got := Logf(float32(math.NaN())); !math.IsNaN(float64(got)) {
		t.Errorf("Logf(NaN) = %v, want NaN", got)
	}

	e := NewEnv()
	if got := e.Logf(0); !math.IsInf(float64(got), -1) {
		t.Errorf("Logf(0) = %v, want -Inf", got)
	}
	if e.Errno() != ERANGE || e.Test(ExDivByZero) == 0 {
		t.Errorf("Logf(0) errno %v flags %v, want ERANGE and div-by-zero", e.Errno(), e.Test(ExAll))
	}

	e = NewEnv()
	if got := e.Logf(-1); !math.IsNaN(float64(got)) {
		t.Errorf("Logf(-1) = %v, want NaN", got)
	}
	if e.Errno() != EDOM || e.Test(ExInvalid) == 0 {
		t.Errorf("Logf(-1) errno %v flags %v, want EDOM and invalid", e.Errno(), e.Test(ExAll))
	}
}

func TestLog2f_Exact(t *testing.T) {
	for _, k := range []int{-149, -126, -10, -1, 0, 1, 10, 64, 127} {
		got := Log2f(float32(math.Ldexp(1, k)))
		if got != float32(k) {
			t.Errorf("Log2f(2^%d) = %v, want %v", k, got, float32(k))
		}
	}
}

func TestLog2f_Accuracy(t *testing.T) {
	testCases := []float32{
		3, 5, 10, 100, 1e10, 3e38,
		0.3, 0.7, 1e-10, 1e-44,
		0.9375, 0.97, 1.03, 1.0625,
		math.E,
	}
	for _, x := range testCases {
		got := Log2f(x)
		want := float32(math.Log2(float64(x)))
		if ulp := ulpDistance32(got, want); ulp > 1 {
			t.Errorf("Log2f(%v) = %v, want %v (ULP error: %v)", x, got, want, ulp)
		}
	}
}

func TestLog2f_SpecialValues(t *testing.T) {
	e := NewEnv()
	if got := e.Log2f(0); !math.IsInf(float64(got), -1) || e.Test(ExDivByZero) == 0 {
		t.Errorf("Log2f(0) = %v flags %v, want -Inf with div-by-zero", got, e.Test(ExAll))
	}
	e = NewEnv()
	if got := e.Log2f(-3); !math.IsNaN(float64(got)) || e.Errno() != EDOM {
		t.Errorf("Log2f(-3) = %v errno %v, want NaN EDOM", got, e.Errno())
	}
	// Negative NaN passes through without flags.
	e = NewEnv()
	nan := QuietNaN32(1).Value()
	negNaN := (Float32Bits(nan) | signMask32).Value()
	if got := e.Log2f(negNaN); !math.IsNaN(float64(got)) || e.Test(ExAll) != 0 {
		t.Errorf("Log2f(-NaN) = %v flags %v, want NaN with no flags", got, e.Test(ExAll))
	}
}
