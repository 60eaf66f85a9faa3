package libm

import (
	"math"
	"testing"
)

func TestSincosf_Accuracy(t *testing.T) {
	testCases := []float32{
		0.1, 0.5, 1, 2, 3, -1, -2,
		math.Pi, -math.Pi, math.Pi / 2,
		10, -10, 31.9, 32.1, 100, -100,
		1000, 1e6, 1e10, 1e20, 1e38,
	}
	for _, x := range testCases {
		sin, cos := Sincosf(x)
		wantSin := float32(math.Sin(float64(x)))
		wantCos := float32(math.Cos(float64(x)))
		if ulp := ulpDistance32(sin, wantSin); ulp > 1 {
			t.Errorf("Sincosf(%v) sin = %v, want %v (ULP error: %v)", x, sin, wantSin, ulp)
		}
		if ulp := ulpDistance32(cos, wantCos); ulp > 1 {
			t.Errorf("Sincosf(%v) cos = %v, want %v (ULP error: %v)", x, cos, wantCos, ulp)
		}
	}
}

func TestSincosf_Zero(t *testing.T) {
	sin, cos := Sincosf(0)
	if Float32Bits(sin) != 0 || cos != 1 {
		t.Errorf("Sincosf(0) = %v, %v, want +0, 1", sin, cos)
	}
	sin, cos = Sincosf(Bits32(signMask32).Value())
	if Float32Bits(sin) != signMask32 || cos != 1 {
		t.Errorf("Sincosf(-0) = %#08x, %v, want -0, 1", Float32Bits(sin), cos)
	}
}

func TestSincosf_TinyDirected(t *testing.T) {
	x := float32(0x1p-14)
	xb := Float32Bits(x)

	e := NewEnv()
	sin, cos := e.Sincosf(x)
	if sin != x || cos != 1 {
		t.Errorf("Sincosf(2^-14) nearest = %v, %v, want %v, 1", sin, cos, x)
	}

	e.SetRounding(TowardZero)
	sin, cos = e.Sincosf(x)
	if Float32Bits(sin) != xb-1 {
		t.Errorf("Sincosf(2^-14) toward-zero sin = %#08x, want %#08x", Float32Bits(sin), xb-1)
	}
	if Float32Bits(cos) != 0x3f7f_ffff {
		t.Errorf("Sincosf(2^-14) toward-zero cos = %#08x, want 1-2^-24", Float32Bits(cos))
	}

	e.SetRounding(Downward)
	sin, cos = e.Sincosf(x)
	if Float32Bits(sin) != xb-1 || Float32Bits(cos) != 0x3f7f_ffff {
		t.Errorf("Sincosf(2^-14) downward = %#08x, %#08x", Float32Bits(sin), Float32Bits(cos))
	}

	e.SetRounding(Upward)
	sin, cos = e.Sincosf(x)
	if sin != x || cos != 1 {
		t.Errorf("Sincosf(2^-14) upward = %v, %v, want %v, 1", sin, cos, x)
	}

	// sin is odd: the toward-zero step mirrors for negative arguments.
	n := (xb | signMask32).Value()
	e.SetRounding(Upward)
	sin, _ = e.Sincosf(n)
	if Float32Bits(sin) != (xb|signMask32)-1 {
		t.Errorf("Sincosf(-2^-14) upward sin = %#08x, want one step toward zero", Float32Bits(sin))
	}
	e.SetRounding(Downward)
	sin, _ = e.Sincosf(n)
	if sin != n {
		t.Errorf("Sincosf(-2^-14) downward sin = %v, want %v", sin, n)
	}
}

func TestSincosf_SpecialValues(t *testing.T) {
	e := NewEnv()
	sin, cos := e.Sincosf(float32(math.Inf(1)))
	if !math.IsNaN(float64(sin)) || !math.IsNaN(float64(cos)) {
		t.Errorf("Sincosf(+Inf) = %v, %v, want NaN, NaN", sin, cos)
	}
	if e.Errno() != EDOM || e.Test(ExInvalid) == 0 {
		t.Errorf("Sincosf(+Inf) errno %v flags %v, want EDOM and invalid", e.Errno(), e.Test(ExAll))
	}

	e = NewEnv()
	sin, cos = e.Sincosf(float32(math.NaN()))
	if !math.IsNaN(float64(sin)) || !math.IsNaN(float64(cos)) {
		t.Errorf("Sincosf(NaN) = %v, %v, want NaN, NaN", sin, cos)
	}
	if e.Test(ExAll) != 0 {
		t.Errorf("Sincosf(NaN) raised flags %v", e.Test(ExAll))
	}
}

func TestSincosf_HardToRound(t *testing.T) {
	cases := []struct {
		in               Bits32
		mode             RoundingMode
		wantSin, wantCos Bits32
	}{
		// x = 0x1.4f0654p0
		{0x3fa7_832a, ToNearest, 0x3f77_41b6, 0x3e84_aac0},
		{0x3fa7_832a, TowardZero, 0x3f77_41b5, 0x3e84_aabf},
		{0x3fa7_832a, Upward, 0x3f77_41b6, 0x3e84_aac0},
		{0x3fa7_832a, Downward, 0x3f77_41b5, 0x3e84_aabf},
		// x = 0x1.33333p13: sin is negative there.
		{0x4619_9998, ToNearest, 0xbeb1_fa5d, 0xbf70_090b},
		{0x4619_9998, Upward, 0xbeb1_fa5d, 0xbf70_090b},
		{0x4619_9998, Downward, 0xbeb1_fa5e, 0xbf70_090c},
		// x = 0x1.ddebdep120
		{0x7bee_f5ef, ToNearest, 0xbf58_7d1c, 0x3f08_a21c},
		{0x7bee_f5ef, TowardZero, 0xbf58_7d1b, 0x3f08_a21c},
	}
	for _, tc := range cases {
		e := NewEnv()
		e.SetRounding(tc.mode)
		sin, cos := e.Sincosf(tc.in.Value())
		if Float32Bits(sin) != tc.wantSin || Float32Bits(cos) != tc.wantCos {
			t.Errorf("Sincosf(%#08x) %v = %#08x, %#08x, want %#08x, %#08x",
				tc.in, tc.mode, Float32Bits(sin), Float32Bits(cos), tc.wantSin, tc.wantCos)
		}
	}

	// The negative of a hard input uses the mirrored sin row.
	e := NewEnv()
	sin, cos := e.Sincosf(Bits32(0x3fa7_832a | signMask32).Value())
	if Float32Bits(sin) != 0x3f77_41b6|signMask32 || Float32Bits(cos) != 0x3e84_aac0 {
		t.Errorf("Sincosf(-0x1.4f0654p0) = %#08x, %#08x", Float32Bits(sin), Float32Bits(cos))
	}
}

func TestSinfCosf_MatchSincosf(t *testing.T) {
	for i := -200; i <= 200; i++ {
		x := float32(i) * 0.37
		sin, cos := Sincosf(x)
		if got := Sinf(x); got != sin {
			t.Fatalf("Sinf(%v) = %v, Sincosf sin = %v", x, got, sin)
		}
		if got := Cosf(x); got != cos {
			t.Fatalf("Cosf(%v) = %v, Sincosf cos = %v", x, got, cos)
		}
	}
}
