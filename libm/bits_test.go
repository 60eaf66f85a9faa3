package libm

import (
	"math"
	"testing"
)

func TestBitsRoundTrip(t *testing.T) {
	values := []float64{0, 1, -1, 0.5, math.Pi, 1e300, 5e-324, math.Inf(1), math.Inf(-1)}
	for _, v := range values {
		if got := Float64Bits(v).Value(); math.Float64bits(got) != math.Float64bits(v) {
			t.Errorf("Bits64 round trip of %v gave %v", v, got)
		}
		f := float32(v)
		if got := Float32Bits(f).Value(); math.Float32bits(got) != math.Float32bits(f) {
			t.Errorf("Bits32 round trip of %v gave %v", f, got)
		}
	}
	// NaN payloads survive too.
	nb := QuietNaN64(0xdead)
	if Float64Bits(nb.Value()) != nb {
		t.Errorf("NaN round trip changed the payload: %#016x", Float64Bits(nb.Value()))
	}
}

func TestBitsFields(t *testing.T) {
	b := Float32Bits(-6.5) // -0x1.ap+2
	if !b.Sign() {
		t.Error("Float32Bits(-6.5).Sign() = false")
	}
	if b.Exponent() != 2 {
		t.Errorf("Float32Bits(-6.5).Exponent() = %d, want 2", b.Exponent())
	}
	if b.Mantissa() != 0x500000 {
		t.Errorf("Float32Bits(-6.5).Mantissa() = %#x, want 0x500000", b.Mantissa())
	}
	if b.Abs() != Float32Bits(6.5) {
		t.Errorf("Abs lost bits: %#08x", b.Abs())
	}

	d := Float64Bits(0x1p-1074)
	if d.BiasedExponent() != 0 || !d.IsSubnormal() {
		t.Errorf("2^-1074 not recognized as subnormal")
	}
	if d.Exponent() != 1-exponentBias64 {
		t.Errorf("subnormal Exponent() = %d, want %d", d.Exponent(), 1-exponentBias64)
	}
}

func TestBitsPredicates(t *testing.T) {
	cases := []struct {
		b                         Bits32
		nan, inf, zero, subnormal bool
	}{
		{0, false, false, true, false},
		{signMask32, false, false, true, false},
		{Inf32, false, true, false, false},
		{signMask32 | Inf32, false, true, false, false},
		{QuietNaN32(0), true, false, false, false},
		{MinSubnormal32, false, false, false, true},
		{MaxSubnormal32, false, false, false, true},
		{MinNormal32, false, false, false, false},
		{oneBits32, false, false, false, false},
	}
	for _, tc := range cases {
		if tc.b.IsNaN() != tc.nan || tc.b.IsInf() != tc.inf ||
			tc.b.IsZero() != tc.zero || tc.b.IsSubnormal() != tc.subnormal {
			t.Errorf("predicates for %#08x: NaN=%v Inf=%v Zero=%v Subnormal=%v",
				tc.b, tc.b.IsNaN(), tc.b.IsInf(), tc.b.IsZero(), tc.b.IsSubnormal())
		}
		if tc.b.IsInfOrNaN() != (tc.nan || tc.inf) {
			t.Errorf("IsInfOrNaN for %#08x = %v", tc.b, tc.b.IsInfOrNaN())
		}
	}
}

func TestQuietNaN(t *testing.T) {
	if !math.IsNaN(float64(QuietNaN32(7).Value())) {
		t.Error("QuietNaN32(7) is not a NaN")
	}
	if !math.IsNaN(QuietNaN64(7).Value()) {
		t.Error("QuietNaN64(7) is not a NaN")
	}
	// The payload never clears the quiet bit.
	if QuietNaN32(0)&quietMask32 == 0 || QuietNaN64(0)&quietMask64 == 0 {
		t.Error("quiet bit missing from payload-0 NaN")
	}
}

func TestCannedEncodings(t *testing.T) {
	if MaxNormal32.Value() != math.MaxFloat32 {
		t.Errorf("MaxNormal32 = %v", MaxNormal32.Value())
	}
	if MinSubnormal32.Value() != math.SmallestNonzeroFloat32 {
		t.Errorf("MinSubnormal32 = %v", MinSubnormal32.Value())
	}
	if MaxNormal64.Value() != math.MaxFloat64 {
		t.Errorf("MaxNormal64 = %v", MaxNormal64.Value())
	}
	if MinSubnormal64.Value() != math.SmallestNonzeroFloat64 {
		t.Errorf("MinSubnormal64 = %v", MinSubnormal64.Value())
	}
	if oneBits64.Value() != 1 || oneBits32.Value() != 1 {
		t.Error("oneBits encodings are not 1")
	}
}
