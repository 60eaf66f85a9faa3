package libm

import (
	"math"
	"testing"
)

// The FMA and chunked reducers may disagree on k by a multiple of 32 for
// the same input, so compare k+y modulo one full period.
func reductionDiff(k1 int64, y1 float64, k2 int64, y2 float64) float64 {
	d := math.Mod(float64(k1-k2)+(y1-y2), 32)
	if d > 16 {
		d -= 32
	} else if d < -16 {
		d += 32
	}
	return d
}

func TestReduce_FMAMatchesChunked(t *testing.T) {
	// float32-valued arguments below the hybrid cutoff.
	for i := -4095; i <= 4095; i++ {
		x := float64(float32(i) / 128)
		k1, y1 := reduceFMA(x)
		k2, y2 := reduceChunked32(x)
		if d := reductionDiff(k1, y1, k2, y2); math.Abs(d) > 1e-9 {
			t.Fatalf("reducers disagree at x=%v: fma (%d, %v), chunked (%d, %v)", x, k1, y1, k2, y2)
		}
		if math.Abs(y2) > 0.5+1e-9 {
			t.Fatalf("reduceChunked32(%v) y = %v out of range", x, y2)
		}
	}
}

func TestReduce_Chunked64Pi(t *testing.T) {
	k, y := reduceChunked64(math.Pi)
	if k&31 != 16 {
		t.Fatalf("reduceChunked64(Pi) k = %d, want k mod 32 = 16", k)
	}
	// y*pi/16 recovers the gap between the float64 Pi and the real pi.
	got := y * piOver16
	const want = -1.2246467991473532e-16
	if math.Abs(got-want) > 1e-28 {
		t.Errorf("reduceChunked64(Pi) y*pi/16 = %g, want %g", got, want)
	}
}

func TestReduce_HugeArguments(t *testing.T) {
	for _, x := range []float64{0x1.ddebdep120, float64(float32(1e38)), -float64(float32(3e38))} {
		_, y := reduceChunked32(x)
		if math.Abs(y) > 0.5+1e-9 {
			t.Errorf("reduceChunked32(%g) y = %v out of range", x, y)
		}
	}
	for _, x := range []float64{1e300, -1e300, 0x1p1000} {
		_, y := reduceChunked64(x)
		if math.Abs(y) > 0.5+1e-9 {
			t.Errorf("reduceChunked64(%g) y = %v out of range", x, y)
		}
	}
}

func TestReduce_Chunked64MatchesChunked32(t *testing.T) {
	// For float32-valued inputs the two exact reducers must agree.
	for _, x := range []float32{1, -1, 3.14159, 100, 1e10, 1e38} {
		xd := float64(x)
		k1, y1 := reduceChunked32(xd)
		k2, y2 := reduceChunked64(xd)
		if d := reductionDiff(k1, y1, k2, y2); math.Abs(d) > 1e-12 {
			t.Errorf("chunked32/chunked64 disagree at x=%v: (%d, %v) vs (%d, %v)", x, k1, y1, k2, y2)
		}
	}
}

func TestReductionPath(t *testing.T) {
	switch p := ReductionPath(); p {
	case "chunked", "fma+chunked":
	default:
		t.Errorf("ReductionPath() = %q", p)
	}
}
