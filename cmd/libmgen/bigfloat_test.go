package main

import (
	"math"
	"testing"
)

func TestBigPi(t *testing.T) {
	if got := rn(bigPi()); got != math.Pi {
		t.Errorf("bigPi rounds to %v, want math.Pi", got)
	}
}

func TestBigExp(t *testing.T) {
	cases := []struct {
		in, want float64
	}{
		{0, 1},
		{1, math.E},
		{2, math.Exp(2)},
		{-1, math.Exp(-1)},
		{0.3, math.Exp(0.3)},
		{-104, math.Exp(-104)},
		{89, math.Exp(89)},
	}
	for _, tc := range cases {
		got := rn(bigExp(newFloat().SetFloat64(tc.in)))
		if ulp := ulpDiff(got, tc.want); ulp > 2 {
			t.Errorf("bigExp(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBigLog(t *testing.T) {
	if got := rn(bigLog(intFloat(2))); got != math.Ln2 {
		t.Errorf("bigLog(2) = %v, want math.Ln2", got)
	}
	for _, x := range []float64{0.5, 1, 3, 10, 100} {
		got := rn(bigLog(newFloat().SetFloat64(x)))
		if ulp := ulpDiff(got, math.Log(x)); ulp > 2 {
			t.Errorf("bigLog(%v) = %v, want %v", x, got, math.Log(x))
		}
	}
}

func TestBigSin(t *testing.T) {
	half := newFloat().Quo(bigPi(), intFloat(2))
	if got := rn(bigSin(half)); got != 1 {
		t.Errorf("bigSin(pi/2) = %v, want 1", got)
	}
	if got := rn(bigSin(bigPi())); got != 0 {
		t.Errorf("bigSin(pi) = %v, want 0", got)
	}
	for _, x := range []float64{0.1, 1, 2, 5, -3} {
		got := rn(bigSin(newFloat().SetFloat64(x)))
		if ulp := ulpDiff(got, math.Sin(x)); ulp > 2 {
			t.Errorf("bigSin(%v) = %v, want %v", x, got, math.Sin(x))
		}
	}
}

func TestFactorial(t *testing.T) {
	if got := rn(factorial(0)); got != 1 {
		t.Errorf("factorial(0) = %v, want 1", got)
	}
	if got := rn(factorial(10)); got != 3628800 {
		t.Errorf("factorial(10) = %v, want 3628800", got)
	}
}

// The stdlib references carry their own rounding error, so comparisons
// allow a couple of steps.
func ulpDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	ulp := math.Abs(math.Nextafter(b, math.Inf(1)) - b)
	return math.Abs(a-b) / ulp
}
