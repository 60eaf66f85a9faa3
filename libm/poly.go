package libm

import "math"

// Horner evaluates a polynomial using Horner's method.
// Given coefficients [c0, c1, c2, ..., cn], computes:
//
//	p(x) = c0 + x*(c1 + x*(c2 + ... + x*cn))
//
// Coefficients are in ascending order. All arithmetic is float64, which
// leaves enough slack below a float32 result that the evaluation error
// never disturbs the rounded value.
func Horner(x float64, coeffs ...float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = result*x + coeffs[i]
	}
	return result
}

// Horner4 evaluates a degree-4 polynomial. This is an unrolled version
// for the hot paths. Coefficients are in ascending order.
func Horner4(x, c0, c1, c2, c3, c4 float64) float64 {
	result := c4
	result = result*x + c3
	result = result*x + c2
	result = result*x + c1
	result = result*x + c0
	return result
}

// Horner7 evaluates a degree-7 polynomial. Coefficients are in ascending
// order: [c0, c1, ..., c7].
func Horner7(x, c0, c1, c2, c3, c4, c5, c6, c7 float64) float64 {
	result := c7
	result = result*x + c6
	result = result*x + c5
	result = result*x + c4
	result = result*x + c3
	result = result*x + c2
	result = result*x + c1
	result = result*x + c0
	return result
}

// HornerFMA evaluates a polynomial with fused steps, halving the
// evaluation error relative to Horner. Used by the float64 kernels where
// there is no headroom to spare.
func HornerFMA(x float64, coeffs ...float64) float64 {
	if len(coeffs) == 0 {
		return 0
	}
	result := coeffs[len(coeffs)-1]
	for i := len(coeffs) - 2; i >= 0; i-- {
		result = math.FMA(result, x, coeffs[i])
	}
	return result
}
