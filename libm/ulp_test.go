package libm

import "math"

// ULP (Units in the Last Place) comparison for floating-point accuracy
// testing.
func ulpDistance32(a, b float32) float32 {
	if a == b {
		return 0
	}
	if math.IsNaN(float64(a)) && math.IsNaN(float64(b)) {
		return 0
	}
	if math.IsInf(float64(a), 0) || math.IsInf(float64(b), 0) {
		if (math.IsInf(float64(a), 1) && math.IsInf(float64(b), 1)) ||
			(math.IsInf(float64(a), -1) && math.IsInf(float64(b), -1)) {
			return 0
		}
		return float32(math.Inf(1))
	}
	diff := math.Abs(float64(a - b))
	ulp := math.Abs(float64(math.Nextafter32(a, float32(math.Inf(1))) - a))
	if ulp == 0 {
		ulp = 1e-45 // smallest positive float32
	}
	return float32(diff / ulp)
}

func ulpDistance64(a, b float64) float64 {
	if a == b {
		return 0
	}
	if math.IsNaN(a) && math.IsNaN(b) {
		return 0
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) {
		if (math.IsInf(a, 1) && math.IsInf(b, 1)) ||
			(math.IsInf(a, -1) && math.IsInf(b, -1)) {
			return 0
		}
		return math.Inf(1)
	}
	diff := math.Abs(a - b)
	ulp := math.Abs(math.Nextafter(a, math.Inf(1)) - a)
	if ulp == 0 {
		ulp = 5e-324 // smallest positive float64
	}
	return diff / ulp
}
