package utils

import "math"

// Round2 rounds to 2 decimal places. Only applied at the presentation
// boundary; intermediate aggregation keeps full precision.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
