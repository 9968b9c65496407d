// Package stats holds the small numeric core of the correlation engine:
// Pearson's r and the Student-t distribution. Degenerate inputs (zero
// variance, too few points) are guarded explicitly and return safe
// defaults instead of NaN, so callers never need recover().
package stats

import "math"

// Mean returns the arithmetic mean, 0 for an empty slice
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Pearson computes the linear correlation coefficient between two paired
// sequences. Returns 0 when the sequences are shorter than 2 points, have
// mismatched lengths, or either side has zero variance.
func Pearson(x, y []float64) float64 {
	n := len(x)
	if n < 2 || n != len(y) {
		return 0
	}

	mx := Mean(x)
	my := Mean(y)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	denom := math.Sqrt(varX * varY)
	if denom == 0 {
		return 0
	}

	r := cov / denom
	// Floating point can push a perfect pairing a hair past +/-1
	if r > 1 {
		r = 1
	} else if r < -1 {
		r = -1
	}
	return r
}
