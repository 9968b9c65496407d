package correlation

import (
	"math"

	"github.com/glutara/glutara/pkg/intelligence/stats"
)

// significance turns a correlation coefficient and its sample size into a
// two-tailed p-value, a confidence level and a significance flag. Every
// degenerate case (tiny sample, boundary correlation, zero divisor in the
// t statistic) is guarded up front; this function cannot fail.
func (e *Engine) significance(r float64, n int) (pValue, confidence float64, significant bool) {
	p := 1.0

	switch {
	case n < e.config.MinDates:
		// Cannot assess significance at all
		p = 1.0
	case math.Abs(r) >= 1:
		// Perfect correlation: a boundary guard, not a real estimate
		if math.Abs(r) == 1 {
			p = 0.001
		} else {
			p = 1.0
		}
	default:
		df := n - 2
		denom := 1 - r*r
		if df < 1 || denom <= 0 {
			p = 1.0
		} else {
			t := r * math.Sqrt(float64(df)/denom)
			p = stats.TwoTailedPValue(t, df)
		}
	}

	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}

	confidence = 0
	if p < 1 {
		confidence = 1 - p
	}
	return p, confidence, p < e.config.SignificanceLevel
}
