package correlation

import (
	"math"

	"github.com/glutara/glutara/pkg/domain"
	"github.com/glutara/glutara/pkg/intelligence/stats"
)

// searchBestLag finds the day offset at which exposure best explains
// outcome. Lag L pairs exposure[i] with outcome[i+L] over the
// date-sorted sequences, so lag is measured in logged-day positions;
// with daily logging these coincide with calendar days. Gaps between
// logged dates are not filled.
//
// The strongest coefficient by absolute value wins; ties keep the lower
// lag. With fewer than cfg.MinDates distinct dates the search degrades
// to a zero result instead of failing.
func (e *Engine) searchBestLag(buckets map[domain.Date]*domain.DailyBucket) domain.LagResult {
	n := len(buckets)
	if n < e.config.MinDates {
		return domain.LagResult{Correlation: 0, LagDays: 0, SampleSize: n}
	}

	dates := SortedDates(buckets)
	exposure := make([]float64, n)
	outcome := make([]float64, n)
	for i, d := range dates {
		exposure[i] = buckets[d].AvgExposure
		outcome[i] = buckets[d].AvgOutcome
	}

	best := domain.LagResult{
		Correlation: stats.Pearson(exposure, outcome),
		LagDays:     0,
		SampleSize:  n,
	}

	maxLag := e.config.MaxLagDays
	if n-2 < maxLag {
		maxLag = n - 2
	}
	for lag := 1; lag <= maxLag; lag++ {
		paired := n - lag
		if paired < e.config.MinPairedPoints {
			continue
		}
		r := stats.Pearson(exposure[:paired], outcome[lag:])
		if math.Abs(r) > math.Abs(best.Correlation) {
			best = domain.LagResult{Correlation: r, LagDays: lag, SampleSize: paired}
		}
	}

	return best
}
