package correlation

import (
	"github.com/glutara/glutara/pkg/domain"
	"github.com/glutara/glutara/pkg/intelligence/stats"
)

// doseResponse reports whether high-exposure days show materially worse
// outcomes than low-exposure days. Symptom-free days are skipped
// entirely; days between the two exposure bands are ignored. Both bands
// need at least cfg.MinBandDays qualifying days, otherwise the answer is
// false - one-sided evidence is no evidence.
func (e *Engine) doseResponse(buckets map[domain.Date]*domain.DailyBucket) bool {
	var low, high []float64

	for _, b := range buckets {
		if b.AvgOutcome <= 0 {
			continue
		}
		switch {
		case b.AvgExposure < e.config.LowExposureThreshold:
			low = append(low, b.AvgOutcome)
		case b.AvgExposure >= e.config.HighExposureThreshold:
			high = append(high, b.AvgOutcome)
		}
	}

	if len(low) < e.config.MinBandDays || len(high) < e.config.MinBandDays {
		return false
	}

	return stats.Mean(high) > stats.Mean(low)*e.config.DoseResponseUplift
}
