package correlation

import (
	"sort"

	"github.com/glutara/glutara/pkg/domain"
)

// AggregateDaily collapses both raw event streams into one bucket per
// calendar day: mean exposure, mean outcome and per-stream counts. Days
// with no events of either kind get no bucket at all; the series stays
// sparse and is never zero-filled for missing dates.
//
// Empty inputs yield an empty map. Input order is irrelevant.
func AggregateDaily(exposures []domain.ExposureEvent, outcomes []domain.OutcomeEvent) map[domain.Date]*domain.DailyBucket {
	buckets := make(map[domain.Date]*domain.DailyBucket)

	bucketFor := func(d domain.Date) *domain.DailyBucket {
		b, ok := buckets[d]
		if !ok {
			b = &domain.DailyBucket{Date: d}
			buckets[d] = b
		}
		return b
	}

	// Accumulate sums first, divide once per day afterwards
	for _, e := range exposures {
		b := bucketFor(domain.DateOf(e.Timestamp))
		b.AvgExposure += e.Magnitude
		b.ExposureCount++
	}
	for _, o := range outcomes {
		b := bucketFor(domain.DateOf(o.Timestamp))
		b.AvgOutcome += o.Severity
		b.OutcomeCount++
	}

	for _, b := range buckets {
		if b.ExposureCount > 0 {
			b.AvgExposure /= float64(b.ExposureCount)
		}
		if b.OutcomeCount > 0 {
			b.AvgOutcome /= float64(b.OutcomeCount)
		}
	}

	return buckets
}

// SortedDates returns the bucket dates in ascending calendar order.
// Consumers must not rely on map iteration order.
func SortedDates(buckets map[domain.Date]*domain.DailyBucket) []domain.Date {
	dates := make([]domain.Date, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}
