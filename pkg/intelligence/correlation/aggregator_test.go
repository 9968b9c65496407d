package correlation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glutara/glutara/pkg/domain"
)

var testBase = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func onDay(day int, hour int) time.Time {
	return testBase.AddDate(0, 0, day).Add(time.Duration(hour) * time.Hour)
}

func exposure(day int, hour int, magnitude float64) domain.ExposureEvent {
	return domain.ExposureEvent{Timestamp: onDay(day, hour), Magnitude: magnitude}
}

func outcome(day int, hour int, severity float64) domain.OutcomeEvent {
	return domain.OutcomeEvent{Timestamp: onDay(day, hour), Severity: severity}
}

func TestAggregateDaily_Empty(t *testing.T) {
	buckets := AggregateDaily(nil, nil)
	assert.Empty(t, buckets)
}

func TestAggregateDaily_MeansPerDay(t *testing.T) {
	exposures := []domain.ExposureEvent{
		exposure(0, 0, 80),
		exposure(0, 6, 40),
		exposure(1, 0, 10),
	}
	outcomes := []domain.OutcomeEvent{
		outcome(0, 3, 6),
		outcome(0, 9, 2),
		outcome(0, 10, 4),
	}

	buckets := AggregateDaily(exposures, outcomes)
	require.Len(t, buckets, 2)

	day0 := buckets[domain.DateOf(onDay(0, 0))]
	require.NotNil(t, day0)
	assert.Equal(t, 2, day0.ExposureCount)
	assert.Equal(t, 3, day0.OutcomeCount)
	assert.InDelta(t, 60.0, day0.AvgExposure, 1e-9)
	assert.InDelta(t, 4.0, day0.AvgOutcome, 1e-9)

	day1 := buckets[domain.DateOf(onDay(1, 0))]
	require.NotNil(t, day1)
	assert.Equal(t, 1, day1.ExposureCount)
	assert.Equal(t, 0, day1.OutcomeCount)
	assert.InDelta(t, 10.0, day1.AvgExposure, 1e-9)

	// Zero outcome events means zero average, distinguishable only
	// through the count
	assert.Equal(t, 0.0, day1.AvgOutcome)
}

func TestAggregateDaily_SparseDates(t *testing.T) {
	// Day 1 has nothing logged; it must not appear as a bucket
	exposures := []domain.ExposureEvent{exposure(0, 0, 50), exposure(2, 0, 50)}
	outcomes := []domain.OutcomeEvent{outcome(2, 1, 3)}

	buckets := AggregateDaily(exposures, outcomes)
	require.Len(t, buckets, 2)
	_, exists := buckets[domain.DateOf(onDay(1, 0))]
	assert.False(t, exists)
}

func TestAggregateDaily_OrderIrrelevant(t *testing.T) {
	a := []domain.ExposureEvent{exposure(0, 0, 20), exposure(1, 0, 80)}
	b := []domain.ExposureEvent{exposure(1, 0, 80), exposure(0, 0, 20)}

	assert.Equal(t, AggregateDaily(a, nil), AggregateDaily(b, nil))
}

func TestSortedDates(t *testing.T) {
	exposures := []domain.ExposureEvent{
		exposure(5, 0, 10),
		exposure(0, 0, 10),
		exposure(3, 0, 10),
	}

	dates := SortedDates(AggregateDaily(exposures, nil))
	require.Len(t, dates, 3)
	assert.Equal(t, domain.DateOf(onDay(0, 0)), dates[0])
	assert.Equal(t, domain.DateOf(onDay(3, 0)), dates[1])
	assert.Equal(t, domain.DateOf(onDay(5, 0)), dates[2])
}
