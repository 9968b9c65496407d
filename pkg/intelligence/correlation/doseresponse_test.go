package correlation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/glutara/glutara/pkg/domain"
)

// bucketsFrom builds a bucket map from (exposure, outcome) day pairs
func bucketsFrom(t *testing.T, days []struct{ exposure, outcome float64 }) map[domain.Date]*domain.DailyBucket {
	t.Helper()
	var exposures []domain.ExposureEvent
	var outcomes []domain.OutcomeEvent
	for i, d := range days {
		exposures = append(exposures, exposure(i, 0, d.exposure))
		if d.outcome > 0 {
			outcomes = append(outcomes, outcome(i, 4, d.outcome))
		}
	}
	return AggregateDaily(exposures, outcomes)
}

func TestDoseResponse_Detected(t *testing.T) {
	engine := newTestEngine(t)

	buckets := bucketsFrom(t, []struct{ exposure, outcome float64 }{
		{90, 8}, {85, 7}, {10, 2}, {5, 3}, {95, 9}, {20, 2},
	})

	assert.True(t, engine.doseResponse(buckets))
}

func TestDoseResponse_RequiresBothBands(t *testing.T) {
	engine := newTestEngine(t)

	tests := []struct {
		name string
		days []struct{ exposure, outcome float64 }
	}{
		{
			name: "only high-exposure days",
			days: []struct{ exposure, outcome float64 }{
				{90, 8}, {85, 7}, {95, 9},
			},
		},
		{
			name: "only low-exposure days",
			days: []struct{ exposure, outcome float64 }{
				{10, 2}, {5, 3}, {20, 2},
			},
		},
		{
			name: "one day per band",
			days: []struct{ exposure, outcome float64 }{
				{90, 8}, {10, 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, engine.doseResponse(bucketsFrom(t, tt.days)))
		})
	}
}

func TestDoseResponse_MidBandIgnored(t *testing.T) {
	engine := newTestEngine(t)

	// Days between the thresholds carry no weight either way
	buckets := bucketsFrom(t, []struct{ exposure, outcome float64 }{
		{90, 8}, {85, 7}, {10, 2}, {5, 2},
		{50, 10}, {45, 10}, {60, 10},
	})

	assert.True(t, engine.doseResponse(buckets))
}

func TestDoseResponse_SymptomFreeDaysSkipped(t *testing.T) {
	engine := newTestEngine(t)

	// High-exposure days without symptoms must not count as evidence
	// in either direction; here they starve the high band below the
	// minimum
	buckets := bucketsFrom(t, []struct{ exposure, outcome float64 }{
		{90, 0}, {85, 0}, {95, 8},
		{10, 2}, {5, 3},
	})

	assert.False(t, engine.doseResponse(buckets))
}

func TestDoseResponse_UpliftThreshold(t *testing.T) {
	engine := newTestEngine(t)

	// High mean 2.4 vs low mean 2.0: exactly at the 1.2x boundary,
	// which does not count as materially worse
	atBoundary := bucketsFrom(t, []struct{ exposure, outcome float64 }{
		{90, 2.4}, {85, 2.4}, {10, 2}, {5, 2},
	})
	assert.False(t, engine.doseResponse(atBoundary))

	// Just past the boundary
	pastBoundary := bucketsFrom(t, []struct{ exposure, outcome float64 }{
		{90, 2.5}, {85, 2.5}, {10, 2}, {5, 2},
	})
	assert.True(t, engine.doseResponse(pastBoundary))
}
