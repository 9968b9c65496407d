package domain

import "time"

// DailyBucket holds per-calendar-day aggregates of both event streams.
// A day with zero exposure events has AvgExposure 0; ExposureCount is the
// only way to tell that apart from "no data". Days with no events at all
// never get a bucket - the series stays sparse.
type DailyBucket struct {
	Date          Date    `json:"date"`
	AvgExposure   float64 `json:"avg_exposure"`
	AvgOutcome    float64 `json:"avg_outcome"`
	ExposureCount int     `json:"exposure_count"`
	OutcomeCount  int     `json:"outcome_count"`
}

// LagResult is the outcome of the lag search: the strongest signed
// correlation found and the day offset that produced it. Lag is counted
// in logged-day positions, not calendar days.
type LagResult struct {
	Correlation float64 `json:"correlation"` // [-1,1]
	LagDays     int     `json:"lag_days"`    // >= 0
	SampleSize  int     `json:"sample_size"` // paired points at this lag
}

// CorrelationVerdict is the engine's primary output: does gluten exposure
// statistically explain the logged symptoms, and how strongly.
type CorrelationVerdict struct {
	CorrelationScore float64 `json:"correlation_score"` // 0-100
	ConfidenceLevel  float64 `json:"confidence_level"`  // 0-1
	Significant      bool    `json:"significant"`
	TimeLagHours     int     `json:"time_lag_hours"` // 0, 24, 48 or 72
	DoseResponse     bool    `json:"dose_response"`
}

// TimelineEntry is one merged event for recent-activity display,
// tagged with the stream it came from.
type TimelineEntry struct {
	ID          EventID   `json:"id,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
	EntryType   EventKind `json:"entry_type"`
	Description string    `json:"description"`
	Magnitude   *float64  `json:"gluten_risk,omitempty"` // exposure entries only
	Severity    *float64  `json:"severity,omitempty"`    // outcome entries only
}

// DashboardSummary is the lightweight rolling view over a recent window
type DashboardSummary struct {
	TotalExposures     int             `json:"total_exposures"`
	TotalOutcomes      int             `json:"total_outcomes"`
	ExposureHeavyDays  int             `json:"exposure_heavy_days"`
	OutcomeDays        int             `json:"outcome_days"`
	AvgExposure        float64         `json:"avg_exposure"`
	AvgOutcome         float64         `json:"avg_outcome"`
	CorrelationPreview *float64        `json:"correlation_preview,omitempty"`
	RecentTimeline     []TimelineEntry `json:"recent_timeline"`
}

// SymptomStats summarizes one outcome category
type SymptomStats struct {
	Count       int     `json:"count"`
	AvgSeverity float64 `json:"avg_severity"`
	MaxSeverity float64 `json:"max_severity"`
}

// ExposureSummary summarizes the exposure stream for a report
type ExposureSummary struct {
	TotalExposures int     `json:"total_exposures"`
	HighExposures  int     `json:"high_exposures"`
	LowExposures   int     `json:"low_exposures"`
	AvgMagnitude   float64 `json:"avg_magnitude"`
}

// PatternAnalysis carries the detected temporal pattern for a report
type PatternAnalysis struct {
	TimeLagHours        int    `json:"time_lag_detected"`
	DoseResponse        bool   `json:"dose_response_detected"`
	CorrelationStrength string `json:"correlation_strength"` // strong, moderate or weak
}

// Report is the full narrative analysis over one window. Built once per
// request; persistence is the caller's concern.
type Report struct {
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
	GeneratedAt time.Time `json:"generated_at"`

	Verdict                   CorrelationVerdict      `json:"verdict"`
	GlutenIntoleranceDetected bool                    `json:"gluten_intolerance_detected"`
	PatternAnalysis           PatternAnalysis         `json:"pattern_analysis"`
	SymptomSummary            map[string]SymptomStats `json:"symptom_summary"`
	ExposureSummary           ExposureSummary         `json:"exposure_summary"`
	Recommendation            string                  `json:"recommendation"`

	TotalExposures  int `json:"total_exposures_logged"`
	TotalOutcomes   int `json:"total_outcomes_logged"`
	ExposureDays    int `json:"exposure_days"`
	OutcomeFreeDays int `json:"outcome_free_days"`
}
