package insights

import "fmt"

// Config carries the presentation-layer policy constants: report tiers,
// preview gating and timeline shaping. Exposure band thresholds live on
// the correlation engine config; these are the cut points applied to the
// finished verdict.
type Config struct {
	// Correlation score (0-100) at or above which, together with
	// significance, the report declares strong evidence
	StrongEvidenceScore float64 `yaml:"strong_evidence_score" json:"strong_evidence_score"`

	// Score at or above which a non-strong result is called moderate
	ModerateEvidenceScore float64 `yaml:"moderate_evidence_score" json:"moderate_evidence_score"`

	// Pattern-analysis strength labels: strong at or above the first,
	// moderate at or above the second, weak below
	StrongStrengthScore   float64 `yaml:"strong_strength_score" json:"strong_strength_score"`
	ModerateStrengthScore float64 `yaml:"moderate_strength_score" json:"moderate_strength_score"`

	// Events of each kind required before the dashboard shows a
	// correlation preview
	MinEventsForPreview int `yaml:"min_events_for_preview" json:"min_events_for_preview"`

	// Events of each kind the calling layer must see before asking for
	// a report
	MinEventsForReport int `yaml:"min_events_for_report" json:"min_events_for_report"`

	// Timeline shaping
	TimelineLimit      int `yaml:"timeline_limit" json:"timeline_limit"`
	TimelineWindowDays int `yaml:"timeline_window_days" json:"timeline_window_days"`

	// Longest description carried into a timeline entry, in runes
	MaxDescriptionLength int `yaml:"max_description_length" json:"max_description_length"`
}

// DefaultConfig returns the shipped presentation policy
func DefaultConfig() Config {
	return Config{
		StrongEvidenceScore:   60,
		ModerateEvidenceScore: 40,
		StrongStrengthScore:   70,
		ModerateStrengthScore: 40,
		MinEventsForPreview:   10,
		MinEventsForReport:    10,
		TimelineLimit:         20,
		TimelineWindowDays:    7,
		MaxDescriptionLength:  100,
	}
}

// Validate rejects configurations the summarizer cannot honor
func (c Config) Validate() error {
	if c.ModerateEvidenceScore > c.StrongEvidenceScore {
		return fmt.Errorf("moderate_evidence_score %.1f above strong_evidence_score %.1f",
			c.ModerateEvidenceScore, c.StrongEvidenceScore)
	}
	if c.ModerateStrengthScore > c.StrongStrengthScore {
		return fmt.Errorf("moderate_strength_score %.1f above strong_strength_score %.1f",
			c.ModerateStrengthScore, c.StrongStrengthScore)
	}
	if c.MinEventsForPreview < 1 {
		return fmt.Errorf("min_events_for_preview %d must be at least 1", c.MinEventsForPreview)
	}
	if c.MinEventsForReport < 1 {
		return fmt.Errorf("min_events_for_report %d must be at least 1", c.MinEventsForReport)
	}
	if c.TimelineLimit < 1 {
		return fmt.Errorf("timeline_limit %d must be at least 1", c.TimelineLimit)
	}
	if c.TimelineWindowDays < 1 {
		return fmt.Errorf("timeline_window_days %d must be at least 1", c.TimelineWindowDays)
	}
	if c.MaxDescriptionLength < 1 {
		return fmt.Errorf("max_description_length %d must be at least 1", c.MaxDescriptionLength)
	}
	return nil
}
