package correlation

import "fmt"

// Config carries the engine's policy constants. The defaults reproduce
// the shipped behavior; they are configuration rather than literals so a
// deployment can tune them without a rebuild.
type Config struct {
	// Minimum distinct logged days before any correlation is estimated
	MinDates int `yaml:"min_dates" json:"min_dates"`

	// Largest day offset tried in the lag search
	MaxLagDays int `yaml:"max_lag_days" json:"max_lag_days"`

	// Minimum paired points required for a coefficient at any lag
	MinPairedPoints int `yaml:"min_paired_points" json:"min_paired_points"`

	// Dose-response exposure bands: below Low is a low-exposure day,
	// at or above High is a high-exposure day, between is ignored
	LowExposureThreshold  float64 `yaml:"low_exposure_threshold" json:"low_exposure_threshold"`
	HighExposureThreshold float64 `yaml:"high_exposure_threshold" json:"high_exposure_threshold"`

	// Minimum qualifying days in each exposure band
	MinBandDays int `yaml:"min_band_days" json:"min_band_days"`

	// High-band mean outcome must exceed low-band mean by this factor
	DoseResponseUplift float64 `yaml:"dose_response_uplift" json:"dose_response_uplift"`

	// Two-tailed p-value below which a correlation counts as significant
	SignificanceLevel float64 `yaml:"significance_level" json:"significance_level"`
}

// DefaultConfig returns the engine's default policy constants
func DefaultConfig() Config {
	return Config{
		MinDates:              3,
		MaxLagDays:            3,
		MinPairedPoints:       3,
		LowExposureThreshold:  30,
		HighExposureThreshold: 70,
		MinBandDays:           2,
		DoseResponseUplift:    1.2,
		SignificanceLevel:     0.05,
	}
}

// Validate rejects configurations the algorithms cannot run with
func (c Config) Validate() error {
	if c.MinDates < 3 {
		return fmt.Errorf("min_dates %d below 3: correlation needs at least 3 points", c.MinDates)
	}
	if c.MaxLagDays < 0 {
		return fmt.Errorf("max_lag_days %d must be non-negative", c.MaxLagDays)
	}
	if c.MinPairedPoints < 3 {
		return fmt.Errorf("min_paired_points %d below 3", c.MinPairedPoints)
	}
	if c.LowExposureThreshold >= c.HighExposureThreshold {
		return fmt.Errorf("low_exposure_threshold %.1f must stay below high_exposure_threshold %.1f",
			c.LowExposureThreshold, c.HighExposureThreshold)
	}
	if c.MinBandDays < 1 {
		return fmt.Errorf("min_band_days %d must be at least 1", c.MinBandDays)
	}
	if c.DoseResponseUplift <= 0 {
		return fmt.Errorf("dose_response_uplift %.2f must be positive", c.DoseResponseUplift)
	}
	if c.SignificanceLevel <= 0 || c.SignificanceLevel >= 1 {
		return fmt.Errorf("significance_level %.3f outside (0,1)", c.SignificanceLevel)
	}
	return nil
}
