// Package config loads the application configuration: engine policy
// constants and presentation policy, from YAML or JSON files with
// defaults applied for anything missing.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/glutara/glutara/pkg/intelligence/correlation"
	"github.com/glutara/glutara/pkg/intelligence/insights"
)

// Config is the main configuration structure
type Config struct {
	// Engine holds the correlation engine policy constants
	Engine correlation.Config `yaml:"engine" json:"engine"`

	// Insights holds report tiers and dashboard shaping
	Insights insights.Config `yaml:"insights" json:"insights"`
}

// Default returns the configuration with all shipped defaults
func Default() *Config {
	return &Config{
		Engine:   correlation.DefaultConfig(),
		Insights: insights.DefaultConfig(),
	}
}

// Load reads configuration from a file. The format is determined by the
// extension; unknown extensions try YAML first, then JSON. Zero-valued
// fields fall back to the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, config)
	case ".json":
		err = json.Unmarshal(data, config)
	default:
		err = yaml.Unmarshal(data, config)
		if err != nil {
			err = json.Unmarshal(data, config)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks both sections
func (c *Config) Validate() error {
	if err := c.Engine.Validate(); err != nil {
		return fmt.Errorf("engine config: %w", err)
	}
	if err := c.Insights.Validate(); err != nil {
		return fmt.Errorf("insights config: %w", err)
	}
	return nil
}

// applyDefaults fills zero-valued fields with the shipped defaults.
// Partial config files are the normal case.
func (c *Config) applyDefaults() {
	defEngine := correlation.DefaultConfig()
	if c.Engine.MinDates == 0 {
		c.Engine.MinDates = defEngine.MinDates
	}
	if c.Engine.MaxLagDays == 0 {
		c.Engine.MaxLagDays = defEngine.MaxLagDays
	}
	if c.Engine.MinPairedPoints == 0 {
		c.Engine.MinPairedPoints = defEngine.MinPairedPoints
	}
	if c.Engine.LowExposureThreshold == 0 {
		c.Engine.LowExposureThreshold = defEngine.LowExposureThreshold
	}
	if c.Engine.HighExposureThreshold == 0 {
		c.Engine.HighExposureThreshold = defEngine.HighExposureThreshold
	}
	if c.Engine.MinBandDays == 0 {
		c.Engine.MinBandDays = defEngine.MinBandDays
	}
	if c.Engine.DoseResponseUplift == 0 {
		c.Engine.DoseResponseUplift = defEngine.DoseResponseUplift
	}
	if c.Engine.SignificanceLevel == 0 {
		c.Engine.SignificanceLevel = defEngine.SignificanceLevel
	}

	defInsights := insights.DefaultConfig()
	if c.Insights.StrongEvidenceScore == 0 {
		c.Insights.StrongEvidenceScore = defInsights.StrongEvidenceScore
	}
	if c.Insights.ModerateEvidenceScore == 0 {
		c.Insights.ModerateEvidenceScore = defInsights.ModerateEvidenceScore
	}
	if c.Insights.StrongStrengthScore == 0 {
		c.Insights.StrongStrengthScore = defInsights.StrongStrengthScore
	}
	if c.Insights.ModerateStrengthScore == 0 {
		c.Insights.ModerateStrengthScore = defInsights.ModerateStrengthScore
	}
	if c.Insights.MinEventsForPreview == 0 {
		c.Insights.MinEventsForPreview = defInsights.MinEventsForPreview
	}
	if c.Insights.MinEventsForReport == 0 {
		c.Insights.MinEventsForReport = defInsights.MinEventsForReport
	}
	if c.Insights.TimelineLimit == 0 {
		c.Insights.TimelineLimit = defInsights.TimelineLimit
	}
	if c.Insights.TimelineWindowDays == 0 {
		c.Insights.TimelineWindowDays = defInsights.TimelineWindowDays
	}
	if c.Insights.MaxDescriptionLength == 0 {
		c.Insights.MaxDescriptionLength = defInsights.MaxDescriptionLength
	}
}
