// Package file implements sources.EventSource over a local event-log
// file. The CLI uses it to analyze exported logs; the format is sniffed
// from the extension, YAML or JSON.
package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/glutara/glutara/pkg/domain"
)

// eventLog is the on-disk shape of an exported event log
type eventLog struct {
	Exposures []domain.ExposureEvent `yaml:"exposures" json:"exposures"`
	Outcomes  []domain.OutcomeEvent  `yaml:"outcomes" json:"outcomes"`
}

// Source reads exposure and outcome events from one file
type Source struct {
	logger *zap.Logger
	path   string
}

// New creates a file-backed event source
func New(logger *zap.Logger, path string) *Source {
	return &Source{logger: logger, path: path}
}

// Events loads the file, validates every event, assigns IDs to events
// that arrived without one, and returns the streams filtered to
// [start, end]. A zero start or end leaves that side open.
func (s *Source) Events(ctx context.Context, start, end time.Time) ([]domain.ExposureEvent, []domain.OutcomeEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read event log: %w", err)
	}

	log := &eventLog{}
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, log)
	case ".json":
		err = json.Unmarshal(data, log)
	default:
		// Try YAML first, then JSON
		err = yaml.Unmarshal(data, log)
		if err != nil {
			err = json.Unmarshal(data, log)
		}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse event log %s: %w", s.path, err)
	}

	exposures := make([]domain.ExposureEvent, 0, len(log.Exposures))
	for i, e := range log.Exposures {
		if err := e.Validate(); err != nil {
			return nil, nil, fmt.Errorf("event log %s: exposure %d: %w", s.path, i, err)
		}
		if !inWindow(e.Timestamp, start, end) {
			continue
		}
		if e.ID == "" {
			e.ID = domain.NewEventID()
		}
		exposures = append(exposures, e)
	}

	outcomes := make([]domain.OutcomeEvent, 0, len(log.Outcomes))
	for i, o := range log.Outcomes {
		if err := o.Validate(); err != nil {
			return nil, nil, fmt.Errorf("event log %s: outcome %d: %w", s.path, i, err)
		}
		if !inWindow(o.Timestamp, start, end) {
			continue
		}
		if o.ID == "" {
			o.ID = domain.NewEventID()
		}
		outcomes = append(outcomes, o)
	}

	s.logger.Debug("Loaded event log",
		zap.String("path", s.path),
		zap.Int("exposures", len(exposures)),
		zap.Int("outcomes", len(outcomes)))

	return exposures, outcomes, nil
}

func inWindow(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && t.After(end) {
		return false
	}
	return true
}
