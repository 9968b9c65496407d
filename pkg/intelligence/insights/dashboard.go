// Package insights builds the consumer-facing views on top of the
// correlation engine: the rolling dashboard summary and the full
// narrative report.
package insights

import (
	"context"
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/glutara/glutara/pkg/domain"
	"github.com/glutara/glutara/pkg/intelligence/correlation"
	"github.com/glutara/glutara/pkg/intelligence/stats"
)

// Summarizer produces dashboard summaries from raw event lists
type Summarizer struct {
	logger *zap.Logger
	engine *correlation.Engine
	config Config

	// now is swappable for tests; the timeline window is relative to it
	now func() time.Time
}

// NewSummarizer creates a dashboard summarizer backed by the given engine
func NewSummarizer(logger *zap.Logger, engine *correlation.Engine, config Config) (*Summarizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Summarizer{
		logger: logger,
		engine: engine,
		config: config,
		now:    time.Now,
	}, nil
}

// Summarize computes the rolling dashboard view: totals, distinct-day
// counts, stream averages, an optional correlation preview and a merged
// recent timeline. The preview only appears once both streams carry at
// least MinEventsForPreview events; it is the winning lag correlation as
// a 0-100 magnitude, without the significance test.
func (s *Summarizer) Summarize(ctx context.Context, exposures []domain.ExposureEvent, outcomes []domain.OutcomeEvent) domain.DashboardSummary {
	heavyDays := make(map[domain.Date]struct{})
	outcomeDays := make(map[domain.Date]struct{})

	magnitudes := make([]float64, 0, len(exposures))
	severities := make([]float64, 0, len(outcomes))

	for _, e := range exposures {
		if e.Magnitude >= s.engine.Config().HighExposureThreshold {
			heavyDays[domain.DateOf(e.Timestamp)] = struct{}{}
		}
		magnitudes = append(magnitudes, e.Magnitude)
	}
	for _, o := range outcomes {
		outcomeDays[domain.DateOf(o.Timestamp)] = struct{}{}
		severities = append(severities, o.Severity)
	}

	summary := domain.DashboardSummary{
		TotalExposures:    len(exposures),
		TotalOutcomes:     len(outcomes),
		ExposureHeavyDays: len(heavyDays),
		OutcomeDays:       len(outcomeDays),
		AvgExposure:       round1(stats.Mean(magnitudes)),
		AvgOutcome:        round1(stats.Mean(severities)),
		RecentTimeline:    s.recentTimeline(exposures, outcomes),
	}

	if len(exposures) >= s.config.MinEventsForPreview && len(outcomes) >= s.config.MinEventsForPreview {
		lag := s.engine.BestLag(exposures, outcomes)
		preview := round1(math.Abs(lag.Correlation) * 100)
		summary.CorrelationPreview = &preview
	}

	s.logger.Debug("Built dashboard summary",
		zap.Int("total_exposures", summary.TotalExposures),
		zap.Int("total_outcomes", summary.TotalOutcomes),
		zap.Int("timeline_entries", len(summary.RecentTimeline)),
		zap.Bool("preview", summary.CorrelationPreview != nil))

	return summary
}

// recentTimeline merges both streams inside the recent window into one
// reverse-chronological list, capped at TimelineLimit entries and tagged
// by event kind.
func (s *Summarizer) recentTimeline(exposures []domain.ExposureEvent, outcomes []domain.OutcomeEvent) []domain.TimelineEntry {
	cutoff := s.now().AddDate(0, 0, -s.config.TimelineWindowDays)

	entries := make([]domain.TimelineEntry, 0, len(exposures)+len(outcomes))
	for _, e := range exposures {
		if e.Timestamp.Before(cutoff) {
			continue
		}
		magnitude := e.Magnitude
		entries = append(entries, domain.TimelineEntry{
			ID:          e.ID,
			Timestamp:   e.Timestamp,
			EntryType:   domain.EventKindExposure,
			Description: truncate(e.Description, s.config.MaxDescriptionLength),
			Magnitude:   &magnitude,
		})
	}
	for _, o := range outcomes {
		if o.Timestamp.Before(cutoff) {
			continue
		}
		severity := o.Severity
		entries = append(entries, domain.TimelineEntry{
			ID:          o.ID,
			Timestamp:   o.Timestamp,
			EntryType:   domain.EventKindOutcome,
			Description: truncate(o.Description, s.config.MaxDescriptionLength),
			Severity:    &severity,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp.After(entries[j].Timestamp)
	})

	if len(entries) > s.config.TimelineLimit {
		entries = entries[:s.config.TimelineLimit]
	}
	return entries
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
