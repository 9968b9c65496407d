package insights

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/glutara/glutara/pkg/domain"
	"github.com/glutara/glutara/pkg/intelligence/correlation"
	"github.com/glutara/glutara/pkg/intelligence/stats"
)

// Correlation strength labels for pattern analysis
const (
	StrengthStrong   = "strong"
	StrengthModerate = "moderate"
	StrengthWeak     = "weak"
)

// Reporter builds full narrative reports for an analysis window
type Reporter struct {
	logger *zap.Logger
	engine *correlation.Engine
	config Config
	tracer trace.Tracer

	// now stamps GeneratedAt; swappable for tests
	now func() time.Time
}

// NewReporter creates a report generator backed by the given engine
func NewReporter(logger *zap.Logger, engine *correlation.Engine, config Config) (*Reporter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Reporter{
		logger: logger,
		engine: engine,
		config: config,
		tracer: otel.Tracer("glutara.intelligence.insights"),
		now:    time.Now,
	}, nil
}

// CheckPrecondition is the gate the calling layer must apply before
// Generate: both streams need at least MinEventsForReport events.
// Returns a wrapped domain.ErrInsufficientData otherwise.
func (r *Reporter) CheckPrecondition(exposures []domain.ExposureEvent, outcomes []domain.OutcomeEvent) error {
	min := r.config.MinEventsForReport
	if len(exposures) < min || len(outcomes) < min {
		return fmt.Errorf("%w: need at least %d meals and %d symptoms, have %d and %d",
			domain.ErrInsufficientData, min, min, len(exposures), len(outcomes))
	}
	return nil
}

// Generate builds the full report for one window: the verdict, the
// gluten-intolerance flag, per-category symptom statistics, exposure
// statistics, pattern analysis and a tiered recommendation. The caller
// is responsible for applying CheckPrecondition first and for persisting
// the result.
func (r *Reporter) Generate(ctx context.Context, exposures []domain.ExposureEvent, outcomes []domain.OutcomeEvent, windowStart, windowEnd time.Time) *domain.Report {
	ctx, span := r.tracer.Start(ctx, "insights.generate_report")
	defer span.End()

	verdict := r.engine.ComputeVerdict(ctx, exposures, outcomes)
	detected := verdict.CorrelationScore >= r.config.StrongEvidenceScore && verdict.Significant

	report := &domain.Report{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		GeneratedAt: r.now().UTC(),

		Verdict:                   verdict,
		GlutenIntoleranceDetected: detected,
		PatternAnalysis: domain.PatternAnalysis{
			TimeLagHours:        verdict.TimeLagHours,
			DoseResponse:        verdict.DoseResponse,
			CorrelationStrength: r.strengthLabel(verdict.CorrelationScore),
		},
		SymptomSummary:  r.summarizeSymptoms(outcomes),
		ExposureSummary: r.summarizeExposures(exposures),
		Recommendation:  r.buildRecommendation(verdict, detected),

		TotalExposures:  len(exposures),
		TotalOutcomes:   len(outcomes),
		ExposureDays:    r.exposureDays(exposures),
		OutcomeFreeDays: outcomeFreeDays(outcomes, windowStart, windowEnd),
	}

	span.SetAttributes(
		attribute.Bool("gluten_intolerance_detected", detected),
		attribute.String("correlation_strength", report.PatternAnalysis.CorrelationStrength),
	)
	r.logger.Info("Generated analysis report",
		zap.Time("window_start", windowStart),
		zap.Time("window_end", windowEnd),
		zap.Float64("correlation_score", verdict.CorrelationScore),
		zap.Bool("detected", detected))

	return report
}

// strengthLabel maps a 0-100 correlation score onto the coarse
// strong/moderate/weak label used in pattern analysis. Deliberately a
// different scale from the recommendation tiers.
func (r *Reporter) strengthLabel(score float64) string {
	switch {
	case score >= r.config.StrongStrengthScore:
		return StrengthStrong
	case score >= r.config.ModerateStrengthScore:
		return StrengthModerate
	default:
		return StrengthWeak
	}
}

// summarizeSymptoms groups outcomes by category with count, average and
// max severity. Uncategorized events land in the "general" bucket.
func (r *Reporter) summarizeSymptoms(outcomes []domain.OutcomeEvent) map[string]domain.SymptomStats {
	byCategory := make(map[string][]float64)
	for _, o := range outcomes {
		category := o.Category
		if category == "" {
			category = "general"
		}
		byCategory[category] = append(byCategory[category], o.Severity)
	}

	summary := make(map[string]domain.SymptomStats, len(byCategory))
	for category, severities := range byCategory {
		maxSeverity := severities[0]
		for _, s := range severities[1:] {
			if s > maxSeverity {
				maxSeverity = s
			}
		}
		summary[category] = domain.SymptomStats{
			Count:       len(severities),
			AvgSeverity: round1(stats.Mean(severities)),
			MaxSeverity: round1(maxSeverity),
		}
	}
	return summary
}

// summarizeExposures counts high- and low-band exposures and the overall
// average magnitude, reusing the engine's exposure band thresholds.
func (r *Reporter) summarizeExposures(exposures []domain.ExposureEvent) domain.ExposureSummary {
	cfg := r.engine.Config()

	summary := domain.ExposureSummary{TotalExposures: len(exposures)}
	magnitudes := make([]float64, 0, len(exposures))
	for _, e := range exposures {
		magnitudes = append(magnitudes, e.Magnitude)
		if e.Magnitude >= cfg.HighExposureThreshold {
			summary.HighExposures++
		} else if e.Magnitude < cfg.LowExposureThreshold {
			summary.LowExposures++
		}
	}
	summary.AvgMagnitude = round1(stats.Mean(magnitudes))
	return summary
}

// exposureDays counts distinct dates with at least one high-band event
func (r *Reporter) exposureDays(exposures []domain.ExposureEvent) int {
	threshold := r.engine.Config().HighExposureThreshold
	days := make(map[domain.Date]struct{})
	for _, e := range exposures {
		if e.Magnitude >= threshold {
			days[domain.DateOf(e.Timestamp)] = struct{}{}
		}
	}
	return len(days)
}

// outcomeFreeDays is the window length in whole days minus distinct
// symptom dates, floored at zero.
func outcomeFreeDays(outcomes []domain.OutcomeEvent, windowStart, windowEnd time.Time) int {
	days := make(map[domain.Date]struct{})
	for _, o := range outcomes {
		days[domain.DateOf(o.Timestamp)] = struct{}{}
	}

	total := int(windowEnd.Sub(windowStart).Hours() / 24)
	free := total - len(days)
	if free < 0 {
		return 0
	}
	return free
}

// buildRecommendation synthesizes the tiered recommendation text
func (r *Reporter) buildRecommendation(verdict domain.CorrelationVerdict, detected bool) string {
	if detected {
		var b strings.Builder
		fmt.Fprintf(&b, "STRONG EVIDENCE of gluten intolerance detected (%.1f%% correlation). ", verdict.CorrelationScore)
		b.WriteString("Recommendation: Consult with a healthcare provider about gluten elimination. ")
		if verdict.TimeLagHours > 0 {
			fmt.Fprintf(&b, "Symptoms typically appear %d hours after gluten consumption. ", verdict.TimeLagHours)
		}
		if verdict.DoseResponse {
			b.WriteString("Higher gluten intake correlates with worse symptoms. ")
		}
		return b.String()
	}

	if verdict.CorrelationScore >= r.config.ModerateEvidenceScore {
		return fmt.Sprintf("MODERATE correlation detected (%.1f%%). Continue tracking for 2-4 more weeks to gather more data. "+
			"Consider reducing gluten intake to see if symptoms improve.", verdict.CorrelationScore)
	}

	return fmt.Sprintf("LOW correlation detected (%.1f%%). Gluten may not be the primary trigger for your symptoms. "+
		"Consider tracking other potential triggers (dairy, sugar, stress, etc.).", verdict.CorrelationScore)
}
