// Package correlation implements the analytical core of Glutara: given a
// window of exposure and outcome events it decides whether the outcomes
// are statistically explained by the exposures, at what day lag, and
// whether the relationship strengthens with exposure magnitude.
//
// The engine is a pure, stateless batch computation: it performs no I/O,
// holds no mutable state between calls, and any number of invocations may
// run in parallel. Callers supply event lists already filtered to one
// user and window.
package correlation

import (
	"context"
	"math"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/glutara/glutara/pkg/domain"
)

// Engine computes correlation verdicts over event windows
type Engine struct {
	logger *zap.Logger
	config Config

	// OTEL instrumentation
	tracer           trace.Tracer
	verdictsComputed metric.Int64Counter
	computeTime      metric.Float64Histogram
}

// NewEngine creates a correlation engine with the given policy config
func NewEngine(logger *zap.Logger, config Config) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	tracer := otel.Tracer("glutara.intelligence.correlation")
	meter := otel.Meter("glutara.intelligence.correlation")

	verdictsComputed, err := meter.Int64Counter(
		"correlation_verdicts_computed_total",
		metric.WithDescription("Total number of correlation verdicts computed"),
	)
	if err != nil {
		logger.Warn("Failed to create verdict counter", zap.Error(err))
	}

	computeTime, err := meter.Float64Histogram(
		"correlation_compute_duration_ms",
		metric.WithDescription("Time taken to compute a verdict in milliseconds"),
	)
	if err != nil {
		logger.Warn("Failed to create compute time histogram", zap.Error(err))
	}

	return &Engine{
		logger:           logger,
		config:           config,
		tracer:           tracer,
		verdictsComputed: verdictsComputed,
		computeTime:      computeTime,
	}, nil
}

// ComputeVerdict runs the full pipeline: daily aggregation, lag search,
// significance estimation and dose-response analysis, composed into one
// verdict. Deterministic for fixed inputs; degenerate windows (fewer than
// MinDates distinct dates) yield the zero-correlation default instead of
// an error.
func (e *Engine) ComputeVerdict(ctx context.Context, exposures []domain.ExposureEvent, outcomes []domain.OutcomeEvent) domain.CorrelationVerdict {
	ctx, span := e.tracer.Start(ctx, "engine.compute_verdict")
	defer span.End()
	start := time.Now()

	buckets := AggregateDaily(exposures, outcomes)
	lag := e.searchBestLag(buckets)
	_, confidence, significant := e.significance(lag.Correlation, lag.SampleSize)

	verdict := domain.CorrelationVerdict{
		CorrelationScore: round1(math.Abs(lag.Correlation) * 100),
		ConfidenceLevel:  round3(confidence),
		Significant:      significant,
		TimeLagHours:     lag.LagDays * 24,
		DoseResponse:     e.doseResponse(buckets),
	}

	span.SetAttributes(
		attribute.Float64("correlation_score", verdict.CorrelationScore),
		attribute.Bool("significant", verdict.Significant),
		attribute.Int("lag_hours", verdict.TimeLagHours),
		attribute.Int("distinct_dates", len(buckets)),
	)
	if e.verdictsComputed != nil {
		e.verdictsComputed.Add(ctx, 1)
	}
	if e.computeTime != nil {
		e.computeTime.Record(ctx, float64(time.Since(start).Microseconds())/1000.0)
	}

	e.logger.Debug("Computed correlation verdict",
		zap.Int("exposures", len(exposures)),
		zap.Int("outcomes", len(outcomes)),
		zap.Int("distinct_dates", len(buckets)),
		zap.Float64("correlation_score", verdict.CorrelationScore),
		zap.Bool("significant", verdict.Significant),
		zap.Int("time_lag_hours", verdict.TimeLagHours),
		zap.Bool("dose_response", verdict.DoseResponse))

	return verdict
}

// BestLag exposes the raw lag-search result without the significance
// test. The dashboard preview uses this to avoid paying for a p-value it
// never shows.
func (e *Engine) BestLag(exposures []domain.ExposureEvent, outcomes []domain.OutcomeEvent) domain.LagResult {
	return e.searchBestLag(AggregateDaily(exposures, outcomes))
}

// Config returns the engine's policy configuration
func (e *Engine) Config() Config {
	return e.config
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
