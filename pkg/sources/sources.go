// Package sources defines the event-retrieval boundary of the engine.
// Implementations hand the engine event lists already filtered to one
// user and window; the engine performs no filtering of its own.
package sources

import (
	"context"
	"time"

	"github.com/glutara/glutara/pkg/domain"
)

// EventSource supplies both event streams for an analysis window.
// A zero start or end leaves that side of the window open.
type EventSource interface {
	Events(ctx context.Context, start, end time.Time) ([]domain.ExposureEvent, []domain.OutcomeEvent, error)
}
