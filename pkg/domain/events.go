package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EventID is a strongly-typed event identifier
type EventID string

// NewEventID generates a fresh random event identifier
func NewEventID() EventID {
	return EventID(uuid.NewString())
}

// EventKind distinguishes the two logged event streams
type EventKind string

const (
	EventKindExposure EventKind = "exposure"
	EventKindOutcome  EventKind = "outcome"
)

// ExposureEvent is one logged occurrence carrying a gluten risk score.
// Produced by collaborators (meal logging, photo/NLP extraction); the
// engine only reads it.
type ExposureEvent struct {
	ID          EventID   `json:"id,omitempty" yaml:"id,omitempty"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Magnitude   float64   `json:"magnitude" yaml:"magnitude"` // 0-100 risk score
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate checks the magnitude range
func (e ExposureEvent) Validate() error {
	if e.Timestamp.IsZero() {
		return fmt.Errorf("exposure event: missing timestamp")
	}
	if e.Magnitude < 0 || e.Magnitude > 100 {
		return fmt.Errorf("exposure event: magnitude %.2f outside [0,100]", e.Magnitude)
	}
	return nil
}

// OutcomeEvent is one logged symptom occurrence with a severity score.
// Category groups symptoms of the same type; empty means uncategorized.
type OutcomeEvent struct {
	ID          EventID   `json:"id,omitempty" yaml:"id,omitempty"`
	Timestamp   time.Time `json:"timestamp" yaml:"timestamp"`
	Severity    float64   `json:"severity" yaml:"severity"` // 0-10
	Category    string    `json:"category,omitempty" yaml:"category,omitempty"`
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
}

// Validate checks the severity range
func (e OutcomeEvent) Validate() error {
	if e.Timestamp.IsZero() {
		return fmt.Errorf("outcome event: missing timestamp")
	}
	if e.Severity < 0 || e.Severity > 10 {
		return fmt.Errorf("outcome event: severity %.2f outside [0,10]", e.Severity)
	}
	return nil
}

// Date is a calendar date derived from an event's local timestamp.
// Comparable, so it can key maps directly instead of formatted strings.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf extracts the calendar date of an instant.
// No timezone normalization beyond the instant's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Before reports whether d is earlier than other
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}
