package domain

import (
	"errors"
	"time"
)

var (
	// ErrInvalidInterval is returned when the interval start is not strictly before its end
	ErrInvalidInterval = errors.New("domain: interval start must be before end")

	// ErrPastStart is returned when the interval starts before the moment of validation
	ErrPastStart = errors.New("domain: interval start must not be in the past")
)

// Interval represents a half-open time range [Start, End).
// Start is inclusive, End is exclusive: two intervals touching at a boundary
// do not overlap. Both timestamps are kept in UTC.
type Interval struct {
	Start time.Time
	End   time.Time
}

// NewInterval builds an interval with both timestamps normalized to UTC
func NewInterval(start, end time.Time) Interval {
	return Interval{
		Start: start.UTC(),
		End:   end.UTC(),
	}
}

// Overlaps reports whether two half-open intervals share any instant.
// This is the single overlap predicate used everywhere in the system:
// a.Start < b.End && b.Start < a.End
func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Validate checks the interval against the given current time.
// Start must be strictly before End, and Start must not precede now
func (i Interval) Validate(now time.Time) error {
	if !i.Start.Before(i.End) {
		return ErrInvalidInterval
	}
	if i.Start.Before(now) {
		return ErrPastStart
	}
	return nil
}

// Duration returns the length of the interval
func (i Interval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}
