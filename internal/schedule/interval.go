// Package schedule implements the slot-availability computation: half-open
// time intervals, working-window slot generation, and busy-set filtering.
// All comparisons happen on absolute instants; timezones are applied only
// when a wall-clock date/time is converted in or formatted out.
package schedule

import "time"

// Interval is a half-open time interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Valid reports whether the interval has positive length.
func (iv Interval) Valid() bool {
	return iv.Start.Before(iv.End)
}

// Duration returns End - Start.
func (iv Interval) Duration() time.Duration {
	return iv.End.Sub(iv.Start)
}

// Overlaps reports whether a and b share any instant. Boundaries are
// exclusive on the end side, so back-to-back intervals do not overlap.
func Overlaps(a, b Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}
