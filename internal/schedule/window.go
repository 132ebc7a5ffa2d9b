package schedule

import (
	"fmt"
	"time"
)

// dateLayout is the only calendar-date format accepted from callers.
const dateLayout = "2006-01-02"

// Clock is a wall-clock time of day as minutes since midnight.
type Clock int

// clockLayouts are the accepted 24-hour wall-clock formats: "HH:MM", a
// single-digit hour, and "HH:MM:SS" as sent by some voice-agent payloads.
var clockLayouts = []string{"15:04", "3:04", "15:04:05"}

// ParseClock parses a 24-hour wall-clock time of day.
func ParseClock(v string) (Clock, error) {
	if v == "" {
		return 0, ErrInvalidTime
	}
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return Clock(t.Hour()*60 + t.Minute()), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidTime, v)
}

// String renders the clock back as "HH:MM".
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar date.
func ParseDate(v string) (time.Time, error) {
	d, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, v)
	}
	return d, nil
}

// At converts a calendar date plus a wall-clock time in loc to an absolute
// instant. This is the single wall-clock-to-instant conversion used
// everywhere; no call site computes UTC offsets by hand.
func At(date time.Time, c Clock, loc *time.Location) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), int(c)/60, int(c)%60, 0, 0, loc)
}

// Window is the daily span during which slots may be offered.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds the working window for a calendar date between the open
// and close wall-clock times in loc. open must precede close.
func NewWindow(date time.Time, open, close Clock, loc *time.Location) (Window, error) {
	if open >= close {
		return Window{}, fmt.Errorf("%w: working window %s-%s", ErrInvalidTime, open, close)
	}
	return Window{
		Start: At(date, open, loc),
		End:   At(date, close, loc),
	}, nil
}

// Interval returns the window as a half-open interval.
func (w Window) Interval() Interval {
	return Interval{Start: w.Start, End: w.End}
}
