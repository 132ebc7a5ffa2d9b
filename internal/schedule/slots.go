package schedule

import (
	"fmt"
	"time"
)

// Slots walks the working window in fixed-size steps and returns the
// candidate intervals [t, t+d) with t advancing by d. The last slot must
// fit entirely inside the window; there is no partial trailing slot.
// A duration longer than the window yields an empty result, not an error.
func Slots(w Window, d time.Duration) ([]Interval, error) {
	if d <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDuration, d)
	}
	var out []Interval
	for t := w.Start; !t.Add(d).After(w.End); t = t.Add(d) {
		out = append(out, Interval{Start: t, End: t.Add(d)})
	}
	return out, nil
}

// FilterBusy retains the candidates that overlap no busy interval,
// preserving candidate order. Busy order and duplicates are irrelevant.
// Both sets are bounded by a single working day, so the quadratic scan
// is fine.
func FilterBusy(candidates, busy []Interval) []Interval {
	free := make([]Interval, 0, len(candidates))
	for _, c := range candidates {
		conflict := false
		for _, b := range busy {
			if Overlaps(c, b) {
				conflict = true
				break
			}
		}
		if !conflict {
			free = append(free, c)
		}
	}
	return free
}
