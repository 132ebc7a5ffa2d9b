package calendar

import (
	"time"

	"github.com/plopez206/Voice-Assitant/internal/schedule"
	"github.com/plopez206/Voice-Assitant/pkg/logging"
)

// Intervals converts wire busy entries into schedule intervals. Entries
// with a missing or unparseable boundary carry no usable conflict
// information and are dropped; each drop is logged at warn level because
// a dropped entry can under-report busy time.
func Intervals(entries []BusyInterval, logger *logging.Logger) []schedule.Interval {
	if logger == nil {
		logger = logging.Default()
	}
	out := make([]schedule.Interval, 0, len(entries))
	for _, e := range entries {
		if e.Start == "" || e.End == "" {
			logger.Warn("dropping busy entry with missing boundary", "start", e.Start, "end", e.End)
			continue
		}
		start, err := time.Parse(time.RFC3339, e.Start)
		if err != nil {
			logger.Warn("dropping busy entry with bad start", "start", e.Start, "error", err)
			continue
		}
		end, err := time.Parse(time.RFC3339, e.End)
		if err != nil {
			logger.Warn("dropping busy entry with bad end", "end", e.End, "error", err)
			continue
		}
		iv := schedule.Interval{Start: start, End: end}
		if !iv.Valid() {
			logger.Warn("dropping empty busy entry", "start", e.Start, "end", e.End)
			continue
		}
		out = append(out, iv)
	}
	return out
}
