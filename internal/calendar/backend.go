// Package calendar is the boundary to the external calendar backend. The
// rest of the system talks to it through the Backend interface; the only
// implementation speaks to Google Calendar.
package calendar

import (
	"context"
	"time"
)

// BusyInterval is a committed time range as reported on the wire, ISO 8601
// timestamps. Either boundary may be absent in a malformed entry.
type BusyInterval struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// EventInput describes an event to insert. Start and End are absolute
// instants; Timezone is the IANA identifier the backend stores the event
// under (wall-clock + zone id, not a bare UTC offset).
type EventInput struct {
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
	Timezone    string
	Attendee    *Attendee
}

// Attendee is optional attendee info attached to an inserted event.
type Attendee struct {
	DisplayName string
	Email       string
}

// Event is the descriptor returned for a created event.
type Event struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Summary string `json:"summary"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Link    string `json:"htmlLink,omitempty"`
}

// Backend is the narrow contract this system needs from a calendar
// provider: read busy time for a range, and insert one event. Backend
// failures are propagated to callers unchanged; retries and timeouts are
// the implementation's concern, not the callers'.
type Backend interface {
	// FreeBusy returns the committed intervals on calendarID within
	// [from, to]. An empty result is a valid "nothing busy" answer.
	FreeBusy(ctx context.Context, calendarID string, from, to time.Time, timezone string) ([]BusyInterval, error)

	// InsertEvent creates a single event and returns its descriptor.
	InsertEvent(ctx context.Context, calendarID string, input EventInput) (*Event, error)
}
