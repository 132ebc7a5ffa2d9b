package calendar

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	calendar "google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/plopez206/Voice-Assitant/pkg/logging"
)

// wallClockLayout is the zoneless datetime format Google Calendar expects
// when an explicit TimeZone identifier accompanies the value.
const wallClockLayout = "2006-01-02T15:04:05"

// GoogleBackend implements Backend against the Google Calendar v3 API
// using a service-account credential.
type GoogleBackend struct {
	svc    *calendar.Service
	logger *logging.Logger
}

// NewGoogleBackend builds a backend from service-account JSON credentials.
func NewGoogleBackend(ctx context.Context, credentialsJSON []byte, logger *logging.Logger) (*GoogleBackend, error) {
	if len(credentialsJSON) == 0 {
		return nil, fmt.Errorf("calendar: missing Google credentials")
	}
	if logger == nil {
		logger = logging.Default()
	}

	conf, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarScope)
	if err != nil {
		return nil, fmt.Errorf("calendar: parse credentials: %w", err)
	}

	svc, err := calendar.NewService(ctx, option.WithHTTPClient(conf.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("calendar: create service: %w", err)
	}

	return &GoogleBackend{svc: svc, logger: logger}, nil
}

// FreeBusy queries committed time on the calendar within [from, to].
func (g *GoogleBackend) FreeBusy(ctx context.Context, calendarID string, from, to time.Time, timezone string) ([]BusyInterval, error) {
	req := &calendar.FreeBusyRequest{
		TimeMin:  from.Format(time.RFC3339),
		TimeMax:  to.Format(time.RFC3339),
		TimeZone: timezone,
		Items:    []*calendar.FreeBusyRequestItem{{Id: calendarID}},
	}

	resp, err := g.svc.Freebusy.Query(req).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: freebusy query: %w", err)
	}

	cal, ok := resp.Calendars[calendarID]
	if !ok {
		// No data for the calendar means nothing busy, not an error.
		return nil, nil
	}

	busy := make([]BusyInterval, 0, len(cal.Busy))
	for _, period := range cal.Busy {
		if period == nil {
			continue
		}
		busy = append(busy, BusyInterval{Start: period.Start, End: period.End})
	}
	return busy, nil
}

// InsertEvent creates one event on the calendar. Start and end are sent as
// local wall-clock time plus the IANA timezone identifier.
func (g *GoogleBackend) InsertEvent(ctx context.Context, calendarID string, input EventInput) (*Event, error) {
	loc, err := time.LoadLocation(input.Timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar: load timezone %q: %w", input.Timezone, err)
	}

	event := &calendar.Event{
		Summary:     input.Summary,
		Description: input.Description,
		Start: &calendar.EventDateTime{
			DateTime: input.Start.In(loc).Format(wallClockLayout),
			TimeZone: input.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: input.End.In(loc).Format(wallClockLayout),
			TimeZone: input.Timezone,
		},
	}
	if input.Attendee != nil {
		event.Attendees = []*calendar.EventAttendee{{
			DisplayName: input.Attendee.DisplayName,
			Email:       input.Attendee.Email,
		}}
	}

	created, err := g.svc.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("calendar: insert event: %w", err)
	}

	g.logger.Info("event created", "calendar_id", calendarID, "event_id", created.Id)
	return toEvent(created), nil
}

func toEvent(e *calendar.Event) *Event {
	out := &Event{
		ID:      e.Id,
		Status:  e.Status,
		Summary: e.Summary,
		Link:    e.HtmlLink,
	}
	if e.Start != nil {
		out.Start = e.Start.DateTime
	}
	if e.End != nil {
		out.End = e.End.DateTime
	}
	return out
}
