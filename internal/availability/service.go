// Package availability orchestrates the two public operations: find open
// slots on a day, and book an appointment. It holds no state between
// calls; the calendar backend is the system of record.
package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/plopez206/Voice-Assitant/internal/calendar"
	"github.com/plopez206/Voice-Assitant/internal/observability/metrics"
	"github.com/plopez206/Voice-Assitant/internal/schedule"
	"github.com/plopez206/Voice-Assitant/pkg/logging"
)

var tracer = otel.Tracer("voiceassistant.internal.availability")

// ErrInvalidInput is returned when a booking request is missing required
// fields or has end <= start.
var ErrInvalidInput = errors.New("invalid booking input")

// Config is the explicit scheduling policy handed to the service at
// construction. Nothing here is read from the environment.
type Config struct {
	CalendarID      string
	Timezone        string
	WorkStart       string // "HH:MM" local open time
	WorkEnd         string // "HH:MM" local close time
	SlotGranularity time.Duration
}

// Slot is one open appointment interval, RFC 3339 formatted in the
// service's timezone.
type Slot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// BookingRequest describes an appointment to create.
type BookingRequest struct {
	Name        string
	Phone       string
	Start       time.Time
	End         time.Time
	Description string
}

// Service computes availability and books appointments against the
// calendar backend.
type Service struct {
	backend    calendar.Backend
	calendarID string
	timezone   string
	loc        *time.Location
	workStart  schedule.Clock
	workEnd    schedule.Clock
	granule    time.Duration
	logger     *logging.Logger
	metrics    *metrics.AppointmentMetrics
}

// NewService validates the config and constructs a Service.
func NewService(cfg Config, backend calendar.Backend, logger *logging.Logger, m *metrics.AppointmentMetrics) (*Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("availability: backend required")
	}
	if logger == nil {
		logger = logging.Default()
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("availability: load timezone %q: %w", cfg.Timezone, err)
	}
	workStart, err := schedule.ParseClock(cfg.WorkStart)
	if err != nil {
		return nil, fmt.Errorf("availability: work start: %w", err)
	}
	workEnd, err := schedule.ParseClock(cfg.WorkEnd)
	if err != nil {
		return nil, fmt.Errorf("availability: work end: %w", err)
	}
	if workStart >= workEnd {
		return nil, fmt.Errorf("availability: working window %s-%s: %w", workStart, workEnd, schedule.ErrInvalidTime)
	}
	if cfg.SlotGranularity <= 0 {
		return nil, fmt.Errorf("availability: slot granularity: %w", schedule.ErrInvalidDuration)
	}

	calendarID := cfg.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	return &Service{
		backend:    backend,
		calendarID: calendarID,
		timezone:   cfg.Timezone,
		loc:        loc,
		workStart:  workStart,
		workEnd:    workEnd,
		granule:    cfg.SlotGranularity,
		logger:     logger,
		metrics:    m,
	}, nil
}

// DefaultDuration returns the configured slot granularity, used when a
// request does not ask for a specific duration.
func (s *Service) DefaultDuration() time.Duration {
	return s.granule
}

// Location returns the service's configured timezone location.
func (s *Service) Location() *time.Location {
	return s.loc
}

// GetAvailability returns the open, non-overlapping slots of the given
// duration on the given day, in chronological order. All validation runs
// before the single outbound busy-interval fetch; repeated calls with an
// unchanged calendar yield identical output.
func (s *Service) GetAvailability(ctx context.Context, date string, durationMinutes int) ([]Slot, error) {
	ctx, span := tracer.Start(ctx, "availability.get")
	defer span.End()
	span.SetAttributes(
		attribute.String("appointments.date", date),
		attribute.Int("appointments.duration_minutes", durationMinutes),
	)

	day, err := schedule.ParseDate(date)
	if err != nil {
		s.metrics.ObserveAvailability("invalid")
		return nil, err
	}
	if durationMinutes <= 0 {
		s.metrics.ObserveAvailability("invalid")
		return nil, fmt.Errorf("%w: %d minutes", schedule.ErrInvalidDuration, durationMinutes)
	}
	duration := time.Duration(durationMinutes) * time.Minute

	window, err := schedule.NewWindow(day, s.workStart, s.workEnd, s.loc)
	if err != nil {
		s.metrics.ObserveAvailability("invalid")
		return nil, err
	}

	started := time.Now()
	entries, err := s.backend.FreeBusy(ctx, s.calendarID, window.Start, window.End, s.timezone)
	s.metrics.ObserveBackendLatency("freebusy", time.Since(started).Seconds())
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveAvailability("backend_error")
		return nil, err
	}

	candidates, err := schedule.Slots(window, duration)
	if err != nil {
		s.metrics.ObserveAvailability("invalid")
		return nil, err
	}
	free := schedule.FilterBusy(candidates, calendar.Intervals(entries, s.logger))

	slots := make([]Slot, 0, len(free))
	for _, iv := range free {
		slots = append(slots, Slot{
			Start: iv.Start.In(s.loc).Format(time.RFC3339),
			End:   iv.End.In(s.loc).Format(time.RFC3339),
		})
	}

	s.logger.Info("availability computed",
		"date", date,
		"duration_minutes", durationMinutes,
		"busy", len(entries),
		"free", len(slots),
	)
	s.metrics.ObserveAvailability("ok")
	return slots, nil
}

// BookAppointment performs the single outbound event insert. It does not
// check for conflicts: callers are expected to have consulted
// GetAvailability first, and two concurrent bookings for the same slot can
// both succeed unless the backend enforces exclusivity.
func (s *Service) BookAppointment(ctx context.Context, req BookingRequest) (*calendar.Event, error) {
	ctx, span := tracer.Start(ctx, "availability.book")
	defer span.End()

	if err := validateBooking(req); err != nil {
		s.metrics.ObserveBooking("invalid")
		return nil, err
	}
	span.SetAttributes(attribute.String("appointments.start", req.Start.Format(time.RFC3339)))

	input := calendar.EventInput{
		Summary:     "Cita – " + req.Name,
		Description: req.Description,
		Start:       req.Start,
		End:         req.End,
		Timezone:    s.timezone,
	}
	if req.Phone != "" {
		input.Attendee = &calendar.Attendee{
			DisplayName: req.Name,
			Email:       req.Phone + "@example.invalid",
		}
	}

	started := time.Now()
	event, err := s.backend.InsertEvent(ctx, s.calendarID, input)
	s.metrics.ObserveBackendLatency("insert", time.Since(started).Seconds())
	if err != nil {
		span.RecordError(err)
		s.metrics.ObserveBooking("backend_error")
		return nil, err
	}

	s.logger.Info("appointment booked",
		"event_id", event.ID,
		"start", req.Start.Format(time.RFC3339),
		"end", req.End.Format(time.RFC3339),
	)
	s.metrics.ObserveBooking("ok")
	return event, nil
}

func validateBooking(req BookingRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}
	if !req.End.After(req.Start) {
		return fmt.Errorf("%w: end must be after start", ErrInvalidInput)
	}
	return nil
}

// IsValidationErr reports whether err is one of the synchronous validation
// failures raised before any outbound call. Anything else that surfaces
// from the service is a collaborator failure.
func IsValidationErr(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, schedule.ErrInvalidDate) ||
		errors.Is(err, schedule.ErrInvalidTime) ||
		errors.Is(err, schedule.ErrInvalidDuration)
}
