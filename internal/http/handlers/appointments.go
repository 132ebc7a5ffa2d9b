// Package handlers exposes the two voice-agent webhook tools over HTTP:
// POST /getAvailability and POST /bookingTime. Payload field names follow
// the agent's casing ("Date", "Time", "fullName"); matching is
// case-insensitive so conventional lowercase bodies work too.
package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/plopez206/Voice-Assitant/internal/availability"
	"github.com/plopez206/Voice-Assitant/internal/schedule"
	"github.com/plopez206/Voice-Assitant/pkg/logging"
)

// AppointmentsHandler handles availability lookups and bookings.
type AppointmentsHandler struct {
	svc    *availability.Service
	logger *logging.Logger
}

// NewAppointmentsHandler creates a new appointments handler.
func NewAppointmentsHandler(svc *availability.Service, logger *logging.Logger) *AppointmentsHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &AppointmentsHandler{svc: svc, logger: logger}
}

type availabilityRequest struct {
	Date string `json:"date"`
	// Time is accepted but ignored; the agent sends it on both tools.
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
}

type bookingRequest struct {
	Date            string `json:"date"`
	Time            string `json:"time"`
	FullName        string `json:"fullName"`
	Phone           string `json:"phone"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
}

// GetAvailability handles POST /getAvailability.
func (h *AppointmentsHandler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	var req availabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	duration := req.DurationMinutes
	if duration == 0 {
		duration = int(h.svc.DefaultDuration().Minutes())
	}

	slots, err := h.svc.GetAvailability(r.Context(), req.Date, duration)
	if err != nil {
		h.writeServiceError(w, err, "availability lookup failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(slots)
}

// BookAppointment handles POST /bookingTime. The agent sends a date and a
// wall-clock time; the slot ends one configured granule after it unless
// durationMinutes overrides that.
func (h *AppointmentsHandler) BookAppointment(w http.ResponseWriter, r *http.Request) {
	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	date, err := schedule.ParseDate(req.Date)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	clock, err := schedule.ParseClock(req.Time)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	duration := h.svc.DefaultDuration()
	if req.DurationMinutes > 0 {
		duration = time.Duration(req.DurationMinutes) * time.Minute
	}

	start := schedule.At(date, clock, h.svc.Location())
	description := req.Description
	if description == "" {
		description = "Reservado vía Al Norte AI"
	}

	event, err := h.svc.BookAppointment(r.Context(), availability.BookingRequest{
		Name:        req.FullName,
		Phone:       req.Phone,
		Start:       start,
		End:         start.Add(duration),
		Description: description,
	})
	if err != nil {
		h.writeServiceError(w, err, "booking failed")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(event)
}

// HealthCheck handles GET /health.
func (h *AppointmentsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// Index handles GET / with a short plain help page.
func (h *AppointmentsHandler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(`Welcome to the Al Norte AI Appointment API!<br>
This API allows you to check availability and book appointments.<br>
<ul>
    <li><code>POST /getAvailability</code> - Check available appointment slots.</li>
    <li><code>POST /bookingTime</code> - Book an appointment.</li>
</ul>
`))
}

// writeServiceError maps service failures onto status codes: validation
// errors are the caller's fault, everything else means the calendar
// backend call failed.
func (h *AppointmentsHandler) writeServiceError(w http.ResponseWriter, err error, logMsg string) {
	if availability.IsValidationErr(err) {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.logger.Error(logMsg, "error", err)
	jsonError(w, "calendar backend unavailable", http.StatusBadGateway)
}

// jsonError writes a JSON error body with the given status code.
func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
