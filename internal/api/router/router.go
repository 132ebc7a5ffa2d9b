package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/plopez206/Voice-Assitant/internal/http/handlers"
	httpmiddleware "github.com/plopez206/Voice-Assitant/internal/http/middleware"
	"github.com/plopez206/Voice-Assitant/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	Appointments       *handlers.AppointmentsHandler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/", cfg.Appointments.Index)
	r.Get("/health", cfg.Appointments.HealthCheck)

	// Voice-agent webhook tools.
	r.Post("/getAvailability", cfg.Appointments.GetAvailability)
	r.Post("/bookingTime", cfg.Appointments.BookAppointment)

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
