package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/plopez206/Voice-Assitant/internal/api/router"
	"github.com/plopez206/Voice-Assitant/internal/availability"
	"github.com/plopez206/Voice-Assitant/internal/calendar"
	appconfig "github.com/plopez206/Voice-Assitant/internal/config"
	"github.com/plopez206/Voice-Assitant/internal/http/handlers"
	"github.com/plopez206/Voice-Assitant/internal/observability/metrics"
	"github.com/plopez206/Voice-Assitant/pkg/logging"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting appointment API server",
		"env", cfg.Env,
		"port", cfg.Port,
		"calendar_id", cfg.CalendarID,
		"timezone", cfg.Timezone,
	)

	ctx := context.Background()

	backend, err := calendar.NewGoogleBackend(ctx, []byte(cfg.GoogleCredentialsJSON), logger)
	if err != nil {
		logger.Error("failed to initialize Google Calendar backend", "error", err)
		os.Exit(1)
	}

	m := metrics.NewAppointmentMetrics(nil)

	svc, err := availability.NewService(availability.Config{
		CalendarID:      cfg.CalendarID,
		Timezone:        cfg.Timezone,
		WorkStart:       cfg.WorkStart,
		WorkEnd:         cfg.WorkEnd,
		SlotGranularity: time.Duration(cfg.SlotMinutes) * time.Minute,
	}, backend, logger, m)
	if err != nil {
		logger.Error("failed to initialize availability service", "error", err)
		os.Exit(1)
	}

	appointmentsHandler := handlers.NewAppointmentsHandler(svc, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		Appointments:       appointmentsHandler,
		MetricsHandler:     promhttp.Handler(),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
