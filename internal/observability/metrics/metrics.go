package metrics

import "github.com/prometheus/client_golang/prometheus"

// AppointmentMetrics exposes counters/histograms for availability and
// booking flows.
type AppointmentMetrics struct {
	availabilityTotal *prometheus.CounterVec
	bookingTotal      *prometheus.CounterVec
	backendLatency    *prometheus.HistogramVec
}

func NewAppointmentMetrics(reg prometheus.Registerer) *AppointmentMetrics {
	m := &AppointmentMetrics{
		availabilityTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "availability",
			Name:      "requests_total",
			Help:      "Total availability lookups",
		}, []string{"status"}),
		bookingTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "appointments",
			Subsystem: "booking",
			Name:      "requests_total",
			Help:      "Total booking attempts",
		}, []string{"status"}),
		backendLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "appointments",
			Subsystem: "calendar",
			Name:      "backend_latency_seconds",
			Help:      "Latency of calendar backend calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.availabilityTotal, m.bookingTotal, m.backendLatency)
	return m
}

func (m *AppointmentMetrics) ObserveAvailability(status string) {
	if m == nil {
		return
	}
	m.availabilityTotal.WithLabelValues(status).Inc()
}

func (m *AppointmentMetrics) ObserveBooking(status string) {
	if m == nil {
		return
	}
	m.bookingTotal.WithLabelValues(status).Inc()
}

func (m *AppointmentMetrics) ObserveBackendLatency(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.backendLatency.WithLabelValues(operation).Observe(seconds)
}
