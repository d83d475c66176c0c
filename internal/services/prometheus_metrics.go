package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type PrometheusMetrics struct {
	screenViews    *prometheus.CounterVec
	loginAttempts  *prometheus.CounterVec
	transfersTotal *prometheus.CounterVec
	simulatedDelay *prometheus.HistogramVec
}

func NewPrometheusMetrics() MetricsRecorderInterface {
	return &PrometheusMetrics{
		screenViews: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "screen_views_total",
				Help: "Total number of screen navigations by destination",
			},
			[]string{"screen"},
		),
		loginAttempts: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "login_attempts_total",
				Help: "Total number of simulated login attempts by status",
			},
			[]string{"status"},
		),
		transfersTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "transfers_simulated_total",
				Help: "Total number of simulated transfers by status",
			},
			[]string{"status"},
		),
		simulatedDelay: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "simulated_processing_duration_milliseconds",
				Help:    "Simulated processing delay per operation in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"operation"},
		),
	}
}

func (m *PrometheusMetrics) RecordScreenView(screen string) {
	m.screenViews.WithLabelValues(screen).Inc()
}

func (m *PrometheusMetrics) RecordLoginAttempt(status string) {
	m.loginAttempts.WithLabelValues(status).Inc()
}

func (m *PrometheusMetrics) RecordTransfer(status string) {
	m.transfersTotal.WithLabelValues(status).Inc()
}

func (m *PrometheusMetrics) RecordSimulatedDelay(operation string, duration time.Duration) {
	m.simulatedDelay.WithLabelValues(operation).Observe(float64(duration.Milliseconds()))
}
