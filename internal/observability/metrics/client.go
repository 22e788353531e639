package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ClientMetrics observes outbound calls to the remote document API.
type ClientMetrics struct {
	registry *prometheus.Registry

	callTotal    *prometheus.CounterVec
	callDuration *prometheus.HistogramVec
	callInFlight prometheus.Gauge
}

func NewClientMetrics(service string) *ClientMetrics {
	registry := prometheus.NewRegistry()

	callTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "docvault",
			Subsystem: "remote",
			Name:      "calls_total",
			Help:      "Total remote API calls by endpoint and outcome.",
		},
		[]string{"service", "endpoint", "outcome"},
	)
	callDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "docvault",
			Subsystem: "remote",
			Name:      "call_duration_seconds",
			Help:      "Remote API call duration in seconds.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "endpoint"},
	)
	callInFlight := prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "docvault",
			Subsystem: "remote",
			Name:      "calls_in_flight",
			Help:      "Number of in-flight remote API calls.",
			ConstLabels: prometheus.Labels{
				"service": service,
			},
		},
	)

	registry.MustRegister(callTotal, callDuration, callInFlight)

	return &ClientMetrics{
		registry:     registry,
		callTotal:    callTotal,
		callDuration: callDuration,
		callInFlight: callInFlight,
	}
}

func (m *ClientMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *ClientMetrics) StartCall() {
	m.callInFlight.Inc()
}

func (m *ClientMetrics) FinishCall(service, endpoint, outcome string, duration time.Duration) {
	m.callInFlight.Dec()
	if outcome == "" {
		outcome = "unknown"
	}
	m.callTotal.WithLabelValues(service, endpoint, outcome).Inc()
	m.callDuration.WithLabelValues(service, endpoint).Observe(duration.Seconds())
}
