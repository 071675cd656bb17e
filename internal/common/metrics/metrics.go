package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the server's Prometheus collectors on a private registry.
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	Attempts *prometheus.CounterVec
	Sessions *prometheus.CounterVec
	CardUses prometheus.Counter
}

// New registers a fresh set of collectors.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soundlearn",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "soundlearn",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		Attempts: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soundlearn",
			Name:      "attempts_tracked_total",
			Help:      "Answer attempts recorded through the analytics API.",
		}, []string{"result"}),
		Sessions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "soundlearn",
			Name:      "sessions_tracked_total",
			Help:      "Play sessions recorded through the analytics API by mode.",
		}, []string{"mode"}),
		CardUses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "soundlearn",
			Name:      "custom_card_uses_total",
			Help:      "Custom card usage increments.",
		}),
	}
	reg.MustRegister(
		m.HTTPRequests, m.HTTPDuration, m.Attempts, m.Sessions, m.CardUses,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Default is the process-wide collector set used by the services.
var Default = New()

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// ObserveAttempt counts one tracked attempt.
func (m *Metrics) ObserveAttempt(correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.Attempts.WithLabelValues(result).Inc()
}

// ObserveSession counts one tracked session. Callers label unrecognized
// modes "other" to keep the label set fixed.
func (m *Metrics) ObserveSession(mode string) {
	m.Sessions.WithLabelValues(mode).Inc()
}
