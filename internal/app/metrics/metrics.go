package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"colcal/quotation/internal/domain/quote/export"
)

// Metrics holds the service collectors. Each instance owns its registry so
// tests can build as many as they like.
type Metrics struct {
	Registry *prometheus.Registry

	ExportsTotal    *prometheus.CounterVec
	ExportDuration  prometheus.Histogram
	ExportsInFlight prometheus.Gauge
	FormSessions    prometheus.Gauge
	HTTPRequests    *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		ExportsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotation_exports_total",
				Help: "PDF exports by final state",
			},
			[]string{"result"},
		),
		ExportDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "quotation_export_duration_seconds",
			Help:    "Time spent generating a quotation PDF",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
		}),
		ExportsInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "quotation_exports_in_flight",
			Help: "PDF exports currently generating",
		}),
		FormSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "quotation_form_sessions",
			Help: "Open quotation form sessions",
		}),
		HTTPRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "quotation_http_requests_total",
				Help: "HTTP requests by method and status code",
			},
			[]string{"method", "code"},
		),
	}
	m.Registry.MustRegister(
		m.ExportsTotal,
		m.ExportDuration,
		m.ExportsInFlight,
		m.FormSessions,
		m.HTTPRequests,
		collectors.NewGoCollector(),
	)
	return m
}

// ExportRecorder adapts Metrics to export.Recorder.
func (m *Metrics) ExportRecorder() export.Recorder {
	return exportRecorder{m}
}

type exportRecorder struct{ m *Metrics }

func (r exportRecorder) ExportStarted() {
	r.m.ExportsInFlight.Inc()
}

func (r exportRecorder) ExportFinished(state export.State, elapsed time.Duration) {
	r.m.ExportsInFlight.Dec()
	r.m.ExportsTotal.WithLabelValues(string(state)).Inc()
	r.m.ExportDuration.Observe(elapsed.Seconds())
}
