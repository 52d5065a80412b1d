package backend

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // by service and outcome (ok or failure category)
	RequestDuration *prometheus.HistogramVec // by service
	BreakerOpen     *prometheus.GaugeVec     // 1 while the service breaker is open
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "charterdesk_upstream_requests_total",
			Help: "Backend requests by service and outcome",
		}, []string{"service", "outcome"}),
		RequestDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "charterdesk_upstream_request_duration_seconds",
			Help:    "Duration of backend requests by service",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"service"}),
		BreakerOpen: f.NewGaugeVec(prometheus.GaugeOpts{
			Name: "charterdesk_upstream_breaker_open",
			Help: "Whether the circuit breaker for a backend service is open",
		}, []string{"service"}),
	}
}

func (m *Metrics) observe(service Service, outcome string, seconds float64) {
	if m == nil {
		return
	}
	m.RequestsTotal.WithLabelValues(string(service), outcome).Inc()
	m.RequestDuration.WithLabelValues(string(service)).Observe(seconds)
}

func (m *Metrics) setBreaker(service Service, open bool) {
	if m == nil {
		return
	}
	v := 0.0
	if open {
		v = 1
	}
	m.BreakerOpen.WithLabelValues(string(service)).Set(v)
}
