package dictionary

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal *prometheus.CounterVec // Ensure calls by result: hit, loaded, shared, failed, abandoned
	LoadsTotal    *prometheus.CounterVec // batches by outcome
	LoadDuration  prometheus.Histogram
	FetchFailures *prometheus.CounterVec // failed fetches by source
}

func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		RequestsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "charterdesk_dictionary_requests_total",
			Help: "Dictionary bundle requests by result",
		}, []string{"result"}),
		LoadsTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "charterdesk_dictionary_loads_total",
			Help: "Dictionary batch loads by outcome",
		}, []string{"outcome"}),
		LoadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "charterdesk_dictionary_load_duration_seconds",
			Help:    "Duration of a full dictionary batch load",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		FetchFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "charterdesk_dictionary_fetch_failures_total",
			Help: "Failed dictionary source fetches by source",
		}, []string{"source"}),
	}
}

func (m *Metrics) request(result string) {
	if m != nil {
		m.RequestsTotal.WithLabelValues(result).Inc()
	}
}

func (m *Metrics) load(outcome string, seconds float64) {
	if m != nil {
		m.LoadsTotal.WithLabelValues(outcome).Inc()
		m.LoadDuration.Observe(seconds)
	}
}

func (m *Metrics) fetchFailed(source string) {
	if m != nil {
		m.FetchFailures.WithLabelValues(source).Inc()
	}
}
