package service

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts summary outcomes and times summarizer calls per upload kind.
type Metrics struct {
	summaries *prometheus.CounterVec
	duration  *prometheus.HistogramVec
}

// NewMetrics creates the summary collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		summaries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "summaries_total",
				Help: "Summaries produced, by upload kind and outcome.",
			},
			[]string{"kind", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "summarizer_duration_seconds",
				Help:    "Latency of calls to the summarization model.",
				Buckets: []float64{.25, .5, 1, 2, 4, 8, 15, 30, 60, 120},
			},
			[]string{"kind"},
		),
	}

	for _, c := range []prometheus.Collector{m.summaries, m.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// observe is a no-op on a nil receiver so the service runs without metrics.
func (m *Metrics) observe(kind, outcome string, d time.Duration) {
	if m == nil {
		return
	}
	m.summaries.WithLabelValues(kind, outcome).Inc()
	m.duration.WithLabelValues(kind).Observe(d.Seconds())
}
