package batch

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/lvgamma/numerr"
)

// Metrics holds the batch collectors.
type Metrics struct {
	Evaluations *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg when reg is
// non-nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lvgamma",
			Subsystem: "batch",
			Name:      "evaluations_total",
			Help:      "Evaluations by function and outcome category.",
		}, []string{"fn", "outcome"}),
		Duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lvgamma",
			Subsystem: "batch",
			Name:      "evaluation_seconds",
			Help:      "Wall time of a single evaluation.",
			Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 12),
		}, []string{"fn"}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.Evaluations, m.Duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

func (m *Metrics) observe(fn string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.Evaluations.WithLabelValues(fn, numerr.Classify(err).String()).Inc()
	m.Duration.WithLabelValues(fn).Observe(d.Seconds())
}
