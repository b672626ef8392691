package cutmatching

import "github.com/prometheus/client_golang/prometheus"

// Metrics is an optional set of prometheus instruments a Solver reports
// to. Every method is nil-safe on a nil *Metrics receiver, so wiring
// metrics is opt-in: a library caller who only wants a Result never
// touches prometheus at all.
type Metrics struct {
	potential     prometheus.Histogram
	iterations    *prometheus.CounterVec
	removedVolume prometheus.Gauge
}

// NewMetrics registers a fresh set of instruments with reg. namespace
// and subsystem prefix every metric name, following the convention of
// the pack's production Prometheus wiring.
func NewMetrics(reg prometheus.Registerer, namespace, subsystem string) (*Metrics, error) {
	m := &Metrics{
		potential: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "sampled_potential",
			Help:      "Variance of projected flow against a fresh random unit vector.",
			Buckets:   prometheus.DefBuckets,
		}),
		iterations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "rounds_total",
			Help:      "Cut-matching rounds executed, labeled by final outcome.",
		}, []string{"outcome"}),
		removedVolume: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "removed_volume",
			Help:      "Volume of vertices removed from the subdivision graph so far this call.",
		}),
	}

	for _, c := range []prometheus.Collector{m.potential, m.iterations, m.removedVolume} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observePotential(v float64) {
	if m == nil {
		return
	}
	m.potential.Observe(v)
}

func (m *Metrics) observeRemovedVolume(v int) {
	if m == nil {
		return
	}
	m.removedVolume.Set(float64(v))
}

func (m *Metrics) countOutcome(outcome Type, rounds int) {
	if m == nil {
		return
	}
	m.iterations.WithLabelValues(outcome.String()).Add(float64(rounds))
}
