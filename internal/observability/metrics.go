// Package observability holds the Prometheus collectors exposed by the
// serve surface.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the solve-path collectors.
type Metrics struct {
	IterationsComputed prometheus.Counter
	SolveDuration      prometheus.Histogram
	PlansStored        prometheus.Gauge
}

// NewMetrics creates and registers the collectors on the given registerer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		IterationsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "lattice_iterations_computed_total",
			Help: "Total number of value-iteration backups computed",
		}),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "lattice_solve_duration_seconds",
			Help: "Duration of solve requests",
		}),
		PlansStored: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "lattice_plans_stored",
			Help: "Number of plans currently persisted",
		}),
	}
	reg.MustRegister(m.IterationsComputed, m.SolveDuration, m.PlansStored)
	return m
}
