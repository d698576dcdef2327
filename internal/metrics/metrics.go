// Package metrics records search statistics in a private Prometheus registry
// and writes them out in the textfile exposition format.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/gridpath/dijkstra"
)

// Collector owns the registry and the search metrics. A nil *Collector is
// valid and records nothing.
type Collector struct {
	reg      *prometheus.Registry
	searches *prometheus.CounterVec
	settled  prometheus.Counter
	duration prometheus.Histogram
}

// New registers the gridpath metrics in a fresh registry.
func New() *Collector {
	c := &Collector{
		reg: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gridpath_searches_total",
				Help: "Shortest-path searches run, by outcome.",
			},
			[]string{"outcome"},
		),
		settled: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "gridpath_settled_cells_total",
			Help: "Cells finalised across all searches.",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "gridpath_search_duration_seconds",
			Help:    "Wall time of a single search.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
	}
	c.reg.MustRegister(c.searches, c.settled, c.duration)

	return c
}

// Registry exposes the underlying registry.
func (c *Collector) Registry() *prometheus.Registry { return c.reg }

// Probe instruments one search. Pass the returned option to the search and
// call done with its outcome once it returns.
//
// The option counts settled cells locally, so concurrent probes only touch
// the shared counters once each.
func (c *Collector) Probe() (opt dijkstra.Option, done func(found bool)) {
	if c == nil {
		return func(*dijkstra.Options) {}, func(bool) {}
	}

	var settled int
	began := time.Now()
	opt = dijkstra.WithOnSettle(func(int, int64) { settled++ })
	done = func(found bool) {
		outcome := "not_found"
		if found {
			outcome = "found"
		}
		c.searches.WithLabelValues(outcome).Inc()
		c.settled.Add(float64(settled))
		c.duration.Observe(time.Since(began).Seconds())
	}

	return opt, done
}

// WriteTextfile writes every metric to path, atomically replacing it.
func (c *Collector) WriteTextfile(path string) error {
	if c == nil {
		return nil
	}

	return prometheus.WriteToTextfile(path, c.reg)
}
