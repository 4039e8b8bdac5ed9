// Package prom exports nearpair metrics to Prometheus.
//
//	reg := prometheus.NewRegistry()
//	collector, err := prom.NewCollector(reg)
//	solver := nearpair.New(nearpair.WithMetricsCollector(collector))
//	http.Handle("/metrics", collector.Handler())
package prom

import (
	"net/http"
	"time"

	"github.com/hupe1980/nearpair"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "nearpair"

var _ nearpair.MetricsCollector = (*Collector)(nil)

// Collector implements nearpair.MetricsCollector with Prometheus metrics.
type Collector struct {
	gatherer   prometheus.Gatherer
	opLatency  *prometheus.HistogramVec
	points     prometheus.Histogram
	exportRows prometheus.Counter
}

// NewCollector creates a Collector and registers its metrics with reg.
// A nil reg uses a fresh registry.
func NewCollector(reg *prometheus.Registry) (*Collector, error) {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	c := &Collector{
		gatherer: reg,
		opLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "operation_latency_seconds",
			Help:      "Latency of solver operations",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "status"}),
		points: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "solve_points",
			Help:      "Number of points per successful solve",
			Buckets:   prometheus.ExponentialBuckets(2, 4, 10),
		}),
		exportRows: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "export_rows_total",
			Help:      "Total table rows exported",
		}),
	}

	for _, m := range []prometheus.Collector{c.opLatency, c.points, c.exportRows} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

// RecordSolve implements nearpair.MetricsCollector.
func (c *Collector) RecordSolve(points int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("solve", status(err)).Observe(d.Seconds())
	if err == nil {
		c.points.Observe(float64(points))
	}
}

// RecordExport implements nearpair.MetricsCollector.
func (c *Collector) RecordExport(rows int, d time.Duration, err error) {
	c.opLatency.WithLabelValues("export", status(err)).Observe(d.Seconds())
	if err == nil {
		c.exportRows.Add(float64(rows))
	}
}

// Handler serves the registered metrics in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

// WriteTextfile writes the registered metrics to filename in the format read
// by the node_exporter textfile collector.
func (c *Collector) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, c.gatherer)
}
