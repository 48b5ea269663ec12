// Package metrics exports collection statistics for the node_exporter
// textfile collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/theoremus-urban-solutions/routes"
)

// unnumbered is the line label of routes without a line number.
const unnumbered = "none"

// WriteTextfile writes gauges describing c to path in the Prometheus
// text exposition format.
func WriteTextfile(path, dataFile string, c routes.Collection) error {
	reg := prometheus.NewRegistry()

	total := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "routes_total",
		Help:        "Number of routes stored in the data file.",
		ConstLabels: prometheus.Labels{"file": dataFile},
	})
	last := prometheus.NewGauge(prometheus.GaugeOpts{
		Name:        "routes_last_departure_minutes",
		Help:        "Latest departure time of the day, in minutes since midnight.",
		ConstLabels: prometheus.Labels{"file": dataFile},
	})
	byLine := prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name:        "routes_by_line",
		Help:        `Number of routes per line number; unnumbered routes are counted under line="none".`,
		ConstLabels: prometheus.Labels{"file": dataFile},
	}, []string{"line"})
	reg.MustRegister(total, last, byLine)

	total.Set(float64(len(c)))
	if latest, ok := c.Last(); ok {
		last.Set(float64(latest))
	}
	for _, r := range c {
		line := r.Number.String()
		if line == "" {
			line = unnumbered
		}
		byLine.WithLabelValues(line).Inc()
	}

	return prometheus.WriteToTextfile(path, reg)
}
