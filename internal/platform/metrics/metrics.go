// Package metrics provides the process-wide Prometheus collector
package metrics

import (
	stdhttp "net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the counters and histograms the service emits
type Collector struct {
	chartsTotal     *prometheus.CounterVec
	chartDuration   *prometheus.HistogramVec
	observeDuration *prometheus.HistogramVec
	observeErrors   *prometheus.CounterVec
}

// New builds a Collector and registers it on reg
// A nil reg registers on the default Prometheus registerer
func New(reg prometheus.Registerer) *Collector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	c := &Collector{
		chartsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kundali",
				Name:      "charts_total",
				Help:      "Charts computed, by outcome and selected models",
			},
			[]string{"status", "house_system", "ayanamsa_model"},
		),
		chartDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "kundali",
				Name:      "chart_duration_seconds",
				Help:      "Time spent computing a chart",
			},
			[]string{"house_system"},
		),
		observeDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "kundali",
				Name:      "ephemeris_observe_duration_seconds",
				Help:      "Time spent in ephemeris observations",
			},
			[]string{"body", "source"},
		),
		observeErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kundali",
				Name:      "ephemeris_observe_errors_total",
				Help:      "Ephemeris observations that returned an error",
			},
			[]string{"body", "source"},
		),
	}

	reg.MustRegister(c.chartsTotal, c.chartDuration, c.observeDuration, c.observeErrors)
	return c
}

// RecordChart records one computed chart with its outcome and models
func (c *Collector) RecordChart(status, houseSystem, ayanamsaModel string, d time.Duration) {
	if c == nil {
		return
	}
	c.chartsTotal.WithLabelValues(status, houseSystem, ayanamsaModel).Inc()
	c.chartDuration.WithLabelValues(houseSystem).Observe(d.Seconds())
}

// RecordObserve records one ephemeris observation
func (c *Collector) RecordObserve(body, source string, d time.Duration, err error) {
	if c == nil {
		return
	}
	c.observeDuration.WithLabelValues(body, source).Observe(d.Seconds())
	if err != nil {
		c.observeErrors.WithLabelValues(body, source).Inc()
	}
}

// Handler serves the default registry in the Prometheus text format
func Handler() stdhttp.Handler { return promhttp.Handler() }
