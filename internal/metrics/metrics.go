// Package metrics exposes Prometheus instrumentation for the simulation.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ticksTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexlife_ticks_total",
		Help: "Generations computed.",
	})

	tickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "hexlife_tick_duration_seconds",
		Help:    "Wall time spent computing one generation.",
		Buckets: prometheus.ExponentialBuckets(0.0005, 2, 14),
	})

	population = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hexlife_population",
		Help: "Occupied cells in the present field.",
	})

	resolution = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hexlife_resolution",
		Help: "Active grid resolution.",
	})

	cells = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "hexlife_cells",
		Help: "Cells in the active tessellation.",
	})

	// StampDropped counts pattern cells that could not be brought to life.
	StampDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "hexlife_stamp_dropped_cells_total",
		Help: "Pattern cells dropped from a stamp because they did not resolve to an active cell.",
	})
)

// ObserveTick records a finished tick.
func ObserveTick(d time.Duration) {
	ticksTotal.Inc()
	tickDuration.Observe(d.Seconds())
}

// SetPopulation records the occupied cell count.
func SetPopulation(n int) { population.Set(float64(n)) }

// SetTessellation records the active resolution and its cell count.
func SetTessellation(res, n int) {
	resolution.Set(float64(res))
	cells.Set(float64(n))
}

// AddDroppedStampCells counts cells lost from a partial stamp.
func AddDroppedStampCells(n int) {
	if n > 0 {
		StampDropped.Add(float64(n))
	}
}

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler { return promhttp.Handler() }
