// Package daddmetrics exports DADD engine counters as Prometheus metrics.
package daddmetrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/algo-dadd/dsp/dadd"
)

// Collector is a prometheus.Collector over snapshots of engine timing and
// per-polarization statistics. Observe may be called from the goroutine that
// drives the engine while a registry gathers concurrently.
type Collector struct {
	mu     sync.Mutex
	timing dadd.Timing
	stats  map[dadd.Polarization]dadd.Statistics

	runs, stageSeconds         *prometheus.Desc
	badBandReports, badBandSec *prometheus.Desc
	pairSums, pairSumSeconds   *prometheus.Desc
	hits, badBands, maxPower   *prometheus.Desc
}

// New returns a Collector whose metric names start with namespace.
func New(namespace string) *Collector {
	name := func(n string) string {
		return prometheus.BuildFQName(namespace, "dadd", n)
	}
	pol := []string{"pol"}
	return &Collector{
		stats: make(map[dadd.Polarization]dadd.Statistics),

		runs:           prometheus.NewDesc(name("runs_total"), "Execute calls.", nil, nil),
		stageSeconds:   prometheus.NewDesc(name("stage_seconds_total"), "Time spent per Execute stage.", []string{"stage"}, nil),
		badBandReports: prometheus.NewDesc(name("bad_band_reports_total"), "ReportBadBands calls.", nil, nil),
		badBandSec:     prometheus.NewDesc(name("bad_band_seconds_total"), "Time spent in ReportBadBands.", nil, nil),
		pairSums:       prometheus.NewDesc(name("pair_sums_total"), "Row merges performed by the combine tree.", nil, nil),
		pairSumSeconds: prometheus.NewDesc(name("pair_sum_seconds_total"), "Time spent in row merges.", nil, nil),
		hits:           prometheus.NewDesc(name("hits"), "Hits in the last processed polarization.", pol, nil),
		badBands:       prometheus.NewDesc(name("bad_bands"), "Bad bands in the last processed polarization.", pol, nil),
		maxPower:       prometheus.NewDesc(name("max_path_power"), "Strongest path power in the last processed polarization.", pol, nil),
	}
}

// Observe records the engine's current timing and the statistics of the
// polarization it just finished.
func (c *Collector) Observe(t dadd.Timing, s dadd.Statistics) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.timing = t
	c.stats[s.Pol] = s
}

// ObserveEngine is Observe(e.Timing(), e.Statistics()).
func (c *Collector) ObserveEngine(e *dadd.Engine) {
	c.Observe(e.Timing(), e.Statistics())
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, d := range []*prometheus.Desc{
		c.runs, c.stageSeconds, c.badBandReports, c.badBandSec,
		c.pairSums, c.pairSumSeconds, c.hits, c.badBands, c.maxPower,
	} {
		ch <- d
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.timing
	counter := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.CounterValue, v, labels...)
	}
	gauge := func(d *prometheus.Desc, v float64, labels ...string) {
		ch <- prometheus.MustNewConstMetric(d, prometheus.GaugeValue, v, labels...)
	}

	counter(c.runs, float64(t.Dadd.Runs))
	counter(c.stageSeconds, t.Dadd.BinStats.Seconds(), "bin_stats")
	counter(c.stageSeconds, t.Dadd.TopDown.Seconds(), "top_down")
	counter(c.stageSeconds, t.Dadd.Threshold.Seconds(), "threshold")
	counter(c.stageSeconds, t.Dadd.Hits.Seconds(), "hits")
	counter(c.stageSeconds, t.Dadd.Total.Seconds(), "total")
	counter(c.badBandReports, float64(t.BadBand.Reports))
	counter(c.badBandSec, t.BadBand.Total.Seconds())
	counter(c.pairSums, float64(t.Sum.PairSums))
	counter(c.pairSumSeconds, t.Sum.Total.Seconds())

	for pol, s := range c.stats {
		gauge(c.hits, float64(s.Hits.Hits), pol.String())
		gauge(c.badBands, float64(s.Hits.BadBands), pol.String())
		gauge(c.maxPower, float64(s.Hits.MaxPath.Power), pol.String())
	}
}
