package dadd

import (
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/ajroetker/go-highway/hwy/contrib/workerpool"

	"github.com/cwbudde/algo-dadd/internal/accum"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("dadd: invalid config")

// Config describes one activity's detection buffer and detection rules.
type Config struct {
	// Spectra is the number of rows (time slices) in the buffer.
	Spectra int

	// SpectrumBins is the number of usable bins per row.
	SpectrumBins int

	// TotalBins is the row stride. Columns past SpectrumBins are drift
	// headroom and are read by the combine but never reported.
	TotalBins int

	// Threshold is subtracted from every path sum before hits are scanned.
	Threshold int

	// BandBins is the width of a hit-aggregation band.
	BandBins int

	// BadBandLimit is the number of hits a band may report individually.
	BadBandLimit int

	Mode Mode

	// ReportBinStats enables the input level histogram on the positive
	// slope pass.
	ReportBinStats bool
}

// Validate reports whether c describes a usable engine.
func (c Config) Validate() error {
	switch {
	case c.Spectra < 1:
		return fmt.Errorf("%w: spectra %d < 1", ErrInvalidConfig, c.Spectra)
	case c.SpectrumBins < 1:
		return fmt.Errorf("%w: spectrum bins %d < 1", ErrInvalidConfig, c.SpectrumBins)
	case c.TotalBins < c.SpectrumBins:
		return fmt.Errorf("%w: total bins %d < spectrum bins %d", ErrInvalidConfig, c.TotalBins, c.SpectrumBins)
	case c.BandBins < 1:
		return fmt.Errorf("%w: band bins %d < 1", ErrInvalidConfig, c.BandBins)
	case c.BadBandLimit < 0:
		return fmt.Errorf("%w: bad band limit %d < 0", ErrInvalidConfig, c.BadBandLimit)
	case c.Threshold < 0:
		return fmt.Errorf("%w: threshold %d < 0", ErrInvalidConfig, c.Threshold)
	case c.Mode != ModeTopDown && c.Mode != ModeParallel:
		return fmt.Errorf("%w: %v", ErrInvalidConfig, c.Mode)
	}
	return nil
}

// BufferLen returns the number of accumulators a detection buffer needs.
func (c Config) BufferLen() int {
	return c.Spectra * c.TotalBins
}

// Engine runs DADD over caller-owned detection buffers.
//
// An Engine is not safe for concurrent use; process concurrent
// polarizations with separate engines.
type Engine struct {
	opts       engineConfig
	cfg        Config
	configured bool

	bands []Band
	stats Statistics

	timing    Timing
	pairSums  atomic.Uint64
	pairNanos atomic.Int64

	pair, single kernelFn
	levels       []mergeLevel
	pool         *workerpool.Pool
}

// New returns an unconfigured Engine.
func New(opts ...Option) *Engine {
	e := &Engine{opts: applyOptions(opts...)}
	e.pair, e.single = accum.PairSum, accum.SingleSum
	if e.opts.timing {
		e.pair, e.single = e.timedPairSum, e.timedSingleSum
	}
	return e
}

// Setup configures the engine for an activity and resets all per-
// polarization state. Timing is kept.
func (e *Engine) Setup(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.configured = true

	e.levels = nil
	if cfg.Mode == ModeParallel {
		e.levels = schedule(cfg.Spectra)
		if e.pool == nil {
			e.pool = workerpool.New(e.opts.workers)
		}
	}
	e.Reset()
	return nil
}

// Config returns the configuration passed to the last successful Setup.
func (e *Engine) Config() Config {
	return e.cfg
}

// Reset prepares the engine for the next polarization: the band array is
// re-tiled (reusing its storage when large enough) and statistics cleared.
func (e *Engine) Reset() {
	e.initBands()
	e.stats = Statistics{}
}

func (e *Engine) initBands() {
	n := (e.cfg.SpectrumBins + e.cfg.BandBins - 1) / max(e.cfg.BandBins, 1)
	if cap(e.bands) < n {
		e.bands = make([]Band, n)
	}
	e.bands = e.bands[:n]
	for i := range e.bands {
		bin := i * e.cfg.BandBins
		e.bands[i] = Band{
			Bin:   bin,
			Width: min(e.cfg.BandBins, e.cfg.SpectrumBins-bin),
			Limit: e.cfg.BadBandLimit,
		}
	}
}

// Execute runs one slope of one polarization over data: bin statistics
// (positive slope only, if enabled), the combine tree, thresholding and the
// hit report. Hits accumulate into the band array until Reset.
//
// data must hold at least Config.BufferLen accumulators laid out row-major
// with stride TotalBins; it is overwritten with thresholded path sums.
// sink may be nil.
func (e *Engine) Execute(pol Polarization, slope Slope, data []Accum, sink HitSink) {
	if !e.configured {
		panic("dadd: Execute before Setup")
	}
	cfg := e.cfg
	checkBuffer(cfg.Spectra, cfg.TotalBins, data)

	t0 := e.now()
	e.stats.Pol = pol
	if cfg.ReportBinStats && slope == SlopePositive {
		e.stats.Bins = ComputeBinStatistics(data, cfg.Spectra, cfg.SpectrumBins, cfg.TotalBins)
	}
	t1 := e.now()

	switch cfg.Mode {
	case ModeParallel:
		each := forEach(sequential)
		if e.pool != nil {
			each = e.pool.ParallelForAtomic
		}
		runSchedule(e.levels, cfg.TotalBins, data, each, e.pair, e.single)
	default:
		topDown(cfg.Spectra, cfg.TotalBins, data, e.pair, e.single)
	}
	t2 := e.now()

	Threshold(data, cfg.Spectra, cfg.SpectrumBins, cfg.TotalBins, cfg.Threshold)
	t3 := e.now()

	e.reportHits(pol, slope, data, sink)
	t4 := e.now()

	if e.opts.timing {
		d := &e.timing.Dadd
		d.Runs++
		d.BinStats += t1.Sub(t0)
		d.TopDown += t2.Sub(t1)
		d.Threshold += t3.Sub(t2)
		d.Hits += t4.Sub(t3)
		d.Total += t4.Sub(t0)
	}
}

// reportHits scans the thresholded buffer and forwards hits to sink.
func (e *Engine) reportHits(pol Polarization, slope Slope, data []Accum, sink HitSink) {
	cfg := e.cfg
	for drift := 0; drift < cfg.Spectra; drift++ {
		if slope == SlopeNegative && drift == 0 {
			// Reported by the positive slope pass.
			continue
		}
		r := position(drift, cfg.Spectra)
		row := data[r*cfg.TotalBins : r*cfg.TotalBins+cfg.SpectrumBins]

		// Paths starting at or past last run off the usable width.
		last := cfg.SpectrumBins - drift
		if last <= 0 {
			continue
		}
		for bin, v := range row[:last] {
			if v == 0 {
				continue
			}
			path := Path{Pol: pol, Bin: bin, Drift: drift, Power: int(v) + cfg.Threshold}
			if slope == SlopeNegative {
				path.Bin = cfg.TotalBins - 1 - bin
				path.Drift = -drift
				if path.Bin < 0 || path.Bin >= cfg.SpectrumBins {
					continue
				}
			}

			b := &e.bands[path.Bin/cfg.BandBins]
			if path.Power > b.MaxPath.Power {
				b.MaxPath = path
			}
			b.Hits++
			if b.Hits > b.Limit {
				b.Bad = true
				continue
			}
			if sink != nil {
				sink.ReportHit(path)
			}
		}
	}
}

// ReportBadBands totals the band array for the current polarization,
// forwards every bad band to sink (which may be nil) and returns the
// resulting hit statistics. Call it once per polarization, after both
// slopes.
func (e *Engine) ReportBadBands(sink BadBandSink) HitStatistics {
	t0 := e.now()

	h := HitStatistics{}
	for _, b := range e.bands {
		h.Hits += b.Hits
		if b.MaxPath.Power > h.MaxPath.Power {
			h.MaxPath = b.MaxPath
		}
		if b.Bad {
			h.BadBands++
			if sink != nil {
				sink.ReportBadBand(b)
			}
		}
	}
	e.stats.Hits = h

	if e.opts.timing {
		e.timing.BadBand.Reports++
		e.timing.BadBand.Total += e.now().Sub(t0)
	}
	return h
}

// Statistics returns the statistics of the current polarization.
func (e *Engine) Statistics() Statistics {
	return e.stats
}

// Bands returns a copy of the band array.
func (e *Engine) Bands() []Band {
	out := make([]Band, len(e.bands))
	copy(out, e.bands)
	return out
}

// Timing returns a snapshot of the stage counters.
func (e *Engine) Timing() Timing {
	t := e.timing
	t.Sum.PairSums = e.pairSums.Load()
	t.Sum.Total = time.Duration(e.pairNanos.Load())
	return t
}

// Close releases the worker pool used by ModeParallel. A later Setup
// creates a new one.
func (e *Engine) Close() {
	if e.pool != nil {
		e.pool.Close()
		e.pool = nil
	}
}

// Loader fills data with the detection rows of one slope.
type Loader func(slope Slope, data []Accum)

// ProcessPolarization resets the engine and runs a whole polarization: the
// positive slope, then the negative slope, each loaded into data by load,
// followed by the bad-band report.
func (e *Engine) ProcessPolarization(pol Polarization, data []Accum, load Loader, hits HitSink, bad BadBandSink) Statistics {
	e.Reset()
	for _, slope := range []Slope{SlopePositive, SlopeNegative} {
		load(slope, data)
		e.Execute(pol, slope, data, hits)
	}
	e.ReportBadBands(bad)
	return e.stats
}

func (e *Engine) now() time.Time {
	if !e.opts.timing {
		return time.Time{}
	}
	return time.Now()
}

func (e *Engine) timedPairSum(drift int, lower, upper []Accum) {
	t0 := time.Now()
	accum.PairSum(drift, lower, upper)
	e.pairNanos.Add(int64(time.Since(t0)))
	e.pairSums.Add(1)
}

func (e *Engine) timedSingleSum(offset int, lower, upper []Accum) {
	t0 := time.Now()
	accum.SingleSum(offset, lower, upper)
	e.pairNanos.Add(int64(time.Since(t0)))
	e.pairSums.Add(1)
}
