package main

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/cwbudde/algo-dadd/dsp/buffer"
	"github.com/cwbudde/algo-dadd/dsp/core"
	"github.com/cwbudde/algo-dadd/dsp/dadd"
	"github.com/cwbudde/algo-dadd/dsp/dadd/daddmetrics"
	"github.com/cwbudde/algo-dadd/dsp/signal"
	"github.com/cwbudde/algo-dadd/dsp/spectrometer"
	"github.com/cwbudde/algo-dadd/dsp/unpack"
	"github.com/cwbudde/algo-dadd/internal/config"
)

// polResult is the outcome of one polarization.
type polResult struct {
	Stats    dadd.Statistics
	Hits     []dadd.Path
	BadBands []dadd.Band
}

type result struct {
	Obs      core.Observation
	Engine   dadd.Config
	Pols     []polResult
	Timing   dadd.Timing
	Elapsed  time.Duration
	Registry *prometheus.Registry
}

// simulate synthesizes every configured polarization and runs the engine
// over each of them.
func simulate(cfg *config.Config) (*result, error) {
	obs := cfg.Geometry()
	ec, err := cfg.EngineConfig()
	if err != nil {
		return nil, err
	}
	win, err := spectrometer.ParseWindow(cfg.Observation.Window)
	if err != nil {
		return nil, err
	}
	spec, err := spectrometer.New(obs.FFTSize, win)
	if err != nil {
		return nil, err
	}

	engine := dadd.New(
		dadd.WithWorkers(cfg.Detection.Workers),
		dadd.WithTiming(cfg.Detection.Timing),
	)
	defer engine.Close()
	if err := engine.Setup(ec); err != nil {
		return nil, err
	}

	res := &result{Obs: obs, Engine: ec}
	var collector *daddmetrics.Collector
	if cfg.Output.Metrics {
		collector = daddmetrics.New("daddsim")
		res.Registry = prometheus.NewRegistry()
		res.Registry.MustRegister(collector)
	}

	packedStride := unpack.PackedLen(obs.FFTSize)
	levels := make([]uint16, obs.Spectra*obs.FFTSize)
	packed := make([]byte, obs.Spectra*packedStride)

	arenas := buffer.NewPoolLimit(ec.BufferLen())
	arena := arenas.Get(ec.Spectra, ec.TotalBins)
	defer arenas.Put(arena)

	start := time.Now()
	for i, name := range cfg.Observation.Polarizations {
		pol, err := dadd.ParsePolarization(name)
		if err != nil {
			return nil, err
		}

		samples, err := synthesize(cfg, obs, pol, uint64(i))
		if err != nil {
			return nil, fmt.Errorf("pol %v: %w", pol, err)
		}
		if err := spec.Levels(levels, samples, obs.Spectra, obs.FFTSize); err != nil {
			return nil, fmt.Errorf("pol %v: %w", pol, err)
		}
		unpack.Pack(levels, packed, obs.Spectra, obs.FFTSize, obs.FFTSize, packedStride)

		var pr polResult
		load := unpack.Loader(packed, obs.Spectra, obs.FFTSize, packedStride, ec.TotalBins)
		hits := dadd.HitSinkFunc(func(p dadd.Path) { pr.Hits = append(pr.Hits, p) })
		bad := dadd.BadBandSinkFunc(func(b dadd.Band) { pr.BadBands = append(pr.BadBands, b) })
		pr.Stats = engine.ProcessPolarization(pol, arena.Data(), load, hits, bad)
		res.Pols = append(res.Pols, pr)

		if collector != nil {
			collector.ObserveEngine(engine)
		}
	}
	res.Elapsed = time.Since(start)
	res.Timing = engine.Timing()
	return res, nil
}

// synthesize returns noise plus the tones configured for pol. Each
// polarization draws from its own noise stream.
func synthesize(cfg *config.Config, obs core.Observation, pol dadd.Polarization, stream uint64) ([]complex128, error) {
	gen := signal.NewGenerator(
		[]core.ObservationOption{
			core.WithSampleRate(obs.SampleRate),
			core.WithFFTSize(obs.FFTSize),
			core.WithSpectra(obs.Spectra),
		},
		signal.WithSeed(cfg.Observation.Seed+stream),
	)
	samples, err := gen.Noise(cfg.Observation.NoisePower, obs.Samples())
	if err != nil {
		return nil, err
	}
	for _, s := range cfg.Signals {
		if s.Pol != pol.String() {
			continue
		}
		amp := core.ToneAmplitude(s.SNRdB, cfg.Observation.NoisePower, obs.FFTSize)
		gen.AddTone(samples, s.FreqHz, s.DriftHzPerSec, amp)
	}
	return samples, nil
}

// binFrequency maps a spectrum bin to its offset from the band center in Hz.
func binFrequency(obs core.Observation, bin int) float64 {
	return float64(bin-obs.FFTSize/2) * obs.BinWidth()
}
