// Package config loads the YAML configuration of the DADD simulator.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cwbudde/algo-dadd/dsp/core"
	"github.com/cwbudde/algo-dadd/dsp/dadd"
	"github.com/cwbudde/algo-dadd/dsp/spectrometer"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid")

// Config represents a complete simulation run.
type Config struct {
	Observation ObservationConfig `yaml:"observation"`
	Detection   DetectionConfig   `yaml:"detection"`
	Signals     []SignalConfig    `yaml:"signals"`
	Output      OutputConfig      `yaml:"output"`
}

// ObservationConfig describes the synthetic receiver.
type ObservationConfig struct {
	SampleRate    float64  `yaml:"sample_rate"`
	FFTSize       int      `yaml:"fft_size"`
	Spectra       int      `yaml:"spectra"`
	Window        string   `yaml:"window"`
	NoisePower    float64  `yaml:"noise_power"`
	Seed          uint64   `yaml:"seed"`
	Polarizations []string `yaml:"polarizations"`
}

// DetectionConfig holds the DADD engine settings.
type DetectionConfig struct {
	// Sigma sets the threshold when Threshold is zero.
	Sigma          float64 `yaml:"sigma"`
	Threshold      int     `yaml:"threshold"`
	BandBins       int     `yaml:"band_bins"`
	BadBandLimit   int     `yaml:"bad_band_limit"`
	Mode           string  `yaml:"mode"`
	Workers        int     `yaml:"workers"`
	ReportBinStats bool    `yaml:"report_bin_stats"`
	Timing         bool    `yaml:"timing"`
	// Headroom is the number of padding bins past the spectrum; zero means
	// one bin per spectrum.
	Headroom int `yaml:"headroom"`
}

// SignalConfig is one injected drifting tone.
type SignalConfig struct {
	Pol           string  `yaml:"pol"`
	FreqHz        float64 `yaml:"freq_hz"`
	DriftHzPerSec float64 `yaml:"drift_hz_per_sec"`
	SNRdB         float64 `yaml:"snr_db"`
}

// OutputConfig controls what the simulator prints.
type OutputConfig struct {
	MaxHits int  `yaml:"max_hits"`
	Metrics bool `yaml:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Observation: ObservationConfig{
			SampleRate:    1024,
			FFTSize:       1024,
			Spectra:       64,
			Window:        "hann",
			NoisePower:    1,
			Seed:          1,
			Polarizations: []string{"R", "L"},
		},
		Detection: DetectionConfig{
			Sigma:        6,
			BandBins:     64,
			BadBandLimit: 500,
			Mode:         "topdown",
		},
		Signals: []SignalConfig{
			{Pol: "R", FreqHz: -100, DriftHzPerSec: 0.25, SNRdB: 6},
			{Pol: "L", FreqHz: 150, DriftHzPerSec: -0.4, SNRdB: 6},
		},
		Output: OutputConfig{MaxHits: 20},
	}
}

// Load loads configuration from a YAML file. Keys missing from the file keep
// their Default values.
func Load(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	o, d := c.Observation, c.Detection
	switch {
	case o.SampleRate <= 0:
		return fmt.Errorf("%w: observation.sample_rate %v <= 0", ErrInvalid, o.SampleRate)
	case o.FFTSize < 2:
		return fmt.Errorf("%w: observation.fft_size %d < 2", ErrInvalid, o.FFTSize)
	case o.Spectra < 1:
		return fmt.Errorf("%w: observation.spectra %d < 1", ErrInvalid, o.Spectra)
	case o.NoisePower <= 0:
		return fmt.Errorf("%w: observation.noise_power %v <= 0", ErrInvalid, o.NoisePower)
	case len(o.Polarizations) == 0:
		return fmt.Errorf("%w: observation.polarizations is empty", ErrInvalid)
	case d.Headroom < 0:
		return fmt.Errorf("%w: detection.headroom %d < 0", ErrInvalid, d.Headroom)
	case d.Threshold == 0 && d.Sigma <= 0:
		return fmt.Errorf("%w: detection needs a threshold or a positive sigma", ErrInvalid)
	case d.Workers < 0:
		return fmt.Errorf("%w: detection.workers %d < 0", ErrInvalid, d.Workers)
	}
	if _, err := spectrometer.ParseWindow(o.Window); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if _, err := dadd.ParseMode(d.Mode); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	for _, p := range o.Polarizations {
		if _, err := dadd.ParsePolarization(p); err != nil {
			return fmt.Errorf("%w: observation.polarizations: %w", ErrInvalid, err)
		}
	}
	for i, s := range c.Signals {
		if _, err := dadd.ParsePolarization(s.Pol); err != nil {
			return fmt.Errorf("%w: signals[%d]: %w", ErrInvalid, i, err)
		}
	}
	if _, err := c.EngineConfig(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Geometry returns the observation geometry.
func (c *Config) Geometry() core.Observation {
	return core.ApplyObservationOptions(
		core.WithSampleRate(c.Observation.SampleRate),
		core.WithFFTSize(c.Observation.FFTSize),
		core.WithSpectra(c.Observation.Spectra),
	)
}

// EngineConfig derives the DADD engine configuration. Every FFT bin is a
// usable bin; the threshold comes from Sigma unless set explicitly.
func (c *Config) EngineConfig() (dadd.Config, error) {
	d := c.Detection
	mode, err := dadd.ParseMode(d.Mode)
	if err != nil {
		return dadd.Config{}, err
	}
	headroom := d.Headroom
	if headroom == 0 {
		headroom = c.Observation.Spectra
	}
	threshold := d.Threshold
	if threshold == 0 {
		threshold = dadd.ThresholdForSigma(c.Observation.Spectra, d.Sigma)
	}
	ec := dadd.Config{
		Spectra:        c.Observation.Spectra,
		SpectrumBins:   c.Observation.FFTSize,
		TotalBins:      c.Observation.FFTSize + headroom,
		Threshold:      threshold,
		BandBins:       d.BandBins,
		BadBandLimit:   d.BadBandLimit,
		Mode:           mode,
		ReportBinStats: d.ReportBinStats,
	}
	return ec, ec.Validate()
}

// Print writes a summary of the configuration.
func (c *Config) Print(w io.Writer) {
	o := c.Geometry()
	fmt.Fprintf(w, "Observation: %d spectra × %d bins, %.3f Hz bins, %.1f s (%s window)\n",
		o.Spectra, o.FFTSize, o.BinWidth(), o.Duration(), c.Observation.Window)
	fmt.Fprintf(w, "Polarizations: %s\n", strings.Join(c.Observation.Polarizations, ", "))
	if ec, err := c.EngineConfig(); err == nil {
		fmt.Fprintf(w, "Detection: threshold %d, bands of %d bins (limit %d), mode %v\n",
			ec.Threshold, ec.BandBins, ec.BadBandLimit, ec.Mode)
	}
	for _, s := range c.Signals {
		fmt.Fprintf(w, "Signal: pol %s, %.2f Hz, %.3f Hz/s, %.1f dB\n", s.Pol, s.FreqHz, s.DriftHzPerSec, s.SNRdB)
	}
}
