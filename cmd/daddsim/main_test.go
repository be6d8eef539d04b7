package main

import (
	"bytes"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cwbudde/algo-dadd/dsp/dadd"
	"github.com/cwbudde/algo-dadd/internal/config"
)

// strongToneConfig puts one loud, drift-free tone exactly on bin 37 of a
// 64-bin rectangular spectrometer.
func strongToneConfig() *config.Config {
	cfg := config.Default()
	cfg.Observation.SampleRate = 64
	cfg.Observation.FFTSize = 64
	cfg.Observation.Spectra = 16
	cfg.Observation.Window = "rectangular"
	cfg.Observation.Polarizations = []string{"R"}
	cfg.Detection.Threshold = 20
	cfg.Signals = []config.SignalConfig{{Pol: "R", FreqHz: 5, SNRdB: 20}}
	return cfg
}

func TestSimulateFindsTone(t *testing.T) {
	for _, mode := range []string{"topdown", "parallel"} {
		t.Run(mode, func(t *testing.T) {
			cfg := strongToneConfig()
			cfg.Detection.Mode = mode
			cfg.Detection.Workers = 2
			if err := cfg.Validate(); err != nil {
				t.Fatal(err)
			}

			res, err := simulate(cfg)
			if err != nil {
				t.Fatalf("simulate: %v", err)
			}
			if len(res.Pols) != 1 {
				t.Fatalf("got %d polarizations, want 1", len(res.Pols))
			}

			want := dadd.Path{Pol: dadd.PolRightCircular, Bin: 37, Drift: 0, Power: 16 * 3}
			if got := res.Pols[0].Stats.Hits.MaxPath; got != want {
				t.Fatalf("max path = %v, want %v", got, want)
			}
			if len(res.Pols[0].Hits) == 0 {
				t.Fatal("no hits forwarded")
			}
		})
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := strongToneConfig()
	cfg.Observation.Polarizations = []string{"R", "L"}

	a, err := simulate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	b, err := simulate(cfg)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a.Pols {
		if a.Pols[i].Stats.Hits != b.Pols[i].Stats.Hits {
			t.Fatalf("pol %d: %v != %v", i, a.Pols[i].Stats.Hits, b.Pols[i].Stats.Hits)
		}
	}
	if a.Pols[1].Stats.Pol != dadd.PolLeftCircular {
		t.Fatalf("second pol = %v", a.Pols[1].Stats.Pol)
	}
}

func TestRunOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := []string{
		"-fft", "64", "-spectra", "16", "-sample-rate", "64",
		"-bin-stats", "-timing", "-metrics", "-print-config", "-max-hits", "3",
	}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v\n%s", err, stderr.String())
	}

	out := stdout.String()
	for _, want := range []string{
		"Observation: 16 spectra × 64 bins",
		"Polarization R:",
		"Polarization L:",
		"bins: [",
		"path sums: pair sums",
		"daddsim_dadd_runs_total 4",
		`daddsim_dadd_hits{pol="L"}`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.yaml")
	data := []byte(`observation:
  sample_rate: 64
  fft_size: 64
  spectra: 8
  polarizations: [X]
signals: []
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", path, "-mode", "parallel"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if out := stdout.String(); !strings.Contains(out, "Polarization X:") || strings.Contains(out, "Polarization R:") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"bad-flag", []string{"-nope"}},
		{"extra-args", []string{"stray"}},
		{"missing-config", []string{"-config", filepath.Join(t.TempDir(), "none.yaml")}},
		{"bad-mode", []string{"-mode", "sideways"}},
		{"bad-window", []string{"-window", "kaiser"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if err := run(tt.args, &stdout, &stderr); err == nil {
				t.Fatal("run succeeded")
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run([]string{"-h"}, &stdout, &stderr)
	if !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("run(-h) = %v, want flag.ErrHelp", err)
	}
	if !strings.Contains(stderr.String(), "Usage: daddsim") {
		t.Fatalf("usage not printed:\n%s", stderr.String())
	}
}
