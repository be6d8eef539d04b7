package spectrometer

import (
	"errors"
	"math"
	"slices"
	"testing"

	"github.com/cwbudde/algo-dadd/dsp/core"
	"github.com/cwbudde/algo-dadd/dsp/signal"
	"github.com/cwbudde/algo-dadd/internal/testutil"
)

func tone(t *testing.T, n int, bin float64) []complex128 {
	t.Helper()
	g := signal.NewGenerator([]core.ObservationOption{core.WithSampleRate(float64(n)), core.WithFFTSize(n)})
	x, err := g.Tone(bin, 0, 1, n)
	if err != nil {
		t.Fatal(err)
	}
	return x
}

func TestPowerSpectrumPlacesTones(t *testing.T) {
	const n = 64
	s, err := New(n, WindowRectangular)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, bin := range []int{0, 5, -7, 31, -32} {
		dst := make([]float64, n)
		if err := s.PowerSpectrum(dst, tone(t, n, float64(bin))); err != nil {
			t.Fatalf("PowerSpectrum: %v", err)
		}
		testutil.RequireFinite(t, dst)

		peak := n/2 + bin
		testutil.RequireNearlyEqual(t, "peak power", dst[peak], n*n, 1e-6)
		for i, p := range dst {
			if i != peak && p > 1e-6 {
				t.Fatalf("bin %d: leakage %v at %d", bin, p, i)
			}
		}
	}
}

func TestWindowedToneStaysLocal(t *testing.T) {
	const n = 128
	for _, w := range []Window{WindowHann, WindowBlackmanHarris} {
		s, err := New(n, w)
		if err != nil {
			t.Fatal(err)
		}
		dst := make([]float64, n)
		if err := s.PowerSpectrum(dst, tone(t, n, 10)); err != nil {
			t.Fatal(err)
		}
		peak := slices.Index(dst, slices.Max(dst))
		if peak != n/2+10 {
			t.Fatalf("%v: peak at %d, want %d", w, peak, n/2+10)
		}
		if dst[n/2-20] > dst[peak]*1e-6 {
			t.Fatalf("%v: far leakage %v", w, dst[n/2-20])
		}
	}
}

func TestQuantize(t *testing.T) {
	// mean 4
	power := []float64{0, 3.5, 4, 7.5, 8, 11.5, 12, 0, 0, 0, 0, 1.5}
	dst := make([]uint16, len(power))
	Quantize(dst, power)
	want := []uint16{0, 0, 1, 1, 2, 2, 3, 0, 0, 0, 0, 0}
	if !slices.Equal(dst, want) {
		t.Fatalf("Quantize = %v, want %v", dst, want)
	}

	Quantize(dst, make([]float64, len(dst)))
	if slices.ContainsFunc(dst, func(v uint16) bool { return v != 0 }) {
		t.Fatalf("zero power quantized to %v", dst)
	}
}

func TestNoiseLevelStatistics(t *testing.T) {
	obs := core.ApplyObservationOptions(core.WithFFTSize(256), core.WithSampleRate(256), core.WithSpectra(64))
	g := signal.NewGenerator([]core.ObservationOption{core.WithFFTSize(256), core.WithSpectra(64)}, signal.WithSeed(11))
	noise, err := g.Noise(1, obs.Samples())
	if err != nil {
		t.Fatal(err)
	}

	s, err := New(obs.FFTSize, WindowHann)
	if err != nil {
		t.Fatal(err)
	}
	levels, err := s.Observe(obs, noise)
	if err != nil {
		t.Fatalf("Observe: %v", err)
	}

	sum, sumSq := 0.0, 0.0
	for _, v := range levels {
		sum += float64(v)
		sumSq += float64(v) * float64(v)
	}
	n := float64(len(levels))
	mean := sum / n
	sd := math.Sqrt(sumSq/n - mean*mean)
	testutil.RequireNearlyEqual(t, "level mean", mean, 0.553, 0.03)
	testutil.RequireNearlyEqual(t, "level sd", sd, 0.846, 0.03)
}

func TestLevelsClearsHeadroom(t *testing.T) {
	const n, spectra, stride = 16, 3, 20
	s, err := New(n, WindowHann)
	if err != nil {
		t.Fatal(err)
	}
	dst := testutil.Fill(9, spectra*stride)
	samples := make([]complex128, spectra*n)
	for r := 0; r < spectra; r++ {
		copy(samples[r*n:], tone(t, n, 3))
	}
	if err := s.Levels(dst, samples, spectra, stride); err != nil {
		t.Fatal(err)
	}
	for r := 0; r < spectra; r++ {
		row := dst[r*stride : (r+1)*stride]
		if row[n/2+3] != 3 {
			t.Fatalf("row %d: tone level %d, want 3", r, row[n/2+3])
		}
		for c := n; c < stride; c++ {
			if row[c] != 0 {
				t.Fatalf("row %d col %d = %d, want 0", r, c, row[c])
			}
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := New(1, WindowHann); !errors.Is(err, errFFTSize) {
		t.Fatalf("New(1) error = %v", err)
	}
	s, err := New(8, WindowHann)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.PowerSpectrum(make([]float64, 8), make([]complex128, 7)); !errors.Is(err, errFrameLength) {
		t.Fatalf("short frame error = %v", err)
	}
	if err := s.Levels(make([]uint16, 8), make([]complex128, 8), 2, 8); !errors.Is(err, errShortInput) {
		t.Fatalf("short input error = %v", err)
	}
	if err := s.Levels(make([]uint16, 64), make([]complex128, 64), 2, 4); err == nil {
		t.Fatal("expected error for stride < fft size")
	}
}

func TestParseWindow(t *testing.T) {
	for _, w := range []Window{WindowRectangular, WindowHann, WindowBlackmanHarris} {
		got, err := ParseWindow(w.String())
		if err != nil || got != w {
			t.Fatalf("ParseWindow(%q) = %v, %v", w.String(), got, err)
		}
	}
	if _, err := ParseWindow("kaiser"); err == nil {
		t.Fatal("expected error for unknown window")
	}
}

func BenchmarkLevels(b *testing.B) {
	const n, spectra = 1024, 16
	s, err := New(n, WindowHann)
	if err != nil {
		b.Fatal(err)
	}
	samples := make([]complex128, n*spectra)
	dst := make([]uint16, n*spectra)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if err := s.Levels(dst, samples, spectra, n); err != nil {
			b.Fatal(err)
		}
	}
}
