package signal

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-dadd/dsp/core"
)

func TestToneLengthAndAmplitude(t *testing.T) {
	g := NewGenerator([]core.ObservationOption{core.WithSampleRate(1000)})
	s, err := g.Tone(50, 3, 0.5, 64)
	if err != nil {
		t.Fatalf("Tone() error = %v", err)
	}
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	for i, v := range s {
		if math.Abs(cmplx.Abs(v)-0.5) > 1e-12 {
			t.Fatalf("|s[%d]| = %v, want 0.5", i, cmplx.Abs(v))
		}
	}
}

func TestToneFrequency(t *testing.T) {
	// 250 Hz at 1 kHz advances a quarter turn per sample.
	g := NewGenerator([]core.ObservationOption{core.WithSampleRate(1000)})
	s, err := g.Tone(250, 0, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	want := []complex128{1, 1i, -1}
	for i := range want {
		if cmplx.Abs(s[i]-want[i]) > 1e-12 {
			t.Fatalf("s[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestNoiseDeterministic(t *testing.T) {
	g1 := NewGenerator(nil, WithSeed(42))
	g2 := NewGenerator(nil, WithSeed(42))

	n1, err := g1.Noise(1, 16)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}
	n2, err := g2.Noise(1, 16)
	if err != nil {
		t.Fatalf("Noise() error = %v", err)
	}

	for i := range n1 {
		if n1[i] != n2[i] {
			t.Fatalf("noise mismatch at %d: %v != %v", i, n1[i], n2[i])
		}
	}
}

func TestNoisePower(t *testing.T) {
	g := NewGenerator(nil, WithSeed(7))
	n, err := g.Noise(2, 1<<16)
	if err != nil {
		t.Fatal(err)
	}
	if p := MeanPower(n); math.Abs(p-2) > 0.05 {
		t.Fatalf("noise power = %v, want ~2", p)
	}
}

func TestInvalidArguments(t *testing.T) {
	g := NewGenerator(nil)
	if _, err := g.Tone(0, 0, 1, 0); err == nil {
		t.Fatal("expected error for zero tone samples")
	}
	if _, err := g.Noise(-1, 4); err == nil {
		t.Fatal("expected error for negative noise power")
	}
	if MeanPower(nil) != 0 {
		t.Fatal("MeanPower(nil) should be 0")
	}
}
