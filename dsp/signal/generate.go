// Package signal generates deterministic complex baseband test signals:
// drifting CW tones and complex white Gaussian noise.
package signal

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/cwbudde/algo-dadd/dsp/core"
)

// Generator creates deterministic signals for one observation.
type Generator struct {
	obs  core.Observation
	seed uint64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed uint64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator for the observation described by obsOpts.
func NewGenerator(obsOpts []core.ObservationOption, opts ...Option) *Generator {
	g := &Generator{
		obs:  core.ApplyObservationOptions(obsOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Observation returns the generator's observation geometry.
func (g *Generator) Observation() core.Observation {
	return g.obs
}

// Tone generates a complex tone starting at freqHz (relative to the band
// center) whose frequency changes linearly at driftHzPerSec.
func (g *Generator) Tone(freqHz, driftHzPerSec, amplitude float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("tone samples must be > 0: %d", samples)
	}
	out := make([]complex128, samples)
	g.AddTone(out, freqHz, driftHzPerSec, amplitude)
	return out, nil
}

// AddTone adds a drifting tone to dst in place.
func (g *Generator) AddTone(dst []complex128, freqHz, driftHzPerSec, amplitude float64) {
	dt := 1 / g.obs.SampleRate
	for i := range dst {
		t := float64(i) * dt
		phase := 2 * math.Pi * (freqHz*t + 0.5*driftHzPerSec*t*t)
		s, c := math.Sincos(phase)
		dst[i] += complex(amplitude*c, amplitude*s)
	}
}

// Noise generates complex white Gaussian noise of the given total power.
func (g *Generator) Noise(power float64, samples int) ([]complex128, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if power < 0 {
		return nil, fmt.Errorf("noise power must be >= 0: %f", power)
	}
	out := make([]complex128, samples)
	g.AddNoise(out, power)
	return out, nil
}

// AddNoise adds complex white Gaussian noise of the given total power to dst.
// Every call with the same seed adds the same sequence.
func (g *Generator) AddNoise(dst []complex128, power float64) {
	rng := rand.New(rand.NewPCG(g.seed, g.seed+1))
	sigma := math.Sqrt(power / 2)
	for i := range dst {
		dst[i] += complex(sigma*rng.NormFloat64(), sigma*rng.NormFloat64())
	}
}

// MeanPower returns the mean of |x|² over data.
func MeanPower(data []complex128) float64 {
	if len(data) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range data {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}
	return sum / float64(len(data))
}
