package core

// Observation describes the time/frequency geometry of one detection
// buffer: complex baseband at SampleRate, cut into Spectra frames of FFTSize
// samples, one spectrum per frame.
type Observation struct {
	SampleRate float64
	FFTSize    int
	Spectra    int
}

// ObservationOption mutates an Observation.
type ObservationOption func(*Observation)

// DefaultObservation returns 1 Hz bins over 64 one-second spectra.
func DefaultObservation() Observation {
	return Observation{
		SampleRate: 1024,
		FFTSize:    1024,
		Spectra:    64,
	}
}

// WithSampleRate sets the complex sample rate in Hz.
func WithSampleRate(sampleRate float64) ObservationOption {
	return func(o *Observation) {
		if sampleRate > 0 {
			o.SampleRate = sampleRate
		}
	}
}

// WithFFTSize sets the number of samples (and bins) per spectrum.
func WithFFTSize(n int) ObservationOption {
	return func(o *Observation) {
		if n > 0 {
			o.FFTSize = n
		}
	}
}

// WithSpectra sets the number of spectra in the observation.
func WithSpectra(n int) ObservationOption {
	return func(o *Observation) {
		if n > 0 {
			o.Spectra = n
		}
	}
}

// ApplyObservationOptions applies zero or more options to the default
// observation.
func ApplyObservationOptions(opts ...ObservationOption) Observation {
	o := DefaultObservation()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// BinWidth returns the width of one frequency bin in Hz.
func (o Observation) BinWidth() float64 {
	return o.SampleRate / float64(o.FFTSize)
}

// SpectrumDuration returns the length of one spectrum in seconds.
func (o Observation) SpectrumDuration() float64 {
	return float64(o.FFTSize) / o.SampleRate
}

// Duration returns the length of the observation in seconds.
func (o Observation) Duration() float64 {
	return float64(o.Spectra) * o.SpectrumDuration()
}

// Samples returns the number of complex samples in the observation.
func (o Observation) Samples() int {
	return o.Spectra * o.FFTSize
}

// DriftRate converts a path drift in bins over the whole observation to Hz/s.
func (o Observation) DriftRate(driftBins int) float64 {
	if o.Spectra <= 1 {
		return 0
	}
	return float64(driftBins) * o.BinWidth() / (float64(o.Spectra-1) * o.SpectrumDuration())
}

// DriftBins converts a drift rate in Hz/s to bins over the whole observation.
func (o Observation) DriftBins(rate float64) float64 {
	if o.Spectra <= 1 {
		return 0
	}
	return rate * float64(o.Spectra-1) * o.SpectrumDuration() / o.BinWidth()
}
