// Package spectrometer turns complex baseband samples into rows of 2-bit
// power levels suitable for DADD detection.
//
// Each frame of FFTSize samples is windowed, transformed, converted to power
// and reordered so that bin 0 is the lowest frequency. Powers are then
// quantized against the frame's mean power: below 1×mean is level 0, below
// 2× level 1, below 3× level 2, anything else level 3.
package spectrometer

import (
	"errors"
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-dadd/dsp/core"
)

var (
	errFFTSize     = errors.New("spectrometer: fft size must be >= 2")
	errFrameLength = errors.New("spectrometer: frame length does not match fft size")
	errShortInput  = errors.New("spectrometer: input too short")
)

// Spectrometer computes power spectra of fixed-size frames. It reuses its
// scratch buffers and is not safe for concurrent use.
type Spectrometer struct {
	n      int
	window Window
	coeffs []float64
	plan   *algofft.Plan[complex128]

	in, out []complex128
	re, im  []float64
	power   []float64
	row     []float64
}

// New creates a spectrometer for frames of fftSize samples.
func New(fftSize int, window Window) (*Spectrometer, error) {
	if fftSize < 2 {
		return nil, errFFTSize
	}
	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, fmt.Errorf("spectrometer: fft plan of size %d: %w", fftSize, err)
	}
	return &Spectrometer{
		n:      fftSize,
		window: window,
		coeffs: window.coefficients(fftSize),
		plan:   plan,
		in:     make([]complex128, fftSize),
		out:    make([]complex128, fftSize),
		re:     make([]float64, fftSize),
		im:     make([]float64, fftSize),
		power:  make([]float64, fftSize),
	}, nil
}

// Size returns the FFT size (bins per spectrum).
func (s *Spectrometer) Size() int {
	return s.n
}

// Window returns the frame taper.
func (s *Spectrometer) Window() Window {
	return s.window
}

// PowerSpectrum writes the power of each bin of frame into dst, lowest
// frequency first. dst and frame must both have Size elements.
func (s *Spectrometer) PowerSpectrum(dst []float64, frame []complex128) error {
	if len(frame) != s.n || len(dst) != s.n {
		return errFrameLength
	}

	for i, v := range frame {
		s.re[i], s.im[i] = real(v), imag(v)
	}
	vecmath.MulBlockInPlace(s.re, s.coeffs)
	vecmath.MulBlockInPlace(s.im, s.coeffs)
	for i := range s.in {
		s.in[i] = complex(s.re[i], s.im[i])
	}

	if err := s.plan.Forward(s.out, s.in); err != nil {
		return fmt.Errorf("spectrometer: forward fft: %w", err)
	}

	for i, v := range s.out {
		s.re[i], s.im[i] = real(v), imag(v)
	}
	vecmath.Power(s.power, s.re, s.im)

	// Move the negative frequencies below DC.
	half := s.n / 2
	copy(dst, s.power[s.n-half:])
	copy(dst[half:], s.power[:s.n-half])
	return nil
}

// Quantize maps power values to 2-bit levels at 1, 2 and 3 times their mean.
// A zero-mean input quantizes to all zeros.
func Quantize(dst []uint16, power []float64) {
	mean := 0.0
	for _, p := range power {
		mean += p
	}
	if len(power) > 0 {
		mean /= float64(len(power))
	}
	for i, p := range power[:min(len(dst), len(power))] {
		switch {
		case mean <= 0 || p < mean:
			dst[i] = 0
		case p < 2*mean:
			dst[i] = 1
		case p < 3*mean:
			dst[i] = 2
		default:
			dst[i] = 3
		}
	}
}

// Levels slices samples into spectra consecutive frames and writes one row of
// quantized levels per frame into dst. Rows are stride values apart; the
// first Size values of each row are written and the rest are cleared.
func (s *Spectrometer) Levels(dst []uint16, samples []complex128, spectra, stride int) error {
	if stride < s.n {
		return fmt.Errorf("spectrometer: stride %d < fft size %d", stride, s.n)
	}
	if len(samples) < spectra*s.n || len(dst) < spectra*stride {
		return errShortInput
	}

	s.row = core.EnsureLen(s.row, s.n)
	row := s.row
	for r := 0; r < spectra; r++ {
		if err := s.PowerSpectrum(row, samples[r*s.n:(r+1)*s.n]); err != nil {
			return err
		}
		out := dst[r*stride : (r+1)*stride]
		Quantize(out, row)
		clear(out[s.n:])
	}
	return nil
}

// Observe is Levels over a whole observation, allocating the destination.
func (s *Spectrometer) Observe(obs core.Observation, samples []complex128) ([]uint16, error) {
	if obs.FFTSize != s.n {
		return nil, fmt.Errorf("spectrometer: observation fft size %d != %d", obs.FFTSize, s.n)
	}
	dst := make([]uint16, obs.Spectra*s.n)
	if err := s.Levels(dst, samples, obs.Spectra, s.n); err != nil {
		return nil, err
	}
	return dst, nil
}
