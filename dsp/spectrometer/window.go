package spectrometer

import (
	"fmt"
	"math"
)

// Window identifies the taper applied to each frame before the FFT.
type Window int

const (
	WindowRectangular Window = iota
	WindowHann
	WindowBlackmanHarris
)

func (w Window) String() string {
	switch w {
	case WindowRectangular:
		return "rectangular"
	case WindowHann:
		return "hann"
	case WindowBlackmanHarris:
		return "blackman-harris"
	default:
		return fmt.Sprintf("Window(%d)", int(w))
	}
}

// ParseWindow returns the Window named by s.
func ParseWindow(s string) (Window, error) {
	switch s {
	case "rectangular", "rect", "none":
		return WindowRectangular, nil
	case "hann", "":
		return WindowHann, nil
	case "blackman-harris", "blackmanharris":
		return WindowBlackmanHarris, nil
	default:
		return 0, fmt.Errorf("spectrometer: unknown window %q", s)
	}
}

// coefficients returns the periodic window of length n.
func (w Window) coefficients(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := float64(i) / float64(n)
		switch w {
		case WindowHann:
			out[i] = 0.5 - 0.5*math.Cos(2*math.Pi*x)
		case WindowBlackmanHarris:
			out[i] = 0.35875 - 0.48829*math.Cos(2*math.Pi*x) +
				0.14128*math.Cos(4*math.Pi*x) - 0.01168*math.Cos(6*math.Pi*x)
		default:
			out[i] = 1
		}
	}
	return out
}
