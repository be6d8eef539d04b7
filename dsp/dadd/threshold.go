package dadd

import (
	"math"

	"github.com/cwbudde/algo-dadd/internal/accum"
)

// Threshold replaces each of the first usableBins accumulators of the first
// spectra rows (rows are stride accumulators apart) with max(0, v-value).
// A value above MaxAccum clears the region; a value <= 0 leaves it unchanged.
func Threshold(data []Accum, spectra, usableBins, stride, value int) {
	checkRegion(data, spectra, usableBins, stride)
	if value <= 0 || usableBins <= 0 {
		return
	}
	for r := 0; r < spectra; r++ {
		row := data[r*stride : r*stride+usableBins]
		if value > MaxAccum {
			clear(row)
			continue
		}
		accum.SubSat(row, Accum(value))
	}
}

// Level statistics of a 2-bit power quantizer with thresholds at 1, 2 and 3
// times the mean power of exponentially distributed noise.
const (
	levelMean = 0.553
	levelSD   = 0.846
)

// ThresholdForSigma returns the path-sum threshold that a path of spectra
// noise-only 2-bit levels exceeds with a false-alarm probability of sigma
// standard deviations.
func ThresholdForSigma(spectra int, sigma float64) int {
	n := float64(spectra)
	return int(n*levelMean + math.Sqrt(n)*levelSD*sigma)
}
