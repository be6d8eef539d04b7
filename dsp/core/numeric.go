package core

import "math"

// DBPowerToLinear converts dB to linear power (10*log10 convention).
func DBPowerToLinear(db float64) float64 {
	return math.Pow(10, db/10)
}

// LinearPowerToDB converts linear power to dB (10*log10 convention).
// Returns -Inf for zero and NaN for negative values.
func LinearPowerToDB(power float64) float64 {
	if power < 0 {
		return math.NaN()
	}

	if power == 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}

// ToneAmplitude returns the amplitude of a complex tone whose power in its
// FFT bin is snrDB above the per-bin power of complex white noise with total
// power noisePower, for an unnormalized FFT of fftSize points.
//
// A tone of amplitude a concentrates a²·n² in one bin while noise spreads
// noisePower·n over every bin.
func ToneAmplitude(snrDB, noisePower float64, fftSize int) float64 {
	if fftSize <= 0 || noisePower <= 0 {
		return 0
	}
	return math.Sqrt(DBPowerToLinear(snrDB) * noisePower / float64(fftSize))
}
