package dadd

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
	approx "github.com/meko-christian/algo-approx"
)

// BinStatistics is a histogram of 2-bit input levels. Values above 3 are
// counted in bucket 3.
type BinStatistics struct {
	Bins [4]int
}

// ComputeBinStatistics histograms the first usableBins values of the first
// spectra rows of data.
func ComputeBinStatistics(data []Accum, spectra, usableBins, stride int) BinStatistics {
	checkRegion(data, spectra, usableBins, stride)
	var s BinStatistics
	for r := 0; r < spectra; r++ {
		for _, v := range data[r*stride : r*stride+usableBins] {
			s.Bins[min(v, 3)]++
		}
	}
	return s
}

// Total returns the number of samples counted.
func (s BinStatistics) Total() int {
	return s.Bins[0] + s.Bins[1] + s.Bins[2] + s.Bins[3]
}

var levels = [4]float64{0, 1, 2, 3}

// Mean returns the mean level, or 0 for an empty histogram.
func (s BinStatistics) Mean() float64 {
	n := s.Total()
	if n == 0 {
		return 0
	}
	counts := s.counts()
	var w [4]float64
	vecmath.MulBlock(w[:], levels[:], counts[:])
	return (w[0] + w[1] + w[2] + w[3]) / float64(n)
}

// StdDev returns the sample standard deviation of the levels, or 0 with fewer
// than two samples.
func (s BinStatistics) StdDev() float64 {
	n := s.Total()
	if n < 2 {
		return 0
	}
	mean := s.Mean()
	counts := s.counts()
	var dev [4]float64
	for i, l := range levels {
		dev[i] = l - mean
	}
	vecmath.MulBlockInPlace(dev[:], dev[:])
	vecmath.MulBlockInPlace(dev[:], counts[:])
	return approx.FastSqrt((dev[0] + dev[1] + dev[2] + dev[3]) / float64(n-1))
}

func (s BinStatistics) counts() [4]float64 {
	return [4]float64{float64(s.Bins[0]), float64(s.Bins[1]), float64(s.Bins[2]), float64(s.Bins[3])}
}

// ratio returns a/b, or 0 when b is zero.
func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}
	return float64(a) / float64(b)
}

func (s BinStatistics) String() string {
	str := fmt.Sprintf("bins: [%d %d %d %d]", s.Bins[0], s.Bins[1], s.Bins[2], s.Bins[3])
	if s.Total() > 1 {
		str += fmt.Sprintf(", mean %.3f, sd %.3f, 0/1 %.3f, 1/2 %.3f, 2/3 %.3f",
			s.Mean(), s.StdDev(),
			ratio(s.Bins[0], s.Bins[1]), ratio(s.Bins[1], s.Bins[2]), ratio(s.Bins[2], s.Bins[3]))
	}
	return str
}
