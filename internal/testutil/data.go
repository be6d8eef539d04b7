package testutil

import "math/rand/v2"

// RandomLevels returns n pseudo-random values in [0, maxLevel] from a fixed
// seed.
func RandomLevels(seed uint64, n int, maxLevel uint16) []uint16 {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	out := make([]uint16, n)
	for i := range out {
		out[i] = uint16(rng.IntN(int(maxLevel) + 1))
	}
	return out
}

// Fill returns n copies of value.
func Fill(value uint16, n int) []uint16 {
	out := make([]uint16, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// DriftingLine writes value into a rows×bins buffer along the path that the
// combine tree follows for drift, starting at bin. Columns past the row end
// are dropped.
func DriftingLine(data []uint16, rows, bins, bin, drift int, value uint16) {
	for r, o := range PathOffsets(drift, rows) {
		if c := bin + o; c < bins {
			data[r*bins+c] = value
		}
	}
}
