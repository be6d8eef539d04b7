package dadd

import "fmt"

// Position returns the row of a combined block of blockSize rows that holds
// the path sum for drift.
//
// It is the non-power-of-two generalization of bit-reversed addressing: even
// drifts live in the lower half, odd drifts in the upper half, recursively,
// and the maximum drift always occupies the last row. For each blockSize the
// mapping is a permutation of [0, blockSize).
//
// Position panics unless 0 <= drift < blockSize.
func Position(drift, blockSize int) int {
	if drift < 0 || drift >= blockSize {
		panic(fmt.Sprintf("dadd: drift %d out of range [0, %d)", drift, blockSize))
	}
	return position(drift, blockSize)
}

func position(drift, blockSize int) int {
	if drift == 0 || drift == blockSize-1 {
		return drift
	}
	mid := blockSize / 2
	if drift&1 != 0 {
		return mid + position(drift/2, blockSize-mid)
	}
	return position(drift/2, mid)
}
