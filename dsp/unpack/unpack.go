// Package unpack converts 2-bit packed power spectra into DADD detection
// rows.
//
// Each byte holds four consecutive bins; bin k of a spectrum lives in bits
// 2*(k%4) and 2*(k%4)+1 of byte k/4. Positive-slope rows are loaded in bin
// order; negative-slope rows are loaded mirrored, so bin k lands in column
// stride-1-k and the combine tree finds negative drifts as positive ones.
package unpack

import (
	"fmt"

	"github.com/cwbudde/algo-dadd/dsp/dadd"
)

// BinsPerByte is the number of 2-bit levels in one packed byte.
const BinsPerByte = 4

// MaxLevel is the largest 2-bit level.
const MaxLevel = 3

var xlatPos, xlatNeg = buildTables()

func buildTables() (pos, neg [256][BinsPerByte]uint16) {
	for i := range 256 {
		for k := range BinsPerByte {
			v := uint16(i>>(2*k)) & MaxLevel
			pos[i][k] = v
			neg[i][BinsPerByte-1-k] = v
		}
	}
	return pos, neg
}

// PackedLen returns the bytes needed for one spectrum of bins levels.
func PackedLen(bins int) int {
	return (bins + BinsPerByte - 1) / BinsPerByte
}

// Unpack expands spectra packed rows into dst.
//
// packed rows are packedStride bytes apart and hold bins levels each. dst rows
// are dstStride accumulators apart; every destination row is cleared before
// it is filled, so headroom columns read as zero.
func Unpack(slope dadd.Slope, packed []byte, dst []dadd.Accum, spectra, bins, packedStride, dstStride int) {
	check(len(packed), len(dst), spectra, bins, packedStride, dstStride)

	nbytes := PackedLen(bins)
	full := bins / BinsPerByte
	for r := 0; r < spectra; r++ {
		src := packed[r*packedStride : r*packedStride+nbytes]
		row := dst[r*dstStride : (r+1)*dstStride]
		clear(row)

		if slope == dadd.SlopeNegative {
			for j := 0; j < full; j++ {
				end := dstStride - j*BinsPerByte
				copy(row[end-BinsPerByte:end], xlatNeg[src[j]][:])
			}
			for k := full * BinsPerByte; k < bins; k++ {
				row[dstStride-1-k] = xlatPos[src[k/BinsPerByte]][k%BinsPerByte]
			}
			continue
		}

		for j := 0; j < full; j++ {
			copy(row[j*BinsPerByte:], xlatPos[src[j]][:])
		}
		for k := full * BinsPerByte; k < bins; k++ {
			row[k] = xlatPos[src[k/BinsPerByte]][k%BinsPerByte]
		}
	}
}

// Pack is the inverse of a positive-slope Unpack: it stores the first bins
// values of spectra rows of src (srcStride apart) as 2-bit levels. Values
// above MaxLevel are clamped.
func Pack(src []dadd.Accum, packed []byte, spectra, bins, srcStride, packedStride int) {
	check(len(packed), len(src), spectra, bins, packedStride, srcStride)

	nbytes := PackedLen(bins)
	for r := 0; r < spectra; r++ {
		row := src[r*srcStride : r*srcStride+bins]
		dst := packed[r*packedStride : r*packedStride+nbytes]
		clear(dst)
		for k, v := range row {
			dst[k/BinsPerByte] |= byte(min(v, MaxLevel)) << (2 * (k % BinsPerByte))
		}
	}
}

// Loader returns a dadd.Loader that unpacks the same packed spectra for
// either slope.
func Loader(packed []byte, spectra, bins, packedStride, dstStride int) dadd.Loader {
	return func(slope dadd.Slope, data []dadd.Accum) {
		Unpack(slope, packed, data, spectra, bins, packedStride, dstStride)
	}
}

func check(packedLen, accumLen, spectra, bins, packedStride, accumStride int) {
	switch {
	case spectra < 0 || bins < 0:
		panic(fmt.Sprintf("unpack: invalid shape %d×%d", spectra, bins))
	case bins > accumStride:
		panic(fmt.Sprintf("unpack: %d bins exceed row stride %d", bins, accumStride))
	case PackedLen(bins) > packedStride && spectra > 0:
		panic(fmt.Sprintf("unpack: %d bins exceed packed stride %d bytes", bins, packedStride))
	case spectra > 0 && packedLen < (spectra-1)*packedStride+PackedLen(bins):
		panic(fmt.Sprintf("unpack: packed buffer holds %d bytes, need %d", packedLen, (spectra-1)*packedStride+PackedLen(bins)))
	case accumLen < spectra*accumStride:
		panic(fmt.Sprintf("unpack: row buffer holds %d accumulators, need %d", accumLen, spectra*accumStride))
	}
}
