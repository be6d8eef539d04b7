// Package registry records the accumulator kernel variants linked into the
// binary and picks the best one for the running CPU.
//
// Variant packages call Register from init; accum performs a single Lookup
// on first use.
package registry

import (
	"cmp"
	"slices"
	"sync"

	"github.com/cwbudde/algo-vecmath/cpu"
)

// PairSumFn merges the rows of drift k from two adjacent sub-blocks in place.
type PairSumFn func(drift int, lower, upper []uint16)

// SingleSumFn adds lower to upper read at offset, writing into upper.
type SingleSumFn func(offset int, lower, upper []uint16)

// SubSatFn subtracts value from every element of row, flooring at zero.
type SubSatFn func(row []uint16, value uint16)

// OpEntry is one kernel variant. All kernel fields must be set.
type OpEntry struct {
	// Name identifies the variant, e.g. "generic" or "hwy".
	Name string

	// SIMDLevel is the instruction set the variant needs.
	SIMDLevel cpu.SIMDLevel

	// Priority orders compatible variants; the highest wins. The scalar
	// kernels use 0 and the lane kernels 10.
	Priority int

	PairSum   PairSumFn
	SingleSum SingleSumFn
	SubSat    SubSatFn
}

// OpRegistry holds entries ordered by descending priority. Entries of equal
// priority keep their registration order.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
}

// Global is the registry accum selects from.
var Global = &OpRegistry{}

// Register adds entry.
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	slices.SortStableFunc(r.entries, func(a, b OpEntry) int {
		return cmp.Compare(b.Priority, a.Priority)
	})
}

// Lookup returns the first entry features can run, or nil.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := slices.IndexFunc(r.entries, func(e OpEntry) bool {
		return Supports(features, e.SIMDLevel)
	})
	if i < 0 {
		return nil
	}
	entry := r.entries[i]
	return &entry
}

// Supports reports whether features can run code built for level.
// ForceGeneric restricts the choice to SIMDNone.
func Supports(features cpu.Features, level cpu.SIMDLevel) bool {
	if features.ForceGeneric {
		return level == cpu.SIMDNone
	}

	switch level {
	case cpu.SIMDNone:
		return true
	case cpu.SIMDSSE2:
		return features.HasSSE2
	case cpu.SIMDAVX2:
		return features.HasAVX2
	default:
		return false
	}
}

// Entries returns a copy of the registered entries in lookup order.
func (r *OpRegistry) Entries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.entries)
}

// Reset removes all entries. Tests only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = nil
}
