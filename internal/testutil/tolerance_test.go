package testutil

import (
	"math"
	"testing"
)

func TestRequireNearlyEqualPasses(t *testing.T) {
	RequireNearlyEqual(t, "x", 1.0005, 1.0, 1e-3)
}

func TestRequireAccumEqualPasses(t *testing.T) {
	RequireAccumEqual(t, []uint16{1, 2, 3, 4}, []uint16{1, 2, 3, 4}, 2)
}

func TestRequireFinitePasses(t *testing.T) {
	RequireFinite(t, []float64{0, -1, math.MaxFloat64})
}
