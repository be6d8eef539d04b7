package dadd

import (
	"fmt"

	"github.com/cwbudde/algo-dadd/internal/accum"
)

// Accum is a saturating 16-bit path-sum accumulator.
type Accum = uint16

// MaxAccum is the saturation value of an Accum.
const MaxAccum = accum.Max

// Polarization identifies the receiver channel a buffer was taken from.
type Polarization int

const (
	PolUninit Polarization = iota
	PolRightCircular
	PolLeftCircular
	PolXLinear
	PolYLinear
	PolBoth
	PolMixed
	PolBothLinear
)

var polNames = [...]string{
	PolUninit:        "uninit",
	PolRightCircular: "R",
	PolLeftCircular:  "L",
	PolXLinear:       "X",
	PolYLinear:       "Y",
	PolBoth:          "B",
	PolMixed:         "M",
	PolBothLinear:    "XY",
}

func (p Polarization) String() string {
	if p < 0 || int(p) >= len(polNames) {
		return fmt.Sprintf("Polarization(%d)", int(p))
	}
	return polNames[p]
}

// ParsePolarization returns the Polarization with the short name s.
func ParsePolarization(s string) (Polarization, error) {
	for p, name := range polNames {
		if name == s && Polarization(p) != PolUninit {
			return Polarization(p), nil
		}
	}
	return PolUninit, fmt.Errorf("dadd: unknown polarization %q", s)
}

// Slope is the sign of the drift being searched.
//
// Negative-slope data is loaded into the buffer in mirror-image column order,
// so the same combine tree finds negative drifts.
type Slope int

const (
	SlopePositive Slope = iota
	SlopeNegative
)

func (s Slope) String() string {
	switch s {
	case SlopePositive:
		return "positive"
	case SlopeNegative:
		return "negative"
	default:
		return fmt.Sprintf("Slope(%d)", int(s))
	}
}

// Mode selects how the combine tree is evaluated. All modes produce
// bit-identical buffers.
type Mode int

const (
	// ModeTopDown runs the recursive combine on the calling goroutine.
	ModeTopDown Mode = iota
	// ModeParallel evaluates the tree level by level, fanning the
	// independent merges of each level out over a worker pool.
	ModeParallel
)

func (m Mode) String() string {
	switch m {
	case ModeTopDown:
		return "topdown"
	case ModeParallel:
		return "parallel"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode named by s ("topdown" or "parallel").
func ParseMode(s string) (Mode, error) {
	switch s {
	case "topdown", "top-down", "":
		return ModeTopDown, nil
	case "parallel":
		return ModeParallel, nil
	default:
		return 0, fmt.Errorf("dadd: unknown mode %q", s)
	}
}

// Path is one candidate detection: a start bin, a signed drift in bins over
// the whole observation and the path power (threshold included).
type Path struct {
	Pol   Polarization
	Bin   int
	Drift int
	Power int
}

func (p Path) String() string {
	return fmt.Sprintf("path: pol %v, bin %d, drift %d, power %d", p.Pol, p.Bin, p.Drift, p.Power)
}

// Band is a contiguous run of bins used for hit aggregation and bad-band
// classification.
type Band struct {
	Bad     bool
	Bin     int
	Width   int
	Hits    int
	Limit   int
	MaxPath Path
}

func (b Band) String() string {
	return fmt.Sprintf("band: bad %t, bin %d, width %d, hits %d/%d, max %v",
		b.Bad, b.Bin, b.Width, b.Hits, b.Limit, b.MaxPath)
}

// HitStatistics summarizes one polarization after both slopes.
type HitStatistics struct {
	Hits     int
	BadBands int
	MaxPath  Path
}

func (h HitStatistics) String() string {
	return fmt.Sprintf("hits %d, bad bands %d, max %v", h.Hits, h.BadBands, h.MaxPath)
}

// Statistics is the per-polarization result read by the caller.
type Statistics struct {
	Pol  Polarization
	Bins BinStatistics
	Hits HitStatistics
}

func (s Statistics) String() string {
	return fmt.Sprintf("pol %v\n%v\n%v", s.Pol, s.Bins, s.Hits)
}

// HitSink receives every individually reported hit.
type HitSink interface {
	ReportHit(Path)
}

// HitSinkFunc adapts a function to HitSink.
type HitSinkFunc func(Path)

// ReportHit calls f(p).
func (f HitSinkFunc) ReportHit(p Path) { f(p) }

// BadBandSink receives every band classified as bad.
type BadBandSink interface {
	ReportBadBand(Band)
}

// BadBandSinkFunc adapts a function to BadBandSink.
type BadBandSinkFunc func(Band)

// ReportBadBand calls f(b).
func (f BadBandSinkFunc) ReportBadBand(b Band) { f(b) }
