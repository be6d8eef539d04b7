package dadd

import (
	"fmt"
	"time"
)

// StageTiming accumulates the cost of Execute calls.
type StageTiming struct {
	Runs      uint64
	BinStats  time.Duration
	TopDown   time.Duration
	Threshold time.Duration
	Hits      time.Duration
	Total     time.Duration
}

// BadBandTiming accumulates the cost of ReportBadBands calls.
type BadBandTiming struct {
	Reports uint64
	Total   time.Duration
}

// PathSumTiming accumulates the cost of individual pair and single merges.
type PathSumTiming struct {
	PairSums uint64
	Total    time.Duration
}

// Timing holds monotonically increasing counters. It is never reset by the
// engine.
type Timing struct {
	Dadd    StageTiming
	BadBand BadBandTiming
	Sum     PathSumTiming
}

func (t Timing) String() string {
	return fmt.Sprintf("dadd: runs %d, bin stats %v, top down %v, threshold %v, hits %v, total %v\n"+
		"bad bands: reports %d, total %v\n"+
		"path sums: pair sums %d, total %v",
		t.Dadd.Runs, t.Dadd.BinStats, t.Dadd.TopDown, t.Dadd.Threshold, t.Dadd.Hits, t.Dadd.Total,
		t.BadBand.Reports, t.BadBand.Total,
		t.Sum.PairSums, t.Sum.Total)
}
