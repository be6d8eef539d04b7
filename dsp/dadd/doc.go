// Package dadd implements the DADD (doubling accumulation drift detection)
// path-sum engine.
//
// A detection buffer holds one row per spectrum and one column per frequency
// bin. For every integer drift d in [0, rows) the engine computes the sum of
// power along the straight line that starts at bin b in the first spectrum
// and ends d bins higher in the last one. The sums are built by a
// divide-and-conquer combine tree (a Taylor tree generalized to row counts
// that are not powers of two) in O(rows·bins·log rows) saturating additions.
//
// After the tree runs, the sum for drift d lives in row Position(d, rows).
// The engine then subtracts the detection threshold, reports every path still
// above zero through a HitSink and aggregates hits per frequency band,
// classifying bands with too many hits as bad (RFI) bands.
//
// A typical polarization is processed as:
//
//	eng := dadd.New()
//	if err := eng.Setup(cfg); err != nil { ... }
//	load(dadd.SlopePositive, buf)
//	eng.Execute(pol, dadd.SlopePositive, buf, hits)
//	load(dadd.SlopeNegative, buf)
//	eng.Execute(pol, dadd.SlopeNegative, buf, hits)
//	stats := eng.ReportBadBands(badBands)
//	eng.Reset()
//
// ProcessPolarization wraps that sequence.
package dadd
