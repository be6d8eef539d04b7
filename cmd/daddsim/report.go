package main

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/common/expfmt"

	"github.com/cwbudde/algo-dadd/dsp/dadd"
	"github.com/cwbudde/algo-dadd/internal/config"
)

func report(w io.Writer, cfg *config.Config, res *result) error {
	obs, ec := res.Obs, res.Engine
	fmt.Fprintf(w, "%s spectra × %s bins (%s accumulators), threshold %d, %d polarization(s) in %v\n\n",
		humanize.Comma(int64(ec.Spectra)), humanize.Comma(int64(ec.SpectrumBins)),
		humanize.Comma(int64(ec.BufferLen())), ec.Threshold, len(res.Pols), res.Elapsed.Round(time.Microsecond))

	for _, pr := range res.Pols {
		s := pr.Stats
		fmt.Fprintf(w, "Polarization %v: %s hits, %d bad band(s)\n", s.Pol, humanize.Comma(int64(s.Hits.Hits)), s.Hits.BadBands)
		if ec.ReportBinStats {
			fmt.Fprintf(w, "  %v\n", s.Bins)
		}

		hits := slices.Clone(pr.Hits)
		slices.SortStableFunc(hits, func(a, b dadd.Path) int {
			return cmp.Compare(b.Power, a.Power)
		})
		if n := cfg.Output.MaxHits; n >= 0 && len(hits) > n {
			hits = hits[:n]
		}
		if len(hits) > 0 {
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "  BIN\tFREQ (Hz)\tDRIFT\tRATE (Hz/s)\tPOWER")
			for _, p := range hits {
				fmt.Fprintf(tw, "  %d\t%.2f\t%d\t%.4f\t%d\n",
					p.Bin, binFrequency(obs, p.Bin), p.Drift, obs.DriftRate(p.Drift), p.Power)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}

		if len(pr.BadBands) > 0 {
			tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "  BAD BAND\tWIDTH\tHITS\tMAX POWER")
			for _, b := range pr.BadBands {
				fmt.Fprintf(tw, "  %d\t%d\t%s\t%d\n", b.Bin, b.Width, humanize.Comma(int64(b.Hits)), b.MaxPath.Power)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
		}
		fmt.Fprintln(w)
	}

	if cfg.Detection.Timing {
		fmt.Fprintln(w, res.Timing)
	}

	if res.Registry != nil {
		families, err := res.Registry.Gather()
		if err != nil {
			return fmt.Errorf("gather metrics: %w", err)
		}
		for _, mf := range families {
			if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
				return err
			}
		}
	}
	return nil
}
