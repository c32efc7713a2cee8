// Package render turns a comparison result into user-facing output: a
// console table and a flat record-per-metric CSV.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/watt-toolkit/benchdiff/pkg/benchdiff"
)

// Table writes the comparison as an aligned console table: one row per
// benchmark case with old/new/delta columns per metric, followed by the
// regression summary.
func Table(w io.Writer, res *benchdiff.Result) error {
	tw := tabwriter.NewWriter(w, 2, 0, 2, ' ', 0)

	fmt.Fprint(tw, "Benchmark Key\tStatus")
	for _, m := range res.Metrics {
		fmt.Fprintf(tw, "\t%s (old)\t%s (new)\t%s Δ", m, m, m)
	}
	fmt.Fprintln(tw)

	opts := res.Options
	for _, row := range res.Rows {
		fmt.Fprintf(tw, "%s\t%s", row.Key, row.Status)
		for _, c := range row.Cells {
			oldDisp := benchdiff.FormatValue(c.OldBase, c.Kind, opts.TimeUnit, opts.MemUnit)
			newDisp := benchdiff.FormatValue(c.NewBase, c.Kind, opts.TimeUnit, opts.MemUnit)
			delta := benchdiff.Placeholder
			if c.Delta.Valid {
				delta = benchdiff.FormatDelta(c.Delta) + " " + benchdiff.Arrow(c.Delta)
			}
			fmt.Fprintf(tw, "\t%s\t%s\t%s", oldDisp, newDisp, delta)
		}
		fmt.Fprintln(tw)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if res.HasRegressions() {
		fmt.Fprintf(w, "\nPotential regressions (thresholds applied):\n")
		for _, reg := range res.Regressions {
			fmt.Fprintf(w, " - %s in %s: %+.2f%%\n", reg.Metric, reg.Key, reg.DeltaPct)
		}
	} else {
		fmt.Fprintf(w, "\nNo regressions detected with current thresholds.\n")
	}
	return nil
}
