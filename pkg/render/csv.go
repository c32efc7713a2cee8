package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/watt-toolkit/benchdiff/pkg/benchdiff"
)

// recordFields is the long-form CSV schema: one record per case×metric.
var recordFields = []string{
	"key", "status", "metric", "old", "new",
	"delta_pct", "delta_sign", "better_direction",
}

// CSV writes the comparison in long form, one record per case×metric,
// with display-formatted values and a four-decimal delta (empty when the
// delta is undefined).
func CSV(w io.Writer, res *benchdiff.Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(recordFields); err != nil {
		return err
	}
	opts := res.Options
	for _, row := range res.Rows {
		for _, c := range row.Cells {
			record := []string{
				row.Key,
				string(row.Status),
				c.Metric,
				benchdiff.FormatValue(c.OldBase, c.Kind, opts.TimeUnit, opts.MemUnit),
				benchdiff.FormatValue(c.NewBase, c.Kind, opts.TimeUnit, opts.MemUnit),
				benchdiff.RecordDelta(c.Delta),
				benchdiff.DeltaSign(c.Delta),
				c.Kind.BetterDirection(),
			}
			if err := cw.Write(record); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// CSVFile writes the long-form comparison CSV to disk.
func CSVFile(path string, res *benchdiff.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := CSV(f, res); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
