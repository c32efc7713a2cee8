package loader

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/perf/benchfmt"

	"github.com/watt-toolkit/benchdiff/pkg/benchdiff"
)

// goBenchColumns maps `go test -bench` value units to the dataset
// column they populate. Mean and Allocated land on the conventional
// BenchmarkDotNet column names so classification and unit defaults line
// up (ns/op values are already nanoseconds, B/op already bytes); the
// remaining units keep their own names, which classify correctly by
// table or heuristic.
var goBenchColumns = []struct {
	unit   string
	column string
}{
	{"ns/op", "Mean"},
	{"B/op", "Allocated"},
	{"allocs/op", "Allocs/op"},
	{"MB/s", "MB/s"},
}

// ReadGoBench reads the output of `go test -bench` and presents it as a
// Dataset keyed by the full benchmark name. Repeated runs of the same
// benchmark (-count > 1) are averaged per value unit before conversion.
func ReadGoBench(r io.Reader, name string) (*benchdiff.Dataset, error) {
	type agg struct {
		sums   map[string]float64
		counts map[string]int
	}
	var order []string
	byName := make(map[string]*agg)

	br := benchfmt.NewReader(r, name)
	for br.Scan() {
		res, ok := br.Result().(*benchfmt.Result)
		if !ok {
			// Syntax errors are per-record; skip the record and keep
			// reading, the reader resynchronizes on the next line.
			continue
		}
		full := string(res.Name.Full())
		a := byName[full]
		if a == nil {
			a = &agg{sums: make(map[string]float64), counts: make(map[string]int)}
			byName[full] = a
			order = append(order, full)
		}
		for _, v := range res.Values {
			// The reader tidies units as it parses (ns/op becomes
			// sec/op, MB/s becomes B/s). Aggregate on the unit as
			// written so the column table matches and magnitudes
			// survive exactly.
			unit, val := v.Unit, v.Value
			if v.OrigUnit != "" {
				unit, val = v.OrigUnit, v.OrigValue
			}
			a.sums[unit] += val
			a.counts[unit]++
		}
	}
	if err := br.Err(); err != nil {
		return nil, fmt.Errorf("reading benchmark output: %w", err)
	}
	if len(order) == 0 {
		return nil, fmt.Errorf("no benchmark results found in %s", name)
	}

	headers := []string{"Benchmark"}
	for _, c := range goBenchColumns {
		for _, a := range byName {
			if a.counts[c.unit] > 0 {
				headers = append(headers, c.column)
				break
			}
		}
	}

	rows := make([]benchdiff.Row, 0, len(order))
	for _, full := range order {
		a := byName[full]
		row := benchdiff.Row{"Benchmark": full}
		for _, c := range goBenchColumns {
			if n := a.counts[c.unit]; n > 0 {
				row[c.column] = formatFloat(a.sums[c.unit] / float64(n))
			}
		}
		rows = append(rows, row)
	}
	return benchdiff.NewDataset(headers, rows), nil
}

// ReadGoBenchFile reads `go test -bench` output from disk.
func ReadGoBenchFile(path string) (*benchdiff.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadGoBench(f, path)
}
