package loader

import (
	"fmt"
	"io"
	"os"
	"strconv"

	json "github.com/goccy/go-json"

	"github.com/watt-toolkit/benchdiff/pkg/benchdiff"
)

// JSONRecord is one benchmark case from a full BenchmarkDotNet JSON
// export. Values are already canonical: Mean and P95 in nanoseconds,
// allocations in bytes, so no kind classification or unit inference is
// needed for this format.
type JSONRecord struct {
	FullName       string
	MethodTitle    string
	MeanNs         float64
	P95Ns          benchdiff.Number
	AllocatedBytes int64
}

// Wire shapes of the BenchmarkDotNet full JSON export. Only the fields
// the comparison consumes are decoded.
type bdnReport struct {
	Benchmarks []bdnBenchmark `json:"Benchmarks"`
}

type bdnBenchmark struct {
	FullName    string         `json:"FullName"`
	MethodTitle string         `json:"MethodTitle"`
	Statistics  *bdnStatistics `json:"Statistics"`
	Memory      *bdnMemory     `json:"Memory"`
}

type bdnStatistics struct {
	Mean        float64         `json:"Mean"`
	Percentiles *bdnPercentiles `json:"Percentiles"`
}

type bdnPercentiles struct {
	P95 *float64 `json:"P95"`
}

type bdnMemory struct {
	AllocatedBytes int64 `json:"AllocatedBytes"`
}

// ReadJSON decodes a full BenchmarkDotNet JSON export into one record
// per benchmark case, in export order.
func ReadJSON(r io.Reader) ([]JSONRecord, error) {
	var report bdnReport
	if err := json.NewDecoder(r).Decode(&report); err != nil {
		return nil, fmt.Errorf("decoding benchmark json: %w", err)
	}

	records := make([]JSONRecord, 0, len(report.Benchmarks))
	for _, b := range report.Benchmarks {
		if b.Statistics == nil {
			continue
		}
		rec := JSONRecord{
			FullName:    b.FullName,
			MethodTitle: b.MethodTitle,
			MeanNs:      b.Statistics.Mean,
		}
		if b.Statistics.Percentiles != nil && b.Statistics.Percentiles.P95 != nil {
			rec.P95Ns = benchdiff.Num(*b.Statistics.Percentiles.P95)
		}
		if b.Memory != nil {
			rec.AllocatedBytes = b.Memory.AllocatedBytes
		}
		records = append(records, rec)
	}
	return records, nil
}

// JSONDataset adapts JSON records to a Dataset so the same comparison
// core consumes them. Cells are emitted without unit suffixes; the
// normalizer's defaults (nanoseconds for time, bytes for memory) match
// the export's canonical units, so the adapter is lossless.
func JSONDataset(records []JSONRecord) *benchdiff.Dataset {
	headers := []string{"FullName", "Method", "Mean", "P95", "Allocated"}
	rows := make([]benchdiff.Row, 0, len(records))
	for _, rec := range records {
		row := benchdiff.Row{
			"FullName":  rec.FullName,
			"Method":    rec.MethodTitle,
			"Mean":      formatFloat(rec.MeanNs),
			"Allocated": strconv.FormatInt(rec.AllocatedBytes, 10),
		}
		if rec.P95Ns.Valid {
			row["P95"] = formatFloat(rec.P95Ns.Value)
		} else {
			row["P95"] = ""
		}
		rows = append(rows, row)
	}
	return benchdiff.NewDataset(headers, rows)
}

// ReadJSONFile reads a full BenchmarkDotNet JSON export from disk and
// adapts it to a Dataset.
func ReadJSONFile(path string) (*benchdiff.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	records, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return JSONDataset(records), nil
}

// formatFloat renders a float without exponent notation so the value
// parser's number token always matches the full magnitude.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
