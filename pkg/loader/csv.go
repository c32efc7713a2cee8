// Package loader reads benchmark result snapshots from their source
// formats and presents each one as a benchdiff.Dataset for the
// comparison core.
package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/watt-toolkit/benchdiff/pkg/benchdiff"
)

// ReadCSV reads a delimited-text export with a header row. The original
// header spelling is preserved and a UTF-8 byte-order mark is stripped
// transparently.
func ReadCSV(r io.Reader) (*benchdiff.Dataset, error) {
	br := bufio.NewReader(r)
	if ch, _, err := br.ReadRune(); err == nil {
		if ch != '\uFEFF' {
			if err := br.UnreadRune(); err != nil {
				return nil, err
			}
		}
	} else if err != io.EOF {
		return nil, err
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1

	headers, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("csv input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("reading csv header: %w", err)
	}

	var rows []benchdiff.Row
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading csv row: %w", err)
		}
		row := make(benchdiff.Row, len(headers))
		for i, h := range headers {
			if i < len(record) {
				row[h] = record[i]
			} else {
				row[h] = ""
			}
		}
		rows = append(rows, row)
	}
	return benchdiff.NewDataset(headers, rows), nil
}

// ReadCSVFile reads a CSV export from disk.
func ReadCSVFile(path string) (*benchdiff.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
