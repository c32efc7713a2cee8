package benchdiff

import "sort"

// Options configures one comparison run.
type Options struct {
	// KeyColumns is the resolved key column set. When empty, Compare
	// resolves it from the two datasets' headers.
	KeyColumns []string

	// Metrics is the resolved metric column list. When empty, Compare
	// auto-selects from the candidate metric table.
	Metrics []string

	// TimeUnit is the display unit for time metrics: ns, us, ms or s.
	TimeUnit string

	// MemUnit is the display unit for memory metrics: B, KB, MB or GB.
	MemUnit string

	// WarnTime flags a regression when a time or GC-count metric grows
	// by more than this percent.
	WarnTime float64

	// WarnAlloc flags a regression when a memory metric grows by more
	// than this percent.
	WarnAlloc float64

	// WarnThroughput flags a regression when a throughput metric drops
	// by more than this percent.
	WarnThroughput float64
}

// DefaultOptions returns the conventional defaults: nanosecond and byte
// display units, 5% time, 10% alloc and 5% throughput thresholds.
func DefaultOptions() Options {
	return Options{
		TimeUnit:       "ns",
		MemUnit:        "B",
		WarnTime:       5,
		WarnAlloc:      10,
		WarnThroughput: 5,
	}
}

// Status describes a case's presence across the two datasets.
type Status string

const (
	// StatusChanged means the case is present in both datasets.
	StatusChanged Status = "changed"
	// StatusAdded means the case exists only in the candidate dataset.
	StatusAdded Status = "added"
	// StatusRemoved means the case exists only in the baseline dataset.
	StatusRemoved Status = "removed"
)

// Verdict classifies a single case×metric movement.
type Verdict int

const (
	// VerdictNone means the delta is undefined: a side was missing,
	// unparsable, or the baseline was zero.
	VerdictNone Verdict = iota
	// VerdictFlat means the values are equal.
	VerdictFlat
	// VerdictGood means the metric moved in its favorable direction.
	VerdictGood
	// VerdictBad means the metric moved in its unfavorable direction.
	VerdictBad
)

// Cell is the comparison of one case's value for one metric column
// across the two datasets.
type Cell struct {
	Metric  string
	Kind    Kind
	OldRaw  string
	NewRaw  string
	OldBase Number
	NewBase Number
	// Delta is the percent change (new-old)/old*100, absent when not
	// computable. Absent is never rendered as zero.
	Delta     Number
	Verdict   Verdict
	Regressed bool
}

// CaseRow carries one benchmark case's status and per-metric cells.
type CaseRow struct {
	Key    string
	Status Status
	Cells  []Cell
}

// Regression records a case×metric delta that crossed its threshold in
// the unfavorable direction.
type Regression struct {
	Key      string
	Metric   string
	DeltaPct float64
}

// Result is the output of one comparison run: one row per unique case
// key in lexical key order, plus the accumulated regression list.
type Result struct {
	Options     Options
	KeyColumns  []string
	Metrics     []string
	Rows        []CaseRow
	Regressions []Regression
}

// HasRegressions reports whether any threshold was crossed.
func (r *Result) HasRegressions() bool { return len(r.Regressions) > 0 }

// Compare indexes both datasets by composite case key, unions the key
// space, and produces a Cell for every key×metric pair. Inputs are never
// mutated; all derived state is local to the call.
func Compare(baseline, candidate *Dataset, opts Options) (*Result, error) {
	opts = opts.withDefaults()
	keyCols, metrics, err := resolve(baseline, candidate, opts)
	if err != nil {
		return nil, err
	}

	oldByKey := indexByKey(baseline, keyCols)
	newByKey := indexByKey(candidate, keyCols)
	keys := unionKeys(oldByKey, newByKey)

	kinds := make([]Kind, len(metrics))
	for i, m := range metrics {
		kinds[i] = ClassifyMetric(m)
	}

	res := &Result{
		Options:    opts,
		KeyColumns: keyCols,
		Metrics:    metrics,
		Rows:       make([]CaseRow, 0, len(keys)),
	}
	for _, k := range keys {
		row := compareCase(k, oldByKey[k], newByKey[k], baseline, candidate, metrics, kinds, opts)
		res.Rows = append(res.Rows, row)
	}
	res.Regressions = collectRegressions(res.Rows)
	return res, nil
}

// withDefaults fills unset display units so a zero Options still
// renders sensibly.
func (o Options) withDefaults() Options {
	if o.TimeUnit == "" {
		o.TimeUnit = "ns"
	}
	if o.MemUnit == "" {
		o.MemUnit = "B"
	}
	return o
}

func resolve(baseline, candidate *Dataset, opts Options) (keyCols, metrics []string, err error) {
	keyCols = opts.KeyColumns
	if len(keyCols) == 0 {
		keyCols, err = ResolveKeyColumns(baseline.Headers, candidate.Headers, nil)
		if err != nil {
			return nil, nil, &ResolutionError{Stage: "key", Option: "--key", Err: err}
		}
	}
	metrics = opts.Metrics
	if len(metrics) == 0 {
		metrics, err = SelectMetrics(baseline.Headers, candidate.Headers, nil)
		if err != nil {
			return nil, nil, &ResolutionError{Stage: "metrics", Option: "--metrics", Err: err}
		}
	}
	return keyCols, metrics, nil
}

// indexByKey maps each row to its CaseKey. Key columns are resolved to
// the dataset's own header spelling for value lookup, then the values
// are re-keyed under the resolved spelling so both datasets yield
// identical key strings. Later rows win on duplicate keys.
func indexByKey(d *Dataset, keyCols []string) map[string]Row {
	local := make([]string, len(keyCols))
	for i, c := range keyCols {
		if orig, ok := d.Lookup(c); ok {
			local[i] = orig
		} else {
			local[i] = c
		}
	}
	m := make(map[string]Row, len(d.Rows))
	for _, row := range d.Rows {
		kr := make(Row, len(keyCols))
		for i, c := range keyCols {
			kr[c] = row[local[i]]
		}
		m[CaseKey(kr, keyCols)] = row
	}
	return m
}

func unionKeys(a, b map[string]Row) []string {
	keys := make([]string, 0, len(a)+len(b))
	for k := range a {
		keys = append(keys, k)
	}
	for k := range b {
		if _, ok := a[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func compareCase(key string, oldRow, newRow Row, baseline, candidate *Dataset, metrics []string, kinds []Kind, opts Options) CaseRow {
	status := StatusChanged
	switch {
	case oldRow == nil:
		status = StatusAdded
	case newRow == nil:
		status = StatusRemoved
	}

	row := CaseRow{Key: key, Status: status, Cells: make([]Cell, 0, len(metrics))}
	for i, m := range metrics {
		cell := Cell{Metric: m, Kind: kinds[i]}
		if oldRow != nil {
			cell.OldRaw = rawCell(baseline, oldRow, m)
			cell.OldBase = toBase(cell.OldRaw, cell.Kind)
		}
		if newRow != nil {
			cell.NewRaw = rawCell(candidate, newRow, m)
			cell.NewBase = toBase(cell.NewRaw, cell.Kind)
		}
		if cell.OldBase.Valid && cell.NewBase.Valid && cell.OldBase.Value != 0 {
			cell.Delta = Num((cell.NewBase.Value - cell.OldBase.Value) / cell.OldBase.Value * 100)
		}
		cell.Verdict = verdict(cell.Delta, cell.Kind)
		cell.Regressed = regressed(cell.Delta, cell.Kind, opts)
		row.Cells = append(row.Cells, cell)
	}
	return row
}

// rawCell reads a metric cell using the dataset's own header spelling.
func rawCell(d *Dataset, row Row, metric string) string {
	if orig, ok := d.Lookup(metric); ok {
		return row[orig]
	}
	return row[metric]
}

// toBase converts a raw cell to its kind's base unit, or absent when the
// cell holds no number.
func toBase(raw string, kind Kind) Number {
	v, ok := ParseNumber(raw)
	if !ok {
		return None()
	}
	return Num(NormalizeValue(v, UnitSuffix(raw), kind))
}

func verdict(delta Number, kind Kind) Verdict {
	switch {
	case !delta.Valid:
		return VerdictNone
	case delta.Value == 0:
		return VerdictFlat
	case kind.Favorable(delta.Value):
		return VerdictGood
	default:
		return VerdictBad
	}
}

func regressed(delta Number, kind Kind, opts Options) bool {
	if !delta.Valid {
		return false
	}
	switch kind {
	case KindTime, KindGCCount:
		return delta.Value > opts.WarnTime
	case KindMemory:
		return delta.Value > opts.WarnAlloc
	case KindThroughput:
		return delta.Value < -opts.WarnThroughput
	}
	return false
}

// collectRegressions walks rows in key order so the regression list is
// deterministic: by case key, then metric order.
func collectRegressions(rows []CaseRow) []Regression {
	var regs []Regression
	for _, row := range rows {
		for _, c := range row.Cells {
			if c.Regressed {
				regs = append(regs, Regression{Key: row.Key, Metric: c.Metric, DeltaPct: c.Delta.Value})
			}
		}
	}
	return regs
}
