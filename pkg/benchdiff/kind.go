package benchdiff

import "strings"

// Kind is the semantic category of a metric column. It governs which
// base unit a value normalizes to and which delta direction counts as an
// improvement.
type Kind int

const (
	// KindTime is a latency/duration statistic; base unit nanoseconds.
	// Decrease is good.
	KindTime Kind = iota

	// KindMemory is an allocation/footprint statistic; base unit bytes.
	// Decrease is good.
	KindMemory

	// KindThroughput is an operations-per-second statistic; no unit
	// conversion. Increase is good.
	KindThroughput

	// KindGCCount is a garbage-collection count statistic; no unit
	// conversion. Decrease is good.
	KindGCCount
)

// String returns the kind's short name.
func (k Kind) String() string {
	switch k {
	case KindMemory:
		return "memory"
	case KindThroughput:
		return "throughput"
	case KindGCCount:
		return "gc"
	default:
		return "time"
	}
}

// BetterDirection reports which delta direction is an improvement for
// this kind: "down" for time, memory and GC counts, "up" for throughput.
func (k Kind) BetterDirection() string {
	if k == KindThroughput {
		return "up"
	}
	return "down"
}

// Favorable reports whether a delta of the given sign is an improvement
// for this kind.
func (k Kind) Favorable(deltaPct float64) bool {
	if k == KindThroughput {
		return deltaPct > 0
	}
	return deltaPct < 0
}

// Exact-match name tables, keyed by NormalizeName output.
var (
	throughputMetrics = nameSet("op/s", "ops/s", "op per s", "ops per s", "operationspersecond", "operations/s")
	memoryMetrics     = nameSet("allocated", "allocated/op", "alloc/op", "alloc b/op", "alloc")
	gcMetrics         = nameSet("gen 0", "gen 1", "gen 2")
	timeMetrics       = nameSet("mean", "median", "p95", "min", "max", "q1", "q3", "stddev", "error")
)

func nameSet(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

// classifierRules are evaluated top to bottom, first match wins. The
// order is load-bearing: the memory rule must run before the throughput
// heuristic so "Alloc/op" is never read as a rate, and anything
// unrecognized falls through to time because BenchmarkDotNet-style
// exports keep introducing new time-like statistic columns.
var classifierRules = []struct {
	match func(name string) bool
	kind  Kind
}{
	{func(n string) bool { return throughputMetrics[n] }, KindThroughput},
	{func(n string) bool {
		return memoryMetrics[n] || strings.Contains(n, "alloc") || strings.HasPrefix(n, "allocated")
	}, KindMemory},
	{func(n string) bool { return gcMetrics[n] }, KindGCCount},
	{func(n string) bool { return timeMetrics[n] }, KindTime},
	{func(n string) bool {
		return strings.Contains(n, "/s") || strings.Contains(n, "persecond")
	}, KindThroughput},
}

// ClassifyMetric maps a column name to its Kind. The mapping is total
// and deterministic: every name yields exactly one kind, with KindTime
// as the default for unknown columns.
func ClassifyMetric(name string) Kind {
	n := NormalizeName(name)
	for _, r := range classifierRules {
		if r.match(n) {
			return r.kind
		}
	}
	return KindTime
}
