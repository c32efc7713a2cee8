package benchdiff

import "strings"

// timeFactors maps recognized time-unit prefixes to their nanosecond
// factor. Matching is by prefix in declaration order, so "ms" is tried
// after the micro variants and bare "s" comes last.
var timeFactors = []struct {
	prefix string
	factor float64
}{
	{"ns", 1},
	{"us", 1e3},
	{"µs", 1e3},
	{"μs", 1e3},
	{"ms", 1e6},
	{"s", 1e9},
}

// ToBaseTime converts a time magnitude with the given unit suffix to
// nanoseconds. An empty or unrecognized suffix leaves the value
// unchanged: unlabeled time cells are assumed to already be in
// nanoseconds, matching the exporter's convention.
func ToBaseTime(v float64, unit string) float64 {
	unit = strings.ToLower(strings.TrimSpace(unit))
	for _, t := range timeFactors {
		if strings.HasPrefix(unit, t.prefix) {
			return v * t.factor
		}
	}
	return v
}

// FromBaseTime converts nanoseconds to the given display unit. Unknown
// units display as nanoseconds.
func FromBaseTime(base float64, unit string) float64 {
	unit = strings.ToLower(strings.TrimSpace(unit))
	for _, t := range timeFactors {
		if unit == t.prefix {
			return base / t.factor
		}
	}
	return base
}

var memSpellings = strings.NewReplacer(
	"bytes", "b",
	"byte", "b",
	"kib", "kb",
	"mib", "mb",
	"gib", "gb",
)

// ToBaseMemory converts a memory magnitude with the given unit suffix to
// bytes, scaling by powers of 1024. Spelling variants (bytes, KiB, MiB,
// GiB, bare k/m/g) are normalized first; matching is case-insensitive.
// An empty suffix is treated as bytes already — Allocated columns
// commonly carry no unit and are exported as bytes per op. Note that an
// unlabeled cell that is actually in a larger unit would silently pass
// through; that is an accepted limitation of the exporter convention,
// not a guaranteed conversion.
func ToBaseMemory(v float64, unit string) float64 {
	u := strings.ToLower(strings.TrimSpace(unit))
	if u == "" {
		return v
	}
	u = strings.TrimSpace(memSpellings.Replace(u))
	switch u {
	case "b":
		return v
	case "kb", "k":
		return v * 1024
	case "mb", "m":
		return v * 1024 * 1024
	case "gb", "g":
		return v * 1024 * 1024 * 1024
	}
	return v
}

// FromBaseMemory converts bytes to the given display unit (B, KB, MB or
// GB, case-insensitive). Unknown units display as bytes.
func FromBaseMemory(base float64, unit string) float64 {
	switch strings.ToLower(strings.TrimSpace(unit)) {
	case "kb":
		return base / 1024
	case "mb":
		return base / (1024 * 1024)
	case "gb":
		return base / (1024 * 1024 * 1024)
	}
	return base
}

// NormalizeValue converts a parsed magnitude and unit suffix to the base
// unit for the metric's kind: nanoseconds for time, bytes for memory.
// Throughput and GC counts pass through unchanged, they carry no unit
// ambiguity in practice.
func NormalizeValue(v float64, unit string, kind Kind) float64 {
	switch kind {
	case KindTime:
		return ToBaseTime(v, unit)
	case KindMemory:
		return ToBaseMemory(v, unit)
	}
	return v
}
