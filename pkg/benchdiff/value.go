package benchdiff

import (
	"regexp"
	"strconv"
	"strings"
)

// Number is a float that can be absent. Absence means "no number parsed"
// or "delta not computable" and is distinct from zero throughout the
// pipeline; a missing baseline must never be treated as a 0→N increase.
type Number struct {
	Value float64
	Valid bool
}

// Num returns a present Number.
func Num(v float64) Number { return Number{Value: v, Valid: true} }

// None returns an absent Number.
func None() Number { return Number{} }

// numberPattern matches the first numeric token in a cell: optional
// sign, digit groups with thousands separators, optional decimal part,
// optional exponent.
var numberPattern = regexp.MustCompile(`[-+]?\d[\d,]*\.?\d*(?:[eE][-+]?\d+)?`)

// ParseNumber extracts the first numeric magnitude from a raw cell
// string, ignoring thousands separators and trailing text. The second
// return value is false when the string holds no number; callers must
// not conflate that with a parsed zero.
func ParseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	tok := numberPattern.FindString(s)
	if tok == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(tok, ",", ""), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// suffixRewrites are applied in order; longer spellings first so that
// "per second" is not half-eaten by "per sec".
var suffixRewrites = [...][2]string{
	{"per second", "/s"},
	{"per sec", "/s"},
	{" per s", "/s"},
	{"µs", "us"}, // micro sign
	{"μs", "us"}, // greek mu
}

// UnitSuffix returns the normalized unit suffix that follows the first
// numeric token: trimmed, lower-cased, with "per second" spellings
// collapsed to "/s" and micro-sign variants rewritten as "us". A cell
// with no number has an empty suffix.
func UnitSuffix(s string) string {
	s = strings.TrimSpace(s)
	loc := numberPattern.FindStringIndex(s)
	if loc == nil {
		return ""
	}
	suffix := strings.ToLower(strings.TrimSpace(s[loc[1]:]))
	for _, rw := range suffixRewrites {
		suffix = strings.ReplaceAll(suffix, rw[0], rw[1])
	}
	return suffix
}
