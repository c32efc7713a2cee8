package benchdiff

// candidateMetrics is the canonical preference order for auto-selected
// metric columns. The intersection with both datasets' headers decides
// what actually gets compared.
var candidateMetrics = []string{
	"Mean", "Median", "P95", "Min", "Max", "StdDev", "Error",
	"Op/s", "OperationsPerSecond",
	"Allocated", "Alloc B/op", "Allocated/op",
	"Gen 0", "Gen 1", "Gen 2",
}

var candidateMetricNames = func() map[string]bool {
	m := make(map[string]bool, len(candidateMetrics))
	for _, c := range candidateMetrics {
		m[NormalizeName(c)] = true
	}
	return m
}()

// SelectMetrics determines the ordered list of metric columns to
// compare.
//
// When the caller requests specific metrics, each name is resolved
// case/whitespace-insensitively to its original spelling (preferring the
// baseline's casing, falling back to the candidate's) and kept only if
// present in both header sets, preserving caller order. When no request
// is made, or the request resolves to nothing, the fixed candidate table
// is scanned in preference order and entries present in both sets are
// kept, de-duplicated by normalized name.
//
// ErrNoComparableMetrics is returned when nothing is selectable.
func SelectMetrics(baseline, candidate []string, requested []string) ([]string, error) {
	s1 := headerIndex(baseline)
	s2 := headerIndex(candidate)

	if len(requested) > 0 {
		var picked []string
		for _, m := range requested {
			nk := NormalizeName(m)
			orig, ok := s1[nk]
			if !ok {
				orig, ok = s2[nk]
			}
			_, in1 := s1[nk]
			_, in2 := s2[nk]
			if ok && in1 && in2 {
				picked = append(picked, orig)
			}
		}
		if len(picked) > 0 {
			return picked, nil
		}
	}

	var picked []string
	seen := map[string]bool{}
	for _, cand := range candidateMetrics {
		nk := NormalizeName(cand)
		orig, in1 := s1[nk]
		_, in2 := s2[nk]
		if in1 && in2 && !seen[nk] {
			seen[nk] = true
			picked = append(picked, orig)
		}
	}

	if len(picked) == 0 {
		return nil, ErrNoComparableMetrics
	}
	return picked, nil
}
