package benchdiff

// Identity column tables used by ResolveKeyColumns. All matching is by
// NormalizeName.
var (
	// uniqueIdentityColumns are conventionally already-unique composite
	// identifiers; when one is present in both datasets it is used alone.
	uniqueIdentityColumns = []string{"FullName", "Benchmark"}

	// compositeIdentityColumns are appended in this order when building a
	// composite key.
	compositeIdentityColumns = []string{"Namespace", "Type", "Method", "Parameters", "Param", "Arguments"}

	// runConfigColumns distinguish otherwise-identical cases that ran
	// under different harness configurations.
	runConfigColumns = []string{"Runtime", "Job", "Platform", "Jit"}

	// nonIdentityColumns are never part of an auto-picked key: statistic
	// columns, ranking and run-harness metadata. Single-letter parameter
	// names like "N" are deliberately not listed; free-form parameter
	// columns must survive the scan.
	nonIdentityColumns = nameSet(
		// statistics and metrics
		"mean", "median", "p95", "min", "max", "q1", "q3", "stddev", "error",
		"op/s", "operationspersecond", "allocated", "alloc b/op", "allocated/op",
		"gen 0", "gen 1", "gen 2",
		// ranking
		"rank", "baseline",
		// run-harness knobs
		"iterationcount", "launchcount", "warmupcount", "invocationcount",
		"unrollfactor", "toolchain", "evaluateoverhead", "powerplan",
		"servergc", "concurrencyvisualizer",
		// misc metadata
		"description", "hardwareintrinsics", "hardwarecounter",
		"memoryrandomization", "enginefactory",
	)
)

// headerIndex maps normalized names to original spellings, first
// occurrence wins.
func headerIndex(headers []string) map[string]string {
	m := make(map[string]string, len(headers))
	for _, h := range headers {
		nk := NormalizeName(h)
		if _, ok := m[nk]; !ok {
			m[nk] = h
		}
	}
	return m
}

// ResolveKeyColumns determines the ordered list of columns that jointly
// identify a benchmark case across the two header sets. Resolution runs
// through layered fallbacks:
//
//  1. Explicit columns from the caller, intersected with columns present
//     in both datasets, in caller order. A non-empty intersection wins.
//  2. A single FullName or Benchmark column present in both.
//  3. A composite of the preferred identity columns, then the run
//     configuration columns, then any column shared by both datasets
//     that is neither a known statistic nor harness metadata — this
//     captures free-form parameter columns such as "N" or "Size".
//  4. A lone Method column, or failing that every shared non-statistic
//     header.
//
// Returned spellings come from the baseline headers. ErrUnresolvableKey
// is returned when every fallback comes up empty.
func ResolveKeyColumns(baseline, candidate []string, explicit []string) ([]string, error) {
	s1 := headerIndex(baseline)
	s2 := headerIndex(candidate)

	inBoth := func(name string) (string, bool) {
		nk := NormalizeName(name)
		orig, ok1 := s1[nk]
		_, ok2 := s2[nk]
		return orig, ok1 && ok2
	}

	if len(explicit) > 0 {
		var picked []string
		for _, c := range explicit {
			if orig, ok := inBoth(c); ok {
				picked = append(picked, orig)
			}
		}
		if len(picked) > 0 {
			return picked, nil
		}
	}

	for _, c := range uniqueIdentityColumns {
		if orig, ok := inBoth(c); ok {
			return []string{orig}, nil
		}
	}

	var picked []string
	seen := map[string]bool{}
	add := func(orig string) {
		nk := NormalizeName(orig)
		if !seen[nk] {
			seen[nk] = true
			picked = append(picked, orig)
		}
	}

	for _, c := range compositeIdentityColumns {
		if orig, ok := inBoth(c); ok {
			add(orig)
		}
	}
	for _, c := range runConfigColumns {
		if orig, ok := inBoth(c); ok {
			add(orig)
		}
	}

	// Free-form parameter columns: shared, not a statistic, not a
	// candidate metric, not already picked. Baseline order.
	for _, h := range baseline {
		nk := NormalizeName(h)
		if nonIdentityColumns[nk] || candidateMetricNames[nk] || seen[nk] {
			continue
		}
		if _, ok := s2[nk]; ok {
			add(h)
		}
	}

	if len(picked) == 0 {
		if orig, ok := inBoth("Method"); ok {
			return []string{orig}, nil
		}
		for _, h := range baseline {
			nk := NormalizeName(h)
			if nonIdentityColumns[nk] || seen[nk] {
				continue
			}
			if _, ok := s2[nk]; ok {
				add(h)
			}
		}
	}

	if len(picked) == 0 {
		return nil, ErrUnresolvableKey
	}
	return picked, nil
}
