package benchdiff

import "testing"

func TestToBaseTime(t *testing.T) {
	tests := []struct {
		name string
		val  float64
		unit string
		want float64
	}{
		{"nanoseconds", 5, "ns", 5},
		{"microseconds", 12.3, "us", 12300},
		{"micro sign", 1, "µs", 1000},
		{"greek mu", 1, "μs", 1000},
		{"milliseconds", 2, "ms", 2e6},
		{"seconds", 1.5, "s", 1.5e9},
		{"unit with trailing text", 3, "ms/op", 3e6},
		{"empty defaults to ns", 42, "", 42},
		{"unknown unit passes through", 42, "furlongs", 42},
		{"case insensitive", 1, "MS", 1e6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBaseTime(tt.val, tt.unit); got != tt.want {
				t.Errorf("ToBaseTime(%v, %q) = %v, want %v", tt.val, tt.unit, got, tt.want)
			}
		})
	}
}

// All recognized suffixes must satisfy normalize(parse(v+suffix)) ==
// v * factor(suffix).
func TestTimeUnitRoundTrip(t *testing.T) {
	factors := map[string]float64{
		"ns": 1, "us": 1e3, "µs": 1e3, "μs": 1e3, "ms": 1e6, "s": 1e9,
	}
	const v = 12.5
	for suffix, factor := range factors {
		raw := "12.5 " + suffix
		n, ok := ParseNumber(raw)
		if !ok {
			t.Fatalf("ParseNumber(%q) found no number", raw)
		}
		got := ToBaseTime(n, UnitSuffix(raw))
		if want := v * factor; got != want {
			t.Errorf("normalize(parse(%q)) = %v, want %v", raw, got, want)
		}
	}
}

func TestToBaseMemory(t *testing.T) {
	tests := []struct {
		name string
		val  float64
		unit string
		want float64
	}{
		{"bytes", 450, "b", 450},
		{"bytes spelled out", 450, "bytes", 450},
		{"byte singular", 1, "byte", 1},
		{"kilobytes", 2, "kb", 2048},
		{"kibibytes", 2, "kib", 2048},
		{"bare k", 2, "k", 2048},
		{"megabytes", 1, "mb", 1024 * 1024},
		{"mebibytes", 1, "mib", 1024 * 1024},
		{"gigabytes", 1, "gb", 1024 * 1024 * 1024},
		{"gibibytes", 1, "gib", 1024 * 1024 * 1024},
		{"empty is already bytes", 512, "", 512},
		{"unknown passes through", 512, "pages", 512},
		{"uppercase KiB", 2, "KiB", 2048},
		{"uppercase GB", 1, "GB", 1024 * 1024 * 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToBaseMemory(tt.val, tt.unit); got != tt.want {
				t.Errorf("ToBaseMemory(%v, %q) = %v, want %v", tt.val, tt.unit, got, tt.want)
			}
		})
	}
}

func TestFromBaseTime(t *testing.T) {
	tests := []struct {
		base float64
		unit string
		want float64
	}{
		{1e6, "ms", 1},
		{1e6, "us", 1000},
		{1e6, "ns", 1e6},
		{2e9, "s", 2},
		{42, "", 42},
	}
	for _, tt := range tests {
		if got := FromBaseTime(tt.base, tt.unit); got != tt.want {
			t.Errorf("FromBaseTime(%v, %q) = %v, want %v", tt.base, tt.unit, got, tt.want)
		}
	}
}

func TestFromBaseMemory(t *testing.T) {
	tests := []struct {
		base float64
		unit string
		want float64
	}{
		{2048, "KB", 2},
		{2048, "kb", 2},
		{1024 * 1024, "MB", 1},
		{3 * 1024 * 1024 * 1024, "GB", 3},
		{512, "B", 512},
	}
	for _, tt := range tests {
		if got := FromBaseMemory(tt.base, tt.unit); got != tt.want {
			t.Errorf("FromBaseMemory(%v, %q) = %v, want %v", tt.base, tt.unit, got, tt.want)
		}
	}
}

func TestNormalizeValue(t *testing.T) {
	if got := NormalizeValue(2, "ms", KindTime); got != 2e6 {
		t.Errorf("time normalization = %v, want 2e6", got)
	}
	if got := NormalizeValue(2, "kb", KindMemory); got != 2048 {
		t.Errorf("memory normalization = %v, want 2048", got)
	}
	// Throughput and GC magnitudes pass through untouched whatever the
	// suffix claims.
	if got := NormalizeValue(1000, "ops/s", KindThroughput); got != 1000 {
		t.Errorf("throughput normalization = %v, want 1000", got)
	}
	if got := NormalizeValue(3, "ms", KindGCCount); got != 3 {
		t.Errorf("gc normalization = %v, want 3", got)
	}
}
