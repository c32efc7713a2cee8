package benchdiff

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
		ok    bool
	}{
		{"plain integer", "450", 450, true},
		{"decimal", "12.3", 12.3, true},
		{"with unit suffix", "12.3 us", 12.3, true},
		{"thousands separators", "1,204.5", 1204.5, true},
		{"thousands and unit", "1,204.5 KB", 1204.5, true},
		{"negative", "-3.5", -3.5, true},
		{"explicit plus", "+7", 7, true},
		{"exponent", "-3.5e2", -350, true},
		{"exponent with sign", "1e+3 ns", 1000, true},
		{"leading text", "about 42 ns", 42, true},
		{"empty", "", 0, false},
		{"whitespace only", "   ", 0, false},
		{"no digits", "N/A", 0, false},
		{"dash placeholder", "-", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseNumber(tt.input)
			if ok != tt.ok {
				t.Fatalf("ParseNumber(%q) ok = %v, want %v", tt.input, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("ParseNumber(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseNumberZeroIsNotMissing(t *testing.T) {
	got, ok := ParseNumber("0")
	if !ok {
		t.Fatal("ParseNumber(\"0\") reported no number; zero must be distinguishable from missing")
	}
	if got != 0 {
		t.Errorf("ParseNumber(\"0\") = %v, want 0", got)
	}
}

func TestUnitSuffix(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple time unit", "12.3 us", "us"},
		{"no space before unit", "450B", "b"},
		{"uppercase unit", "1,204.5 KB", "kb"},
		{"micro sign", "7 µs", "us"},
		{"greek mu", "7 μs", "us"},
		{"per second spelling", "5 per second", "/s"},
		{"ops per sec", "120 ops per sec", "ops /s"},
		{"bare number", "1204", ""},
		{"no number means no suffix", "fast", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UnitSuffix(tt.input); got != tt.want {
				t.Errorf("UnitSuffix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNumber(t *testing.T) {
	if n := Num(1.5); !n.Valid || n.Value != 1.5 {
		t.Errorf("Num(1.5) = %+v, want valid 1.5", n)
	}
	if n := None(); n.Valid {
		t.Errorf("None() = %+v, want absent", n)
	}
}
