package benchdiff

import "testing"

func TestDatasetLookup(t *testing.T) {
	d := NewDataset([]string{"Method", "Alloc B/op", "Mean"}, nil)

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"Method", "Method", true},
		{"method", "Method", true},
		{"  METHOD ", "Method", true},
		{"alloc  b/op", "Alloc B/op", true},
		{"ALLOC B/OP", "Alloc B/op", true},
		{"Missing", "", false},
	}
	for _, tt := range tests {
		got, ok := d.Lookup(tt.query)
		if ok != tt.ok || got != tt.want {
			t.Errorf("Lookup(%q) = (%q, %v), want (%q, %v)", tt.query, got, ok, tt.want, tt.ok)
		}
	}

	if !d.Has("mean") || d.Has("nope") {
		t.Error("Has() disagrees with Lookup()")
	}
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Mean", "mean"},
		{"  Gen   0  ", "gen 0"},
		{"Alloc\tB/op", "alloc b/op"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeName(tt.in); got != tt.want {
			t.Errorf("NormalizeName(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCaseKey(t *testing.T) {
	row := Row{"Method": "Encode", "N": "1000", "Runtime": ".NET 8.0"}

	got := CaseKey(row, []string{"Method", "N"})
	if want := "Method=Encode | N=1000"; got != want {
		t.Errorf("CaseKey() = %q, want %q", got, want)
	}

	// Missing columns contribute an empty value, not a panic.
	got = CaseKey(row, []string{"Method", "Job"})
	if want := "Method=Encode | Job="; got != want {
		t.Errorf("CaseKey() = %q, want %q", got, want)
	}
}
