package units

import (
	"math"
	"testing"
)

func TestFactor(t *testing.T) {
	tests := []struct {
		from, to string
		want     float64
		ok       bool
	}{
		{"m", "cm", 100, true},
		{"cm", "m", 0.01, true},
		{"km", "m", 1000, true},
		{"kg", "g", 1000, true},
		{"l", "ml", 1000, true},
		{"h", "min", 60, true},
		{"min", "s", 60, true},
		{"s", "h", 1.0 / 3600, true},
		{"kg", "m", 0, false}, // cross-family
		{"l", "g", 0, false},
		{"h", "m", 0, false},
		{"furlong", "m", 0, false},
	}

	for _, tc := range tests {
		got, ok := Factor(tc.from, tc.to)
		if ok != tc.ok {
			t.Errorf("Factor(%q, %q) ok = %v, want %v", tc.from, tc.to, ok, tc.ok)
			continue
		}
		if ok && math.Abs(got-tc.want) > 1e-12 {
			t.Errorf("Factor(%q, %q) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}
