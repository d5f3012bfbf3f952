package textnorm

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"¿Cuánto es 2/3 + 5/7?", "cuánto es 2/3 + 5/7"},
		{"  3,14   redondea  ", "3.14 redondea"},
		{"MCM de 4 y 6", "mcm de 4 y 6"},
		{"", ""},
		{"   ", ""},
	}

	for _, tc := range tests {
		got := Normalize(tc.input)
		if got != tc.want {
			t.Errorf("Normalize(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"¿Capital de Francia?",
		"  5/6   -  1/3 ",
		"Redondea 3,14159 a 2 decimales",
		"",
	}
	for _, s := range inputs {
		once := Normalize(s)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", s, once, twice)
		}
	}
}

func TestStripAccents(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"parís", "paris"},
		{"esdrújula", "esdrujula"},
		{"españa", "españa"}, // ñ is not an accent
		{"bogotá", "bogota"},
	}

	for _, tc := range tests {
		got := StripAccents(tc.input)
		if got != tc.want {
			t.Errorf("StripAccents(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		input string
		want  float64
		ok    bool
	}{
		{"42", 42, true},
		{"-7", -7, true},
		{"3.5", 3.5, true},
		{"3,5", 3.5, true},
		{" 21 ", 21, true},
		{"", 0, false},
		{".", 0, false},
		{"-", 0, false},
		{"-.", 0, false},
		{"abc", 0, false},
		{"1/2", 0, false},
		{"1.2.3", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseNumber(tc.input)
		if ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("ParseNumber(%q) = (%v, %v), want (%v, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}
