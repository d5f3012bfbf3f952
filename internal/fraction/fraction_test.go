package fraction

import "testing"

func TestSimplify(t *testing.T) {
	tests := []struct {
		in   Frac
		want Frac
	}{
		{Frac{4, 8}, Frac{1, 2}},
		{Frac{-4, 8}, Frac{-1, 2}},
		{Frac{4, -8}, Frac{-1, 2}},
		{Frac{-4, -8}, Frac{1, 2}},
		{Frac{29, 21}, Frac{29, 21}},
		{Frac{0, 5}, Frac{0, 5}}, // gcd(0,5)=5 → 0/1
	}

	for _, tc := range tests {
		got := Simplify(tc.in)
		if tc.in.N == 0 {
			if got.N != 0 || got.D != 1 {
				t.Errorf("Simplify(%v) = %v, want 0/1", tc.in, got)
			}
			continue
		}
		if got != tc.want {
			t.Errorf("Simplify(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestSimplify_Invariants(t *testing.T) {
	for n := int64(-12); n <= 12; n++ {
		for d := int64(-12); d <= 12; d++ {
			if d == 0 {
				continue
			}
			s := Simplify(Frac{n, d})
			if s.D <= 0 {
				t.Fatalf("Simplify(%d/%d) has non-positive denominator %v", n, d, s)
			}
			if n != 0 && GCD(s.N, s.D) != 1 {
				t.Fatalf("Simplify(%d/%d) = %v not in lowest terms", n, d, s)
			}
		}
	}
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  Frac
		want Frac
	}{
		{"add unlike", Add(Frac{2, 3}, Frac{5, 7}), Frac{29, 21}},
		{"sub unlike", Sub(Frac{5, 6}, Frac{1, 3}), Frac{1, 2}},
		{"mul", Mul(Frac{2, 3}, Frac{3, 4}), Frac{1, 2}},
		{"div", Div(Frac{1, 2}, Frac{3, 4}), Frac{2, 3}},
	}

	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s = %v, want %v", tc.name, tc.got, tc.want)
		}
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want int64
	}{
		{3, 7, 21},
		{6, 3, 6},
		{4, 6, 12},
		{10, 10, 10},
	}
	for _, tc := range tests {
		if got := LCM(tc.a, tc.b); got != tc.want {
			t.Errorf("LCM(%d, %d) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Frac
		ok    bool
	}{
		{"2/3", Frac{2, 3}, true},
		{"4/8", Frac{1, 2}, true},
		{"-3/6", Frac{-1, 2}, true},
		{"1 1/2", Frac{3, 2}, true},
		{"-1 1/2", Frac{-3, 2}, true},
		{"2 tercios", Frac{2, 3}, true},
		{"3 cuartos", Frac{3, 4}, true},
		{"5", Frac{5, 1}, true},
		{"0.5", Frac{1, 2}, true},
		{"0,25", Frac{1, 4}, true},
		{"2/0", Frac{}, false},
		{"hola", Frac{}, false},
		{"", Frac{}, false},
	}

	for _, tc := range tests {
		got, ok := Parse(tc.input)
		if ok != tc.ok {
			t.Errorf("Parse(%q) ok = %v, want %v", tc.input, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	for n := int64(-9); n <= 9; n++ {
		for d := int64(1); d <= 9; d++ {
			orig := Simplify(Frac{n, d})
			parsed, ok := Parse(Format(orig))
			if !ok {
				t.Fatalf("Parse(Format(%d/%d)) failed", n, d)
			}
			if !Equal(parsed, orig) {
				t.Fatalf("round trip %d/%d: got %v, want %v", n, d, parsed, orig)
			}
		}
	}
}
