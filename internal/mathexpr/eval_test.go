package mathexpr

import (
	"math"
	"testing"
)

func TestEval(t *testing.T) {
	tests := []struct {
		expr string
		want float64
	}{
		{"2+3", 5},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 / 4", 2.5},
		{"2 x 3", 6},
		{"8 ÷ 2", 4},
		{"9 : 3", 3},
		{"3 × (4 - 1)", 9},
		{"-5 + 3", -2},
		{"2 * (3 + (4 - 1))", 12},
		{"1.5 + 2.5", 4},
		{"-(2 + 3)", -5},
	}

	for _, tc := range tests {
		got, err := Eval(tc.expr)
		if err != nil {
			t.Errorf("Eval(%q) error: %v", tc.expr, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Eval(%q) = %v, want %v", tc.expr, got, tc.want)
		}
	}
}

func TestEval_Errors(t *testing.T) {
	exprs := []string{
		"",
		"2 +",
		"(2 + 3",
		"2 + a",
		"1 / 0",
		"os.Exit(1)",
		"2; 3",
		"1..2",
	}

	for _, expr := range exprs {
		if _, err := Eval(expr); err == nil {
			t.Errorf("Eval(%q) expected error, got none", expr)
		}
	}
}
