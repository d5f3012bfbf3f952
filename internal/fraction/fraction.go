// Package fraction implements exact rational arithmetic on small fractions.
// All operations return fractions in lowest terms with a positive denominator.
package fraction

import "fmt"

// Frac is a rational number n/d. A zero value is not a valid fraction;
// construct through Simplify or the arithmetic helpers.
type Frac struct {
	N int64
	D int64
}

// GCD returns the greatest common divisor of a and b. Returns 1 when both
// inputs are zero so that callers can divide by it unconditionally.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a == 0 {
		return 1
	}
	return a
}

// LCM returns the least common multiple of a and b.
func LCM(a, b int64) int64 {
	l := a * b / GCD(a, b)
	if l < 0 {
		return -l
	}
	return l
}

// Simplify reduces f to lowest terms and normalizes the sign onto the
// numerator, so the denominator is always positive.
func Simplify(f Frac) Frac {
	g := GCD(f.N, f.D)
	n, d := f.N/g, f.D/g
	if d < 0 {
		n, d = -n, -d
	}
	return Frac{N: n, D: d}
}

// Equal reports whether a and b represent the same rational value.
func Equal(a, b Frac) bool {
	return Simplify(a) == Simplify(b)
}

// Add returns a+b simplified.
func Add(a, b Frac) Frac {
	return Simplify(Frac{N: a.N*b.D + b.N*a.D, D: a.D * b.D})
}

// Sub returns a-b simplified.
func Sub(a, b Frac) Frac {
	return Simplify(Frac{N: a.N*b.D - b.N*a.D, D: a.D * b.D})
}

// Mul returns a*b simplified.
func Mul(a, b Frac) Frac {
	return Simplify(Frac{N: a.N * b.N, D: a.D * b.D})
}

// Div returns a/b simplified. Division by a zero fraction yields a zero
// denominator, which callers must rule out at parse time.
func Div(a, b Frac) Frac {
	return Simplify(Frac{N: a.N * b.D, D: a.D * b.N})
}

// Format renders f in lowest terms: "n/d", or just "n" when the
// denominator reduces to 1.
func Format(f Frac) string {
	s := Simplify(f)
	if s.D == 1 {
		return fmt.Sprintf("%d", s.N)
	}
	return fmt.Sprintf("%d/%d", s.N, s.D)
}
