package skills

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/tutorin/internal/fraction"
	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

var (
	addSubRe  = regexp.MustCompile(`^(.+)\s*([+\-])\s*(.+)$`)
	mulRe     = regexp.MustCompile(`^(.+)\s*[x×*]\s*(.+)$`)
	numPairRe = regexp.MustCompile(`(-?\d+)\s*y\s*(-?\d+)`)
)

// fracBinop is the parsed payload shared by the fraction skills.
type fracBinop struct {
	A  fraction.Frac
	B  fraction.Frac
	Op string
}

// looksFractional reports whether an operand was written as an actual
// fraction (a/b, mixed, or a denominator word) rather than a bare number.
// The fraction skills require at least one fractional operand so that plain
// integer and decimal arithmetic falls through to the dedicated skills.
func looksFractional(s string) bool {
	t := textnorm.Normalize(s)
	if strings.Contains(t, "/") {
		return true
	}
	return fracWordRe.MatchString(t) || mixedFracRe.MatchString(t)
}

var (
	fracWordRe  = regexp.MustCompile(`^-?\d+\s+[a-záéíóúñ]+$`)
	mixedFracRe = regexp.MustCompile(`^-?\d+\s+\d+\s*/\s*\d+$`)
)

// splitDiv splits a division exercise into dividend and divisor. The slash
// doubles as the fraction bar, so the explicit signs (÷ and :) win; bare
// slashes are tried rightmost first and must leave two fraction operands
// ("1/2 / 3" splits after the 2, "3/4" alone is no division at all).
func splitDiv(raw string) (string, string, bool) {
	for _, sep := range []string{"÷", ":"} {
		if i := strings.LastIndex(raw, sep); i >= 0 {
			return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+len(sep):]), true
		}
	}
	for i := strings.LastIndex(raw, "/"); i > 0; i = strings.LastIndex(raw[:i], "/") {
		left, right := strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:])
		if _, _, ok := parseFracPair(left, right); ok {
			return left, right, true
		}
	}
	return "", "", false
}

func parseFracPair(left, right string) (fraction.Frac, fraction.Frac, bool) {
	a, okA := fraction.Parse(left)
	b, okB := fraction.Parse(right)
	if !okA || !okB {
		return fraction.Frac{}, fraction.Frac{}, false
	}
	if !looksFractional(left) && !looksFractional(right) {
		return fraction.Frac{}, fraction.Frac{}, false
	}
	return a, b, true
}

// --- Fracciones ± con distinto denominador -------------------------------

type fracAddSubDiff struct{ base }

func newFracAddSubDiff() *fracAddSubDiff {
	return &fracAddSubDiff{base{"frac-addsub-diff", "Fracciones ± (distinto denominador)", tutor.SubjectMates}}
}

func (s *fracAddSubDiff) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	m := addSubRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	a, b, ok := parseFracPair(m[1], m[3])
	if !ok || a.D == b.D {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: fracBinop{A: a, B: b, Op: m[2]}}, true
}

func (s *fracAddSubDiff) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(fracBinop)
	l := fraction.LCM(d.A.D, d.B.D)
	aEq := fraction.Frac{N: d.A.N * (l / d.A.D), D: l}
	bEq := fraction.Frac{N: d.B.N * (l / d.B.D), D: l}
	num := aEq.N + bEq.N
	if d.Op == "-" {
		num = aEq.N - bEq.N
	}
	unsimplified := fraction.Frac{N: num, D: l}
	simplified := fraction.Simplify(unsimplified)

	return []tutor.Step{
		{
			ID: "mcm",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 1: m.c.m. de %d y %d. ¿Cuál es?", d.A.D, d.B.D)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, float64(l)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %d.", l)}
			},
		},
		{
			ID: "conv",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 2: Convierte al denominador %d. ¿Qué numeradores quedan? (“%d y %d”).", l, aEq.N, bEq.N)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				u := textnorm.Normalize(t)
				if m := numPairRe.FindStringSubmatch(u); m != nil {
					ok := m[1] == fmt.Sprint(aEq.N) && m[2] == fmt.Sprint(bEq.N)
					if ok {
						return tutor.CheckResult{Ok: true}
					}
					return tutor.CheckResult{Feedback: fmt.Sprintf("Deberían ser %d y %d.", aEq.N, bEq.N)}
				}
				if parts := strings.Split(u, " y "); len(parts) == 2 {
					f1, ok1 := fraction.Parse(parts[0])
					f2, ok2 := fraction.Parse(parts[1])
					if ok1 && ok2 && fraction.Equal(f1, aEq) && fraction.Equal(f2, bEq) {
						return tutor.CheckResult{Ok: true}
					}
					return tutor.CheckResult{Feedback: "Comprueba las equivalencias."}
				}
				return tutor.CheckResult{Feedback: "Dímelo como “a y b” o como dos fracciones equivalentes."}
			},
		},
		{
			ID: "op",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 3: %d %s %d. ¿Resultado sin simplificar?", aEq.N, d.Op, bEq.N)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if f, ok := fraction.Parse(t); ok && fraction.Equal(f, unsimplified) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Debería ser %d/%d.", unsimplified.N, unsimplified.D)}
			},
		},
		{
			ID: "simp",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista 4: Simplifica si puedes. ¿Resultado final?"
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if f, ok := fraction.Parse(t); ok && f == simplified {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Queda %s.", fraction.Format(simplified))}
			},
		},
	}
}

func (s *fracAddSubDiff) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(fracBinop)
	if d.Op == "+" {
		return fraction.Format(fraction.Add(d.A, d.B))
	}
	return fraction.Format(fraction.Sub(d.A, d.B))
}

// --- Fracciones ± con el mismo denominador -------------------------------

type fracAddSubSame struct{ base }

func newFracAddSubSame() *fracAddSubSame {
	return &fracAddSubSame{base{"frac-addsub-same", "Fracciones ± (mismo denominador)", tutor.SubjectMates}}
}

func (s *fracAddSubSame) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	m := addSubRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	a, b, ok := parseFracPair(m[1], m[3])
	if !ok || a.D != b.D {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: fracBinop{A: a, B: b, Op: m[2]}}, true
}

func (s *fracAddSubSame) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(fracBinop)
	num := d.A.N + d.B.N
	if d.Op == "-" {
		num = d.A.N - d.B.N
	}
	unsimplified := fraction.Frac{N: num, D: d.A.D}
	simplified := fraction.Simplify(unsimplified)

	return []tutor.Step{
		{
			ID: "nums",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 1: Suma/resta numeradores: %d %s %d = ?", d.A.N, d.Op, d.B.N)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, float64(num)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %d.", num)}
			},
		},
		{
			ID: "write",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 2: Escribe %d/%d (sin simplificar).", num, d.A.D)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if f, ok := fraction.Parse(t); ok && fraction.Equal(f, unsimplified) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %d/%d.", num, d.A.D)}
			},
		},
		{
			ID: "simp",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista 3: Simplifica si procede. ¿Resultado final?"
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if f, ok := fraction.Parse(t); ok && f == simplified {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Queda %s.", fraction.Format(simplified))}
			},
		},
	}
}

func (s *fracAddSubSame) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(fracBinop)
	if d.Op == "+" {
		return fraction.Format(fraction.Add(d.A, d.B))
	}
	return fraction.Format(fraction.Sub(d.A, d.B))
}

// --- Multiplicación de fracciones ----------------------------------------

type fracMul struct{ base }

func newFracMul() *fracMul {
	return &fracMul{base{"frac-mul", "Multiplicación de fracciones", tutor.SubjectMates}}
}

func (s *fracMul) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	m := mulRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	a, b, ok := parseFracPair(m[1], m[2])
	if !ok {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: fracBinop{A: a, B: b, Op: "*"}}, true
}

func (s *fracMul) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(fracBinop)
	unsimplified := fraction.Frac{N: d.A.N * d.B.N, D: d.A.D * d.B.D}
	simplified := fraction.Simplify(unsimplified)

	return []tutor.Step{
		{
			ID: "num",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 1: Numeradores: %d × %d = ?", d.A.N, d.B.N)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, float64(d.A.N*d.B.N)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("%d.", d.A.N*d.B.N)}
			},
		},
		{
			ID: "den",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 2: Denominadores: %d × %d = ?", d.A.D, d.B.D)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, float64(d.A.D*d.B.D)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("%d.", d.A.D*d.B.D)}
			},
		},
		{
			ID: "simp",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 3: Escribe %d/%d y simplifica.", unsimplified.N, unsimplified.D)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if f, ok := fraction.Parse(t); ok && f == simplified {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Queda %s.", fraction.Format(simplified))}
			},
		},
	}
}

func (s *fracMul) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(fracBinop)
	return fraction.Format(fraction.Mul(d.A, d.B))
}

// --- División de fracciones ----------------------------------------------

type fracDiv struct{ base }

func newFracDiv() *fracDiv {
	return &fracDiv{base{"frac-div", "División de fracciones", tutor.SubjectMates}}
}

func (s *fracDiv) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	left, right, ok := splitDiv(raw)
	if !ok {
		return nil, false
	}
	a, b, ok := parseFracPair(left, right)
	if !ok || b.N == 0 {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: fracBinop{A: a, B: b, Op: "/"}}, true
}

func (s *fracDiv) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(fracBinop)
	inv := fraction.Simplify(fraction.Frac{N: d.B.D, D: d.B.N})
	product := fraction.Mul(d.A, inv)

	return []tutor.Step{
		{
			ID: "inv",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 1: Inversa de %s = ?", fraction.Format(d.B))
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if f, ok := fraction.Parse(t); ok && fraction.Equal(f, inv) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %s.", fraction.Format(inv))}
			},
		},
		{
			ID: "mul",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 2: Multiplica %s × %s y simplifica.", fraction.Format(d.A), fraction.Format(inv))
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if f, ok := fraction.Parse(t); ok && f == product {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Debería quedar %s.", fraction.Format(product))}
			},
		},
	}
}

func (s *fracDiv) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(fracBinop)
	return fraction.Format(fraction.Div(d.A, d.B))
}
