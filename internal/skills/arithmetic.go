package skills

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/tutorin/internal/fraction"
	"github.com/abhisek/tutorin/internal/mathexpr"
	"github.com/abhisek/tutorin/internal/tutor"
)

var (
	decimalsRe = regexp.MustCompile(`(-?\d+(?:[.,]\d+)?)\s*([+\-*x×/:÷])\s*(-?\d+(?:[.,]\d+)?)`)
	integersRe = regexp.MustCompile(`(-?\d+)\s*([+\-*x×/:÷])\s*(-?\d+)`)
	mcmRe      = regexp.MustCompile(`m\.?c\.?m\.?.*?(\d+).*?(?:y|,)\s*(\d+)`)
	mcdRe      = regexp.MustCompile(`m\.?c\.?d\.?.*?(\d+).*?(?:y|,)\s*(\d+)`)
	powCaretRe = regexp.MustCompile(`(\d+)\s*\^\s*(\d+)`)
	powSqRe    = regexp.MustCompile(`cuadrad[oa]\s+de\s+(\d+)`)
	powCubeRe  = regexp.MustCompile(`cub[oa]\s+de\s+(\d+)`)
	parensRe   = regexp.MustCompile(`[()]`)
	anyOpRe    = regexp.MustCompile(`[+\-*/x×:÷]`)
)

func normalizeOp(op string) string {
	switch op {
	case "x", "×":
		return "*"
	case ":", "÷":
		return "/"
	}
	return op
}

// --- Decimales ------------------------------------------------------------

type decimalBinop struct {
	A, B float64
	Op   string
}

type decimals struct{ base }

func newDecimals() *decimals {
	return &decimals{base{"decimals", "Decimales (+ − × ÷)", tutor.SubjectMates}}
}

// MatchAndParse requires a decimal separator in at least one operand so that
// plain integer arithmetic reaches the integers skill instead. Parenthesized
// expressions are declined so they reach the precedence skill.
func (s *decimals) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if parensRe.MatchString(raw) {
		return nil, false
	}
	m := decimalsRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	if !strings.ContainsAny(m[1], ".,") && !strings.ContainsAny(m[3], ".,") {
		return nil, false
	}
	a, errA := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	b, errB := strconv.ParseFloat(strings.ReplaceAll(m[3], ",", "."), 64)
	if errA != nil || errB != nil {
		return nil, false
	}
	op := normalizeOp(m[2])
	if op == "/" && b == 0 {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: decimalBinop{A: a, B: b, Op: op}}, true
}

func applyFloat(a, b float64, op string) float64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	}
	return a / b
}

func (s *decimals) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(decimalBinop)
	calc := applyFloat(d.A, d.B, d.Op)
	return []tutor.Step{
		{
			ID:  "res",
			Ask: func(*tutor.ProblemContext) string { return "Pista: alinea comas / cuenta decimales. ¿Resultado?" },
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numClose(t, calc, 1e-9) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("A mí me da %s.", formatNum(calc))}
			},
		},
	}
}

func (s *decimals) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(decimalBinop)
	return formatNum(applyFloat(d.A, d.B, d.Op))
}

// --- Enteros --------------------------------------------------------------

type integerBinop struct {
	A, B int64
	Op   string
}

type integers struct{ base }

func newIntegers() *integers {
	return &integers{base{"integers", "Enteros (+ − × ÷)", tutor.SubjectMates}}
}

func (s *integers) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if parensRe.MatchString(raw) {
		return nil, false
	}
	m := integersRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	a, _ := strconv.ParseInt(m[1], 10, 64)
	b, _ := strconv.ParseInt(m[3], 10, 64)
	op := normalizeOp(m[2])
	if op == "/" && b == 0 {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: integerBinop{A: a, B: b, Op: op}}, true
}

// Division truncates toward zero, the way it is taught before decimals.
func applyInt(a, b int64, op string) int64 {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	}
	return a / b
}

func (s *integers) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(integerBinop)
	r := applyInt(d.A, d.B, d.Op)
	return []tutor.Step{
		{
			ID:  "calc",
			Ask: func(*tutor.ProblemContext) string { return "Pista: recuerda la regla de signos. ¿Resultado?" },
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, float64(r)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %d.", r)}
			},
		},
	}
}

func (s *integers) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(integerBinop)
	return fmt.Sprint(applyInt(d.A, d.B, d.Op))
}

// --- m.c.m. / m.c.d. ------------------------------------------------------

type gcdLCMProblem struct {
	Kind string // "mcm" or "mcd"
	A, B int64
}

type gcdLCM struct{ base }

func newGCDLCM() *gcdLCM {
	return &gcdLCM{base{"mcm-mcd", "m.c.m. / m.c.d.", tutor.SubjectMates}}
}

func (s *gcdLCM) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if m := mcmRe.FindStringSubmatch(raw); m != nil {
		a, _ := strconv.ParseInt(m[1], 10, 64)
		b, _ := strconv.ParseInt(m[2], 10, 64)
		return &tutor.ProblemContext{Raw: raw, Data: gcdLCMProblem{Kind: "mcm", A: a, B: b}}, true
	}
	if m := mcdRe.FindStringSubmatch(raw); m != nil {
		a, _ := strconv.ParseInt(m[1], 10, 64)
		b, _ := strconv.ParseInt(m[2], 10, 64)
		return &tutor.ProblemContext{Raw: raw, Data: gcdLCMProblem{Kind: "mcd", A: a, B: b}}, true
	}
	return nil, false
}

func (p gcdLCMProblem) answer() int64 {
	if p.Kind == "mcm" {
		return fraction.LCM(p.A, p.B)
	}
	return fraction.GCD(p.A, p.B)
}

func (s *gcdLCM) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(gcdLCMProblem)
	ans := d.answer()
	return []tutor.Step{
		{
			ID: "res",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: usa múltiplos/factores (o descomposición en primos). ¿%s de %d y %d?", strings.ToUpper(d.Kind), d.A, d.B)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, float64(ans)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %d.", ans)}
			},
		},
	}
}

func (s *gcdLCM) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(gcdLCMProblem)
	return fmt.Sprintf("%s(%d,%d)=%d", strings.ToUpper(d.Kind), d.A, d.B, d.answer())
}

// --- Potencias ------------------------------------------------------------

type powerProblem struct {
	Base, Exp int64
}

type powers struct{ base }

func newPowers() *powers {
	return &powers{base{"powers", "Potencias (cuadrado/cubo/^)", tutor.SubjectMates}}
}

func (s *powers) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if m := powCaretRe.FindStringSubmatch(raw); m != nil {
		a, _ := strconv.ParseInt(m[1], 10, 64)
		p, _ := strconv.ParseInt(m[2], 10, 64)
		return &tutor.ProblemContext{Raw: raw, Data: powerProblem{Base: a, Exp: p}}, true
	}
	if m := powSqRe.FindStringSubmatch(raw); m != nil {
		a, _ := strconv.ParseInt(m[1], 10, 64)
		return &tutor.ProblemContext{Raw: raw, Data: powerProblem{Base: a, Exp: 2}}, true
	}
	if m := powCubeRe.FindStringSubmatch(raw); m != nil {
		a, _ := strconv.ParseInt(m[1], 10, 64)
		return &tutor.ProblemContext{Raw: raw, Data: powerProblem{Base: a, Exp: 3}}, true
	}
	return nil, false
}

func (p powerProblem) value() float64 {
	return math.Pow(float64(p.Base), float64(p.Exp))
}

func (s *powers) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(powerProblem)
	r := d.value()
	return []tutor.Step{
		{
			ID: "p",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: multiplica %d por sí mismo %d veces. ¿Resultado?", d.Base, d.Exp)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, r) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("%s.", formatNum(r))}
			},
		},
	}
}

func (s *powers) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(powerProblem)
	return fmt.Sprintf("%d^%d=%s", d.Base, d.Exp, formatNum(d.value()))
}

// --- Jerarquía de operaciones ---------------------------------------------

type orderOpsProblem struct {
	Expr   string
	Result float64
}

type orderOps struct{ base }

func newOrderOps() *orderOps {
	return &orderOps{base{"order-ops", "Jerarquía de operaciones", tutor.SubjectMates}}
}

func (s *orderOps) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if !parensRe.MatchString(raw) || !anyOpRe.MatchString(raw) {
		return nil, false
	}
	result, err := mathexpr.Eval(raw)
	if err != nil {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: orderOpsProblem{Expr: raw, Result: result}}, true
}

func (s *orderOps) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(orderOpsProblem)
	return []tutor.Step{
		{
			ID: "jer",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista: primero paréntesis, luego × y ÷, por último + y −. ¿Resultado final?"
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numClose(t, d.Result, 1e-9) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("A mí me da %s.", formatNum(d.Result))}
			},
		},
	}
}

func (s *orderOps) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(orderOpsProblem)
	return formatNum(d.Result)
}
