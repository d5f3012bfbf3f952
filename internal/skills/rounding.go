package skills

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

var (
	roundFullRe = regexp.MustCompile(`redondea\s+(\d+(?:\.\d+)?)\s+a\s+(\d+)\s*decimales?`)
	roundBareRe = regexp.MustCompile(`redondea\s+(\d+(?:\.\d+)?)`)
)

type roundingProblem struct {
	Num    float64
	Places int
}

type rounding struct{ base }

func newRounding() *rounding {
	return &rounding{base{"round", "Redondeo / valor posicional", tutor.SubjectMates}}
}

func (s *rounding) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	t := textnorm.Normalize(raw)
	if m := roundFullRe.FindStringSubmatch(t); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		k, _ := strconv.Atoi(m[2])
		return &tutor.ProblemContext{Raw: raw, Data: roundingProblem{Num: num, Places: k}}, true
	}
	if m := roundBareRe.FindStringSubmatch(t); m != nil {
		num, _ := strconv.ParseFloat(m[1], 64)
		return &tutor.ProblemContext{Raw: raw, Data: roundingProblem{Num: num, Places: 0}}, true
	}
	return nil, false
}

func (p roundingProblem) rounded() float64 {
	v, _ := strconv.ParseFloat(strconv.FormatFloat(p.Num, 'f', p.Places, 64), 64)
	return v
}

func (s *rounding) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(roundingProblem)
	res := d.rounded()
	return []tutor.Step{
		{
			ID: "r",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: observa la cifra siguiente a la que quieres mantener. ¿Redondeo de %s a %d decimales?", formatNum(d.Num), d.Places)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, res) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %s.", formatNum(res))}
			},
		},
	}
}

func (s *rounding) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(roundingProblem)
	return strconv.FormatFloat(d.Num, 'f', d.Places, 64)
}
