package skills

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/tutorin/internal/tutor"
	"github.com/abhisek/tutorin/internal/units"
)

var unitConvRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(mm|cm|m|km|mg|g|kg|t|ml|l|s|min|h)\s*(?:a|en)\s*(mm|cm|m|km|mg|g|kg|t|ml|l|s|min|h)`)

type unitConversion struct {
	Value    float64
	From, To string
}

type unitsSkill struct{ base }

func newUnits() *unitsSkill {
	return &unitsSkill{base{"units", "Unidades (longitud/masa/capacidad/tiempo)", tutor.SubjectMates}}
}

func (s *unitsSkill) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	m := unitConvRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil {
		return nil, false
	}
	d := unitConversion{Value: v, From: strings.ToLower(m[2]), To: strings.ToLower(m[3])}
	return &tutor.ProblemContext{Raw: raw, Data: d}, true
}

func (s *unitsSkill) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(unitConversion)
	f, ok := units.Factor(d.From, d.To)
	if !ok {
		// Cross-family request: degrade gracefully instead of guessing.
		return []tutor.Step{
			{
				ID: "x",
				Ask: func(*tutor.ProblemContext) string {
					return "Pista: esa conversión no está mapeada. Prueba con cm↔m, g↔kg, L↔mL, s/min/h."
				},
				Check: func(*tutor.ProblemContext, string) tutor.CheckResult {
					return tutor.CheckResult{Ok: true}
				},
			},
		}
	}
	res := d.Value * f
	return []tutor.Step{
		{
			ID: "a",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: multiplica por el factor (%s→%s). ¿Resultado?", d.From, d.To)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, res) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Factor %s. Sale %s.", formatNum(f), formatNum(res))}
			},
		},
	}
}

func (s *unitsSkill) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(unitConversion)
	f, ok := units.Factor(d.From, d.To)
	if !ok {
		f = 1
	}
	return fmt.Sprintf("%s %s", formatNum(d.Value*f), d.To)
}
