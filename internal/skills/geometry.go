package skills

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

const (
	shapeRectArea  = "arec"
	shapeRectPerim = "prec"
	shapeTriArea   = "atri"
	shapeCircArea  = "acirc"
	shapeCircPerim = "pcirc"
	shapeCubeVol   = "vcubo"
	shapePrismVol  = "vprisma"
	shapeCylVol    = "vcil"
)

type geometryProblem struct {
	Kind    string
	A, B, C float64
	R, H    float64
}

var (
	rectRe     = regexp.MustCompile(`(área|area|per[ií]metro|perimetro).*rect[aá]ngul`)
	rectDimsRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:x|×|\*)\s*(\d+(?:\.\d+)?)`)
	triRe      = regexp.MustCompile(`(área|area).*tri[aá]ngul`)
	triBaseRe  = regexp.MustCompile(`b=?(\d+(?:\.\d+)?)`)
	triHighRe  = regexp.MustCompile(`h=?(\d+(?:\.\d+)?)`)
	circRe     = regexp.MustCompile(`(área|area|per[ií]metro|perimetro).*c[íi]rcul`)
	radiusRe   = regexp.MustCompile(`r=?(\d+(?:\.\d+)?)`)
	cubeRe     = regexp.MustCompile(`vol[uú]men.*cubo.*?(\d+(?:\.\d+)?)`)
	prismRe    = regexp.MustCompile(`vol[uú]men.*(?:prisma|paralelep[ií]pedo)`)
	numRe      = regexp.MustCompile(`\d+(?:\.\d+)?`)
	cylRe      = regexp.MustCompile(`vol[uú]men.*cilindro`)
	cylDimsRe  = regexp.MustCompile(`r=?(\d+(?:\.\d+)?).*h=?(\d+(?:\.\d+)?)`)
	perimHint  = regexp.MustCompile(`per`)
)

type geometry struct{ base }

func newGeometry() *geometry {
	return &geometry{base{"geometry", "Área, perímetro y volumen", tutor.SubjectMates}}
}

func atof(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func (s *geometry) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	t := textnorm.Normalize(raw)
	if rectRe.MatchString(t) {
		if m := rectDimsRe.FindStringSubmatch(t); m != nil {
			kind := shapeRectArea
			if perimHint.MatchString(t) {
				kind = shapeRectPerim
			}
			return &tutor.ProblemContext{Raw: raw, Data: geometryProblem{Kind: kind, A: atof(m[1]), B: atof(m[2])}}, true
		}
	}
	if triRe.MatchString(t) {
		mb := triBaseRe.FindStringSubmatch(t)
		mh := triHighRe.FindStringSubmatch(t)
		if mb != nil && mh != nil {
			return &tutor.ProblemContext{Raw: raw, Data: geometryProblem{Kind: shapeTriArea, B: atof(mb[1]), H: atof(mh[1])}}, true
		}
	}
	if circRe.MatchString(t) {
		if m := radiusRe.FindStringSubmatch(t); m != nil {
			kind := shapeCircArea
			if perimHint.MatchString(t) {
				kind = shapeCircPerim
			}
			return &tutor.ProblemContext{Raw: raw, Data: geometryProblem{Kind: kind, R: atof(m[1])}}, true
		}
	}
	if m := cubeRe.FindStringSubmatch(t); m != nil {
		return &tutor.ProblemContext{Raw: raw, Data: geometryProblem{Kind: shapeCubeVol, A: atof(m[1])}}, true
	}
	if prismRe.MatchString(t) {
		if nums := numRe.FindAllString(t, -1); len(nums) >= 3 {
			return &tutor.ProblemContext{Raw: raw, Data: geometryProblem{
				Kind: shapePrismVol, A: atof(nums[0]), B: atof(nums[1]), C: atof(nums[2]),
			}}, true
		}
	}
	if cylRe.MatchString(t) {
		if m := cylDimsRe.FindStringSubmatch(t); m != nil {
			return &tutor.ProblemContext{Raw: raw, Data: geometryProblem{Kind: shapeCylVol, R: atof(m[1]), H: atof(m[2])}}, true
		}
	}
	return nil, false
}

func (p geometryProblem) formula() (hint string, res float64, approx bool) {
	switch p.Kind {
	case shapeRectArea:
		return "Pista: área rectángulo = base × altura. ¿Resultado?", p.A * p.B, false
	case shapeRectPerim:
		return "Pista: perímetro rectángulo = 2·(a+b). ¿Resultado?", 2 * (p.A + p.B), false
	case shapeTriArea:
		return "Pista: área triángulo = (b·h)/2. ¿Resultado?", 0.5 * p.B * p.H, false
	case shapeCircArea:
		return "Pista: área círculo = π·r² (usa π≈3.1416). ¿Resultado?", math.Pi * p.R * p.R, true
	case shapeCircPerim:
		return "Pista: perímetro círculo = 2·π·r. ¿Resultado?", 2 * math.Pi * p.R, true
	case shapeCubeVol:
		return "Pista: volumen cubo = a³. ¿Resultado?", p.A * p.A * p.A, false
	case shapePrismVol:
		return "Pista: volumen prisma rectangular = a·b·c. ¿Resultado?", p.A * p.B * p.C, false
	}
	return "Pista: volumen cilindro = π·r²·h. ¿Resultado?", math.Pi * p.R * p.R * p.H, true
}

func (s *geometry) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(geometryProblem)
	hint, res, approx := d.formula()
	check := func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
		if numEq(t, res) {
			return tutor.CheckResult{Ok: true}
		}
		return tutor.CheckResult{Feedback: fmt.Sprintf("Sale %s.", formatNum(res))}
	}
	if approx {
		// π answers accept a small absolute error.
		check = func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
			if numClose(t, res, 1e-3) {
				return tutor.CheckResult{Ok: true}
			}
			return tutor.CheckResult{Feedback: fmt.Sprintf("Aprox. %.3f.", res)}
		}
	}
	return []tutor.Step{
		{
			ID:    "f",
			Ask:   func(*tutor.ProblemContext) string { return hint },
			Check: check,
		},
	}
}

func (s *geometry) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(geometryProblem)
	_, res, approx := d.formula()
	if approx {
		return fmt.Sprintf("%.3f", res)
	}
	return formatNum(res)
}
