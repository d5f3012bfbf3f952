package skills

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

var statsNumRe = regexp.MustCompile(`-?\d+(?:\.\d+)?`)

type statsProblem struct {
	Kind string // media, mediana, moda, rango
	Nums []float64
}

type stats struct{ base }

func newStats() *stats {
	return &stats{base{"stats", "Medidas de tendencia central", tutor.SubjectMates}}
}

func (s *stats) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	t := textnorm.Normalize(raw)
	var nums []float64
	for _, m := range statsNumRe.FindAllString(t, -1) {
		n, err := strconv.ParseFloat(m, 64)
		if err != nil {
			return nil, false
		}
		nums = append(nums, n)
	}
	if len(nums) < 2 {
		return nil, false
	}
	var kind string
	switch {
	case strings.Contains(t, "mediana"):
		kind = "mediana"
	case strings.Contains(t, "media"):
		kind = "media"
	case strings.Contains(t, "moda"):
		kind = "moda"
	case strings.Contains(t, "rango"):
		kind = "rango"
	default:
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: statsProblem{Kind: kind, Nums: nums}}, true
}

func (p statsProblem) answer() float64 {
	sorted := append([]float64(nil), p.Nums...)
	sort.Float64s(sorted)
	switch p.Kind {
	case "media":
		var sum float64
		for _, n := range p.Nums {
			sum += n
		}
		return sum / float64(len(p.Nums))
	case "mediana":
		n := len(sorted)
		if n%2 == 1 {
			return sorted[(n-1)/2]
		}
		return (sorted[n/2-1] + sorted[n/2]) / 2
	case "moda":
		counts := make(map[float64]int)
		for _, n := range p.Nums {
			counts[n]++
		}
		// First value wins ties, in input order.
		best, bestCount := p.Nums[0], 0
		for _, n := range p.Nums {
			if counts[n] > bestCount {
				best, bestCount = n, counts[n]
			}
		}
		return best
	}
	return sorted[len(sorted)-1] - sorted[0]
}

func (s *stats) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(statsProblem)
	ans := d.answer()
	parts := make([]string, len(d.Nums))
	for i, n := range d.Nums {
		parts[i] = formatNum(n)
	}
	return []tutor.Step{
		{
			ID: "s",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: %s de [%s]. ¿Resultado?", d.Kind, strings.Join(parts, ", "))
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numClose(t, ans, 1e-9) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %s.", formatNum(ans))}
			},
		},
	}
}

func (s *stats) FinalAnswer(ctx *tutor.ProblemContext) string {
	return formatNum(ctx.Data.(statsProblem).answer())
}
