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

var (
	romanPromptRe = regexp.MustCompile(`convierte\s+(\d+)\s+a\s+romanos|romanos\s+de\s+(\d+)`)
	yearRe        = regexp.MustCompile(`\b-?\d{1,4}\b`)
	centuryYearRe = regexp.MustCompile(`\b(1?\d{1,3}|20\d{2})\b`)
)

// --- Números romanos ------------------------------------------------------

var romanDigits = []struct {
	Value  int64
	Symbol string
}{
	{1000, "M"}, {900, "CM"}, {500, "D"}, {400, "CD"},
	{100, "C"}, {90, "XC"}, {50, "L"}, {40, "XL"},
	{10, "X"}, {9, "IX"}, {5, "V"}, {4, "IV"}, {1, "I"},
}

// ToRoman converts n to roman numerals by greedy subtraction.
func ToRoman(n int64) string {
	var b strings.Builder
	for _, d := range romanDigits {
		for n >= d.Value {
			b.WriteString(d.Symbol)
			n -= d.Value
		}
	}
	return b.String()
}

type roman struct{ base }

func newRoman() *roman {
	return &roman{base{"roman", "Convertir a números romanos", tutor.SubjectHistoria}}
}

func (s *roman) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	m := romanPromptRe.FindStringSubmatch(raw)
	if m == nil {
		return nil, false
	}
	digits := m[1]
	if digits == "" {
		digits = m[2]
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil || n < 1 {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: n}, true
}

func (s *roman) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	n := ctx.Data.(int64)
	r := ToRoman(n)
	return []tutor.Step{
		{
			ID: "r",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: usa M D C L X V I y restas (CM, IX, IV...). ¿Cómo escribes %d?", n)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if strings.EqualFold(strings.TrimSpace(t), r) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Se escribe %s.", r)}
			},
		},
	}
}

func (s *roman) FinalAnswer(ctx *tutor.ProblemContext) string {
	return ToRoman(ctx.Data.(int64))
}

// --- Línea temporal -------------------------------------------------------

type timeline struct{ base }

func newTimeline() *timeline {
	return &timeline{base{"timeline", "Ordenar fechas (línea temporal)", tutor.SubjectHistoria}}
}

// MatchAndParse claims inputs with three or more year-like numbers, so a
// single year still falls through to the century skill.
func (s *timeline) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	matches := yearRe.FindAllString(raw, -1)
	if len(matches) < 3 {
		return nil, false
	}
	years := make([]int, len(matches))
	for i, m := range matches {
		years[i], _ = strconv.Atoi(m)
	}
	return &tutor.ProblemContext{Raw: raw, Data: years}, true
}

func (s *timeline) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	years := ctx.Data.([]int)
	sorted := append([]int(nil), years...)
	sort.Ints(sorted)
	return []tutor.Step{
		{
			ID: "ord",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista: ordena de menor a mayor. Escríbelo separado por comas."
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				parts := strings.Split(t, ",")
				ok := len(parts) == len(sorted)
				if ok {
					for i, p := range parts {
						n, err := strconv.Atoi(strings.TrimSpace(p))
						if err != nil || n != sorted[i] {
							ok = false
							break
						}
					}
				}
				if ok {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Orden correcto: %s.", joinInts(sorted))}
			},
		},
	}
}

func (s *timeline) FinalAnswer(ctx *tutor.ProblemContext) string {
	sorted := append([]int(nil), ctx.Data.([]int)...)
	sort.Ints(sorted)
	return joinInts(sorted)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ", ")
}

// --- Siglos ---------------------------------------------------------------

type century struct{ base }

func newCentury() *century {
	return &century{base{"century", "¿En qué siglo está este año?", tutor.SubjectHistoria}}
}

// MatchAndParse only claims inputs that mention a century, a year keyword or
// nothing but the number itself. Registered after the other numeric skills
// so bare arithmetic never lands here.
func (s *century) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	t := textnorm.Normalize(raw)
	m := centuryYearRe.FindStringSubmatch(t)
	if m == nil {
		return nil, false
	}
	year, _ := strconv.Atoi(m[1])
	if year < 1 {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: year}, true
}

func centuryOf(year int) int {
	return (year-1)/100 + 1
}

func (s *century) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	y := ctx.Data.(int)
	c := centuryOf(y)
	return []tutor.Step{
		{
			ID: "s",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: siglo = ⌊(año−1)/100⌋ + 1. ¿Siglo de %d?", y)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if numEq(t, float64(c)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es siglo %d.", c)}
			},
		},
	}
}

func (s *century) FinalAnswer(ctx *tutor.ProblemContext) string {
	return fmt.Sprintf("Siglo %d", centuryOf(ctx.Data.(int)))
}
