package skills

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/tutorin/internal/facts"
	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

var (
	capOfRe       = regexp.MustCompile(`capital\s+de\s+(.+)`)
	countryOfRe   = regexp.MustCompile(`de\s+qu[eé]\s+pa[ií]s\s+es\s+(.+)`)
	continentOfRe = regexp.MustCompile(`en\s+qu[eé]\s+continente\s+est[aá]\s+(.+)`)
)

const (
	askCapital   = "cap-de"
	askCountry   = "pais-de"
	askContinent = "cont-de"
)

type capitalsQuestion struct {
	Kind    string
	Country *facts.Country
	Capital string // as typed, for "de qué país es X"
}

type capitals struct{ base }

func newCapitals() *capitals {
	return &capitals{base{"capitals", "Países, capitales y continentes", tutor.SubjectGeo}}
}

func (s *capitals) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	t := textnorm.Normalize(raw)
	if m := capOfRe.FindStringSubmatch(t); m != nil {
		if c, ok := facts.CountryByName(strings.TrimSpace(m[1])); ok {
			return &tutor.ProblemContext{Raw: raw, Data: capitalsQuestion{Kind: askCapital, Country: c}}, true
		}
		return nil, false
	}
	if m := countryOfRe.FindStringSubmatch(t); m != nil {
		cap := strings.TrimSpace(m[1])
		if c, ok := facts.CountryByCapital(cap); ok {
			return &tutor.ProblemContext{Raw: raw, Data: capitalsQuestion{Kind: askCountry, Country: c, Capital: cap}}, true
		}
		return nil, false
	}
	if m := continentOfRe.FindStringSubmatch(t); m != nil {
		if c, ok := facts.CountryByName(strings.TrimSpace(m[1])); ok {
			return &tutor.ProblemContext{Raw: raw, Data: capitalsQuestion{Kind: askContinent, Country: c}}, true
		}
	}
	return nil, false
}

func (s *capitals) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(capitalsQuestion)
	switch d.Kind {
	case askCapital:
		return []tutor.Step{
			{
				ID: "a",
				Ask: func(*tutor.ProblemContext) string {
					return fmt.Sprintf("Pista: piensa en Europa si es un país europeo, América si es americano... ¿Capital de %s?", d.Country.Name)
				},
				Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
					if d.Country.IsCapitalOf(t) {
						return tutor.CheckResult{Ok: true}
					}
					return tutor.CheckResult{Feedback: fmt.Sprintf("Es %s.", d.Country.Capital)}
				},
			},
		}
	case askCountry:
		return []tutor.Step{
			{
				ID: "b",
				Ask: func(*tutor.ProblemContext) string {
					return fmt.Sprintf("Pista: esa ciudad pertenece a… ¿De qué país es %s?", d.Capital)
				},
				Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
					if textEq(t, d.Country.Name) {
						return tutor.CheckResult{Ok: true}
					}
					return tutor.CheckResult{Feedback: fmt.Sprintf("Es %s.", d.Country.Name)}
				},
			},
		}
	}
	return []tutor.Step{
		{
			ID: "c",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: piensa en el mapa mundial. ¿En qué continente está %s?", d.Country.Name)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if textEq(t, d.Country.Continent) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Está en %s.", d.Country.Continent)}
			},
		},
	}
}

func (s *capitals) FinalAnswer(ctx *tutor.ProblemContext) string {
	d := ctx.Data.(capitalsQuestion)
	switch d.Kind {
	case askCapital:
		return d.Country.Capital
	case askCountry:
		return d.Country.Name
	}
	return d.Country.Continent
}
