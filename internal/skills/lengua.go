package skills

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/abhisek/tutorin/internal/facts"
	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

// --- Acentuación ----------------------------------------------------------

var (
	singleWordRe   = regexp.MustCompile(`^(?:que\s+tipo\s+de\s+palabra\s+es\s+)?([a-záéíóúüñ]+)\s*$`)
	openEndingRe   = regexp.MustCompile(`[nsaeiou]$`)
	wordCharsRe    = regexp.MustCompile(`[a-záéíóúüñ ]+`)
	sujPredVerbRe  = regexp.MustCompile(` (come|es|son|juega|corre|tiene|quiere|hace|vive|est[aá]) `)
	lexicoPromptRe = regexp.MustCompile(`(sin[oó]nimo|ant[oó]nimo)\s+de\s+([a-záéíóúñ]+)`)
)

// ClassifyWord applies the schoolbook rule. With a written accent, the
// stressed syllable's distance from the end decides: counting vowel groups
// after the accented vowel, two or more means esdrújula, one means llana,
// none means aguda. Without an accent, words ending in vowel, n or s are
// llanas and the rest agudas.
func ClassifyWord(w string) string {
	runes := []rune(strings.ToLower(w))
	accentAt := -1
	for i, r := range runes {
		if strings.ContainsRune("áéíóú", r) {
			accentAt = i
		}
	}
	if accentAt < 0 {
		if openEndingRe.MatchString(textnorm.StripAccents(string(runes))) {
			return "llana"
		}
		return "aguda"
	}
	groups := 0
	inVowel := false
	for _, r := range runes[accentAt+1:] {
		v := strings.ContainsRune("aeiouáéíóúü", r)
		if v && !inVowel {
			groups++
		}
		inVowel = v
	}
	switch {
	case groups >= 2:
		return "esdrújula"
	case groups == 1:
		return "llana"
	default:
		return "aguda"
	}
}

type acentuacion struct{ base }

func newAcentuacion() *acentuacion {
	return &acentuacion{base{"acentuacion", "Acentuación (aguda/llana/esdrújula)", tutor.SubjectLengua}}
}

func (s *acentuacion) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	m := singleWordRe.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: m[1]}, true
}

func (s *acentuacion) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	w := ctx.Data.(string)
	tipo := ClassifyWord(w)
	return []tutor.Step{
		{
			ID: "t",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: marca la sílaba tónica de “%s” y aplica la regla general (termina en vocal, -n, -s). ¿Aguda, llana o esdrújula?", w)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if textEq(t, tipo) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Es %s.", tipo)}
			},
		},
	}
}

func (s *acentuacion) FinalAnswer(ctx *tutor.ProblemContext) string {
	return ClassifyWord(ctx.Data.(string))
}

// --- Sujeto y predicado ---------------------------------------------------

type sujPred struct{ base }

func newSujPred() *sujPred {
	return &sujPred{base{"suj-pred", "Sujeto y predicado (simple)", tutor.SubjectLengua}}
}

func (s *sujPred) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if !sujPredVerbRe.MatchString(raw) {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: raw}, true
}

func (s *sujPred) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	sentence := ctx.Data.(string)
	return []tutor.Step{
		{
			ID: "suj",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista 1: En “%s”, dime el **sujeto**.", sentence)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if wordCharsRe.MatchString(strings.ToLower(t)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: "Di quién realiza la acción."}
			},
		},
		{
			ID: "pred",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista 2: Dime ahora el **predicado** (verbo + lo que se dice del sujeto)."
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if wordCharsRe.MatchString(strings.ToLower(t)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: "Empieza por el verbo."}
			},
		},
	}
}

func (s *sujPred) FinalAnswer(*tutor.ProblemContext) string {
	return "Identificados sujeto y predicado."
}

// --- Sinónimos y antónimos ------------------------------------------------

type lexicoProblem struct {
	Kind string // "sin" or "ant"
	Word string
}

type lexico struct{ base }

func newLexico() *lexico {
	return &lexico{base{"lexico", "Sinónimos y antónimos", tutor.SubjectLengua}}
}

func (s *lexico) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	m := lexicoPromptRe.FindStringSubmatch(strings.ToLower(raw))
	if m == nil {
		return nil, false
	}
	kind := "ant"
	if textnorm.Canon(m[1]) == "sinonimo" {
		kind = "sin"
	}
	return &tutor.ProblemContext{Raw: raw, Data: lexicoProblem{Kind: kind, Word: m[2]}}, true
}

func (p lexicoProblem) bank() []string {
	if p.Kind == "sin" {
		return facts.Synonyms[p.Word]
	}
	return facts.Antonyms[p.Word]
}

func (s *lexico) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	d := ctx.Data.(lexicoProblem)
	entries := d.bank()
	accepted := make(map[string]bool, len(entries))
	for _, e := range entries {
		accepted[textnorm.Canon(e)] = true
	}
	label := "antónimo"
	if d.Kind == "sin" {
		label = "sinónimo"
	}
	return []tutor.Step{
		{
			ID: "a",
			Ask: func(*tutor.ProblemContext) string {
				return fmt.Sprintf("Pista: dime **un** %s de “%s”.", label, d.Word)
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if accepted[textnorm.Canon(t)] {
					return tutor.CheckResult{Ok: true}
				}
				if len(entries) > 0 {
					return tutor.CheckResult{Feedback: fmt.Sprintf("Por ejemplo: %s.", entries[0])}
				}
				return tutor.CheckResult{Feedback: "No lo tengo en mi lista; prueba con otra palabra."}
			},
		},
	}
}

func (s *lexico) FinalAnswer(*tutor.ProblemContext) string {
	return "Perfecto"
}
