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
	matterRe      = regexp.MustCompile(`(estado|s[óo]lido|l[ií]quido|gaseoso|gas|agua|hielo|vapor)`)
	matterAnsRe   = regexp.MustCompile(`(solido|liquido|gas|gaseoso)`)
	circuitRe     = regexp.MustCompile(`(circuito|bombilla|pila|cable)`)
	circuitAnsRe  = regexp.MustCompile(`cerrado|abierto`)
	planetsRe     = regexp.MustCompile(`planetas|orden.*planetas`)
	bioTopicRe    = regexp.MustCompile(`productor|consumidor|depredador`)
	trophicRoleRe = regexp.MustCompile(`productor|consumidor`)
)

// --- Estados de la materia ------------------------------------------------

type matter struct{ base }

func newMatter() *matter {
	return &matter{base{"matter", "Estados de la materia", tutor.SubjectCiencias}}
}

func (s *matter) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if !matterRe.MatchString(raw) {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw}, true
}

func (s *matter) Steps(*tutor.ProblemContext) []tutor.Step {
	return []tutor.Step{
		{
			ID: "e",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista: sólido (forma y volumen fijos), líquido (volumen fijo, forma del recipiente), gas (ni forma ni volumen fijos). ¿Cuál es?"
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if matterAnsRe.MatchString(textnorm.Canon(t)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: "Responde: sólido, líquido o gas."}
			},
		},
	}
}

func (s *matter) FinalAnswer(*tutor.ProblemContext) string {
	return "Clasificación correcta."
}

// --- Circuito eléctrico ---------------------------------------------------

type circuit struct{ base }

func newCircuit() *circuit {
	return &circuit{base{"circuit", "Circuito eléctrico (cerrado/abierto)", tutor.SubjectCiencias}}
}

func (s *circuit) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if !circuitRe.MatchString(raw) {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw}, true
}

func (s *circuit) Steps(*tutor.ProblemContext) []tutor.Step {
	return []tutor.Step{
		{
			ID: "c",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista: circuito **cerrado** → la corriente fluye; **abierto** → no. ¿Cómo está?"
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				if circuitAnsRe.MatchString(textnorm.Canon(t)) {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: "Di “cerrado” o “abierto”."}
			},
		},
	}
}

func (s *circuit) FinalAnswer(*tutor.ProblemContext) string {
	return "Correcto"
}

// --- Orden de los planetas ------------------------------------------------

type planets struct{ base }

func newPlanets() *planets {
	return &planets{base{"planets", "Orden de los planetas", tutor.SubjectCiencias}}
}

func (s *planets) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if !planetsRe.MatchString(raw) {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw}, true
}

func (s *planets) Steps(*tutor.ProblemContext) []tutor.Step {
	return []tutor.Step{
		{
			ID: "p",
			Ask: func(*tutor.ProblemContext) string {
				return "Pista: desde el Sol hacia afuera. Escríbelos separados por comas."
			},
			Check: func(_ *tutor.ProblemContext, t string) tutor.CheckResult {
				given := strings.Split(textnorm.StripAccents(strings.ToLower(t)), ",")
				for i, p := range given {
					given[i] = strings.TrimSpace(p)
				}
				// A trailing Pluto is accepted, not required.
				if len(given) == len(facts.Planets)+1 &&
					given[len(given)-1] == textnorm.StripAccents(facts.LegacyNinthPlanet) {
					given = given[:len(given)-1]
				}
				ok := len(given) == len(facts.Planets)
				if ok {
					for i, p := range given {
						if p != textnorm.StripAccents(facts.Planets[i]) {
							ok = false
							break
						}
					}
				}
				if ok {
					return tutor.CheckResult{Ok: true}
				}
				return tutor.CheckResult{Feedback: fmt.Sprintf("Orden: %s.", strings.Join(facts.Planets, ", "))}
			},
		},
	}
}

func (s *planets) FinalAnswer(*tutor.ProblemContext) string {
	return strings.Join(facts.Planets, ", ")
}

// --- Sistemas del cuerpo y cadenas tróficas -------------------------------

type bioBasics struct{ base }

func newBioBasics() *bioBasics {
	return &bioBasics{base{"bio", "Sistemas del cuerpo y cadenas tróficas", tutor.SubjectCiencias}}
}

func (s *bioBasics) MatchAndParse(raw string, _ tutor.GradeBand) (*tutor.ProblemContext, bool) {
	if !strings.Contains(raw, "sistema") && !bioTopicRe.MatchString(raw) {
		return nil, false
	}
	return &tutor.ProblemContext{Raw: raw, Data: raw}, true
}

func (s *bioBasics) Steps(ctx *tutor.ProblemContext) []tutor.Step {
	t := textnorm.Normalize(ctx.Data.(string))
	if strings.Contains(t, "sistema") {
		return []tutor.Step{
			{
				ID: "s",
				Ask: func(*tutor.ProblemContext) string {
					return "Pista: ejemplos: circulatorio, respiratorio, digestivo, nervioso, óseo, muscular. Dime el sistema implicado."
				},
				Check: func(_ *tutor.ProblemContext, x string) tutor.CheckResult {
					if facts.IsBodySystem(x) {
						return tutor.CheckResult{Ok: true}
					}
					return tutor.CheckResult{Feedback: "Di uno de: circulatorio, respiratorio, digestivo, nervioso, óseo, muscular."}
				},
			},
		}
	}
	if trophicRoleRe.MatchString(t) {
		return []tutor.Step{
			{
				ID: "t",
				Ask: func(*tutor.ProblemContext) string {
					return "Pista: productor fabrica su alimento (fotosíntesis); consumidor se alimenta de otros. Dime si el ejemplo es productor o consumidor."
				},
				Check: func(_ *tutor.ProblemContext, x string) tutor.CheckResult {
					if trophicRoleRe.MatchString(textnorm.Canon(x)) {
						return tutor.CheckResult{Ok: true}
					}
					return tutor.CheckResult{Feedback: "Responde “productor” o “consumidor”."}
				},
			},
		}
	}
	return []tutor.Step{
		{
			ID: "x",
			Ask: func(*tutor.ProblemContext) string {
				return "Dime si es productor o consumidor; o el sistema del cuerpo implicado."
			},
			Check: func(*tutor.ProblemContext, string) tutor.CheckResult {
				return tutor.CheckResult{Ok: true}
			},
		},
	}
}

func (s *bioBasics) FinalAnswer(*tutor.ProblemContext) string {
	return "Clasificado."
}
