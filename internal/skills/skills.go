// Package skills contains the exercise-family handlers the tutoring engine
// routes between. Each skill follows the same three-phase shape: recognize
// the exercise from normalized free text, decompose the solution into the
// smallest independently checkable steps, and validate each reply against
// that step's exact value — never against the final answer.
package skills

import (
	"math"
	"strconv"

	"github.com/abhisek/tutorin/internal/textnorm"
	"github.com/abhisek/tutorin/internal/tutor"
)

// base carries the identity fields every skill shares.
type base struct {
	id      string
	title   string
	subject tutor.Subject
}

func (b base) ID() string             { return b.id }
func (b base) Title() string          { return b.title }
func (b base) Subject() tutor.Subject { return b.subject }

// DefaultSkills returns the full skill set in routing order. Order matters:
// the engine commits to the first match, so narrower recognizers come before
// broader ones (keyword-gated skills before the decimal/integer catch-alls,
// roman and timeline before the bare-year century skill). Subject/predicate
// accepts any sentence with a common verb, so it goes last: knowledge
// questions like "¿en qué siglo está el año 1492?" must reach their skills
// first.
func DefaultSkills() []tutor.Skill {
	return []tutor.Skill{
		// Matemáticas
		newFracAddSubDiff(),
		newFracAddSubSame(),
		newFracMul(),
		newFracDiv(),
		newGCDLCM(),
		newPowers(),
		newOrderOps(),
		newUnits(),
		newGeometry(),
		newStats(),
		newRounding(),
		newDecimals(),
		newIntegers(),
		// Lengua
		newAcentuacion(),
		newLexico(),
		// Ciencias
		newMatter(),
		newCircuit(),
		newPlanets(),
		newBioBasics(),
		// Historia / Geografía
		newRoman(),
		newTimeline(),
		newCentury(),
		newCapitals(),
		// Lengua (catch-all)
		newSujPred(),
	}
}

// numEq reports whether the reply parses as a number exactly equal to want.
// Used for integer-valued steps where the expected value is exact.
func numEq(answer string, want float64) bool {
	n, ok := textnorm.ParseNumber(answer)
	return ok && n == want
}

// numClose reports whether the reply parses as a number within tol of want.
func numClose(answer string, want, tol float64) bool {
	n, ok := textnorm.ParseNumber(answer)
	return ok && math.Abs(n-want) < tol
}

// textEq compares free-text answers accent-insensitively.
func textEq(answer, want string) bool {
	return textnorm.Canon(answer) == textnorm.Canon(want)
}

// formatNum renders a float the short way: no exponent, no trailing zeros,
// with float noise beyond ten decimals rounded away.
func formatNum(v float64) string {
	r := math.Round(v*1e10) / 1e10
	return strconv.FormatFloat(r, 'f', -1, 64)
}
