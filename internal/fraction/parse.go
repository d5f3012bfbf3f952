package fraction

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/tutorin/internal/textnorm"
)

// denomWords maps the Spanish fraction words a learner might type or dictate
// ("2 tercios") to their denominators.
var denomWords = map[string]int64{
	"medio": 2, "medios": 2,
	"tercio": 3, "tercios": 3,
	"cuarto": 4, "cuartos": 4,
	"quinto": 5, "quintos": 5,
	"sexto": 6, "sextos": 6,
	"septimo": 7, "séptimo": 7, "septimos": 7, "séptimos": 7,
	"octavo": 8, "octavos": 8,
	"noveno": 9, "novenos": 9,
	"decimo": 10, "décimo": 10, "decimos": 10, "décimos": 10,
}

var (
	plainRe   = regexp.MustCompile(`^\s*(-?\d+)\s*/\s*(\d+)\s*$`)
	mixedRe   = regexp.MustCompile(`^\s*(-?\d+)\s+(\d+)\s*/\s*(\d+)\s*$`)
	wordRe    = regexp.MustCompile(`^(-?\d+)\s+([a-záéíóúñ]+)$`)
	decimalRe = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)
)

// Parse accepts the flexible fraction spellings a learner may use, in
// priority order: "a/b", a mixed number "a b/c", an integer plus a
// denominator word ("2 tercios"), a plain integer (denominator 1), or a
// decimal (converted to an exact fraction). The result is always in lowest
// terms. Returns false for anything else, including zero denominators.
func Parse(s string) (Frac, bool) {
	t := textnorm.Normalize(s)

	if m := plainRe.FindStringSubmatch(t); m != nil {
		n, _ := strconv.ParseInt(m[1], 10, 64)
		d, _ := strconv.ParseInt(m[2], 10, 64)
		if d == 0 {
			return Frac{}, false
		}
		return Simplify(Frac{N: n, D: d}), true
	}

	if m := mixedRe.FindStringSubmatch(t); m != nil {
		whole, _ := strconv.ParseInt(m[1], 10, 64)
		num, _ := strconv.ParseInt(m[2], 10, 64)
		den, _ := strconv.ParseInt(m[3], 10, 64)
		if den == 0 {
			return Frac{}, false
		}
		sign := int64(1)
		if whole < 0 {
			sign = -1
			whole = -whole
		}
		return Simplify(Frac{N: sign * (whole*den + num), D: den}), true
	}

	if m := wordRe.FindStringSubmatch(t); m != nil {
		if d, ok := denomWords[m[2]]; ok {
			n, _ := strconv.ParseInt(m[1], 10, 64)
			return Simplify(Frac{N: n, D: d}), true
		}
	}

	if decimalRe.MatchString(t) {
		if !strings.Contains(t, ".") {
			n, _ := strconv.ParseInt(t, 10, 64)
			return Frac{N: n, D: 1}, true
		}
		k := len(t) - strings.Index(t, ".") - 1
		d := int64(math.Pow10(k))
		f, _ := strconv.ParseFloat(t, 64)
		n := int64(math.Round(f * float64(d)))
		return Simplify(Frac{N: n, D: d}), true
	}

	return Frac{}, false
}
