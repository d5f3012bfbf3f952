// Package textnorm holds the text normalization primitives shared by the
// tutoring engine and every skill. All free-text comparison in the engine
// goes through Normalize (and usually StripAccents), so the rules here
// define what counts as "the same answer".
package textnorm

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	wsRe     = regexp.MustCompile(`\s+`)
	numberRe = regexp.MustCompile(`^-?\d*(?:\.\d+)?$`)
)

// Normalize lowercases, unifies the decimal separator (comma to period),
// strips question marks (¿ and ?), collapses runs of whitespace and trims.
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, ",", ".")
	s = strings.ReplaceAll(s, "¿", "")
	s = strings.ReplaceAll(s, "?", "")
	s = wsRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// accentFold maps accented vowels (and ü) to their bare forms. The ñ is a
// distinct letter in Spanish, not an accented n, so it is left alone.
var accentFold = strings.NewReplacer(
	"á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u", "ü", "u",
	"à", "a", "è", "e", "ì", "i", "ò", "o", "ù", "u",
)

// StripAccents folds accented vowels to their unaccented forms so that
// "parís" and "paris" compare equal. Answer matching is accent-insensitive
// across all skills.
func StripAccents(s string) string {
	return accentFold.Replace(s)
}

// Canon normalizes and strips accents in one go. This is the canonical form
// used for free-text answer comparison.
func Canon(s string) string {
	return StripAccents(Normalize(s))
}

// ParseNumber parses a plain numeric answer: an optional sign, digits and at
// most one decimal point. Anything else — including "", ".", "-" and "-." —
// is rejected. The input is normalized first, so "3,5" parses as 3.5.
func ParseNumber(s string) (float64, bool) {
	t := Normalize(s)
	if !numberRe.MatchString(t) {
		return 0, false
	}
	if t == "" || t == "." || t == "-" || t == "-." {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ParseInt parses a plain integer answer. Decimal input is rejected.
func ParseInt(s string) (int64, bool) {
	t := Normalize(s)
	n, err := strconv.ParseInt(t, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
