package facts

import "github.com/abhisek/tutorin/internal/textnorm"

// Planets lists the eight planets outward from the Sun, in the canonical
// order the planets skill checks against.
var Planets = []string{
	"mercurio", "venus", "tierra", "marte", "júpiter",
	"saturno", "urano", "neptuno",
}

// LegacyNinthPlanet is tolerated as a trailing extra in a recited list. Older
// schoolbooks still close the list with it.
const LegacyNinthPlanet = "plutón"

// BodySystems is the accepted vocabulary for the body-systems question.
var BodySystems = map[string]bool{
	"circulatorio": true,
	"respiratorio": true,
	"digestivo":    true,
	"nervioso":     true,
	"óseo":         true,
	"muscular":     true,
}

var bodySystemsCanon = func() map[string]bool {
	m := make(map[string]bool, len(BodySystems))
	for k := range BodySystems {
		m[textnorm.Canon(k)] = true
	}
	return m
}()

// IsBodySystem reports whether s names a known body system, ignoring accents.
func IsBodySystem(s string) bool {
	return bodySystemsCanon[textnorm.Canon(s)]
}
