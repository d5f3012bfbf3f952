// Package units provides conversion factors for the measurement units used
// in primary-school exercises: length, mass, capacity and time.
package units

// Base factors relative to the reference unit of each family
// (meter, gram, liter). Units of different families never convert.
var metric = map[string]float64{
	"mm": 1e-3, "cm": 1e-2, "m": 1, "km": 1e3,
	"mg": 1e-3, "g": 1, "kg": 1e3, "t": 1e6,
	"ml": 1e-3, "l": 1,
}

var timeUnits = map[string]float64{
	"s": 1, "min": 60, "h": 3600,
}

// Factor returns the multiplier that converts a value in `from` units into
// `to` units. Returns false for unmapped pairs — including cross-family
// pairs like kg→m, which happen to share the table but are nonsense. The
// caller is expected to degrade to an informational hint rather than guess.
func Factor(from, to string) (float64, bool) {
	if f, okF := metric[from]; okF {
		if t, okT := metric[to]; okT && sameFamily(from, to) {
			return f / t, true
		}
		return 0, false
	}
	if f, okF := timeUnits[from]; okF {
		if t, okT := timeUnits[to]; okT {
			return f / t, true
		}
	}
	return 0, false
}

// families groups the metric units; time units live in their own table.
var families = map[string]string{
	"mm": "len", "cm": "len", "m": "len", "km": "len",
	"mg": "mass", "g": "mass", "kg": "mass", "t": "mass",
	"ml": "cap", "l": "cap",
}

func sameFamily(a, b string) bool {
	return families[a] == families[b]
}

// Known reports whether u is a unit this package understands.
func Known(u string) bool {
	_, m := metric[u]
	_, t := timeUnits[u]
	return m || t
}
