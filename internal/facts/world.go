// Package facts holds the read-only lookup tables the knowledge skills draw
// from: countries and capitals, Spanish synonym/antonym banks, and the small
// science vocabularies. Tables are plain package-level values; nothing here
// is mutated after init.
package facts

import "github.com/abhisek/tutorin/internal/textnorm"

// Country relates a country to its capital and continent. AltNames and
// AltCapitals list accepted alternate spellings (accents are handled
// separately by the comparison layer; these cover genuinely different names
// like Holanda for Países Bajos or Beijing for Pekín).
type Country struct {
	Name        string
	Capital     string
	Continent   string
	AltNames    []string
	AltCapitals []string
}

// World is the country table, entered in lowercase normalized form.
var World = []Country{
	{Name: "españa", Capital: "madrid", Continent: "europa"},
	{Name: "francia", Capital: "parís", Continent: "europa"},
	{Name: "alemania", Capital: "berlín", Continent: "europa"},
	{Name: "italia", Capital: "roma", Continent: "europa"},
	{Name: "portugal", Capital: "lisboa", Continent: "europa"},
	{Name: "reino unido", Capital: "londres", Continent: "europa"},
	{Name: "irlanda", Capital: "dublín", Continent: "europa"},
	{Name: "bélgica", Capital: "bruselas", Continent: "europa"},
	{Name: "países bajos", Capital: "amsterdam", Continent: "europa", AltNames: []string{"holanda"}, AltCapitals: []string{"ámsterdam"}},
	{Name: "suiza", Capital: "berna", Continent: "europa"},
	{Name: "austria", Capital: "viena", Continent: "europa"},
	{Name: "polonia", Capital: "varsovia", Continent: "europa"},
	{Name: "grecia", Capital: "atenas", Continent: "europa"},
	{Name: "rusia", Capital: "moscú", Continent: "europa"},
	{Name: "ucrania", Capital: "kiev", Continent: "europa", AltCapitals: []string{"kyiv"}},
	{Name: "turquía", Capital: "ankara", Continent: "asia"},
	{Name: "estados unidos", Capital: "washington", Continent: "américa"},
	{Name: "canadá", Capital: "ottawa", Continent: "américa"},
	{Name: "méxico", Capital: "ciudad de méxico", Continent: "américa", AltCapitals: []string{"mexico df", "méxico", "cdmx"}},
	{Name: "brasil", Capital: "brasilia", Continent: "américa"},
	{Name: "argentina", Capital: "buenos aires", Continent: "américa"},
	{Name: "chile", Capital: "santiago", Continent: "américa"},
	{Name: "colombia", Capital: "bogotá", Continent: "américa"},
	{Name: "perú", Capital: "lima", Continent: "américa"},
	{Name: "uruguay", Capital: "montevideo", Continent: "américa"},
	{Name: "paraguay", Capital: "asunción", Continent: "américa"},
	{Name: "cuba", Capital: "la habana", Continent: "américa", AltCapitals: []string{"habana"}},
	{Name: "república dominicana", Capital: "santo domingo", Continent: "américa"},
	{Name: "costa rica", Capital: "san josé", Continent: "américa"},
	{Name: "panamá", Capital: "ciudad de panamá", Continent: "américa", AltCapitals: []string{"panamá"}},
	{Name: "guatemala", Capital: "ciudad de guatemala", Continent: "américa"},
	{Name: "honduras", Capital: "tegucigalpa", Continent: "américa"},
	{Name: "nicaragua", Capital: "managua", Continent: "américa"},
	{Name: "el salvador", Capital: "san salvador", Continent: "américa"},
	{Name: "china", Capital: "pekín", Continent: "asia", AltCapitals: []string{"beijing"}},
	{Name: "japón", Capital: "tokio", Continent: "asia", AltCapitals: []string{"tokyo"}},
	{Name: "corea del sur", Capital: "seúl", Continent: "asia"},
	{Name: "india", Capital: "nueva delhi", Continent: "asia", AltCapitals: []string{"delhi"}},
	{Name: "indonesia", Capital: "yakarta", Continent: "asia"},
	{Name: "tailandia", Capital: "bangkok", Continent: "asia"},
	{Name: "vietnam", Capital: "hanói", Continent: "asia"},
	{Name: "malasia", Capital: "kuala lumpur", Continent: "asia"},
	{Name: "filipinas", Capital: "manila", Continent: "asia"},
	{Name: "singapur", Capital: "singapur", Continent: "asia"},
	{Name: "jordania", Capital: "ammán", Continent: "asia"},
	{Name: "arabia saudí", Capital: "riad", Continent: "asia", AltCapitals: []string{"riyadh"}},
	{Name: "irán", Capital: "teherán", Continent: "asia"},
	{Name: "irak", Capital: "bagdad", Continent: "asia"},
	{Name: "emiratos árabes unidos", Capital: "abu dabi", Continent: "asia", AltCapitals: []string{"abu dhabi"}},
	{Name: "qatar", Capital: "doha", Continent: "asia"},
	{Name: "kuwait", Capital: "kuwait", Continent: "asia"},
	{Name: "egipto", Capital: "el cairo", Continent: "áfrica", AltCapitals: []string{"cairo"}},
	{Name: "sudáfrica", Capital: "pretoria", Continent: "áfrica"},
	{Name: "nigeria", Capital: "abuya", Continent: "áfrica", AltCapitals: []string{"abuja"}},
	{Name: "kenia", Capital: "nairobi", Continent: "áfrica"},
	{Name: "etiopía", Capital: "addis abeba", Continent: "áfrica"},
	{Name: "marruecos", Capital: "rabat", Continent: "áfrica"},
	{Name: "argelia", Capital: "argel", Continent: "áfrica"},
	{Name: "túnez", Capital: "túnez", Continent: "áfrica"},
	{Name: "ghana", Capital: "acra", Continent: "áfrica", AltCapitals: []string{"accra"}},
	{Name: "australia", Capital: "canberra", Continent: "oceanía"},
	{Name: "nueva zelanda", Capital: "wellington", Continent: "oceanía"},
}

// Derived indices, keyed by the canonical (accent-folded) form so lookups
// tolerate missing diacritics.
var (
	countryByName    = make(map[string]*Country, len(World))
	countryByCapital = make(map[string]*Country, len(World)*2)
)

func init() {
	for i := range World {
		c := &World[i]
		countryByName[textnorm.Canon(c.Name)] = c
		for _, alt := range c.AltNames {
			countryByName[textnorm.Canon(alt)] = c
		}
		countryByCapital[textnorm.Canon(c.Capital)] = c
		for _, alt := range c.AltCapitals {
			countryByCapital[textnorm.Canon(alt)] = c
		}
	}
}

// CountryByName looks up a country by its (possibly unaccented) name.
func CountryByName(name string) (*Country, bool) {
	c, ok := countryByName[textnorm.Canon(name)]
	return c, ok
}

// CountryByCapital looks up a country by a capital spelling, including
// alternates.
func CountryByCapital(capital string) (*Country, bool) {
	c, ok := countryByCapital[textnorm.Canon(capital)]
	return c, ok
}

// IsCapitalOf reports whether answer names the capital of c, accepting
// alternate spellings and ignoring accents.
func (c *Country) IsCapitalOf(answer string) bool {
	a := textnorm.Canon(answer)
	if a == textnorm.Canon(c.Capital) {
		return true
	}
	for _, alt := range c.AltCapitals {
		if a == textnorm.Canon(alt) {
			return true
		}
	}
	return false
}
