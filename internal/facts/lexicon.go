package facts

// Synonyms and Antonyms are the small word banks behind the vocabulary
// skill. Keys and values are lowercase; comparison happens accent-folded in
// the skill layer, so accented entries here are fine.

var Synonyms = map[string][]string{
	"feliz":   {"contento", "alegre"},
	"triste":  {"infeliz", "apenado"},
	"grande":  {"enorme", "gigante"},
	"pequeño": {"chico", "menudo"},
	"rápido":  {"veloz", "ligero"},
	"lento":   {"pausado", "tardo"},
	"bonito":  {"hermoso", "bello"},
	"feo":     {"horrendo", "desagradable"},
}

var Antonyms = map[string][]string{
	"feliz":    {"triste"},
	"grande":   {"pequeño", "chico"},
	"alto":     {"bajo"},
	"rápido":   {"lento"},
	"bonito":   {"feo"},
	"encender": {"apagar"},
	"entrar":   {"salir"},
	"frío":     {"calor", "caliente"},
}
