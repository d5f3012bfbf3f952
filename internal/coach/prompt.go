package coach

import (
	"fmt"
	"strings"

	"github.com/abhisek/tutorin/internal/tutor"
)

const coachSystemPrompt = `Eres un tutor paciente de Primaria en España. El alumno te da un ejercicio y tú lo descompones en pistas pequeñas, una por turno. Nunca das la solución en la primera pista. Responde siempre en español.`

func buildUserMessage(exercise string, grade tutor.GradeBand) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Ejercicio: %s\n", exercise))
	if grade != "" {
		b.WriteString(fmt.Sprintf("Curso: %s\n", grade))
	}
	b.WriteString("\nDescompón la solución en pasos comprobables y da el resultado final.")
	return b.String()
}
