package gateway

import (
	"fmt"

	"github.com/abhisek/aigua/internal/quiz"
)

// Apology is returned by AskQuestion whenever the model cannot answer.
const Apology = "Ups! Sembla que hi ha hagut un problema. Intenta-ho de nou més tard."

const systemInstruction = `Ets un professor de ciències amable i pacient que explica conceptes a nens i nenes de 9-10 anys (4t de primària).
Respon a la pregunta de l'alumne sobre el cicle de l'aigua.
Fes servir un llenguatge senzill, clar i breu. Evita paraules complicades.
La teva resposta ha de ser educativa, segura i encoratjadora.
Respon sempre en català.`

const easyQuizPrompt = "Crea un qüestionari de 4 preguntes de selecció múltiple sobre el cicle de l'aigua per a nens de 9 anys. Cada pregunta ha de tenir 3 opcions i només una resposta correcta. Proporciona les preguntes en català."

const hardQuizPrompt = "Crea un qüestionari de 4 preguntes de selecció múltiple sobre el cicle de l'aigua amb un nivell de dificultat més alt, per a nens d'11-12 anys. Inclou conceptes com transpiració, infiltració o escorrentia. Cada pregunta ha de tenir 3 opcions i només una resposta correcta. Proporciona les preguntes en català."

func askPrompt(question string) string {
	return fmt.Sprintf("La pregunta de l'alumne és: \"%s\"", question)
}

func quizPrompt(d quiz.Difficulty) string {
	if d == quiz.Hard {
		return hardQuizPrompt
	}
	return easyQuizPrompt
}
