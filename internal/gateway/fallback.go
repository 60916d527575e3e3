package gateway

import "github.com/abhisek/aigua/internal/quiz"

var easyFallback = []quiz.Question{
	{
		Question:           "Què fa el sol a l'aigua durant l'evaporació?",
		Options:            []string{"La congela", "L'escalfa", "La neteja"},
		CorrectAnswerIndex: 1,
	},
	{
		Question:           "Com es diu quan el vapor d'aigua forma núvols?",
		Options:            []string{"Precipitació", "Recollida", "Condensació"},
		CorrectAnswerIndex: 2,
	},
	{
		Question:           "La pluja és un tipus de...",
		Options:            []string{"Evaporació", "Precipitació", "Condensació"},
		CorrectAnswerIndex: 1,
	},
	{
		Question:           "On es recull l'aigua que cau a la terra?",
		Options:            []string{"Només als núvols", "Als arbres", "A rius, llacs i mars"},
		CorrectAnswerIndex: 2,
	},
}

var hardFallback = []quiz.Question{
	{
		Question:           "Quin procés és similar a l'evaporació, però ocorre a les plantes?",
		Options:            []string{"Infiltració", "Transpiració", "Condensació"},
		CorrectAnswerIndex: 1,
	},
	{
		Question:           "Com s'anomena l'aigua que flueix per la superfície terrestre cap a rius o llacs?",
		Options:            []string{"Aigua subterrània", "Escorrentia", "Aqüífer"},
		CorrectAnswerIndex: 1,
	},
	{
		Question:           "Quin és el principal motor energètic del cicle de l'aigua?",
		Options:            []string{"El vent", "La gravetat", "L'energia solar"},
		CorrectAnswerIndex: 2,
	},
	{
		Question:           "El procés pel qual l'aigua de la pluja s'absorbeix a terra s'anomena...",
		Options:            []string{"Recollida", "Infiltració", "Evaporació"},
		CorrectAnswerIndex: 1,
	},
}

// FallbackQuestions returns a copy of the checked-in question set for d.
func FallbackQuestions(d quiz.Difficulty) []quiz.Question {
	src := easyFallback
	if d == quiz.Hard {
		src = hardFallback
	}
	out := make([]quiz.Question, len(src))
	for i, q := range src {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
