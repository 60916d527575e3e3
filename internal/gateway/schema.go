package gateway

import "github.com/abhisek/aigua/internal/llm"

// QuizSchema constrains the quiz response to an array of three-option
// questions.
var QuizSchema = &llm.Schema{
	Name:        "water-cycle-quiz",
	Description: "Preguntes de selecció múltiple sobre el cicle de l'aigua",
	Definition: map[string]any{
		"type":     "array",
		"minItems": 1,
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"question": map[string]any{
					"type":        "string",
					"description": "La pregunta del qüestionari en català.",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"minItems":    3,
					"maxItems":    3,
					"description": "Una llista de 3 possibles respostes en català.",
				},
				"correctAnswerIndex": map[string]any{
					"type":        "integer",
					"minimum":     0,
					"maximum":     2,
					"description": "L'índex (0, 1, o 2) de la resposta correcta a la llista d'opcions.",
				},
			},
			"required": []any{"question", "options", "correctAnswerIndex"},
		},
	},
}
