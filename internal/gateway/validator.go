package gateway

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abhisek/aigua/internal/quiz"
)

// ErrMalformedQuiz wraps every reason a generated quiz is rejected.
var ErrMalformedQuiz = errors.New("malformed quiz")

// ValidationError describes the first question that failed validation.
type ValidationError struct {
	Index   int
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("question %d: %s", e.Index, e.Message)
}

func (e *ValidationError) Unwrap() error { return ErrMalformedQuiz }

// ValidateQuestions checks the structure the schema cannot fully express:
// a non-empty list, non-blank texts, exactly three options and an index
// that selects one of them.
func ValidateQuestions(qs []quiz.Question) error {
	if len(qs) == 0 {
		return fmt.Errorf("%w: no questions", ErrMalformedQuiz)
	}
	for i, q := range qs {
		if strings.TrimSpace(q.Question) == "" {
			return &ValidationError{Index: i, Message: "question text is empty"}
		}
		if len(q.Options) != quiz.OptionsPerQuestion {
			return &ValidationError{Index: i, Message: fmt.Sprintf("has %d options, want %d", len(q.Options), quiz.OptionsPerQuestion)}
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return &ValidationError{Index: i, Message: fmt.Sprintf("option %d is empty", j)}
			}
		}
		if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
			return &ValidationError{Index: i, Message: fmt.Sprintf("correctAnswerIndex %d out of range", q.CorrectAnswerIndex)}
		}
	}
	return nil
}
