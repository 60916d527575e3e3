// Package quiz implements the quiz session state machine.
package quiz

import (
	"fmt"
	"strings"
)

// OptionsPerQuestion is the number of answer options every question has.
const OptionsPerQuestion = 3

// Question is a multiple-choice question. Immutable once created.
type Question struct {
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
}

// IsCorrect reports whether index selects the correct option.
func (q Question) IsCorrect(index int) bool {
	return index == q.CorrectAnswerIndex
}

// Difficulty selects the prompt and fallback set for a quiz.
type Difficulty string

const (
	Easy Difficulty = "easy"
	Hard Difficulty = "hard"
)

// AllDifficulties returns the difficulties in display order.
func AllDifficulties() []Difficulty {
	return []Difficulty{Easy, Hard}
}

// DisplayName returns the label shown to the learner.
func (d Difficulty) DisplayName() string {
	switch d {
	case Easy:
		return "Fàcil"
	case Hard:
		return "Difícil"
	default:
		return string(d)
	}
}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	return d == Easy || d == Hard
}

// ParseDifficulty accepts "easy" or "hard" in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown difficulty %q (want easy or hard)", s)
	}
	return d, nil
}

// Phase is the state of a quiz session.
type Phase string

const (
	PhaseSelectingDifficulty Phase = "selecting-difficulty"
	PhaseLoading             Phase = "loading"
	PhaseAnswering           Phase = "answering"
	PhaseFinished            Phase = "finished"
)

// AdvanceResult is the outcome of Session.Advance.
type AdvanceResult int

const (
	// AdvanceRejected means the current question has not been answered or
	// the session is not answering.
	AdvanceRejected AdvanceResult = iota
	// AdvanceNext moved to the next question.
	AdvanceNext
	// AdvanceCompleted finished the quiz. It is returned once per quiz.
	AdvanceCompleted
)
