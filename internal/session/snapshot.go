package session

import (
	"github.com/abhisek/aigua/internal/cycle"
	"github.com/abhisek/aigua/internal/progress"
	"github.com/abhisek/aigua/internal/quiz"
)

// Snapshot is a read-only copy of the session state for rendering.
type Snapshot struct {
	ID             string           `json:"id"`
	View           View             `json:"view"`
	Unlocked       []cycle.Stage    `json:"unlocked"`
	Badges         []progress.Badge `json:"badges"`
	QuestionsAsked int              `json:"questionsAsked"`

	// Detail is the stage whose detail view is open, if any.
	Detail *StageDetail `json:"detail,omitempty"`

	Quiz quiz.Snapshot `json:"quiz"`
	Ask  AskSnapshot   `json:"ask"`
}

// StageDetail is an open stage detail view.
type StageDetail struct {
	Stage cycle.Stage `json:"stage"`
	cycle.Details
}

// AskSnapshot is the state of the ask view.
type AskSnapshot struct {
	Question   string `json:"question,omitempty"`
	Answer     string `json:"answer,omitempty"`
	Loading    bool   `json:"loading"`
	Validation string `json:"validation,omitempty"`
}

// State copies the current state.
func (o *Orchestrator) State() Snapshot {
	snap := Snapshot{
		ID:             o.id,
		View:           o.view,
		Unlocked:       o.progress.Unlocked(),
		Badges:         o.progress.Badges(),
		QuestionsAsked: o.progress.QuestionsAsked(),
		Quiz:           o.quiz.Snapshot(),
		Ask: AskSnapshot{
			Question:   o.ask.question,
			Answer:     o.ask.answer,
			Loading:    o.ask.loading,
			Validation: o.ask.validation,
		},
	}
	if snap.Badges == nil {
		snap.Badges = []progress.Badge{}
	}
	if o.detail != "" {
		snap.Detail = &StageDetail{Stage: o.detail, Details: cycle.DetailsFor(o.detail)}
	}
	return snap
}

// IsUnlocked reports whether s appears in Unlocked.
func (s Snapshot) IsUnlocked(stage cycle.Stage) bool {
	for _, u := range s.Unlocked {
		if u == stage {
			return true
		}
	}
	return false
}

// HasBadge reports whether b appears in Badges.
func (s Snapshot) HasBadge(b progress.Badge) bool {
	for _, have := range s.Badges {
		if have == b {
			return true
		}
	}
	return false
}
