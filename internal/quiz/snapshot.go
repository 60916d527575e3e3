package quiz

// Snapshot is a read-only copy of a Session for rendering.
type Snapshot struct {
	Phase      Phase      `json:"phase"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Questions  []Question `json:"questions,omitempty"`
	Index      int        `json:"index"`
	Total      int        `json:"total"`
	Score      int        `json:"score"`
	// Selected is the chosen option for the current question, -1 if none.
	Selected   int  `json:"selected"`
	Answered   bool `json:"answered"`
	Percentage int  `json:"percentage"`
}

// Snapshot copies the session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.phase,
		Difficulty: s.difficulty,
		Questions:  copyQuestions(s.questions),
		Index:      s.index,
		Total:      len(s.questions),
		Score:      s.score,
		Selected:   s.selected,
		Answered:   s.answered,
		Percentage: s.Percentage(),
	}
}

// Current returns the question being answered.
func (s Snapshot) Current() (Question, bool) {
	if s.Phase != PhaseAnswering || s.Index >= len(s.Questions) {
		return Question{}, false
	}
	return s.Questions[s.Index], true
}

// IsLast reports whether the current question is the last one.
func (s Snapshot) IsLast() bool {
	return s.Index == s.Total-1
}

// copyQuestions copies qs including each option slice.
func copyQuestions(qs []Question) []Question {
	if qs == nil {
		return nil
	}
	out := make([]Question, len(qs))
	for i, q := range qs {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}
