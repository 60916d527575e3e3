package quiz

import "math"

// Session is the quiz state machine:
//
//	SelectingDifficulty → Loading → Answering → Finished → SelectingDifficulty
//
// Operations that do not apply in the current phase are rejected and leave
// the session untouched. Session is not safe for concurrent use.
type Session struct {
	phase      Phase
	difficulty Difficulty
	questions  []Question
	index      int
	score      int
	selected   int
	answered   bool
}

// NewSession returns a session waiting for a difficulty.
func NewSession() *Session {
	return &Session{phase: PhaseSelectingDifficulty, selected: -1}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// ChooseDifficulty moves SelectingDifficulty → Loading.
func (s *Session) ChooseDifficulty(d Difficulty) bool {
	if s.phase != PhaseSelectingDifficulty || !d.Valid() {
		return false
	}
	s.difficulty = d
	s.phase = PhaseLoading
	return true
}

// Load moves Loading → Answering with the given questions. An empty list
// goes straight to Finished with a 0% score and no completion.
func (s *Session) Load(questions []Question) bool {
	if s.phase != PhaseLoading {
		return false
	}
	s.questions = append([]Question(nil), questions...)
	s.index, s.score = 0, 0
	s.clearAnswer()
	if len(s.questions) == 0 {
		s.phase = PhaseFinished
		return true
	}
	s.phase = PhaseAnswering
	return true
}

// Answer latches the first selection for the current question, scoring it.
// Re-answers and out-of-range indices are rejected.
func (s *Session) Answer(index int) bool {
	if s.phase != PhaseAnswering || s.answered {
		return false
	}
	q := s.questions[s.index]
	if index < 0 || index >= len(q.Options) {
		return false
	}
	s.selected = index
	s.answered = true
	if q.IsCorrect(index) {
		s.score++
	}
	return true
}

// Advance moves to the next question, or to Finished after the last one.
// The current question must have been answered.
func (s *Session) Advance() AdvanceResult {
	if s.phase != PhaseAnswering || !s.answered {
		return AdvanceRejected
	}
	if s.index+1 >= len(s.questions) {
		s.phase = PhaseFinished
		return AdvanceCompleted
	}
	s.index++
	s.clearAnswer()
	return AdvanceNext
}

// Restart moves Finished → SelectingDifficulty, discarding the difficulty,
// the questions and every answer.
func (s *Session) Restart() bool {
	if s.phase != PhaseFinished {
		return false
	}
	*s = *NewSession()
	return true
}

// Percentage is round(100·score/total), 0 when there are no questions.
func (s *Session) Percentage() int {
	return Percentage(s.score, len(s.questions))
}

// Percentage is round(100·score/total), 0 when total is 0.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(score) / float64(total)))
}

func (s *Session) clearAnswer() {
	s.selected = -1
	s.answered = false
}
