package quiz

import (
	"strings"
	"testing"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	qz "github.com/abhisek/aigua/internal/quiz"
	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/session"
)

var questions = []qz.Question{
	{Question: "Què forma els núvols?", Options: []string{"Fum", "Gotetes d'aigua", "Sorra"}, CorrectAnswerIndex: 1},
	{Question: "Com es diu l'aigua que cau?", Options: []string{"Precipitació", "Evaporació", "Recollida"}, CorrectAnswerIndex: 0},
}

func withQuiz(q qz.Snapshot) session.Snapshot {
	return session.Snapshot{View: session.ViewQuiz, Quiz: q}
}

func answering(index int) qz.Snapshot {
	return qz.Snapshot{Phase: qz.PhaseAnswering, Questions: questions, Index: index, Total: len(questions), Selected: -1}
}

func enter() tea.KeyPressMsg { return tea.KeyPressMsg{Code: tea.KeyEnter} }

func dispatched(t *testing.T, cmd tea.Cmd) session.Event {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.DispatchMsg)
	if !ok {
		t.Fatalf("expected DispatchMsg, got %T", cmd())
	}
	return msg.Event
}

func TestDifficultyMenu(t *testing.T) {
	s := New(withQuiz(qz.Snapshot{Phase: qz.PhaseSelectingDifficulty}))
	if !strings.Contains(s.View(100, 30), "Tria la dificultat") {
		t.Error("expected the difficulty prompt")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if cmd != nil {
		t.Error("moving should not dispatch")
	}
	_, cmd = s.Update(enter())
	if ev := dispatched(t, cmd); ev != (session.QuizDifficultyChosen{Difficulty: qz.Hard}) {
		t.Errorf("unexpected event %#v", ev)
	}
}

func TestLoadingStartsSpinner(t *testing.T) {
	s := New(withQuiz(qz.Snapshot{Phase: qz.PhaseSelectingDifficulty}))

	_, cmd := s.Update(screen.StateMsg{State: withQuiz(qz.Snapshot{Phase: qz.PhaseLoading, Difficulty: qz.Easy})})
	if cmd == nil {
		t.Error("entering loading should start the spinner")
	}
	if !strings.Contains(s.View(100, 30), "Preparant les preguntes") {
		t.Error("expected the loading text")
	}

	if _, cmd := s.Update(enter()); cmd != nil {
		t.Error("keys should be ignored while loading")
	}

	s.Update(screen.StateMsg{State: withQuiz(answering(0))})
	if _, cmd := s.Update(spinner.TickMsg{}); cmd != nil {
		t.Error("spinner should stop once questions arrive")
	}
}

func TestAnswerByLetter(t *testing.T) {
	s := New(withQuiz(answering(0)))
	view := s.View(100, 30)
	if !strings.Contains(view, "Pregunta 1 de 2") {
		t.Error("expected the question counter")
	}
	if !strings.Contains(view, questions[0].Question) {
		t.Error("expected the question text")
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'b', Text: "b"})
	if ev := dispatched(t, cmd); ev != (session.QuizAnswerSubmitted{Index: 1}) {
		t.Errorf("unexpected event %#v", ev)
	}
}

func TestAnswerByCursor(t *testing.T) {
	s := New(withQuiz(answering(0)))

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(enter())
	if ev := dispatched(t, cmd); ev != (session.QuizAnswerSubmitted{Index: 2}) {
		t.Errorf("unexpected event %#v", ev)
	}
}

func TestAdvanceAfterAnswer(t *testing.T) {
	s := New(withQuiz(answering(0)))

	answered := answering(0)
	answered.Answered = true
	answered.Selected = 1
	answered.Score = 1
	s.Update(screen.StateMsg{State: withQuiz(answered)})

	if !strings.Contains(s.View(100, 30), "Següent") {
		t.Error("expected the next button")
	}
	_, cmd := s.Update(enter())
	if ev := dispatched(t, cmd); ev != (session.QuizAdvance{}) {
		t.Errorf("unexpected event %#v", ev)
	}
}

func TestLastQuestionFinishes(t *testing.T) {
	last := answering(1)
	last.Answered = true
	last.Selected = 0
	s := New(withQuiz(last))

	if !strings.Contains(s.View(100, 30), "Finalitzar") {
		t.Error("last question should offer to finish")
	}
}

func TestNewQuestionResetsCursor(t *testing.T) {
	s := New(withQuiz(answering(0)))
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.choices.Cursor != 1 {
		t.Fatalf("expected cursor 1, got %d", s.choices.Cursor)
	}

	s.Update(screen.StateMsg{State: withQuiz(answering(1))})
	if s.choices.Cursor != 0 {
		t.Errorf("cursor should reset on a new question, got %d", s.choices.Cursor)
	}
}

func TestFinishedRestart(t *testing.T) {
	s := New(withQuiz(qz.Snapshot{Phase: qz.PhaseFinished, Questions: questions, Total: 2, Score: 1, Percentage: 50}))

	view := s.View(100, 30)
	if !strings.Contains(view, "Qüestionari completat!") {
		t.Error("expected the completion title")
	}
	if !strings.Contains(view, "1 / 2") {
		t.Error("expected the final score")
	}

	_, cmd := s.Update(enter())
	if ev := dispatched(t, cmd); ev != (session.QuizRestart{}) {
		t.Errorf("unexpected event %#v", ev)
	}
}
