package ask

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/aigua/internal/screen"
	"github.com/abhisek/aigua/internal/session"
)

func withAsk(a session.AskSnapshot) session.Snapshot {
	return session.Snapshot{View: session.ViewAsk, Ask: a}
}

func typeText(s *Screen, text string) {
	for _, r := range text {
		s.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
}

func TestSubmitDispatchesQuestion(t *testing.T) {
	s := New(withAsk(session.AskSnapshot{}))
	typeText(s, "Per que plou?")

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(screen.DispatchMsg)
	if !ok {
		t.Fatalf("expected DispatchMsg, got %T", cmd())
	}
	if msg.Event != (session.AskSubmitted{Question: "Per que plou?"}) {
		t.Errorf("unexpected event %#v", msg.Event)
	}
}

func TestEmptyStateAndPlaceholder(t *testing.T) {
	s := New(withAsk(session.AskSnapshot{}))
	view := s.View(100, 30)
	if !strings.Contains(view, EmptyAnswer) {
		t.Error("expected the empty answer text")
	}
	if !strings.Contains(view, "Tens algun dubte?") {
		t.Error("expected the heading")
	}
}

func TestValidationHiddenAfterTyping(t *testing.T) {
	s := New(withAsk(session.AskSnapshot{}))
	s.Update(screen.StateMsg{State: withAsk(session.AskSnapshot{Validation: session.EmptyQuestionMessage})})

	if s.Validation() != session.EmptyQuestionMessage {
		t.Fatalf("expected validation, got %q", s.Validation())
	}
	if !strings.Contains(s.View(100, 30), session.EmptyQuestionMessage) {
		t.Error("validation should be rendered")
	}

	typeText(s, "a")
	if s.Validation() != "" {
		t.Errorf("validation should hide after typing, got %q", s.Validation())
	}
}

func TestLoadingBlocksInput(t *testing.T) {
	s := New(withAsk(session.AskSnapshot{}))

	_, cmd := s.Update(screen.StateMsg{State: withAsk(session.AskSnapshot{Question: "Per què?", Loading: true})})
	if cmd == nil {
		t.Error("entering loading should start the spinner")
	}
	if s.CapturingText() {
		t.Error("should not capture text while loading")
	}
	if !strings.Contains(s.View(100, 30), Thinking) {
		t.Error("expected the thinking text")
	}
	if _, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter}); cmd != nil {
		t.Error("enter should be ignored while loading")
	}

	s.Update(screen.StateMsg{State: withAsk(session.AskSnapshot{Question: "Per què?", Answer: "Perquè sí."})})
	if !s.CapturingText() {
		t.Error("should capture text again after the answer")
	}
	if !strings.Contains(s.View(100, 30), "Perquè sí.") {
		t.Error("expected the answer")
	}
}

func TestViewID(t *testing.T) {
	if New(withAsk(session.AskSnapshot{})).ViewID() != session.ViewAsk {
		t.Error("ask screen should report the ask view")
	}
}
